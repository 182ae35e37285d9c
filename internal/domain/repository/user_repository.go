// Package repository defines the persistence contracts used by the use cases.
package repository

import (
	"context"

	"medbotanica/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores user accounts.
type UserRepository interface {
	// Create persists user and fills in its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
