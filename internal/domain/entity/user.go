// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in and submit images for identification.
type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	HashedPassword string // bcrypt hash, stored verbatim
	ProfileURL     string
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
