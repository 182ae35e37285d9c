package repository

import (
	"context"

	"medbotanica/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDetectionNotFound is returned when no detection matches the lookup.
var ErrDetectionNotFound = errors.New("detection not found")

// DetectionRepository stores prediction records.
type DetectionRepository interface {
	Create(ctx context.Context, detection *entity.Detection) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Detection, error)
	// ListByUser returns the user's detections, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Detection, error)
}
