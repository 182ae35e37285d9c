package usecase

import (
	"context"
	"io"

	"medbotanica/internal/domain/entity"

	"github.com/google/uuid"
)

// PredictInput describes one uploaded image.
type PredictInput struct {
	UserID   uuid.UUID
	Filename string
	Size     int64
	Body     io.Reader
}

// PredictOutput is the model answer together with where the image was stored.
type PredictOutput struct {
	Detection *entity.Detection
}

// ListDetectionsInput pages through a user's detections.
type ListDetectionsInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// DetectionUsecase covers uploading images for identification and reading the history.
type DetectionUsecase interface {
	Predict(ctx context.Context, input *PredictInput) (*PredictOutput, error)
	ListDetections(ctx context.Context, input *ListDetectionsInput) ([]*entity.Detection, error)
	GetDetection(ctx context.Context, userID, detectionID uuid.UUID) (*entity.Detection, error)
}
