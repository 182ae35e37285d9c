package entity

import (
	"time"

	"github.com/google/uuid"
)

// Label is one candidate identification with its model confidence.
type Label struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// PredictionResult is what the captioning model returns for one image.
type PredictionResult struct {
	Caption     string  `json:"caption"`
	Predictions []Label `json:"predictions"`
}

// Detection records a single image submitted by a user and the model's answer.
type Detection struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ImageURL  string
	Result    PredictionResult
	CreatedAt time.Time
}
