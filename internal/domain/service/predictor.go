package service

import (
	"context"

	"medbotanica/internal/domain/entity"
)

// ImagePredictor runs the image-captioning model on a stored image.
type ImagePredictor interface {
	Predict(ctx context.Context, imageURL string) (*entity.PredictionResult, error)
}
