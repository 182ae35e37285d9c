package service

import (
	"context"
	"io"
)

// ImageStorage persists uploaded images and returns their public URL.
type ImageStorage interface {
	// Save writes the content under a fresh key derived from filename and
	// returns the URL the image can be fetched from.
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
