package impl

import (
	"io"
	"log/slog"

	"medbotanica/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxUploadBytes int64) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		Storage: &config.StorageConfig{
			MaxUploadBytes:      maxUploadBytes,
			AllowedContentTypes: []string{"image/jpeg", "image/png", "image/webp"},
		},
	}
}
