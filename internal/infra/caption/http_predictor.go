// Package caption talks to the external image-captioning model.
package caption

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"medbotanica/config"
	"medbotanica/internal/domain/entity"
	"medbotanica/internal/domain/service"

	"github.com/pkg/errors"
)

const maxResponseBytes = 1 << 20

type predictRequest struct {
	ImageURL string `json:"image_url"`
}

// httpPredictor posts the stored image URL to the model endpoint and decodes its answer.
type httpPredictor struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// New selects the HTTP predictor when an endpoint is configured and the
// placeholder predictor otherwise.
func New(cfg *config.Config, logger *slog.Logger) service.ImagePredictor {
	if cfg.Caption == nil || cfg.Caption.Endpoint == "" {
		logger.Warn("Caption endpoint not configured, using placeholder predictor")

		return NewStaticPredictor()
	}

	return NewHTTPPredictor(cfg.Caption.Endpoint, &http.Client{Timeout: cfg.Caption.Timeout}, logger)
}

// NewHTTPPredictor creates a predictor for the given endpoint.
func NewHTTPPredictor(endpoint string, httpClient *http.Client, logger *slog.Logger) service.ImagePredictor {
	return &httpPredictor{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (p *httpPredictor) Predict(ctx context.Context, imageURL string) (*entity.PredictionResult, error) {
	body, err := json.Marshal(predictRequest{ImageURL: imageURL})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "caption request failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read caption response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Warn("Caption model returned error status",
			slog.String("endpoint", p.endpoint),
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Errorf("caption model returned status %d", resp.StatusCode)
	}

	var result entity.PredictionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, errors.Wrap(err, "failed to decode caption response")
	}

	return &result, nil
}

// staticPredictor answers every image with the same canned result.
// It stands in for the model during local development.
type staticPredictor struct{}

// NewStaticPredictor returns the placeholder predictor.
func NewStaticPredictor() service.ImagePredictor {
	return staticPredictor{}
}

func (staticPredictor) Predict(context.Context, string) (*entity.PredictionResult, error) {
	return &entity.PredictionResult{
		Caption: "A small green herb, looks like tulsi",
		Predictions: []entity.Label{
			{Label: "Ocimum tenuiflorum (Tulsi)", Confidence: 0.89},
			{Label: "Ocimum basilicum (Basil)", Confidence: 0.07},
		},
	}, nil
}
