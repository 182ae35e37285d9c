package handler

import (
	"net/http"
	"time"

	"medbotanica/internal/delivery/http/response"
	"medbotanica/internal/domain/entity"
	domainerrors "medbotanica/internal/domain/errors"
	"medbotanica/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	uploadField         = "file"
	defaultListPageSize = 20
)

// DetectionHandler serves image identification and detection history.
type DetectionHandler struct {
	uc usecase.DetectionUsecase
}

// NewDetectionHandler is the constructor for DetectionHandler, injected by Fx.
func NewDetectionHandler(uc usecase.DetectionUsecase) *DetectionHandler {
	return &DetectionHandler{uc: uc}
}

type detectionResponse struct {
	ID        uuid.UUID               `json:"id"`
	ImageURL  string                  `json:"image_url"`
	Result    entity.PredictionResult `json:"result"`
	CreatedAt time.Time               `json:"created_at"`
}

func newDetectionResponse(detection *entity.Detection) detectionResponse {
	return detectionResponse{
		ID:        detection.ID,
		ImageURL:  detection.ImageURL,
		Result:    detection.Result,
		CreatedAt: detection.CreatedAt,
	}
}

// Predict accepts a multipart image upload and returns the model's answer.
func (h *DetectionHandler) Predict(c echo.Context) error {
	userID, err := subjectUserID(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile(uploadField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrUploadInvalid.WithDetails("multipart field \"file\" is required"))
	}

	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	output, err := h.uc.Predict(c.Request().Context(), &usecase.PredictInput{
		UserID:   userID,
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newDetectionResponse(output.Detection), "Prediction completed")
}

// List returns the caller's detections, newest first.
func (h *DetectionHandler) List(c echo.Context) error {
	userID, err := subjectUserID(c)
	if err != nil {
		return err
	}

	limit, offset := defaultListPageSize, 0
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit and offset must be integers"))
	}

	detections, err := h.uc.ListDetections(c.Request().Context(), &usecase.ListDetectionsInput{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]detectionResponse, 0, len(detections))
	for _, detection := range detections {
		out = append(out, newDetectionResponse(detection))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Get returns one of the caller's detections.
func (h *DetectionHandler) Get(c echo.Context) error {
	userID, err := subjectUserID(c)
	if err != nil {
		return err
	}

	detectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrDetectionNotFound)
	}

	detection, err := h.uc.GetDetection(c.Request().Context(), userID, detectionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDetectionResponse(detection), "")
}
