package impl

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"medbotanica/config"
	deliverycontext "medbotanica/internal/delivery/context"
	"medbotanica/internal/domain/entity"
	domainerrors "medbotanica/internal/domain/errors"
	"medbotanica/internal/domain/repository"
	"medbotanica/internal/domain/service"
	"medbotanica/internal/usecase"
	"medbotanica/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sniffLen is the number of bytes http.DetectContentType looks at.
const sniffLen = 512

type detectionService struct {
	detectionRepo       repository.DetectionRepository
	storage             service.ImageStorage
	predictor           service.ImagePredictor
	maxUploadBytes      int64
	allowedContentTypes []string
	logger              *slog.Logger
}

// DetectionServiceParams holds dependencies for DetectionService, injected by Fx.
type DetectionServiceParams struct {
	fx.In

	DetectionRepo repository.DetectionRepository
	Storage       service.ImageStorage
	Predictor     service.ImagePredictor
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDetectionService is the constructor for detectionService.
func NewDetectionService(params DetectionServiceParams) usecase.DetectionUsecase {
	srv := &detectionService{
		detectionRepo: params.DetectionRepo,
		storage:       params.Storage,
		predictor:     params.Predictor,
		logger:        params.Logger,
	}
	if params.Config.Storage != nil {
		srv.maxUploadBytes = params.Config.Storage.MaxUploadBytes
		srv.allowedContentTypes = params.Config.Storage.AllowedContentTypes
	}

	return srv
}

func (srv *detectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Predict stores the uploaded image, asks the model about it and records the answer.
func (srv *detectionService) Predict(ctx context.Context, input *usecase.PredictInput) (*usecase.PredictOutput, error) {
	if input.Size <= 0 {
		return nil, domainerrors.ErrUploadInvalid.WrapMessage("empty upload")
	}
	if srv.maxUploadBytes > 0 && input.Size > srv.maxUploadBytes {
		srv.log(ctx).Info("Upload rejected: too large", slog.Int64("size", input.Size), slog.Int64("max", srv.maxUploadBytes))

		return nil, errors.WithStack(domainerrors.ErrUploadTooLarge.WithDetails("limit is " + util.FormatBytes(srv.maxUploadBytes)))
	}

	body := bufio.NewReaderSize(input.Body, sniffLen)
	head, err := body.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if len(head) == 0 {
		return nil, domainerrors.ErrUploadInvalid.WrapMessage("empty upload")
	}

	contentType := http.DetectContentType(head)
	if !srv.isAllowed(contentType) {
		srv.log(ctx).Info("Upload rejected: content type", slog.String("contentType", contentType))

		return nil, domainerrors.ErrUploadInvalid.WrapMessage("content type " + contentType)
	}

	var reader io.Reader = body
	if srv.maxUploadBytes > 0 {
		reader = io.LimitReader(body, srv.maxUploadBytes)
	}

	imageURL, err := srv.storage.Save(ctx, input.Filename, contentType, reader)
	if err != nil {
		srv.log(ctx).Error("Failed to store upload", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	result, err := srv.predictor.Predict(ctx, imageURL)
	if err != nil {
		srv.log(ctx).Error("Prediction failed", slog.String("imageURL", imageURL), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPredictionFailed, err.Error())
	}

	detection := &entity.Detection{
		UserID:   input.UserID,
		ImageURL: imageURL,
		Result:   *result,
	}
	if err := srv.detectionRepo.Create(ctx, detection); err != nil {
		return nil, errors.Wrap(err, "failed to record detection")
	}

	srv.log(ctx).Debug("Detection recorded", slog.Any("detectionID", detection.ID))

	return &usecase.PredictOutput{Detection: detection}, nil
}

// ListDetections returns the caller's detections, newest first.
func (srv *detectionService) ListDetections(ctx context.Context, input *usecase.ListDetectionsInput) ([]*entity.Detection, error) {
	detections, err := srv.detectionRepo.ListByUser(ctx, input.UserID, input.Limit, input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list detections")
	}

	return detections, nil
}

// GetDetection returns one detection. Another user's detection is reported as not found.
func (srv *detectionService) GetDetection(ctx context.Context, userID, detectionID uuid.UUID) (*entity.Detection, error) {
	detection, err := srv.detectionRepo.FindByID(ctx, detectionID)
	if errors.Is(err, repository.ErrDetectionNotFound) {
		return nil, errors.WithStack(domainerrors.ErrDetectionNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find detection")
	}

	if detection.UserID != userID {
		srv.log(ctx).Warn("Detection requested by non-owner", slog.Any("detectionID", detectionID), slog.Any("userID", userID))

		return nil, errors.WithStack(domainerrors.ErrDetectionNotFound)
	}

	return detection, nil
}

func (srv *detectionService) isAllowed(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")

	return slices.Contains(srv.allowedContentTypes, strings.TrimSpace(mediaType))
}
