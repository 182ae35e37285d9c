package postgres

import (
	"context"

	"medbotanica/internal/domain/entity"
	domainerrors "medbotanica/internal/domain/errors"
	"medbotanica/internal/domain/repository"
	"medbotanica/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const maxDetectionPageSize = 100

type detectionRepository struct {
	db *gorm.DB
}

// NewDetectionRepository is the constructor for detectionRepository.
func NewDetectionRepository(db *gorm.DB) repository.DetectionRepository {
	return &detectionRepository{db: db}
}

func (repo *detectionRepository) Create(ctx context.Context, detection *entity.Detection) error {
	detectionM := fromDetectionDomain(detection)

	if err := repo.db.WithContext(ctx).Create(detectionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create detection")
	}

	detection.ID = detectionM.ID
	detection.CreatedAt = detectionM.CreatedAt

	return nil
}

func (repo *detectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Detection, error) {
	var detectionM model.DetectionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&detectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDetectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find detection by id")
	}

	return toDetectionDomain(&detectionM), nil
}

func (repo *detectionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Detection, error) {
	limit, offset = clampPage(limit, offset)

	var detectionMs []model.DetectionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&detectionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list detections")
	}

	detections := make([]*entity.Detection, 0, len(detectionMs))
	for i := range detectionMs {
		detections = append(detections, toDetectionDomain(&detectionMs[i]))
	}

	return detections, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > maxDetectionPageSize {
		limit = maxDetectionPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

func fromDetectionDomain(d *entity.Detection) *model.DetectionModel {
	labels := make([]model.DetectionLabel, 0, len(d.Result.Predictions))
	for _, p := range d.Result.Predictions {
		labels = append(labels, model.DetectionLabel{Label: p.Label, Confidence: p.Confidence})
	}

	return &model.DetectionModel{
		ID:       d.ID,
		UserID:   d.UserID,
		ImageURL: d.ImageURL,
		Result: model.DetectionResult{
			Caption:     d.Result.Caption,
			Predictions: labels,
		},
		CreatedAt: d.CreatedAt,
	}
}

func toDetectionDomain(m *model.DetectionModel) *entity.Detection {
	labels := make([]entity.Label, 0, len(m.Result.Predictions))
	for _, p := range m.Result.Predictions {
		labels = append(labels, entity.Label{Label: p.Label, Confidence: p.Confidence})
	}

	return &entity.Detection{
		ID:       m.ID,
		UserID:   m.UserID,
		ImageURL: m.ImageURL,
		Result: entity.PredictionResult{
			Caption:     m.Result.Caption,
			Predictions: labels,
		},
		CreatedAt: m.CreatedAt,
	}
}
