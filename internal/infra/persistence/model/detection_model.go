package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DetectionResult is the JSONB shape of a stored model answer.
type DetectionResult struct {
	Caption     string           `json:"caption"`
	Predictions []DetectionLabel `json:"predictions"`
}

// DetectionLabel is one labelled candidate inside DetectionResult.
type DetectionLabel struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// DetectionModel mirrors the 'detections' table.
type DetectionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_detections_user_created,priority:1"`
	ImageURL  string          `gorm:"type:text;not null"`
	Result    DetectionResult `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt time.Time       `gorm:"index:idx_detections_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (DetectionModel) TableName() string {
	return "detections"
}

// BeforeCreate assigns a random UUID when the caller left ID unset.
func (m *DetectionModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
