package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressModel is the per-user, per-section progress record. One row per
// (user, section), created on first interaction and upserted after that.
// Rating is write-once and only allowed once the section is completed.
type ProgressModel struct {
	ProgressID          uuid.UUID `json:"progress_id" gorm:"column:progress_id;type:uuid;primaryKey"`
	ProgressUserID      uuid.UUID `json:"progress_user_id" gorm:"column:progress_user_id;type:uuid;not null;uniqueIndex:uq_progress_user_section,priority:1"`
	ProgressSectionID   uuid.UUID `json:"progress_section_id" gorm:"column:progress_section_id;type:uuid;not null;uniqueIndex:uq_progress_user_section,priority:2;index:idx_progress_section"`
	ProgressIsCompleted bool      `json:"progress_is_completed" gorm:"column:progress_is_completed;not null;default:false"`
	ProgressScore       *float64  `json:"progress_score,omitempty" gorm:"column:progress_score;type:numeric(6,3)"`
	ProgressRating      *int      `json:"progress_rating,omitempty" gorm:"column:progress_rating"`
	ProgressCreatedAt   time.Time `json:"progress_created_at" gorm:"column:progress_created_at;autoCreateTime"`
	ProgressUpdatedAt   time.Time `json:"progress_updated_at" gorm:"column:progress_updated_at;autoUpdateTime"`
}

func (ProgressModel) TableName() string { return "progress" }

func (m *ProgressModel) BeforeCreate(_ *gorm.DB) error {
	if m.ProgressID == uuid.Nil {
		m.ProgressID = uuid.New()
	}
	return nil
}
