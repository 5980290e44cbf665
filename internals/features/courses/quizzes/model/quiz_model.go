package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizModel is a relational quiz. Exactly one per section.
type QuizModel struct {
	QuizID        uuid.UUID `json:"quiz_id" gorm:"column:quiz_id;type:uuid;primaryKey"`
	QuizSectionID uuid.UUID `json:"quiz_section_id" gorm:"column:quiz_section_id;type:uuid;not null;uniqueIndex:uq_quiz_section"`
	QuizTitle     string    `json:"quiz_title" gorm:"column:quiz_title;type:varchar(255);not null"`
	QuizCreatedAt time.Time `json:"quiz_created_at" gorm:"column:quiz_created_at;autoCreateTime"`
	QuizUpdatedAt time.Time `json:"quiz_updated_at" gorm:"column:quiz_updated_at;autoUpdateTime"`
}

func (QuizModel) TableName() string { return "quizzes" }

func (m *QuizModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizID == uuid.Nil {
		m.QuizID = uuid.New()
	}
	return nil
}
