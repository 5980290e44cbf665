package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizOptionModel is one choice under a question. For fill_in_the_blank a
// single option carries the accepted literal answer. At least one correct
// option per choice question is enforced by the authoring flow.
type QuizOptionModel struct {
	QuizOptionID         uuid.UUID `json:"quiz_option_id" gorm:"column:quiz_option_id;type:uuid;primaryKey"`
	QuizOptionQuestionID uuid.UUID `json:"quiz_option_question_id" gorm:"column:quiz_option_question_id;type:uuid;not null;index:idx_qo_question"`
	QuizOptionText       string    `json:"quiz_option_text" gorm:"column:quiz_option_text;type:text;not null"`
	QuizOptionIsCorrect  bool      `json:"quiz_option_is_correct" gorm:"column:quiz_option_is_correct;not null;default:false"`
	QuizOptionCreatedAt  time.Time `json:"quiz_option_created_at" gorm:"column:quiz_option_created_at;autoCreateTime"`
}

func (QuizOptionModel) TableName() string { return "quiz_options" }

func (m *QuizOptionModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizOptionID == uuid.Nil {
		m.QuizOptionID = uuid.New()
	}
	return nil
}
