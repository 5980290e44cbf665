package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: question type
============================================================================= */

type QuizQuestionType string

const (
	QuestionSingleChoice   QuizQuestionType = "single_choice"
	QuestionMultipleChoice QuizQuestionType = "multiple_choice"
	QuestionFillInTheBlank QuizQuestionType = "fill_in_the_blank"
	QuestionDragIntoText   QuizQuestionType = "drag_into_text"
)

func (t QuizQuestionType) String() string { return string(t) }
func (t QuizQuestionType) Valid() bool {
	switch t {
	case QuestionSingleChoice, QuestionMultipleChoice, QuestionFillInTheBlank, QuestionDragIntoText:
		return true
	default:
		return false
	}
}

// Every current question type is graded by the instructor after submission;
// the auto-graded path is the legacy JSON quiz on sections.
func (t QuizQuestionType) RequiresManualGrading() bool { return t.Valid() }

func (t *QuizQuestionType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = QuizQuestionType(v)
	case []byte:
		*t = QuizQuestionType(string(v))
	default:
		return fmt.Errorf("unsupported type for QuizQuestionType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid QuizQuestionType: %q", *t)
	}
	return nil
}

func (t QuizQuestionType) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("invalid QuizQuestionType: %q", t)
	}
	return string(t), nil
}

/* =============================================================================
   MODEL: quiz_questions
============================================================================= */

// QuizQuestionModel is one question inside a relational quiz. Position is the
// insertion order, unique per quiz, assigned max+1 on create. Description
// holds the text-with-blanks structure for drag_into_text questions.
type QuizQuestionModel struct {
	QuizQuestionID          uuid.UUID        `json:"quiz_question_id" gorm:"column:quiz_question_id;type:uuid;primaryKey"`
	QuizQuestionQuizID      uuid.UUID        `json:"quiz_question_quiz_id" gorm:"column:quiz_question_quiz_id;type:uuid;not null;index:idx_qq_quiz;uniqueIndex:uq_qq_quiz_position,priority:1"`
	QuizQuestionText        string           `json:"quiz_question_text" gorm:"column:quiz_question_text;type:text;not null"`
	QuizQuestionType        QuizQuestionType `json:"quiz_question_type" gorm:"column:quiz_question_type;type:varchar(24);not null"`
	QuizQuestionPoints      float64          `json:"quiz_question_points" gorm:"column:quiz_question_points;not null;default:1"`
	QuizQuestionPosition    int              `json:"quiz_question_position" gorm:"column:quiz_question_position;not null;uniqueIndex:uq_qq_quiz_position,priority:2"`
	QuizQuestionDescription datatypes.JSON   `json:"quiz_question_description,omitempty" gorm:"column:quiz_question_description"`
	QuizQuestionCreatedAt   time.Time        `json:"quiz_question_created_at" gorm:"column:quiz_question_created_at;autoCreateTime"`
	QuizQuestionUpdatedAt   time.Time        `json:"quiz_question_updated_at" gorm:"column:quiz_question_updated_at;autoUpdateTime"`

	QuizQuestionOptions []QuizOptionModel `json:"quiz_question_options,omitempty" gorm:"foreignKey:QuizOptionQuestionID;references:QuizQuestionID"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }

func (m *QuizQuestionModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizQuestionID == uuid.Nil {
		m.QuizQuestionID = uuid.New()
	}
	return nil
}
