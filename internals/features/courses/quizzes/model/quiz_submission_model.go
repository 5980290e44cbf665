package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: submission status ('submitted' → 'graded', terminal)
============================================================================= */

type QuizSubmissionStatus string

const (
	SubmissionSubmitted QuizSubmissionStatus = "submitted"
	SubmissionGraded    QuizSubmissionStatus = "graded"
)

func (s QuizSubmissionStatus) String() string { return string(s) }
func (s QuizSubmissionStatus) Valid() bool {
	switch s {
	case SubmissionSubmitted, SubmissionGraded:
		return true
	default:
		return false
	}
}

func (s *QuizSubmissionStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = QuizSubmissionStatus(v)
	case []byte:
		*s = QuizSubmissionStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for QuizSubmissionStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid QuizSubmissionStatus: %q", *s)
	}
	return nil
}

func (s QuizSubmissionStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid QuizSubmissionStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: quiz_submissions
============================================================================= */

// QuizSubmissionModel is one learner attempt at a relational quiz. One row
// per (user, quiz); resubmission is rejected rather than stacked. Score is a
// 0–100 percentage, null until the instructor finishes grading.
type QuizSubmissionModel struct {
	QuizSubmissionID        uuid.UUID            `json:"quiz_submission_id" gorm:"column:quiz_submission_id;type:uuid;primaryKey"`
	QuizSubmissionQuizID    uuid.UUID            `json:"quiz_submission_quiz_id" gorm:"column:quiz_submission_quiz_id;type:uuid;not null;uniqueIndex:uq_qs_user_quiz,priority:2;index:idx_qs_quiz"`
	QuizSubmissionUserID    uuid.UUID            `json:"quiz_submission_user_id" gorm:"column:quiz_submission_user_id;type:uuid;not null;uniqueIndex:uq_qs_user_quiz,priority:1;index:idx_qs_user"`
	QuizSubmissionStatus    QuizSubmissionStatus `json:"quiz_submission_status" gorm:"column:quiz_submission_status;type:varchar(16);not null;default:'submitted';index:idx_qs_status"`
	QuizSubmissionScore     *float64             `json:"quiz_submission_score,omitempty" gorm:"column:quiz_submission_score;type:numeric(6,3)"`
	QuizSubmissionCreatedAt time.Time            `json:"quiz_submission_created_at" gorm:"column:quiz_submission_created_at;autoCreateTime"`
	QuizSubmissionUpdatedAt time.Time            `json:"quiz_submission_updated_at" gorm:"column:quiz_submission_updated_at;autoUpdateTime"`

	QuizSubmissionAnswers []UserAnswerModel `json:"quiz_submission_answers,omitempty" gorm:"foreignKey:UserAnswerSubmissionID;references:QuizSubmissionID"`
}

func (QuizSubmissionModel) TableName() string { return "quiz_submissions" }

func (m *QuizSubmissionModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizSubmissionID == uuid.Nil {
		m.QuizSubmissionID = uuid.New()
	}
	if m.QuizSubmissionStatus == "" {
		m.QuizSubmissionStatus = SubmissionSubmitted
	}
	return nil
}

func (m *QuizSubmissionModel) IsGraded() bool {
	return m.QuizSubmissionStatus == SubmissionGraded
}

// MarkGraded pins the final percentage and moves to the terminal state.
func (m *QuizSubmissionModel) MarkGraded(finalScore float64) {
	m.QuizSubmissionStatus = SubmissionGraded
	m.QuizSubmissionScore = &finalScore
}
