package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserAnswerModel is the learner's raw answer to one question of a
// submission. Score stays null until the instructor grades it; is_correct is
// derived (score > 0) at grading time.
type UserAnswerModel struct {
	UserAnswerID           uuid.UUID `json:"user_answer_id" gorm:"column:user_answer_id;type:uuid;primaryKey"`
	UserAnswerSubmissionID uuid.UUID `json:"user_answer_submission_id" gorm:"column:user_answer_submission_id;type:uuid;not null;index:idx_ua_submission;uniqueIndex:uq_ua_submission_question,priority:1"`
	UserAnswerQuestionID   uuid.UUID `json:"user_answer_question_id" gorm:"column:user_answer_question_id;type:uuid;not null;uniqueIndex:uq_ua_submission_question,priority:2"`
	UserAnswerText         string    `json:"user_answer_text" gorm:"column:user_answer_text;type:text;not null"`
	UserAnswerScore        *float64  `json:"user_answer_score,omitempty" gorm:"column:user_answer_score;type:numeric(7,3)"`
	UserAnswerFeedback     *string   `json:"user_answer_feedback,omitempty" gorm:"column:user_answer_feedback;type:text"`
	UserAnswerIsCorrect    bool      `json:"user_answer_is_correct" gorm:"column:user_answer_is_correct;not null;default:false"`
	UserAnswerCreatedAt    time.Time `json:"user_answer_created_at" gorm:"column:user_answer_created_at;autoCreateTime"`
	UserAnswerUpdatedAt    time.Time `json:"user_answer_updated_at" gorm:"column:user_answer_updated_at;autoUpdateTime"`
}

func (UserAnswerModel) TableName() string { return "user_answers" }

func (m *UserAnswerModel) BeforeCreate(_ *gorm.DB) error {
	if m.UserAnswerID == uuid.Nil {
		m.UserAnswerID = uuid.New()
	}
	return nil
}
