package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	qmodel "learnhub_backend/internals/features/courses/quizzes/model"
)

/* =========================================================
   LEARNER-FACING
========================================================= */

// SubmitLegacyQuizRequest: answers keyed by the legacy payload's question id.
type SubmitLegacyQuizRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

// CreateSubmissionRequest: answers keyed by question uuid (as string).
type CreateSubmissionRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

// ParsedAnswers drops keys that are not valid question uuids.
func (r *CreateSubmissionRequest) ParsedAnswers() map[uuid.UUID]string {
	out := make(map[uuid.UUID]string, len(r.Answers))
	for key, value := range r.Answers {
		id, err := uuid.Parse(key)
		if err != nil {
			continue
		}
		out[id] = value
	}
	return out
}

/* =========================================================
   GRADING
========================================================= */

type GradeEntry struct {
	// Score arrives untyped; non-numeric input is coerced to 0 downstream.
	Score    interface{} `json:"score"`
	Feedback *string     `json:"feedback"`
}

type GradeSubmissionRequest struct {
	Grades map[string]GradeEntry `json:"grades" validate:"required,min=1"`
}

func (r *GradeSubmissionRequest) ParsedGrades() map[uuid.UUID]GradeEntry {
	out := make(map[uuid.UUID]GradeEntry, len(r.Grades))
	for key, entry := range r.Grades {
		id, err := uuid.Parse(key)
		if err != nil {
			continue
		}
		out[id] = entry
	}
	return out
}

/* =========================================================
   AUTHORING
========================================================= */

type CreateQuizRequest struct {
	QuizTitle string `json:"quiz_title" validate:"required,max=255"`
}

type QuizOptionRequest struct {
	QuizOptionText      string `json:"quiz_option_text" validate:"required"`
	QuizOptionIsCorrect bool   `json:"quiz_option_is_correct"`
}

type CreateQuestionRequest struct {
	QuizQuestionText        string              `json:"quiz_question_text" validate:"required"`
	QuizQuestionType        string              `json:"quiz_question_type" validate:"required,oneof=single_choice multiple_choice fill_in_the_blank drag_into_text"`
	QuizQuestionPoints      *float64            `json:"quiz_question_points" validate:"omitempty,gt=0"`
	QuizQuestionDescription *json.RawMessage    `json:"quiz_question_description"`
	QuizQuestionOptions     []QuizOptionRequest `json:"quiz_question_options" validate:"omitempty,dive"`
}

func (r *CreateQuestionRequest) ToModel(quizID uuid.UUID) (*qmodel.QuizQuestionModel, []qmodel.QuizOptionModel) {
	points := 1.0
	if r.QuizQuestionPoints != nil {
		points = *r.QuizQuestionPoints
	}

	var description datatypes.JSON
	if r.QuizQuestionDescription != nil && len(*r.QuizQuestionDescription) > 0 {
		description = datatypes.JSON(*r.QuizQuestionDescription)
	}

	question := &qmodel.QuizQuestionModel{
		QuizQuestionQuizID:      quizID,
		QuizQuestionText:        strings.TrimSpace(r.QuizQuestionText),
		QuizQuestionType:        qmodel.QuizQuestionType(r.QuizQuestionType),
		QuizQuestionPoints:      points,
		QuizQuestionDescription: description,
	}

	options := make([]qmodel.QuizOptionModel, 0, len(r.QuizQuestionOptions))
	for _, o := range r.QuizQuestionOptions {
		options = append(options, qmodel.QuizOptionModel{
			QuizOptionText:      strings.TrimSpace(o.QuizOptionText),
			QuizOptionIsCorrect: o.QuizOptionIsCorrect,
		})
	}
	return question, options
}

type PatchQuestionRequest struct {
	QuizQuestionText        *string              `json:"quiz_question_text" validate:"omitempty,min=1"`
	QuizQuestionPoints      *float64             `json:"quiz_question_points" validate:"omitempty,gt=0"`
	QuizQuestionDescription *json.RawMessage     `json:"quiz_question_description"`
	QuizQuestionOptions     *[]QuizOptionRequest `json:"quiz_question_options" validate:"omitempty,dive"`
}

type ReorderQuestionsRequest struct {
	QuestionIDs []uuid.UUID `json:"question_ids" validate:"required,min=1"`
}
