package service

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	qmodel "learnhub_backend/internals/features/courses/quizzes/model"
)

type GradingService struct {
	DB *gorm.DB
}

func NewGradingService(db *gorm.DB) *GradingService {
	return &GradingService{DB: db}
}

// GradeInput is one instructor-entered mark for a question.
type GradeInput struct {
	Score    interface{}
	Feedback *string
}

// Grade applies instructor marks to a submission and finalizes it.
//
// All per-answer writes and the aggregate recompute run in one transaction,
// so the recompute reads exactly what was written. Question ids with no
// stored answer are skipped (the learner left them blank). Final score is
// Σ(answer.score)/Σ(question.points)×100 over the quiz's current question
// set, 0 when the quiz has no points. Grading is one-shot: a graded
// submission cannot be graded again.
func (s *GradingService) Grade(ctx context.Context, submissionID, callerID uuid.UUID, callerRole string, grades map[uuid.UUID]GradeInput) (float64, error) {
	var submission qmodel.QuizSubmissionModel
	if err := s.DB.WithContext(ctx).
		First(&submission, "quiz_submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Submission not found")
		}
		log.Printf("[ERROR] load submission: %v", err)
		return 0, err
	}

	ownerID, err := LearningPathOwnerForQuiz(ctx, s.DB, submission.QuizSubmissionQuizID)
	if err != nil {
		if IsNotFound(err) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Submission not found")
		}
		log.Printf("[ERROR] resolve course owner: %v", err)
		return 0, err
	}
	if !CanManageCourse(callerRole, callerID, ownerID) {
		// merged with not-found for non-owners would leak less, but the
		// route group already guarantees an authenticated instructor/admin
		return 0, fiber.NewError(fiber.StatusForbidden, "You do not manage this course")
	}

	if submission.IsGraded() {
		return 0, fiber.NewError(fiber.StatusConflict, "Submission already graded")
	}

	var finalScore float64
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for questionID, grade := range grades {
			var answer qmodel.UserAnswerModel
			err := tx.First(&answer,
				"user_answer_submission_id = ? AND user_answer_question_id = ?",
				submissionID, questionID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // question left blank, nothing to grade
			}
			if err != nil {
				return err
			}

			var question qmodel.QuizQuestionModel
			if err := tx.First(&question, "quiz_question_id = ?", questionID).Error; err != nil {
				return err
			}

			// clamp to [0, points] so the aggregate stays inside [0, 100]
			score := coerceScore(grade.Score)
			if score < 0 {
				score = 0
			}
			if score > question.QuizQuestionPoints {
				score = question.QuizQuestionPoints
			}

			answer.UserAnswerScore = &score
			answer.UserAnswerFeedback = grade.Feedback
			answer.UserAnswerIsCorrect = score > 0
			if err := tx.Save(&answer).Error; err != nil {
				return err
			}
		}

		// Recompute from what this transaction just wrote.
		var totalPoints float64
		if err := tx.Model(&qmodel.QuizQuestionModel{}).
			Where("quiz_question_quiz_id = ?", submission.QuizSubmissionQuizID).
			Select("COALESCE(SUM(quiz_question_points), 0)").
			Scan(&totalPoints).Error; err != nil {
			return err
		}

		var earnedPoints float64
		if err := tx.Model(&qmodel.UserAnswerModel{}).
			Where("user_answer_submission_id = ?", submissionID).
			Select("COALESCE(SUM(user_answer_score), 0)").
			Scan(&earnedPoints).Error; err != nil {
			return err
		}

		if totalPoints > 0 {
			finalScore = earnedPoints / totalPoints * 100
		} else {
			finalScore = 0
		}

		submission.MarkGraded(finalScore)
		return tx.Save(&submission).Error
	})
	if txErr != nil {
		log.Printf("[ERROR] grade submission: %v", txErr)
		return 0, txErr
	}

	return finalScore, nil
}

// coerceScore accepts whatever the client sent for a score and falls back to
// 0 for anything that is not a usable number.
func coerceScore(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
