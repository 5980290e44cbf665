package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	qmodel "learnhub_backend/internals/features/courses/quizzes/model"
)

type SubmissionService struct {
	DB *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{DB: db}
}

// Create stores a learner's one attempt at a relational quiz: the submission
// row plus the raw answers, all ungraded (score null). No partial saves —
// the attempt is atomic and final from the learner's side. One submission
// per (user, quiz); a second attempt is a conflict.
func (s *SubmissionService) Create(ctx context.Context, quizID, userID uuid.UUID, answers map[uuid.UUID]string) (*qmodel.QuizSubmissionModel, error) {
	var quiz qmodel.QuizModel
	if err := s.DB.WithContext(ctx).First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		log.Printf("[ERROR] load quiz: %v", err)
		return nil, err
	}

	var existing qmodel.QuizSubmissionModel
	err := s.DB.WithContext(ctx).
		First(&existing, "quiz_submission_quiz_id = ? AND quiz_submission_user_id = ?", quizID, userID).Error
	if err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Quiz already submitted")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] check existing submission: %v", err)
		return nil, err
	}

	var questions []qmodel.QuizQuestionModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_question_quiz_id = ?", quizID).
		Order("quiz_question_position asc").
		Find(&questions).Error; err != nil {
		log.Printf("[ERROR] load questions: %v", err)
		return nil, err
	}

	submission := qmodel.QuizSubmissionModel{
		QuizSubmissionQuizID: quizID,
		QuizSubmissionUserID: userID,
		QuizSubmissionStatus: qmodel.SubmissionSubmitted,
	}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}

		// Only answers for questions that actually belong to this quiz;
		// blank answers are simply not stored.
		for _, q := range questions {
			raw, ok := answers[q.QuizQuestionID]
			text := strings.TrimSpace(raw)
			if !ok || text == "" {
				continue
			}
			answer := qmodel.UserAnswerModel{
				UserAnswerSubmissionID: submission.QuizSubmissionID,
				UserAnswerQuestionID:   q.QuizQuestionID,
				UserAnswerText:         text,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		// two racing first attempts both pass the pre-check; the loser hits
		// the (user, quiz) unique index and gets the same conflict answer
		if isDuplicateKey(txErr) {
			return nil, fiber.NewError(fiber.StatusConflict, "Quiz already submitted")
		}
		log.Printf("[ERROR] create submission: %v", txErr)
		return nil, txErr
	}

	return &submission, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// ListForQuiz returns all submissions of a quiz for the managing instructor.
func (s *SubmissionService) ListForQuiz(ctx context.Context, quizID uuid.UUID) ([]qmodel.QuizSubmissionModel, error) {
	var submissions []qmodel.QuizSubmissionModel
	if err := s.DB.WithContext(ctx).
		Preload("QuizSubmissionAnswers").
		Where("quiz_submission_quiz_id = ?", quizID).
		Order("quiz_submission_created_at asc").
		Find(&submissions).Error; err != nil {
		log.Printf("[ERROR] list submissions: %v", err)
		return nil, err
	}
	return submissions, nil
}
