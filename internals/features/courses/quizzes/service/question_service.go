package service

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	qmodel "learnhub_backend/internals/features/courses/quizzes/model"
)

type QuestionService struct {
	DB *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{DB: db}
}

// CreateQuiz attaches a quiz to a section. A section carries at most one
// relational quiz; a second create is a conflict.
func (s *QuestionService) CreateQuiz(ctx context.Context, sectionID uuid.UUID, title string) (*qmodel.QuizModel, error) {
	var existing qmodel.QuizModel
	err := s.DB.WithContext(ctx).First(&existing, "quiz_section_id = ?", sectionID).Error
	if err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Section already has a quiz")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] check existing quiz: %v", err)
		return nil, err
	}

	quiz := qmodel.QuizModel{
		QuizSectionID: sectionID,
		QuizTitle:     title,
	}
	if err := s.DB.WithContext(ctx).Create(&quiz).Error; err != nil {
		log.Printf("[ERROR] create quiz: %v", err)
		return nil, err
	}
	return &quiz, nil
}

// CreateQuestion appends a question at position max+1 with its options.
func (s *QuestionService) CreateQuestion(ctx context.Context, question *qmodel.QuizQuestionModel, options []qmodel.QuizOptionModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPosition int
		if err := tx.Model(&qmodel.QuizQuestionModel{}).
			Where("quiz_question_quiz_id = ?", question.QuizQuestionQuizID).
			Select("COALESCE(MAX(quiz_question_position), 0)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}
		question.QuizQuestionPosition = maxPosition + 1

		if err := tx.Create(question).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].QuizOptionQuestionID = question.QuizQuestionID
			if err := tx.Create(&options[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateQuestion patches text/points/description and replaces the option set
// when one is supplied.
func (s *QuestionService) UpdateQuestion(ctx context.Context, questionID uuid.UUID, apply func(*qmodel.QuizQuestionModel), options []qmodel.QuizOptionModel) (*qmodel.QuizQuestionModel, error) {
	var question qmodel.QuizQuestionModel
	if err := s.DB.WithContext(ctx).First(&question, "quiz_question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return nil, err
	}

	apply(&question)

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&question).Error; err != nil {
			return err
		}
		if options != nil {
			if err := tx.Where("quiz_option_question_id = ?", questionID).
				Delete(&qmodel.QuizOptionModel{}).Error; err != nil {
				return err
			}
			for i := range options {
				options[i].QuizOptionQuestionID = questionID
				if err := tx.Create(&options[i]).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if txErr != nil {
		log.Printf("[ERROR] update question: %v", txErr)
		return nil, txErr
	}
	return &question, nil
}

// DeleteQuestion removes a question with its options and answers, then
// closes the position gap so insertion order stays contiguous.
func (s *QuestionService) DeleteQuestion(ctx context.Context, questionID uuid.UUID) error {
	var question qmodel.QuizQuestionModel
	if err := s.DB.WithContext(ctx).First(&question, "quiz_question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_option_question_id = ?", questionID).
			Delete(&qmodel.QuizOptionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_answer_question_id = ?", questionID).
			Delete(&qmodel.UserAnswerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&question).Error; err != nil {
			return err
		}
		return tx.Model(&qmodel.QuizQuestionModel{}).
			Where("quiz_question_quiz_id = ? AND quiz_question_position > ?",
				question.QuizQuestionQuizID, question.QuizQuestionPosition).
			UpdateColumn("quiz_question_position", gorm.Expr("quiz_question_position - 1")).Error
	})
}

// Reorder rewrites positions to match the given id order. Every question of
// the quiz must appear exactly once.
func (s *QuestionService) Reorder(ctx context.Context, quizID uuid.UUID, orderedIDs []uuid.UUID) error {
	var questions []qmodel.QuizQuestionModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_question_quiz_id = ?", quizID).
		Find(&questions).Error; err != nil {
		return err
	}

	if len(orderedIDs) != len(questions) {
		return fiber.NewError(fiber.StatusBadRequest, "Reorder must list every question exactly once")
	}
	known := make(map[uuid.UUID]bool, len(questions))
	for _, q := range questions {
		known[q.QuizQuestionID] = true
	}
	for _, id := range orderedIDs {
		if !known[id] {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown question id in reorder")
		}
		delete(known, id)
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// park positions out of the way first so the unique index never
		// trips mid-shuffle
		if err := tx.Model(&qmodel.QuizQuestionModel{}).
			Where("quiz_question_quiz_id = ?", quizID).
			UpdateColumn("quiz_question_position", gorm.Expr("quiz_question_position + ?", len(orderedIDs))).Error; err != nil {
			return err
		}
		for i, id := range orderedIDs {
			if err := tx.Model(&qmodel.QuizQuestionModel{}).
				Where("quiz_question_id = ?", id).
				UpdateColumn("quiz_question_position", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
