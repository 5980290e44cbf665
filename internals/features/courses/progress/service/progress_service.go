package service

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/progress/model"
)

type ProgressService struct {
	DB *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{DB: db}
}

// ToggleCompletion flips the completion flag for (user, section). Absence
// counts as not-completed, so the first toggle creates a completed row.
func (s *ProgressService) ToggleCompletion(ctx context.Context, userID, sectionID uuid.UUID) (bool, error) {
	var progress model.ProgressModel
	err := s.DB.WithContext(ctx).
		First(&progress, "progress_user_id = ? AND progress_section_id = ?", userID, sectionID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = model.ProgressModel{
			ProgressUserID:      userID,
			ProgressSectionID:   sectionID,
			ProgressIsCompleted: true,
		}
		if err := s.DB.WithContext(ctx).Create(&progress).Error; err != nil {
			log.Printf("[ERROR] create progress: %v", err)
			return false, err
		}
		return true, nil
	}
	if err != nil {
		log.Printf("[ERROR] load progress: %v", err)
		return false, err
	}

	progress.ProgressIsCompleted = !progress.ProgressIsCompleted
	if err := s.DB.WithContext(ctx).Save(&progress).Error; err != nil {
		log.Printf("[ERROR] save progress: %v", err)
		return false, err
	}
	return progress.ProgressIsCompleted, nil
}

// Rate records the 1–5 rating for a completed section, exactly once.
// Completion is the prerequisite and the first write wins for good.
func (s *ProgressService) Rate(ctx context.Context, userID, sectionID uuid.UUID, rating int) error {
	if userID == uuid.Nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Sign in to rate")
	}
	if rating < 1 || rating > 5 {
		return fiber.NewError(fiber.StatusBadRequest, "Rating must be between 1 and 5")
	}

	var progress model.ProgressModel
	err := s.DB.WithContext(ctx).
		First(&progress, "progress_user_id = ? AND progress_section_id = ?", userID, sectionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Complete the section before rating it")
	}
	if err != nil {
		log.Printf("[ERROR] load progress: %v", err)
		return err
	}

	if !progress.ProgressIsCompleted {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Complete the section before rating it")
	}
	if progress.ProgressRating != nil {
		return fiber.NewError(fiber.StatusConflict, "Section already rated")
	}

	progress.ProgressRating = &rating
	if err := s.DB.WithContext(ctx).Save(&progress).Error; err != nil {
		log.Printf("[ERROR] save rating: %v", err)
		return err
	}
	return nil
}
