package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/constants"
)

// CanManageCourse is the single capability check applied to grading, question
// CRUD and reordering: admins manage everything, instructors only the
// learning paths they own.
func CanManageCourse(role string, callerID, ownerUserID uuid.UUID) bool {
	switch role {
	case constants.RoleAdmin:
		return true
	case constants.RoleInstructor:
		return callerID == ownerUserID
	default:
		return false
	}
}

// LearningPathOwnerForSection walks section → chapter → level → learning path
// and returns the owning instructor's user id.
// Scans into a string first: gorm cannot Scan a bare query result into a
// uuid.UUID (it reflects over the [16]byte array).
func LearningPathOwnerForSection(ctx context.Context, db *gorm.DB, sectionID uuid.UUID) (uuid.UUID, error) {
	var raw string
	err := db.WithContext(ctx).
		Table("sections").
		Select("learning_paths.learning_path_owner_user_id").
		Joins("JOIN chapters ON chapters.chapter_id = sections.section_chapter_id").
		Joins("JOIN levels ON levels.level_id = chapters.chapter_level_id").
		Joins("JOIN learning_paths ON learning_paths.learning_path_id = levels.level_learning_path_id").
		Where("sections.section_id = ?", sectionID).
		Scan(&raw).Error
	if err != nil {
		return uuid.Nil, err
	}
	if raw == "" {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	ownerID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, err
	}
	return ownerID, nil
}

// LearningPathOwnerForQuiz resolves the owner through the quiz's section.
func LearningPathOwnerForQuiz(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (uuid.UUID, error) {
	var raw string
	err := db.WithContext(ctx).
		Table("quizzes").
		Select("quizzes.quiz_section_id").
		Where("quizzes.quiz_id = ?", quizID).
		Scan(&raw).Error
	if err != nil {
		return uuid.Nil, err
	}
	if raw == "" {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	sectionID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, err
	}
	return LearningPathOwnerForSection(ctx, db, sectionID)
}

// IsNotFound lets callers merge "absent" and "outside visible scope".
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
