package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	progressModel "learnhub_backend/internals/features/courses/progress/model"
)

const legacyPayload = `{
	"isQuiz": true,
	"questions": [
		{"id": "q1", "options": [{"id": "a", "text": "yes"}, {"id": "b", "text": "no"}], "correctOptionId": "a"},
		{"id": "q2", "options": [{"id": "a", "text": "1"}, {"id": "b", "text": "2"}], "correctOptionId": "b"},
		{"id": "q3", "options": [{"id": "a", "text": "x"}, {"id": "b", "text": "y"}], "correctOptionId": "a"},
		{"id": "q4", "options": [{"id": "a", "text": "p"}, {"id": "b", "text": "q"}], "correctOptionId": "b"}
	]
}`

func loadProgress(t *testing.T, db *gorm.DB, userID, sectionID uuid.UUID) progressModel.ProgressModel {
	t.Helper()
	var progress progressModel.ProgressModel
	require.NoError(t, db.
		First(&progress, "progress_user_id = ? AND progress_section_id = ?", userID, sectionID).Error)
	return progress
}

func TestLegacySubmitScoresAndCompletes(t *testing.T) {
	db := newTestDB(t)
	fx := seedCourse(t, db, []byte(legacyPayload))
	svc := NewLegacyQuizService(db)
	userID := uuid.New()

	score, err := svc.Submit(context.Background(), fx.Section.SectionID, userID, map[string]string{
		"q1": "a",
		"q2": "b",
		"q3": "b", // wrong
		"q4": "b",
	})
	require.NoError(t, err)
	assert.InDelta(t, 75.0, score, 1e-9)

	progress := loadProgress(t, db, userID, fx.Section.SectionID)
	assert.True(t, progress.ProgressIsCompleted)
	require.NotNil(t, progress.ProgressScore)
	assert.InDelta(t, 75.0, *progress.ProgressScore, 1e-9)
}

func TestLegacySubmitAllWrongAndAllRight(t *testing.T) {
	db := newTestDB(t)
	fx := seedCourse(t, db, []byte(legacyPayload))
	svc := NewLegacyQuizService(db)

	score, err := svc.Submit(context.Background(), fx.Section.SectionID, uuid.New(), map[string]string{})
	require.NoError(t, err)
	assert.Zero(t, score)

	score, err = svc.Submit(context.Background(), fx.Section.SectionID, uuid.New(), map[string]string{
		"q1": "a", "q2": "b", "q3": "a", "q4": "b",
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, score, 1e-9)
}

func TestLegacySubmitEmptyQuizScoresZeroButCompletes(t *testing.T) {
	db := newTestDB(t)
	fx := seedCourse(t, db, []byte(`{"isQuiz": true, "questions": []}`))
	svc := NewLegacyQuizService(db)
	userID := uuid.New()

	score, err := svc.Submit(context.Background(), fx.Section.SectionID, userID, nil)
	require.NoError(t, err)
	assert.Zero(t, score)

	progress := loadProgress(t, db, userID, fx.Section.SectionID)
	assert.True(t, progress.ProgressIsCompleted)
}

func TestLegacySubmitResubmitOverwritesScore(t *testing.T) {
	db := newTestDB(t)
	fx := seedCourse(t, db, []byte(legacyPayload))
	svc := NewLegacyQuizService(db)
	userID := uuid.New()

	_, err := svc.Submit(context.Background(), fx.Section.SectionID, userID, map[string]string{"q1": "a"})
	require.NoError(t, err)

	score, err := svc.Submit(context.Background(), fx.Section.SectionID, userID, map[string]string{
		"q1": "a", "q2": "b",
	})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, score, 1e-9)

	progress := loadProgress(t, db, userID, fx.Section.SectionID)
	require.NotNil(t, progress.ProgressScore)
	assert.InDelta(t, 50.0, *progress.ProgressScore, 1e-9)
}

func TestLegacySubmitRejectsNonQuizSection(t *testing.T) {
	db := newTestDB(t)
	svc := NewLegacyQuizService(db)

	t.Run("no payload", func(t *testing.T) {
		fx := seedCourse(t, db, nil)
		_, err := svc.Submit(context.Background(), fx.Section.SectionID, uuid.New(), nil)
		requireFiberStatus(t, err, fiber.StatusBadRequest)
	})

	t.Run("isQuiz false", func(t *testing.T) {
		fx := seedCourse(t, db, []byte(`{"isQuiz": false, "questions": []}`))
		_, err := svc.Submit(context.Background(), fx.Section.SectionID, uuid.New(), nil)
		requireFiberStatus(t, err, fiber.StatusBadRequest)
	})

	t.Run("malformed json", func(t *testing.T) {
		fx := seedCourse(t, db, []byte(`{"isQuiz": tru`))
		_, err := svc.Submit(context.Background(), fx.Section.SectionID, uuid.New(), nil)
		requireFiberStatus(t, err, fiber.StatusBadRequest)
	})
}

func TestLegacySubmitUnknownSection(t *testing.T) {
	db := newTestDB(t)
	svc := NewLegacyQuizService(db)

	_, err := svc.Submit(context.Background(), uuid.New(), uuid.New(), nil)
	requireFiberStatus(t, err, fiber.StatusNotFound)
}
