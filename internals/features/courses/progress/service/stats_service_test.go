package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/progress/model"
	qmodel "learnhub_backend/internals/features/courses/quizzes/model"
)

func seedGradedSubmission(t *testing.T, db *gorm.DB, sectionID, userID uuid.UUID, score float64) {
	t.Helper()

	var quiz qmodel.QuizModel
	err := db.First(&quiz, "quiz_section_id = ?", sectionID).Error
	if err != nil {
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		quiz = qmodel.QuizModel{QuizSectionID: sectionID, QuizTitle: "Checkpoint"}
		require.NoError(t, db.Create(&quiz).Error)
	}

	submission := qmodel.QuizSubmissionModel{
		QuizSubmissionQuizID: quiz.QuizID,
		QuizSubmissionUserID: userID,
		QuizSubmissionStatus: qmodel.SubmissionGraded,
		QuizSubmissionScore:  &score,
	}
	require.NoError(t, db.Create(&submission).Error)
}

func seedLegacyScore(t *testing.T, db *gorm.DB, sectionID, userID uuid.UUID, score float64) {
	t.Helper()
	progress := model.ProgressModel{
		ProgressUserID:      userID,
		ProgressSectionID:   sectionID,
		ProgressIsCompleted: true,
		ProgressScore:       &score,
	}
	require.NoError(t, db.Create(&progress).Error)
}

func TestCourseAverageBlendsGradedAndLegacy(t *testing.T) {
	db := newTestDB(t)
	pathID, section := seedSection(t, db)
	svc := NewStatsService(db)

	seedGradedSubmission(t, db, section.SectionID, uuid.New(), 80)
	seedGradedSubmission(t, db, section.SectionID, uuid.New(), 60)
	seedLegacyScore(t, db, section.SectionID, uuid.New(), 100)

	avg, err := svc.CourseAverage(context.Background(), pathID)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, avg, 1e-9)
}

func TestCourseAverageIgnoresOtherCourses(t *testing.T) {
	db := newTestDB(t)
	pathID, section := seedSection(t, db)
	otherPathID, otherSection := seedSection(t, db)
	svc := NewStatsService(db)

	seedGradedSubmission(t, db, section.SectionID, uuid.New(), 90)
	seedGradedSubmission(t, db, otherSection.SectionID, uuid.New(), 10)

	avg, err := svc.CourseAverage(context.Background(), pathID)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, avg, 1e-9)

	avg, err = svc.CourseAverage(context.Background(), otherPathID)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, avg, 1e-9)
}

func TestCourseAverageEmptyCourseIsZero(t *testing.T) {
	db := newTestDB(t)
	pathID, section := seedSection(t, db)
	svc := NewStatsService(db)

	// an ungraded submission must not count
	quiz := qmodel.QuizModel{QuizSectionID: section.SectionID, QuizTitle: "Checkpoint"}
	require.NoError(t, db.Create(&quiz).Error)
	require.NoError(t, db.Create(&qmodel.QuizSubmissionModel{
		QuizSubmissionQuizID: quiz.QuizID,
		QuizSubmissionUserID: uuid.New(),
		QuizSubmissionStatus: qmodel.SubmissionSubmitted,
	}).Error)

	avg, err := svc.CourseAverage(context.Background(), pathID)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestStudentAverageAcrossCourses(t *testing.T) {
	db := newTestDB(t)
	_, section := seedSection(t, db)
	_, otherSection := seedSection(t, db)
	svc := NewStatsService(db)
	userID := uuid.New()

	seedGradedSubmission(t, db, section.SectionID, userID, 70)
	seedLegacyScore(t, db, otherSection.SectionID, userID, 90)
	// someone else's work stays out of the blend
	seedGradedSubmission(t, db, section.SectionID, uuid.New(), 5)

	avg, err := svc.StudentAverage(context.Background(), userID)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, avg, 1e-9)
}

func TestStudentAverageNoWorkIsZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	avg, err := svc.StudentAverage(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, avg)
}
