package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	contentModel "learnhub_backend/internals/features/courses/content/model"
	"learnhub_backend/internals/features/courses/progress/model"
	qmodel "learnhub_backend/internals/features/courses/quizzes/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&contentModel.LearningPathModel{},
		&contentModel.LevelModel{},
		&contentModel.ChapterModel{},
		&contentModel.SectionModel{},
		&model.ProgressModel{},
		&qmodel.QuizModel{},
		&qmodel.QuizQuestionModel{},
		&qmodel.QuizSubmissionModel{},
		&qmodel.UserAnswerModel{},
	))
	return db
}

// seedSection builds the full content chain and returns the learning path id
// with one of its sections.
func seedSection(t *testing.T, db *gorm.DB) (uuid.UUID, contentModel.SectionModel) {
	t.Helper()

	path := contentModel.LearningPathModel{
		LearningPathOwnerUserID: uuid.New(),
		LearningPathTitle:       "Backend track",
	}
	require.NoError(t, db.Create(&path).Error)

	level := contentModel.LevelModel{
		LevelLearningPathID: path.LearningPathID,
		LevelTitle:          "Intro",
		LevelPosition:       1,
	}
	require.NoError(t, db.Create(&level).Error)

	chapter := contentModel.ChapterModel{
		ChapterLevelID:  level.LevelID,
		ChapterTitle:    "HTTP",
		ChapterPosition: 1,
	}
	require.NoError(t, db.Create(&chapter).Error)

	section := contentModel.SectionModel{
		SectionChapterID: chapter.ChapterID,
		SectionTitle:     "Handlers",
		SectionPosition:  1,
	}
	require.NoError(t, db.Create(&section).Error)

	return path.LearningPathID, section
}

func requireFiberStatus(t *testing.T, err error, status int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, status, fe.Code)
}
