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
	progressModel "learnhub_backend/internals/features/courses/progress/model"
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
		&progressModel.ProgressModel{},
		&qmodel.QuizModel{},
		&qmodel.QuizQuestionModel{},
		&qmodel.QuizOptionModel{},
		&qmodel.QuizSubmissionModel{},
		&qmodel.UserAnswerModel{},
	))
	return db
}

type courseFixture struct {
	OwnerID uuid.UUID
	Path    contentModel.LearningPathModel
	Section contentModel.SectionModel
}

// seedCourse builds the minimal learning_path → level → chapter → section
// chain the ownership joins walk through.
func seedCourse(t *testing.T, db *gorm.DB, payload []byte) courseFixture {
	t.Helper()

	ownerID := uuid.New()
	path := contentModel.LearningPathModel{
		LearningPathOwnerUserID: ownerID,
		LearningPathTitle:       "Go from scratch",
		LearningPathPrice:       250000,
	}
	require.NoError(t, db.Create(&path).Error)

	level := contentModel.LevelModel{
		LevelLearningPathID: path.LearningPathID,
		LevelTitle:          "Basics",
		LevelPosition:       1,
	}
	require.NoError(t, db.Create(&level).Error)

	chapter := contentModel.ChapterModel{
		ChapterLevelID:  level.LevelID,
		ChapterTitle:    "Syntax",
		ChapterPosition: 1,
	}
	require.NoError(t, db.Create(&chapter).Error)

	section := contentModel.SectionModel{
		SectionChapterID:   chapter.ChapterID,
		SectionTitle:       "Variables",
		SectionPosition:    1,
		SectionQuizPayload: payload,
	}
	require.NoError(t, db.Create(&section).Error)

	return courseFixture{OwnerID: ownerID, Path: path, Section: section}
}

func seedQuizWithQuestions(t *testing.T, db *gorm.DB, sectionID uuid.UUID, points []float64) (qmodel.QuizModel, []qmodel.QuizQuestionModel) {
	t.Helper()

	quiz := qmodel.QuizModel{
		QuizSectionID: sectionID,
		QuizTitle:     "Checkpoint",
	}
	require.NoError(t, db.Create(&quiz).Error)

	questions := make([]qmodel.QuizQuestionModel, 0, len(points))
	for i, p := range points {
		q := qmodel.QuizQuestionModel{
			QuizQuestionQuizID:   quiz.QuizID,
			QuizQuestionText:     "question",
			QuizQuestionType:     qmodel.QuestionFillInTheBlank,
			QuizQuestionPoints:   p,
			QuizQuestionPosition: i + 1,
		}
		require.NoError(t, db.Create(&q).Error)
		questions = append(questions, q)
	}
	return quiz, questions
}

// requireFiberStatus asserts the service surfaced the given HTTP status.
func requireFiberStatus(t *testing.T, err error, status int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, status, fe.Code)
}
