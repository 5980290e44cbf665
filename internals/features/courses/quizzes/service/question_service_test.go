package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	qmodel "learnhub_backend/internals/features/courses/quizzes/model"
)

func positionsByID(t *testing.T, db *gorm.DB, quizID uuid.UUID) map[uuid.UUID]int {
	t.Helper()
	var questions []qmodel.QuizQuestionModel
	require.NoError(t, db.Where("quiz_question_quiz_id = ?", quizID).Find(&questions).Error)
	out := make(map[uuid.UUID]int, len(questions))
	for _, q := range questions {
		out[q.QuizQuestionID] = q.QuizQuestionPosition
	}
	return out
}

func TestCreateQuizOnePerSection(t *testing.T) {
	db := newTestDB(t)
	fx := seedCourse(t, db, nil)
	svc := NewQuestionService(db)

	quiz, err := svc.CreateQuiz(context.Background(), fx.Section.SectionID, "Checkpoint")
	require.NoError(t, err)
	assert.Equal(t, "Checkpoint", quiz.QuizTitle)

	_, err = svc.CreateQuiz(context.Background(), fx.Section.SectionID, "Second")
	requireFiberStatus(t, err, fiber.StatusConflict)
}

func TestCreateQuestionAppendsAtEnd(t *testing.T) {
	db := newTestDB(t)
	fx := seedCourse(t, db, nil)
	quiz, _ := seedQuizWithQuestions(t, db, fx.Section.SectionID, []float64{1, 1})
	svc := NewQuestionService(db)

	question := qmodel.QuizQuestionModel{
		QuizQuestionQuizID: quiz.QuizID,
		QuizQuestionText:   "Pick one",
		QuizQuestionType:   qmodel.QuestionSingleChoice,
		QuizQuestionPoints: 2,
	}
	options := []qmodel.QuizOptionModel{
		{QuizOptionText: "yes", QuizOptionIsCorrect: true},
		{QuizOptionText: "no"},
	}
	require.NoError(t, svc.CreateQuestion(context.Background(), &question, options))
	assert.Equal(t, 3, question.QuizQuestionPosition)

	var stored []qmodel.QuizOptionModel
	require.NoError(t, db.Where("quiz_option_question_id = ?", question.QuizQuestionID).Find(&stored).Error)
	assert.Len(t, stored, 2)
}

func TestUpdateQuestionReplacesOptions(t *testing.T) {
	db := newTestDB(t)
	fx := seedCourse(t, db, nil)
	quiz, _ := seedQuizWithQuestions(t, db, fx.Section.SectionID, nil)
	svc := NewQuestionService(db)

	question := qmodel.QuizQuestionModel{
		QuizQuestionQuizID: quiz.QuizID,
		QuizQuestionText:   "original",
		QuizQuestionType:   qmodel.QuestionSingleChoice,
		QuizQuestionPoints: 1,
	}
	require.NoError(t, svc.CreateQuestion(context.Background(), &question, []qmodel.QuizOptionModel{
		{QuizOptionText: "old a"}, {QuizOptionText: "old b"},
	}))

	updated, err := svc.UpdateQuestion(context.Background(), question.QuizQuestionID,
		func(q *qmodel.QuizQuestionModel) {
			q.QuizQuestionText = "rewritten"
			q.QuizQuestionPoints = 4
		},
		[]qmodel.QuizOptionModel{{QuizOptionText: "new only", QuizOptionIsCorrect: true}})
	require.NoError(t, err)
	assert.Equal(t, "rewritten", updated.QuizQuestionText)

	var stored []qmodel.QuizOptionModel
	require.NoError(t, db.Where("quiz_option_question_id = ?", question.QuizQuestionID).Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "new only", stored[0].QuizOptionText)
}

func TestDeleteQuestionClosesPositionGap(t *testing.T) {
	db := newTestDB(t)
	fx := seedCourse(t, db, nil)
	quiz, questions := seedQuizWithQuestions(t, db, fx.Section.SectionID, []float64{1, 1, 1})
	svc := NewQuestionService(db)

	require.NoError(t, svc.DeleteQuestion(context.Background(), questions[1].QuizQuestionID))

	positions := positionsByID(t, db, quiz.QuizID)
	assert.Equal(t, 1, positions[questions[0].QuizQuestionID])
	assert.Equal(t, 2, positions[questions[2].QuizQuestionID])
	assert.NotContains(t, positions, questions[1].QuizQuestionID)
}

func TestReorderRewritesPositions(t *testing.T) {
	db := newTestDB(t)
	fx := seedCourse(t, db, nil)
	quiz, questions := seedQuizWithQuestions(t, db, fx.Section.SectionID, []float64{1, 1, 1})
	svc := NewQuestionService(db)

	require.NoError(t, svc.Reorder(context.Background(), quiz.QuizID, []uuid.UUID{
		questions[2].QuizQuestionID,
		questions[0].QuizQuestionID,
		questions[1].QuizQuestionID,
	}))

	positions := positionsByID(t, db, quiz.QuizID)
	assert.Equal(t, 1, positions[questions[2].QuizQuestionID])
	assert.Equal(t, 2, positions[questions[0].QuizQuestionID])
	assert.Equal(t, 3, positions[questions[1].QuizQuestionID])
}

func TestReorderValidatesPermutation(t *testing.T) {
	db := newTestDB(t)
	fx := seedCourse(t, db, nil)
	quiz, questions := seedQuizWithQuestions(t, db, fx.Section.SectionID, []float64{1, 1})
	svc := NewQuestionService(db)

	t.Run("missing question", func(t *testing.T) {
		err := svc.Reorder(context.Background(), quiz.QuizID,
			[]uuid.UUID{questions[0].QuizQuestionID})
		requireFiberStatus(t, err, fiber.StatusBadRequest)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.Reorder(context.Background(), quiz.QuizID,
			[]uuid.UUID{questions[0].QuizQuestionID, uuid.New()})
		requireFiberStatus(t, err, fiber.StatusBadRequest)
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := svc.Reorder(context.Background(), quiz.QuizID,
			[]uuid.UUID{questions[0].QuizQuestionID, questions[0].QuizQuestionID})
		requireFiberStatus(t, err, fiber.StatusBadRequest)
	})
}
