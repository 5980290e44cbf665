package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/quizzes/dto"
	qmodel "learnhub_backend/internals/features/courses/quizzes/model"
	"learnhub_backend/internals/features/courses/quizzes/service"
	helper "learnhub_backend/internals/helpers"
)

type QuestionController struct {
	DB      *gorm.DB
	Service *service.QuestionService
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{
		DB:      db,
		Service: service.NewQuestionService(db),
	}
}

// requireCourseOwnership resolves the section's learning-path owner and
// applies the shared capability check.
func (ctrl *QuestionController) requireSectionOwnership(c *fiber.Ctx, sectionID uuid.UUID) error {
	callerID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	ownerID, err := service.LearningPathOwnerForSection(c.UserContext(), ctrl.DB, sectionID)
	if err != nil {
		if service.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "Section not found")
		}
		return err
	}
	if !service.CanManageCourse(helper.GetUserRole(c), callerID, ownerID) {
		return fiber.NewError(fiber.StatusForbidden, "You do not manage this course")
	}
	return nil
}

func (ctrl *QuestionController) requireQuizOwnership(c *fiber.Ctx, quizID uuid.UUID) error {
	callerID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	ownerID, err := service.LearningPathOwnerForQuiz(c.UserContext(), ctrl.DB, quizID)
	if err != nil {
		if service.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		return err
	}
	if !service.CanManageCourse(helper.GetUserRole(c), callerID, ownerID) {
		return fiber.NewError(fiber.StatusForbidden, "You do not manage this course")
	}
	return nil
}

// POST /api/t/sections/:sectionId/quiz
func (ctrl *QuestionController) CreateQuiz(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("sectionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid section id")
	}
	if err := ctrl.requireSectionOwnership(c, sectionID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	quiz, err := ctrl.Service.CreateQuiz(c.UserContext(), sectionID, strings.TrimSpace(req.QuizTitle))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Quiz created", quiz)
}

// POST /api/t/quizzes/:quizId/questions
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid quiz id")
	}
	if err := ctrl.requireQuizOwnership(c, quizID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	question, options := req.ToModel(quizID)
	if err := ctrl.Service.CreateQuestion(c.UserContext(), question, options); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question created", question)
}

// PATCH /api/t/quizzes/:quizId/questions/:questionId
func (ctrl *QuestionController) PatchQuestion(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid quiz id")
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question id")
	}
	if err := ctrl.requireQuizOwnership(c, quizID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.PatchQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var options []qmodel.QuizOptionModel
	if req.QuizQuestionOptions != nil {
		options = make([]qmodel.QuizOptionModel, 0, len(*req.QuizQuestionOptions))
		for _, o := range *req.QuizQuestionOptions {
			options = append(options, qmodel.QuizOptionModel{
				QuizOptionText:      strings.TrimSpace(o.QuizOptionText),
				QuizOptionIsCorrect: o.QuizOptionIsCorrect,
			})
		}
	}

	question, err := ctrl.Service.UpdateQuestion(c.UserContext(), questionID, func(q *qmodel.QuizQuestionModel) {
		if req.QuizQuestionText != nil {
			q.QuizQuestionText = strings.TrimSpace(*req.QuizQuestionText)
		}
		if req.QuizQuestionPoints != nil {
			q.QuizQuestionPoints = *req.QuizQuestionPoints
		}
		if req.QuizQuestionDescription != nil {
			q.QuizQuestionDescription = datatypes.JSON(*req.QuizQuestionDescription)
		}
	}, options)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Question updated", question)
}

// DELETE /api/t/quizzes/:quizId/questions/:questionId
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid quiz id")
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question id")
	}
	if err := ctrl.requireQuizOwnership(c, quizID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.Service.DeleteQuestion(c.UserContext(), questionID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Question deleted", nil)
}

// PUT /api/t/quizzes/:quizId/questions/reorder
func (ctrl *QuestionController) Reorder(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid quiz id")
	}
	if err := ctrl.requireQuizOwnership(c, quizID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ReorderQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Service.Reorder(c.UserContext(), quizID, req.QuestionIDs); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Questions reordered", nil)
}
