package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/quizzes/dto"
	"learnhub_backend/internals/features/courses/quizzes/service"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type LegacyQuizController struct {
	DB      *gorm.DB
	Service *service.LegacyQuizService
}

func NewLegacyQuizController(db *gorm.DB) *LegacyQuizController {
	return &LegacyQuizController{
		DB:      db,
		Service: service.NewLegacyQuizService(db),
	}
}

// POST /api/u/sections/:sectionId/quiz/submit
func (ctrl *LegacyQuizController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	sectionID, err := uuid.Parse(c.Params("sectionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid section id")
	}

	var req dto.SubmitLegacyQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	score, err := ctrl.Service.Submit(c.UserContext(), sectionID, userID, req.Answers)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Quiz submitted", fiber.Map{
		"score": score,
	})
}
