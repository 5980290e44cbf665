package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/quizzes/dto"
	"learnhub_backend/internals/features/courses/quizzes/service"
	helper "learnhub_backend/internals/helpers"
)

type SubmissionController struct {
	DB      *gorm.DB
	Service *service.SubmissionService
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{
		DB:      db,
		Service: service.NewSubmissionService(db),
	}
}

// POST /api/u/quizzes/:quizId/submissions
func (ctrl *SubmissionController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	submission, err := ctrl.Service.Create(c.UserContext(), quizID, userID, req.ParsedAnswers())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Submission received", fiber.Map{
		"submission_id": submission.QuizSubmissionID,
		"status":        submission.QuizSubmissionStatus,
	})
}
