package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/progress/dto"
	"learnhub_backend/internals/features/courses/progress/service"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type ProgressController struct {
	DB      *gorm.DB
	Service *service.ProgressService
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{
		DB:      db,
		Service: service.NewProgressService(db),
	}
}

// POST /api/u/sections/:sectionId/progress/toggle
func (ctrl *ProgressController) Toggle(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sectionID, err := uuid.Parse(c.Params("sectionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid section id")
	}

	isCompleted, err := ctrl.Service.ToggleCompletion(c.UserContext(), userID, sectionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Progress updated", fiber.Map{
		"is_completed": isCompleted,
	})
}

// POST /api/u/sections/:sectionId/progress/rate
func (ctrl *ProgressController) Rate(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sectionID, err := uuid.Parse(c.Params("sectionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid section id")
	}

	var req dto.RateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Service.Rate(c.UserContext(), userID, sectionID, req.Rating); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Rating saved", fiber.Map{
		"rating": req.Rating,
	})
}
