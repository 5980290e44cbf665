package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/progress/service"
	helper "learnhub_backend/internals/helpers"
)

type StatsController struct {
	DB      *gorm.DB
	Service *service.StatsService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{
		DB:      db,
		Service: service.NewStatsService(db),
	}
}

// GET /api/u/learning-paths/:learningPathId/stats
func (ctrl *StatsController) CourseStats(c *fiber.Ctx) error {
	learningPathID, err := uuid.Parse(c.Params("learningPathId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid learning path id")
	}

	average, err := ctrl.Service.CourseAverage(c.UserContext(), learningPathID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Course stats fetched", fiber.Map{
		"average_score": average,
	})
}

// GET /api/u/me/stats
func (ctrl *StatsController) MyStats(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	average, err := ctrl.Service.StudentAverage(c.UserContext(), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Student stats fetched", fiber.Map{
		"average_score": average,
	})
}
