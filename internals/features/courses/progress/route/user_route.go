package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/progress/controller"
)

// ProgressUserRoutes: completion toggles, ratings and read-only stats.
func ProgressUserRoutes(r fiber.Router, db *gorm.DB) {
	progressCtrl := controller.NewProgressController(db)
	statsCtrl := controller.NewStatsController(db)

	r.Post("/sections/:sectionId/progress/toggle", progressCtrl.Toggle)
	r.Post("/sections/:sectionId/progress/rate", progressCtrl.Rate)
	r.Get("/learning-paths/:learningPathId/stats", statsCtrl.CourseStats)
	r.Get("/me/stats", statsCtrl.MyStats)
}
