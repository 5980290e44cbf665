package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/quizzes/controller"
)

// QuizUserRoutes: learner-facing submission endpoints.
func QuizUserRoutes(r fiber.Router, db *gorm.DB) {
	legacyCtrl := controller.NewLegacyQuizController(db)
	submissionCtrl := controller.NewSubmissionController(db)

	r.Post("/sections/:sectionId/quiz/submit", legacyCtrl.Submit)
	r.Post("/quizzes/:quizId/submissions", submissionCtrl.Create)
}
