package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/quizzes/controller"
)

// QuizTeacherRoutes: authoring and grading, mounted behind the
// instructor/admin role gate.
func QuizTeacherRoutes(r fiber.Router, db *gorm.DB) {
	gradingCtrl := controller.NewGradingController(db)
	questionCtrl := controller.NewQuestionController(db)

	r.Put("/submissions/:submissionId/grade", gradingCtrl.Grade)
	r.Get("/quizzes/:quizId/submissions", gradingCtrl.ListForQuiz)

	r.Post("/sections/:sectionId/quiz", questionCtrl.CreateQuiz)
	r.Post("/quizzes/:quizId/questions", questionCtrl.CreateQuestion)
	r.Put("/quizzes/:quizId/questions/reorder", questionCtrl.Reorder)
	r.Patch("/quizzes/:quizId/questions/:questionId", questionCtrl.PatchQuestion)
	r.Delete("/quizzes/:quizId/questions/:questionId", questionCtrl.DeleteQuestion)
}
