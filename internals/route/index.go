package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/constants"
	authmw "learnhub_backend/internals/middlewares/auth"

	progressRoute "learnhub_backend/internals/features/courses/progress/route"
	quizRoute "learnhub_backend/internals/features/courses/quizzes/route"
	mentorshipRoute "learnhub_backend/internals/features/mentorship/route"
	paymentRoute "learnhub_backend/internals/features/payment/route"
	userRoute "learnhub_backend/internals/features/users/route"
)

/* =========================================================
   ROUTE GROUPS
   /api     -> public (auth + payment gateway callback)
   /api/u   -> any authenticated user
   /api/t   -> instructor or admin only
   ========================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	public := app.Group("/api")
	userRoute.AuthRoutes(public, db)
	paymentRoute.PaymentWebhookRoutes(public, db)

	userGroup := app.Group("/api/u", authmw.AuthMiddleware())
	quizRoute.QuizUserRoutes(userGroup, db)
	progressRoute.ProgressUserRoutes(userGroup, db)
	mentorshipRoute.MentorshipUserRoutes(userGroup, db)

	teacherGroup := app.Group("/api/t",
		authmw.AuthMiddleware(),
		authmw.OnlyRoles("Instructor or admin role required",
			constants.RoleAdmin, constants.RoleInstructor),
	)
	quizRoute.QuizTeacherRoutes(teacherGroup, db)
	mentorshipRoute.MentorshipTeacherRoutes(teacherGroup, db)
}
