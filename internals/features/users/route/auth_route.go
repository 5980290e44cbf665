package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/users/controller"
)

// AuthRoutes: public register/login.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	r.Post("/auth/register", authCtrl.Register)
	r.Post("/auth/login", authCtrl.Login)
}
