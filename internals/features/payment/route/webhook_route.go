package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/payment/controller"
)

// PaymentWebhookRoutes: the gateway callback, mounted without auth.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	webhookCtrl := controller.NewWebhookController(db)

	r.Post("/payments/notification", webhookCtrl.Notification)
}
