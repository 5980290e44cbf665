package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/payment/service"
	helper "learnhub_backend/internals/helpers"
)

type WebhookController struct {
	DB *gorm.DB
}

func NewWebhookController(db *gorm.DB) *WebhookController {
	return &WebhookController{DB: db}
}

// POST /api/payments/notification
func (ctrl *WebhookController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification body")
	}

	if err := service.HandlePaymentNotification(ctrl.DB, body); err != nil {
		log.Printf("[ERROR] payment notification: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Notification rejected")
	}

	return helper.Success(c, "Notification processed", nil)
}
