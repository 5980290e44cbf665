package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/mentorship/controller"
)

// MentorshipTeacherRoutes: slot authoring and manual sweeps.
func MentorshipTeacherRoutes(r fiber.Router, db *gorm.DB) {
	slotCtrl := controller.NewTimeSlotController(db)

	r.Post("/slots/bulk", slotCtrl.BulkCreate)
	r.Post("/mentors/:mentorId/sweep", slotCtrl.Sweep)
}
