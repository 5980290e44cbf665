package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/mentorship/controller"
)

// MentorshipUserRoutes: calendar browsing and slot booking.
func MentorshipUserRoutes(r fiber.Router, db *gorm.DB) {
	bookingCtrl := controller.NewBookingController(db)

	r.Get("/mentors/:mentorId/slots", bookingCtrl.ListMentorSlots)
	r.Post("/slots/:slotId/book", bookingCtrl.Book)
}
