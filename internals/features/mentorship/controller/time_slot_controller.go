package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/configs"
	"learnhub_backend/internals/constants"
	"learnhub_backend/internals/features/mentorship/dto"
	"learnhub_backend/internals/features/mentorship/service"
	helper "learnhub_backend/internals/helpers"
)

type TimeSlotController struct {
	DB         *gorm.DB
	Bookings   *service.BookingService
	Reconciler *service.ReconcilerService
}

func NewTimeSlotController(db *gorm.DB) *TimeSlotController {
	return &TimeSlotController{
		DB:         db,
		Bookings:   service.NewBookingService(db, defaultSessionPrice),
		Reconciler: service.NewReconcilerService(db, configs.BookingPendingTTL),
	}
}

// POST /api/t/slots/bulk
func (ctrl *TimeSlotController) BulkCreate(c *fiber.Ctx) error {
	mentorID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.BulkCreateSlotsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	day, err := time.Parse("2006-01-02", req.Day)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid day")
	}

	slots, err := ctrl.Bookings.BulkCreateSlots(c.UserContext(), mentorID, day, req.StartHour, req.EndHour, req.Title, req.Color)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Slots created", fiber.Map{
		"slots": slots,
	})
}

// POST /api/t/mentors/:mentorId/sweep
//
// Instructors sweep their own calendar; admins can sweep anyone's.
func (ctrl *TimeSlotController) Sweep(c *fiber.Ctx) error {
	callerID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	mentorID, err := uuid.Parse(c.Params("mentorId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid mentor id")
	}

	if helper.GetUserRole(c) != constants.RoleAdmin && callerID != mentorID {
		return helper.Error(c, fiber.StatusForbidden, "You can only sweep your own calendar")
	}

	released, err := ctrl.Reconciler.SweepExpired(c.UserContext(), mentorID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Sweep finished", fiber.Map{
		"released_count": released,
	})
}
