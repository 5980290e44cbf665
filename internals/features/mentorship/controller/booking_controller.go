package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/configs"
	"learnhub_backend/internals/features/mentorship/service"
	paymentService "learnhub_backend/internals/features/payment/service"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

// Flat mentorship price until slots carry their own.
const defaultSessionPrice = 150000

type BookingController struct {
	DB         *gorm.DB
	Bookings   *service.BookingService
	Reconciler *service.ReconcilerService
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		DB:         db,
		Bookings:   service.NewBookingService(db, defaultSessionPrice),
		Reconciler: service.NewReconcilerService(db, configs.BookingPendingTTL),
	}
}

// GET /api/u/mentors/:mentorId/slots
//
// Sweeps the mentor's expired holds first so the calendar never shows a slot
// as taken by a payment that already died.
func (ctrl *BookingController) ListMentorSlots(c *fiber.Ctx) error {
	mentorID, err := uuid.Parse(c.Params("mentorId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid mentor id")
	}

	if _, err := ctrl.Reconciler.SweepExpired(c.UserContext(), mentorID); err != nil {
		// stale rows are worse than a missed sweep, but a failed sweep
		// should not block reading the calendar
		log.Printf("[SWEEP] opportunistic sweep failed: %v", err)
	}

	slots, err := ctrl.Bookings.ListSlots(c.UserContext(), mentorID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Slots fetched", fiber.Map{
		"slots": slots,
	})
}

// POST /api/u/slots/:slotId/book
func (ctrl *BookingController) Book(c *fiber.Ctx) error {
	studentID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	slotID, err := uuid.Parse(c.Params("slotId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid slot id")
	}

	booking, purchase, err := ctrl.Bookings.Book(c.UserContext(), studentID, slotID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	response := fiber.Map{
		"booking_id": booking.BookingID,
		"status":     booking.BookingStatus,
		"order_id":   purchase.PurchaseOrderID,
		"amount":     purchase.PurchaseAmount,
	}

	if configs.MidtransServerKey != "" {
		name, _ := c.Locals("user_name").(string)
		token, redirectURL, err := paymentService.GenerateSnapToken(purchase, name, "")
		if err != nil {
			log.Printf("[ERROR] snap token: %v", err)
			return helper.Error(c, fiber.StatusBadGateway, "Payment gateway unavailable")
		}
		authority := token
		purchase.PurchaseAuthority = &authority
		if err := ctrl.DB.WithContext(c.UserContext()).Save(purchase).Error; err != nil {
			log.Printf("[ERROR] save authority: %v", err)
			return helper.FromFiberError(c, err)
		}
		response["snap_token"] = token
		response["redirect_url"] = redirectURL
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Slot reserved, awaiting payment", response)
}
