package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/mentorship/model"
	paymentModel "learnhub_backend/internals/features/payment/model"
)

type BookingService struct {
	DB *gorm.DB
	// SessionPrice is the flat mentorship price charged per slot.
	SessionPrice int64
}

func NewBookingService(db *gorm.DB, sessionPrice int64) *BookingService {
	return &BookingService{DB: db, SessionPrice: sessionPrice}
}

// Book claims a slot for the student: slot → booked, a pending purchase, and
// a pending_payment booking, all in one transaction. The claim itself is the
// conditional update on the slot's status, so two students racing on one
// slot cannot both win.
func (s *BookingService) Book(ctx context.Context, studentID, slotID uuid.UUID) (*model.BookingModel, *paymentModel.PurchaseModel, error) {
	var slot model.TimeSlotModel
	if err := s.DB.WithContext(ctx).First(&slot, "time_slot_id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Time slot not found")
		}
		log.Printf("[ERROR] load slot: %v", err)
		return nil, nil, err
	}

	var booking model.BookingModel
	var purchase paymentModel.PurchaseModel

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.TimeSlotModel{}).
			Where("time_slot_id = ? AND time_slot_status = ?", slotID, model.SlotAvailable).
			Update("time_slot_status", model.SlotBooked)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Time slot is no longer available")
		}

		purchase = paymentModel.PurchaseModel{
			PurchaseUserID:  studentID,
			PurchaseOrderID: newOrderID("mentorship"),
			PurchaseAmount:  s.SessionPrice,
			PurchaseStatus:  paymentModel.PurchasePending,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		booking = model.BookingModel{
			BookingStudentID:  studentID,
			BookingMentorID:   slot.TimeSlotMentorID,
			BookingTimeSlotID: slotID,
			BookingPurchaseID: &purchase.PurchaseID,
			BookingStatus:     model.BookingPendingPayment,
		}
		return tx.Create(&booking).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return nil, nil, fe
		}
		log.Printf("[ERROR] book slot: %v", txErr)
		return nil, nil, txErr
	}

	return &booking, &purchase, nil
}

// BulkCreateSlots creates one slot per hour boundary in [startHour, endHour)
// on the given day. Hours already carrying a slot for this mentor are
// skipped rather than duplicated.
func (s *BookingService) BulkCreateSlots(ctx context.Context, mentorID uuid.UUID, day time.Time, startHour, endHour int, title, color *string) ([]model.TimeSlotModel, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid hour range")
	}

	base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	created := make([]model.TimeSlotModel, 0, endHour-startHour)

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for hour := startHour; hour < endHour; hour++ {
			start := base.Add(time.Duration(hour) * time.Hour)
			end := start.Add(time.Hour)

			var count int64
			if err := tx.Model(&model.TimeSlotModel{}).
				Where("time_slot_mentor_id = ? AND time_slot_start_time = ?", mentorID, start).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			slot := model.TimeSlotModel{
				TimeSlotMentorID:  mentorID,
				TimeSlotStartTime: start,
				TimeSlotEndTime:   end,
				TimeSlotStatus:    model.SlotAvailable,
				TimeSlotTitle:     title,
				TimeSlotColor:     color,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
			created = append(created, slot)
		}
		return nil
	})
	if txErr != nil {
		log.Printf("[ERROR] bulk create slots: %v", txErr)
		return nil, txErr
	}

	return created, nil
}

// ListSlots returns the mentor's calendar ordered by start time.
func (s *BookingService) ListSlots(ctx context.Context, mentorID uuid.UUID) ([]model.TimeSlotModel, error) {
	var slots []model.TimeSlotModel
	if err := s.DB.WithContext(ctx).
		Where("time_slot_mentor_id = ?", mentorID).
		Order("time_slot_start_time asc").
		Find(&slots).Error; err != nil {
		log.Printf("[ERROR] list slots: %v", err)
		return nil, err
	}
	return slots, nil
}

func newOrderID(kind string) string {
	return fmt.Sprintf("%s-%s", kind, uuid.NewString())
}
