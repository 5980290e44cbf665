package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/mentorship/model"
	paymentModel "learnhub_backend/internals/features/payment/model"
)

// ReconcilerService reclaims time slots held by bookings whose payment never
// arrived. It runs on demand (before serving a mentor's calendar) and from
// the background sweeper, so it has to tolerate arbitrary concurrent
// invocation: every bulk update re-checks the row's status in its predicate,
// which makes a racing sweep a per-row no-op instead of a double release.
type ReconcilerService struct {
	DB  *gorm.DB
	TTL time.Duration
}

func NewReconcilerService(db *gorm.DB, ttl time.Duration) *ReconcilerService {
	return &ReconcilerService{DB: db, TTL: ttl}
}

// SweepExpired cancels every pending_payment booking of the mentor older
// than the TTL, releasing its slot and failing its purchase in one
// transaction. Nothing expired is a clean no-op, not an error.
func (s *ReconcilerService) SweepExpired(ctx context.Context, mentorID uuid.UUID) (int, error) {
	cutoff := time.Now().UTC().Add(-s.TTL)

	var expired []model.BookingModel
	if err := s.DB.WithContext(ctx).
		Where("booking_mentor_id = ? AND booking_status = ? AND booking_created_at < ?",
			mentorID, model.BookingPendingPayment, cutoff).
		Find(&expired).Error; err != nil {
		log.Printf("[SWEEP] query expired bookings: %v", err)
		return 0, err
	}

	if len(expired) == 0 {
		return 0, nil
	}

	// Per booking: cancel first, and only on a successful cancel touch the
	// slot and purchase. A payment settling between the snapshot above and
	// this transaction leaves the cancel matching 0 rows, and the slot of a
	// confirmed booking must never be released.
	released := 0
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range expired {
			res := tx.Model(&model.BookingModel{}).
				Where("booking_id = ? AND booking_status = ?", b.BookingID, model.BookingPendingPayment).
				Update("booking_status", model.BookingCancelled)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue
			}
			released++

			if err := tx.Model(&model.TimeSlotModel{}).
				Where("time_slot_id = ? AND time_slot_status = ?", b.BookingTimeSlotID, model.SlotBooked).
				Update("time_slot_status", model.SlotAvailable).Error; err != nil {
				return err
			}

			if b.BookingPurchaseID != nil {
				if err := tx.Model(&paymentModel.PurchaseModel{}).
					Where("purchase_id = ? AND purchase_status = ?", *b.BookingPurchaseID, paymentModel.PurchasePending).
					Update("purchase_status", paymentModel.PurchaseFailed).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if txErr != nil {
		log.Printf("[SWEEP] release transaction failed: %v", txErr)
		return 0, txErr
	}

	if released > 0 {
		log.Printf("[SWEEP] mentor=%s released=%d", mentorID, released)
	}
	return released, nil
}

// MentorsWithPendingBookings feeds the platform-wide background sweep.
func (s *ReconcilerService) MentorsWithPendingBookings(ctx context.Context) ([]uuid.UUID, error) {
	var mentorIDs []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&model.BookingModel{}).
		Distinct("booking_mentor_id").
		Where("booking_status = ?", model.BookingPendingPayment).
		Pluck("booking_mentor_id", &mentorIDs).Error
	if err != nil {
		return nil, err
	}
	return mentorIDs, nil
}
