package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	mentorshipModel "learnhub_backend/internals/features/mentorship/model"
	"learnhub_backend/internals/features/payment/model"
)

// HandlePaymentNotification consumes a gateway status callback and finalizes
// the purchase plus, for mentorship orders, its booking and slot. The slot
// release uses the same status-predicated updates as the expiry sweeper, so
// a callback racing a sweep settles on one outcome per row.
func HandlePaymentNotification(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	var purchase model.PurchaseModel
	if err := db.Where("purchase_order_id = ?", orderID).First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("purchase with order_id %s not found", orderID)
		}
		return err
	}

	switch status {
	case "capture", "settlement":
		return db.Transaction(func(tx *gorm.DB) error {
			now := time.Now().UTC()
			res := tx.Model(&model.PurchaseModel{}).
				Where("purchase_id = ? AND purchase_status = ?", purchase.PurchaseID, model.PurchasePending).
				Updates(map[string]interface{}{
					"purchase_status":  model.PurchaseSuccess,
					"purchase_paid_at": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// already settled or already failed by the sweeper
				log.Printf("[INFO] order %s not pending, settlement skipped", orderID)
				return nil
			}
			return tx.Model(&mentorshipModel.BookingModel{}).
				Where("booking_purchase_id = ? AND booking_status = ?",
					purchase.PurchaseID, mentorshipModel.BookingPendingPayment).
				Update("booking_status", mentorshipModel.BookingConfirmed).Error
		})

	case "expire", "cancel", "deny":
		return db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&model.PurchaseModel{}).
				Where("purchase_id = ? AND purchase_status = ?", purchase.PurchaseID, model.PurchasePending).
				Update("purchase_status", model.PurchaseFailed).Error; err != nil {
				return err
			}

			var booking mentorshipModel.BookingModel
			err := tx.First(&booking, "booking_purchase_id = ?", purchase.PurchaseID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // course purchase, no slot to release
			}
			if err != nil {
				return err
			}

			if err := tx.Model(&mentorshipModel.BookingModel{}).
				Where("booking_id = ? AND booking_status = ?",
					booking.BookingID, mentorshipModel.BookingPendingPayment).
				Update("booking_status", mentorshipModel.BookingCancelled).Error; err != nil {
				return err
			}
			return tx.Model(&mentorshipModel.TimeSlotModel{}).
				Where("time_slot_id = ? AND time_slot_status = ?",
					booking.BookingTimeSlotID, mentorshipModel.SlotBooked).
				Update("time_slot_status", mentorshipModel.SlotAvailable).Error
		})

	default:
		log.Println("[INFO] unhandled transaction status:", status)
		return nil
	}
}
