package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: booking status
   pending_payment → confirmed → completed
                   ↘ cancelled (payment missed or expired)
============================================================================= */

type BookingStatus string

const (
	BookingPendingPayment BookingStatus = "pending_payment"
	BookingConfirmed      BookingStatus = "confirmed"
	BookingCompleted      BookingStatus = "completed"
	BookingCancelled      BookingStatus = "cancelled"
)

func (s BookingStatus) String() string { return string(s) }
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPendingPayment, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	default:
		return false
	}
}

// HoldsSlot reports whether this status keeps the time slot claimed.
func (s BookingStatus) HoldsSlot() bool {
	switch s {
	case BookingPendingPayment, BookingConfirmed, BookingCompleted:
		return true
	default:
		return false
	}
}

func (s *BookingStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = BookingStatus(v)
	case []byte:
		*s = BookingStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for BookingStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid BookingStatus: %q", *s)
	}
	return nil
}

func (s BookingStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid BookingStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: bookings
============================================================================= */

// BookingModel is a student's claim on a mentor's time slot, gated by
// payment. Created pending_payment; confirmed by the gateway callback;
// cancelled by the expiry reconciler when payment never lands.
type BookingModel struct {
	BookingID         uuid.UUID     `json:"booking_id" gorm:"column:booking_id;type:uuid;primaryKey"`
	BookingStudentID  uuid.UUID     `json:"booking_student_id" gorm:"column:booking_student_id;type:uuid;not null;index:idx_booking_student"`
	BookingMentorID   uuid.UUID     `json:"booking_mentor_id" gorm:"column:booking_mentor_id;type:uuid;not null;index:idx_booking_mentor_status,priority:1"`
	BookingTimeSlotID uuid.UUID     `json:"booking_time_slot_id" gorm:"column:booking_time_slot_id;type:uuid;not null;index:idx_booking_slot"`
	BookingPurchaseID *uuid.UUID    `json:"booking_purchase_id,omitempty" gorm:"column:booking_purchase_id;type:uuid"`
	BookingStatus     BookingStatus `json:"booking_status" gorm:"column:booking_status;type:varchar(24);not null;default:'pending_payment';index:idx_booking_mentor_status,priority:2"`
	BookingCreatedAt  time.Time     `json:"booking_created_at" gorm:"column:booking_created_at;autoCreateTime"`
	BookingUpdatedAt  time.Time     `json:"booking_updated_at" gorm:"column:booking_updated_at;autoUpdateTime"`
}

func (BookingModel) TableName() string { return "bookings" }

func (m *BookingModel) BeforeCreate(_ *gorm.DB) error {
	if m.BookingID == uuid.Nil {
		m.BookingID = uuid.New()
	}
	if m.BookingStatus == "" {
		m.BookingStatus = BookingPendingPayment
	}
	return nil
}
