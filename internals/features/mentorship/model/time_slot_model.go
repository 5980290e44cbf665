package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: slot status ('available' ⇄ 'booked')
============================================================================= */

type TimeSlotStatus string

const (
	SlotAvailable TimeSlotStatus = "available"
	SlotBooked    TimeSlotStatus = "booked"
)

func (s TimeSlotStatus) String() string { return string(s) }
func (s TimeSlotStatus) Valid() bool {
	return s == SlotAvailable || s == SlotBooked
}

func (s *TimeSlotStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = TimeSlotStatus(v)
	case []byte:
		*s = TimeSlotStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for TimeSlotStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid TimeSlotStatus: %q", *s)
	}
	return nil
}

func (s TimeSlotStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid TimeSlotStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: time_slots
============================================================================= */

// TimeSlotModel is a mentor-defined bookable hour. A slot is booked iff it
// has a booking in pending_payment/confirmed/completed; releasing that
// booking flips it back to available in the same transaction.
type TimeSlotModel struct {
	TimeSlotID        uuid.UUID      `json:"time_slot_id" gorm:"column:time_slot_id;type:uuid;primaryKey"`
	TimeSlotMentorID  uuid.UUID      `json:"time_slot_mentor_id" gorm:"column:time_slot_mentor_id;type:uuid;not null;index:idx_ts_mentor"`
	TimeSlotStartTime time.Time      `json:"time_slot_start_time" gorm:"column:time_slot_start_time;not null"`
	TimeSlotEndTime   time.Time      `json:"time_slot_end_time" gorm:"column:time_slot_end_time;not null"`
	TimeSlotStatus    TimeSlotStatus `json:"time_slot_status" gorm:"column:time_slot_status;type:varchar(16);not null;default:'available';index:idx_ts_status"`
	TimeSlotTitle     *string        `json:"time_slot_title,omitempty" gorm:"column:time_slot_title;type:varchar(255)"`
	TimeSlotColor     *string        `json:"time_slot_color,omitempty" gorm:"column:time_slot_color;type:varchar(32)"`
	TimeSlotCreatedAt time.Time      `json:"time_slot_created_at" gorm:"column:time_slot_created_at;autoCreateTime"`
	TimeSlotUpdatedAt time.Time      `json:"time_slot_updated_at" gorm:"column:time_slot_updated_at;autoUpdateTime"`
}

func (TimeSlotModel) TableName() string { return "time_slots" }

func (m *TimeSlotModel) BeforeCreate(_ *gorm.DB) error {
	if m.TimeSlotID == uuid.Nil {
		m.TimeSlotID = uuid.New()
	}
	if m.TimeSlotStatus == "" {
		m.TimeSlotStatus = SlotAvailable
	}
	return nil
}
