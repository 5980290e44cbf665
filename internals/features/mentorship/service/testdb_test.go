package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"learnhub_backend/internals/features/mentorship/model"
	paymentModel "learnhub_backend/internals/features/payment/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.TimeSlotModel{},
		&model.BookingModel{},
		&paymentModel.PurchaseModel{},
	))
	return db
}

func seedSlot(t *testing.T, db *gorm.DB, mentorID uuid.UUID, start time.Time) model.TimeSlotModel {
	t.Helper()
	slot := model.TimeSlotModel{
		TimeSlotMentorID:  mentorID,
		TimeSlotStartTime: start,
		TimeSlotEndTime:   start.Add(time.Hour),
		TimeSlotStatus:    model.SlotAvailable,
	}
	require.NoError(t, db.Create(&slot).Error)
	return slot
}

// ageBooking backdates a booking past the pending-payment TTL.
func ageBooking(t *testing.T, db *gorm.DB, bookingID uuid.UUID, age time.Duration) {
	t.Helper()
	require.NoError(t, db.Model(&model.BookingModel{}).
		Where("booking_id = ?", bookingID).
		UpdateColumn("booking_created_at", time.Now().UTC().Add(-age)).Error)
}

func requireFiberStatus(t *testing.T, err error, status int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, status, fe.Code)
}
