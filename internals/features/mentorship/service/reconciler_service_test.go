package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/mentorship/model"
	paymentModel "learnhub_backend/internals/features/payment/model"
)

const testTTL = 5 * time.Minute

func bookAndAge(t *testing.T, db *gorm.DB, mentorID uuid.UUID, age time.Duration) (*model.BookingModel, *paymentModel.PurchaseModel, model.TimeSlotModel) {
	t.Helper()
	slot := seedSlot(t, db, mentorID, time.Now().UTC().Add(48*time.Hour))
	booking, purchase, err := NewBookingService(db, testSessionPrice).
		Book(context.Background(), uuid.New(), slot.TimeSlotID)
	require.NoError(t, err)
	if age > 0 {
		ageBooking(t, db, booking.BookingID, age)
	}
	return booking, purchase, slot
}

func TestSweepReleasesExpiredBooking(t *testing.T) {
	db := newTestDB(t)
	mentorID := uuid.New()
	booking, purchase, slot := bookAndAge(t, db, mentorID, testTTL+time.Minute)
	svc := NewReconcilerService(db, testTTL)

	released, err := svc.SweepExpired(context.Background(), mentorID)
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	var b model.BookingModel
	require.NoError(t, db.First(&b, "booking_id = ?", booking.BookingID).Error)
	assert.Equal(t, model.BookingCancelled, b.BookingStatus)

	var s model.TimeSlotModel
	require.NoError(t, db.First(&s, "time_slot_id = ?", slot.TimeSlotID).Error)
	assert.Equal(t, model.SlotAvailable, s.TimeSlotStatus)

	var p paymentModel.PurchaseModel
	require.NoError(t, db.First(&p, "purchase_id = ?", purchase.PurchaseID).Error)
	assert.Equal(t, paymentModel.PurchaseFailed, p.PurchaseStatus)
}

func TestSweepLeavesFreshBookingsAlone(t *testing.T) {
	db := newTestDB(t)
	mentorID := uuid.New()
	booking, _, _ := bookAndAge(t, db, mentorID, 0)
	svc := NewReconcilerService(db, testTTL)

	released, err := svc.SweepExpired(context.Background(), mentorID)
	require.NoError(t, err)
	assert.Zero(t, released)

	var b model.BookingModel
	require.NoError(t, db.First(&b, "booking_id = ?", booking.BookingID).Error)
	assert.Equal(t, model.BookingPendingPayment, b.BookingStatus)
}

func TestSweepIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	mentorID := uuid.New()
	bookAndAge(t, db, mentorID, testTTL+time.Minute)
	svc := NewReconcilerService(db, testTTL)

	released, err := svc.SweepExpired(context.Background(), mentorID)
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	released, err = svc.SweepExpired(context.Background(), mentorID)
	require.NoError(t, err)
	assert.Zero(t, released)
}

func TestSweepSkipsConfirmedBookings(t *testing.T) {
	db := newTestDB(t)
	mentorID := uuid.New()
	booking, _, slot := bookAndAge(t, db, mentorID, testTTL+time.Minute)

	// payment arrived before the sweep ran
	require.NoError(t, db.Model(&model.BookingModel{}).
		Where("booking_id = ?", booking.BookingID).
		Update("booking_status", model.BookingConfirmed).Error)

	released, err := NewReconcilerService(db, testTTL).
		SweepExpired(context.Background(), mentorID)
	require.NoError(t, err)
	assert.Zero(t, released)

	var s model.TimeSlotModel
	require.NoError(t, db.First(&s, "time_slot_id = ?", slot.TimeSlotID).Error)
	assert.Equal(t, model.SlotBooked, s.TimeSlotStatus)
}

// A settlement can land after the sweep has read its expired-booking
// snapshot but before the release transaction runs. The confirmed booking's
// slot must stay booked.
func TestSweepKeepsSlotWhenPaymentSettlesMidSweep(t *testing.T) {
	db := newTestDB(t)
	mentorID := uuid.New()
	booking, purchase, slot := bookAndAge(t, db, mentorID, testTTL+time.Minute)

	settled := false
	require.NoError(t, db.Callback().Query().After("gorm:query").
		Register("settle_between_snapshot_and_release", func(q *gorm.DB) {
			if settled {
				return
			}
			if _, ok := q.Statement.Dest.(*[]model.BookingModel); !ok {
				return
			}
			settled = true
			require.NoError(t, db.Session(&gorm.Session{NewDB: true}).
				Model(&model.BookingModel{}).
				Where("booking_id = ?", booking.BookingID).
				Update("booking_status", model.BookingConfirmed).Error)
			require.NoError(t, db.Session(&gorm.Session{NewDB: true}).
				Model(&paymentModel.PurchaseModel{}).
				Where("purchase_id = ?", purchase.PurchaseID).
				Update("purchase_status", paymentModel.PurchaseSuccess).Error)
		}))

	released, err := NewReconcilerService(db, testTTL).
		SweepExpired(context.Background(), mentorID)
	require.NoError(t, err)
	assert.Zero(t, released)
	assert.True(t, settled)

	var b model.BookingModel
	require.NoError(t, db.First(&b, "booking_id = ?", booking.BookingID).Error)
	assert.Equal(t, model.BookingConfirmed, b.BookingStatus)

	var s model.TimeSlotModel
	require.NoError(t, db.First(&s, "time_slot_id = ?", slot.TimeSlotID).Error)
	assert.Equal(t, model.SlotBooked, s.TimeSlotStatus)

	var p paymentModel.PurchaseModel
	require.NoError(t, db.First(&p, "purchase_id = ?", purchase.PurchaseID).Error)
	assert.Equal(t, paymentModel.PurchaseSuccess, p.PurchaseStatus)
}

func TestSweepScopedToMentor(t *testing.T) {
	db := newTestDB(t)
	mentorA := uuid.New()
	mentorB := uuid.New()
	bookAndAge(t, db, mentorA, testTTL+time.Minute)
	otherBooking, _, _ := bookAndAge(t, db, mentorB, testTTL+time.Minute)
	svc := NewReconcilerService(db, testTTL)

	released, err := svc.SweepExpired(context.Background(), mentorA)
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	var b model.BookingModel
	require.NoError(t, db.First(&b, "booking_id = ?", otherBooking.BookingID).Error)
	assert.Equal(t, model.BookingPendingPayment, b.BookingStatus)
}

func TestMentorsWithPendingBookings(t *testing.T) {
	db := newTestDB(t)
	mentorA := uuid.New()
	mentorB := uuid.New()
	bookAndAge(t, db, mentorA, 0)
	bookAndAge(t, db, mentorA, 0)
	confirmed, _, _ := bookAndAge(t, db, mentorB, 0)
	require.NoError(t, db.Model(&model.BookingModel{}).
		Where("booking_id = ?", confirmed.BookingID).
		Update("booking_status", model.BookingConfirmed).Error)

	mentorIDs, err := NewReconcilerService(db, testTTL).
		MentorsWithPendingBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, mentorIDs, 1)
	assert.Equal(t, mentorA, mentorIDs[0])
}
