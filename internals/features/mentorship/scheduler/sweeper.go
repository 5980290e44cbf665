package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"learnhub_backend/internals/configs"
	"learnhub_backend/internals/features/mentorship/service"
)

/* =========================================================
   BACKGROUND SWEEPER
   Periodically cancels pending bookings whose payment window
   has expired, releasing their slots and failing the purchase.
   ========================================================= */

// StartSweeper schedules the reconciler on configs.SweepCron and
// returns the cron so the caller can Stop() it on shutdown.
func StartSweeper(db *gorm.DB) *cron.Cron {
	reconciler := service.NewReconcilerService(db, configs.BookingPendingTTL)

	c := cron.New()
	_, err := c.AddFunc(configs.SweepCron, func() {
		runSweep(reconciler)
	})
	if err != nil {
		log.Printf("[ERROR] Invalid sweep schedule %q: %v", configs.SweepCron, err)
		return c
	}

	c.Start()
	log.Printf("[INFO] Booking sweeper started (schedule=%q ttl=%s)",
		configs.SweepCron, configs.BookingPendingTTL)
	return c
}

func runSweep(reconciler *service.ReconcilerService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mentorIDs, err := reconciler.MentorsWithPendingBookings(ctx)
	if err != nil {
		log.Printf("[ERROR] Sweep: listing mentors with pending bookings failed: %v", err)
		return
	}

	total := 0
	for _, mentorID := range mentorIDs {
		released, err := reconciler.SweepExpired(ctx, mentorID)
		if err != nil {
			log.Printf("[ERROR] Sweep for mentor %s failed: %v", mentorID, err)
			continue
		}
		total += released
	}

	if total > 0 {
		log.Printf("[INFO] Sweep released %d expired booking(s)", total)
	}
}
