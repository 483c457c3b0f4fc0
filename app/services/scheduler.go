package services

import (
	"log"
	"time"

	"pilates-studio/app/studio"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(svc *studio.Service) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 11:55 PM (23:55)
			if now.Hour() == 23 && now.Minute() == 55 {
				log.Println("Triggering scheduled tasks [23:55]...")
				logStateSummary(svc)
			}
		}
	}()
}

// logStateSummary writes a nightly snapshot of directory and ledger sizes.
func logStateSummary(svc *studio.Service) {
	users, bookings, nextID := svc.Snapshot()
	log.Printf("State summary: %d accounts, %d reservations, next account id %d",
		len(users), len(bookings), nextID)
}
