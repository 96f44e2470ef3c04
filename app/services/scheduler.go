package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/reports"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 9:00 PM (21:00), after evening-shift attendance
			if now.Hour() == 21 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [21:00]...")

				if err := LogDailyAttendanceSummary(db, now); err != nil {
					log.Printf("Error computing daily attendance summary: %v", err)
				}
			}
		}
	}()
}

// LogDailyAttendanceSummary logs today's overall attendance rate and the
// per-shift breakdown
func LogDailyAttendanceSummary(db *sql.DB, now time.Time) error {
	snap, err := database.LoadSnapshot(db)
	if err != nil {
		return err
	}

	today := now.Format("2006-01-02")
	ix := reports.NewIndex(snap)
	filtered := ix.FilterRecords(reports.Filters{StartDate: today, EndDate: today})
	counts := reports.CountStatuses(filtered)

	log.Printf("Attendance summary %s: present=%d absent=%d justified=%d rate=%d%%",
		today, counts.Present, counts.Absent, counts.Justified, counts.Rate())
	for _, b := range ix.BreakdownByShift(filtered) {
		log.Printf("  %s: %d%% (%d records)", b.Name, b.Rate, b.Total)
	}
	return nil
}
