package helper

import (
	"log"
	"time"

	"movie_ticket_booking/database"
	"movie_ticket_booking/model"

	"github.com/go-co-op/gocron/v2"
)

var movieScheduler gocron.Scheduler

// PruneStaleShowtimes drops showtime rows that are already in the past so
// the availability join never has to filter them per request.
func PruneStaleShowtimes() {
	log.Println("[CRON] PruneStaleShowtimes triggered")

	db := database.DB
	cutoff := time.Now().UTC().Truncate(24 * time.Hour)

	res := db.Where("show_time < ?", cutoff).Delete(&model.ReleaseShowtime{})
	if res.Error != nil {
		log.Printf("showtime prune failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("pruned %d stale showtimes", res.RowsAffected)
	}
}

func StartShowtimeScheduler() {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		log.Printf("failed to start showtime scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(2, 0, 0))),
		gocron.NewTask(PruneStaleShowtimes),
	)
	if err != nil {
		log.Printf("failed to schedule showtime prune: %v", err)
		return
	}

	movieScheduler = s
	s.Start()
	log.Println("showtime scheduler started")
}

func StopShowtimeScheduler() {
	if movieScheduler != nil {
		_ = movieScheduler.Shutdown()
	}
}
