package helper

import (
	"log"

	"movie_ticket_booking/database"
	"movie_ticket_booking/model"
	"movie_ticket_booking/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var ratingsCron *cron.Cron

// RecomputeMovieRatings refreshes a movie's aggregate rating stats from its
// reviews. The average is rounded to 2 decimal places; a movie with no
// reviews resets to zero.
func RecomputeMovieRatings(db *gorm.DB, movieId uint) error {
	var stats model.MovieReviewStats
	err := db.Model(&model.Review{}).
		Select("COUNT(*) AS num_reviews, COALESCE(AVG(rating), 0) AS avg_reviews").
		Where("movie_id = ?", movieId).
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return db.Model(&model.Movie{}).
		Where("id = ?", movieId).
		Updates(map[string]any{
			"ratings_quantity": stats.NumReviews,
			"ratings_average":  utils.Round2(stats.AvgReviews),
		}).Error
}

// RecomputeMovieRatingsAsync runs the refresh without blocking the review
// write. Failures are logged only, the aggregate may lag until the next
// write or the nightly sweep catches up.
func RecomputeMovieRatingsAsync(movieId uint) {
	go func() {
		if err := RecomputeMovieRatings(database.DB, movieId); err != nil {
			log.Printf("ratings recompute failed for movie %d: %v", movieId, err)
		}
	}()
}

func reconcileAllRatings() {
	log.Println("[CRON] ratings reconciliation triggered")
	db := database.DB

	var movieIds []uint
	if err := db.Model(&model.Movie{}).Pluck("id", &movieIds).Error; err != nil {
		log.Printf("ratings reconciliation scan failed: %v", err)
		return
	}
	for _, id := range movieIds {
		if err := RecomputeMovieRatings(db, id); err != nil {
			log.Printf("ratings reconciliation failed for movie %d: %v", id, err)
		}
	}
}

// StartRatingsReconciler sweeps every movie nightly so aggregates that missed
// a fire-and-forget refresh converge.
func StartRatingsReconciler() {
	ratingsCron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := ratingsCron.AddFunc("30 3 * * *", reconcileAllRatings); err != nil {
		log.Printf("failed to schedule ratings reconciliation: %v", err)
		return
	}
	ratingsCron.Start()
	log.Println("ratings reconciler started")
}

func StopRatingsReconciler() {
	if ratingsCron != nil {
		ratingsCron.Stop()
	}
}
