package helper

import (
	"sort"
	"time"

	"movie_ticket_booking/model"
	"movie_ticket_booking/utils"

	"gorm.io/gorm"
)

// AvailabilityFilter selects the showings to aggregate. Screen and Language
// empty mean "all"; unknown screen values are rejected before the query runs.
type AvailabilityFilter struct {
	MovieSlug string
	Day       time.Time
	Screen    string
	Language  string
}

// AvailabilityRow is one candidate showtime after the join across releases,
// showtimes, movies and theatres. Every row of a theatre carries the same
// movie and theatre columns, only ShowTime varies.
type AvailabilityRow struct {
	TheatreId          uint
	TheatreName        string
	Locality           string
	TicketCancellation bool
	FoodAndBeverages   bool
	MTicket            bool
	Title              string
	Certification      string
	Genres             string
	RatingsQuantity    int
	RatingsAverage     float64
	PriceNormal        float64
	PriceExecutive     float64
	PriceVip           float64
	ShowTime           time.Time
}

// ParseCalendarDay anchors a YYYY-MM-DD date at UTC midnight. The showtime
// window is [day, day+24h) in UTC regardless of server timezone.
func ParseCalendarDay(s string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, utils.BadRequest("date must be YYYY-MM-DD")
	}
	return day.UTC(), nil
}

// QueryAvailabilityRows runs the join. One row per showtime instant on the
// requested day, the relational equivalent of the old unwind stage.
func QueryAvailabilityRows(db *gorm.DB, f AvailabilityFilter) ([]AvailabilityRow, error) {
	q := db.Table("release_showtimes AS rs").
		Select(`t.id AS theatre_id, t.name AS theatre_name, t.locality,
			t.ticket_cancellation, t.food_and_beverages, t.m_ticket,
			m.title, m.certification, m.genres, m.ratings_quantity, m.ratings_average,
			r.price_normal, r.price_executive, r.price_vip, rs.show_time`).
		Joins("JOIN releases r ON r.id = rs.release_id").
		Joins("JOIN movies m ON m.id = r.movie_id").
		Joins("JOIN theatres t ON t.id = r.theatre_id").
		Where("r.slug = ?", f.MovieSlug).
		Where("rs.show_time >= ? AND rs.show_time < ?", f.Day, f.Day.AddDate(0, 0, 1))

	if f.Screen != "" {
		q = q.Where("r.screen = ?", f.Screen)
	}
	if f.Language != "" {
		q = q.Where("r.language = ?", f.Language)
	}

	var rows []AvailabilityRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GroupTheatreAvailability folds the joined rows into one entry per theatre.
// Scalar columns come from the first row of each theatre, which is safe since
// rows of one theatre only differ in ShowTime. Showtimes are collected in
// ascending order; theatres come back by id descending, which tests pin.
func GroupTheatreAvailability(rows []AvailabilityRow) []model.TheatreAvailability {
	grouped := map[uint]*model.TheatreAvailability{}

	for _, row := range rows {
		entry, ok := grouped[row.TheatreId]
		if !ok {
			entry = &model.TheatreAvailability{
				TheatreId:          row.TheatreId,
				Theatre:            row.TheatreName,
				Locality:           row.Locality,
				Title:              row.Title,
				Certification:      row.Certification,
				Genres:             utils.SplitList(row.Genres),
				RatingsQuantity:    row.RatingsQuantity,
				RatingsAverage:     row.RatingsAverage,
				TicketCancellation: row.TicketCancellation,
				FoodAndBeverages:   row.FoodAndBeverages,
				MTicket:            row.MTicket,
				Price: model.ReleasePrices{
					Normal:    row.PriceNormal,
					Executive: row.PriceExecutive,
					Vip:       row.PriceVip,
				},
			}
			grouped[row.TheatreId] = entry
		}
		entry.Timings = append(entry.Timings, row.ShowTime)
	}

	out := make([]model.TheatreAvailability, 0, len(grouped))
	for _, entry := range grouped {
		sort.Slice(entry.Timings, func(i, j int) bool {
			return entry.Timings[i].Before(entry.Timings[j])
		})
		out = append(out, *entry)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].TheatreId > out[j].TheatreId
	})
	return out
}

// TheatreAvailabilityFor is the full pipeline: join, day filter, group.
func TheatreAvailabilityFor(db *gorm.DB, f AvailabilityFilter) ([]model.TheatreAvailability, error) {
	rows, err := QueryAvailabilityRows(db, f)
	if err != nil {
		return nil, err
	}
	return GroupTheatreAvailability(rows), nil
}
