package helper

import (
	"testing"
	"time"
)

func showtime(day string, hour int) time.Time {
	d, _ := time.Parse("2006-01-02", day)
	return d.Add(time.Duration(hour) * time.Hour)
}

func row(theatreId uint, name string, at time.Time) AvailabilityRow {
	return AvailabilityRow{
		TheatreId:     theatreId,
		TheatreName:   name,
		Locality:      "bandra",
		Title:         "Inception",
		Certification: "UA",
		Genres:        "action,sci-fi",
		MTicket:       true,
		PriceNormal:   250,
		ShowTime:      at,
	}
}

func TestGroupOneEntryPerTheatre(t *testing.T) {
	rows := []AvailabilityRow{
		row(1, "Theatre A", showtime("2024-06-02", 18)),
		row(2, "Theatre B", showtime("2024-06-02", 20)),
	}

	out := GroupTheatreAvailability(rows)
	if len(out) != 2 {
		t.Fatalf("expected 2 theatre entries, got %d", len(out))
	}
}

func TestGroupCollectsShowtimesAscending(t *testing.T) {
	rows := []AvailabilityRow{
		row(1, "Theatre A", showtime("2024-06-02", 21)),
		row(1, "Theatre A", showtime("2024-06-02", 15)),
		row(1, "Theatre A", showtime("2024-06-02", 18)),
	}

	out := GroupTheatreAvailability(rows)
	if len(out) != 1 {
		t.Fatalf("expected 1 theatre entry, got %d", len(out))
	}
	timings := out[0].Timings
	if len(timings) != 3 {
		t.Fatalf("expected 3 timings, got %d", len(timings))
	}
	for i := 1; i < len(timings); i++ {
		if timings[i].Before(timings[i-1]) {
			t.Errorf("timings not ascending: %v", timings)
		}
	}
}

func TestGroupSortsTheatresByIdDescending(t *testing.T) {
	rows := []AvailabilityRow{
		row(3, "Theatre C", showtime("2024-06-02", 18)),
		row(7, "Theatre G", showtime("2024-06-02", 18)),
		row(5, "Theatre E", showtime("2024-06-02", 18)),
	}

	out := GroupTheatreAvailability(rows)
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}
	want := []uint{7, 5, 3}
	for i, id := range want {
		if out[i].TheatreId != id {
			t.Fatalf("expected theatre order %v, got %d at %d", want, out[i].TheatreId, i)
		}
	}
}

func TestGroupScalarFieldsFromFirstRow(t *testing.T) {
	rows := []AvailabilityRow{
		row(1, "Theatre A", showtime("2024-06-02", 18)),
		row(1, "Theatre A", showtime("2024-06-02", 21)),
	}

	out := GroupTheatreAvailability(rows)
	entry := out[0]
	if entry.Theatre != "Theatre A" || entry.Title != "Inception" || entry.Certification != "UA" {
		t.Errorf("unexpected scalar fields %+v", entry)
	}
	if len(entry.Genres) != 2 || entry.Genres[0] != "action" || entry.Genres[1] != "sci-fi" {
		t.Errorf("unexpected genres %v", entry.Genres)
	}
	if !entry.MTicket {
		t.Error("expected mTicket flag carried over")
	}
	if entry.Price.Normal != 250 {
		t.Errorf("expected normal price 250, got %v", entry.Price.Normal)
	}
}

func TestGroupEmptyRows(t *testing.T) {
	out := GroupTheatreAvailability(nil)
	if len(out) != 0 {
		t.Errorf("expected empty result, got %v", out)
	}
}

func TestParseCalendarDay(t *testing.T) {
	day, err := ParseCalendarDay("2024-06-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Hour() != 0 || day.Minute() != 0 || day.Location() != time.UTC {
		t.Errorf("expected UTC midnight, got %v", day)
	}

	if _, err := ParseCalendarDay("02/06/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}
	if _, err := ParseCalendarDay(""); err == nil {
		t.Error("expected error for empty date")
	}
}

// Window check mirrors the query predicate: a 2024-06-01T18:00 showing must
// fall outside the 2024-06-02 window, the 2024-06-02T18:00 one inside it.
func TestDayWindowBounds(t *testing.T) {
	day, _ := ParseCalendarDay("2024-06-02")
	next := day.AddDate(0, 0, 1)

	inside := showtime("2024-06-02", 18)
	outside := showtime("2024-06-01", 18)
	boundary := next

	if inside.Before(day) || !inside.Before(next) {
		t.Error("18:00 same day should be inside the window")
	}
	if !outside.Before(day) {
		t.Error("previous day should be outside the window")
	}
	if boundary.Before(next) {
		t.Error("next midnight must be excluded")
	}
}
