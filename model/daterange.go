package model

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("end_date must be on or after start_date")

// DateRange is an inclusive interval of calendar dates. Both endpoints are
// stored at UTC midnight; the time component is never used.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Nights is the whole-day difference between the endpoints. A same-day range
// has zero nights.
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start) / (24 * time.Hour))
}

// Overlaps reports whether the two ranges share at least one calendar day.
// Boundaries are inclusive: ranges that merely touch on a date conflict.
// The test mirrors the store query: other starts inside r, other ends inside
// r, or other fully encloses r.
func (r DateRange) Overlaps(other DateRange) bool {
	if within(other.Start, r) || within(other.End, r) {
		return true
	}
	return !other.Start.After(r.Start) && !other.End.Before(r.End)
}

func within(d time.Time, r DateRange) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
