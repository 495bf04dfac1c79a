package model

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) DateRange {
	t.Helper()
	r, err := NewDateRange(start, end)
	if err != nil {
		t.Fatalf("NewDateRange(%v, %v): %v", start, end, err)
	}
	return r
}

func TestNewDateRange_Invalid(t *testing.T) {
	if _, err := NewDateRange(d(2024, 3, 5), d(2024, 3, 1)); err != ErrInvalidRange {
		t.Fatalf("got %v; want ErrInvalidRange", err)
	}
}

func TestNewDateRange_TruncatesTime(t *testing.T) {
	r, err := NewDateRange(
		time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatal(err)
	}
	if r.Nights() != 1 {
		t.Fatalf("nights = %d; want 1 regardless of time-of-day", r.Nights())
	}
}

func TestNights(t *testing.T) {
	if n := mustRange(t, d(2024, 3, 1), d(2024, 3, 1)).Nights(); n != 0 {
		t.Fatalf("same-day nights = %d; want 0", n)
	}
	if n := mustRange(t, d(2024, 3, 1), d(2024, 3, 5)).Nights(); n != 4 {
		t.Fatalf("nights = %d; want 4", n)
	}
}

func TestOverlaps(t *testing.T) {
	base := mustRange(t, d(2024, 3, 3), d(2024, 3, 7))

	cases := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"identical", mustRange(t, d(2024, 3, 3), d(2024, 3, 7)), true},
		{"contained", mustRange(t, d(2024, 3, 4), d(2024, 3, 6)), true},
		{"containing", mustRange(t, d(2024, 3, 1), d(2024, 3, 10)), true},
		{"partial left", mustRange(t, d(2024, 3, 1), d(2024, 3, 5)), true},
		{"partial right", mustRange(t, d(2024, 3, 5), d(2024, 3, 10)), true},
		{"boundary touch start", mustRange(t, d(2024, 3, 1), d(2024, 3, 3)), true},
		{"boundary touch end", mustRange(t, d(2024, 3, 7), d(2024, 3, 9)), true},
		{"before", mustRange(t, d(2024, 3, 1), d(2024, 3, 2)), false},
		{"after", mustRange(t, d(2024, 3, 8), d(2024, 3, 9)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Fatalf("base.Overlaps(%s) = %v; want %v", tc.name, got, tc.want)
			}
			// overlap is symmetric
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Fatalf("%s.Overlaps(base) = %v; want %v", tc.name, got, tc.want)
			}
		})
	}
}
