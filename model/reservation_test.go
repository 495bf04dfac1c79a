package model

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{ReservationPending, ReservationConfirmed, true},
		{ReservationPending, ReservationCanceled, true},
		{ReservationConfirmed, ReservationCanceled, true},
		{ReservationConfirmed, ReservationConfirmed, false},
		{ReservationCanceled, ReservationConfirmed, false},
		{ReservationCanceled, ReservationCanceled, false},
		{ReservationCanceled, ReservationPending, false},
		{ReservationConfirmed, ReservationPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v; want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestBlocking(t *testing.T) {
	if !ReservationPending.Blocking() || !ReservationConfirmed.Blocking() {
		t.Fatal("pending and confirmed must block availability")
	}
	if ReservationCanceled.Blocking() {
		t.Fatal("canceled must not block availability")
	}
}
