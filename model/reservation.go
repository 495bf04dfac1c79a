package model

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCanceled  ReservationStatus = "canceled"
)

// CanTransition is the whole transition table. Cancel is reachable from both
// live states; confirm only from pending; nothing leaves canceled.
func (s ReservationStatus) CanTransition(to ReservationStatus) bool {
	switch to {
	case ReservationCanceled:
		return s == ReservationPending || s == ReservationConfirmed
	case ReservationConfirmed:
		return s == ReservationPending
	default:
		return false
	}
}

// Blocking reports whether a reservation in this status counts against room
// availability.
func (s ReservationStatus) Blocking() bool {
	return s == ReservationPending || s == ReservationConfirmed
}

type Reservation struct {
	ID             int64             `json:"id"`
	RoomID         int64             `json:"room_id"`
	UserID         int64             `json:"user_id"`
	HotelID        int64             `json:"hotel_id"`
	StartDate      time.Time         `json:"start_date"`
	EndDate        time.Time         `json:"end_date"`
	NumberOfGuests int               `json:"number_of_guests"`
	TotalAmount    float64           `json:"total_amount"`
	SpecialRequest *string           `json:"special_request,omitempty"`
	Status         ReservationStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (r *Reservation) Range() DateRange {
	return DateRange{Start: r.StartDate, End: r.EndDate}
}
