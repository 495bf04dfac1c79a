package model

import "time"

type BookingStatus int

const (
	BookingInactive BookingStatus = 0
	BookingActive   BookingStatus = 1
)

// Booking is a competing commitment created outside this service (front desk,
// channel manager). The reservation engine only ever reads it for overlap
// checks; active bookings block a room the same way pending/confirmed
// reservations do.
type Booking struct {
	ID        int64         `json:"id"`
	RoomID    int64         `json:"room_id"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// CreateBookingReq seeds an external commitment for a room.
type CreateBookingReq struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Active    bool   `json:"active"`
}
