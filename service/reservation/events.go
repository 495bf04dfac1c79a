package reservation

import (
	"context"
	"time"
)

type EventType string

const (
	EventCreated   EventType = "reservation.created"
	EventConfirmed EventType = "reservation.confirmed"
	EventCanceled  EventType = "reservation.canceled"
	EventDeleted   EventType = "reservation.deleted"
)

// Event is the envelope published to the reservations queue after a
// lifecycle change commits.
type Event struct {
	Type          EventType `json:"type"`
	ReservationID int64     `json:"reservation_id"`
	RoomID        int64     `json:"room_id,omitempty"`
	HotelID       int64     `json:"hotel_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher is satisfied by util/mq. Publishing is best effort: failures are
// logged by the service, never surfaced to the caller.
type Publisher interface {
	Publish(ctx context.Context, v any) error
}
