package model

import "time"

type Room struct {
	ID         int64     `json:"id"`
	HotelID    int64     `json:"hotel_id"`
	RoomNumber string    `json:"room_number"`
	Price      float64   `json:"price"` // nightly rate
	Capacity   int       `json:"capacity"`
	CreatedAt  time.Time `json:"created_at"`
}

type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateHotelReq is the payload for registering a hotel.
type CreateHotelReq struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// CreateRoomReq is the payload for adding a room to a hotel.
type CreateRoomReq struct {
	RoomNumber string  `json:"room_number" validate:"required"`
	Price      float64 `json:"price" validate:"required,gte=0"`
	Capacity   int     `json:"capacity" validate:"required,gt=0"`
}
