package reservation

type CreateReservationReq struct {
	UserID         int64   `json:"user_id" validate:"required,gt=0"`
	HotelID        int64   `json:"hotel_id" validate:"required,gt=0"`
	RoomID         int64   `json:"room_id" validate:"required,gt=0"`
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	NumberOfGuests int     `json:"number_of_guests" validate:"required,gt=0"`
	SpecialRequest *string `json:"special_request,omitempty"`
}

type UpdateReservationReq struct {
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	NumberOfGuests *int    `json:"number_of_guests,omitempty" validate:"omitempty,gt=0"`
	SpecialRequest *string `json:"special_request,omitempty"`
}
