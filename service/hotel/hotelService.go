package hotel

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/saqi06/Hotel-Management-API/model"
)

var (
	ErrHotelNotFound = errors.New("hotel not found")
	ErrRoomNotFound  = errors.New("room not found")
	ErrBadDates      = errors.New("end_date must be on or after start_date")
)

type HotelRepo interface {
	Create(ctx context.Context, h *model.Hotel) error
	List(ctx context.Context) ([]model.Hotel, error)
	ByID(ctx context.Context, id int64) (*model.Hotel, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type RoomRepo interface {
	Create(ctx context.Context, rm *model.Room) error
	ByID(ctx context.Context, id int64) (*model.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]model.Room, error)
	InsertBooking(ctx context.Context, b *model.Booking) error
}

type Service interface {
	Create(ctx context.Context, req model.CreateHotelReq) (*model.Hotel, error)
	List(ctx context.Context) ([]model.Hotel, error)
	Get(ctx context.Context, id int64) (*model.Hotel, error)

	AddRoom(ctx context.Context, hotelID int64, req model.CreateRoomReq) (*model.Room, error)
	Rooms(ctx context.Context, hotelID int64) ([]model.Room, error)
	Room(ctx context.Context, id int64) (*model.Room, error)

	// AddBooking records an external commitment against a room, e.g. a walk-in
	// entered at the front desk. Active bookings block availability.
	AddBooking(ctx context.Context, roomID int64, start, end time.Time, active bool) (*model.Booking, error)
}

type service struct {
	hr HotelRepo
	rr RoomRepo
}

func New(hr HotelRepo, rr RoomRepo) Service { return &service{hr: hr, rr: rr} }

func (s *service) Create(ctx context.Context, req model.CreateHotelReq) (*model.Hotel, error) {
	h := &model.Hotel{Name: req.Name, Address: req.Address}
	if err := s.hr.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) List(ctx context.Context) ([]model.Hotel, error) { return s.hr.List(ctx) }

func (s *service) Get(ctx context.Context, id int64) (*model.Hotel, error) {
	h, err := s.hr.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *service) AddRoom(ctx context.Context, hotelID int64, req model.CreateRoomReq) (*model.Room, error) {
	ok, err := s.hr.Exists(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrHotelNotFound
	}
	rm := &model.Room{
		HotelID:    hotelID,
		RoomNumber: req.RoomNumber,
		Price:      req.Price,
		Capacity:   req.Capacity,
	}
	if err := s.rr.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) Rooms(ctx context.Context, hotelID int64) ([]model.Room, error) {
	ok, err := s.hr.Exists(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrHotelNotFound
	}
	return s.rr.ListByHotel(ctx, hotelID)
}

func (s *service) Room(ctx context.Context, id int64) (*model.Room, error) {
	rm, err := s.rr.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (s *service) AddBooking(ctx context.Context, roomID int64, start, end time.Time, active bool) (*model.Booking, error) {
	if _, err := s.Room(ctx, roomID); err != nil {
		return nil, err
	}
	dr, err := model.NewDateRange(start, end)
	if err != nil {
		return nil, ErrBadDates
	}
	b := &model.Booking{
		RoomID:    roomID,
		StartDate: dr.Start,
		EndDate:   dr.End,
		Status:    model.BookingInactive,
	}
	if active {
		b.Status = model.BookingActive
	}
	if err := s.rr.InsertBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
