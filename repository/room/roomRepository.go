package room

import (
	"context"
	"database/sql"

	"github.com/saqi06/Hotel-Management-API/model"
)

type Repo interface {
	Create(ctx context.Context, rm *model.Room) error
	ByID(ctx context.Context, id int64) (*model.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]model.Room, error)

	// LockForUpdate fetches the room inside tx with a row lock, serializing
	// concurrent reservation writes against the same room.
	LockForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Room, error)

	InsertBooking(ctx context.Context, b *model.Booking) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, rm *model.Room) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO rooms(hotel_id, room_number, price, capacity)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`,
		rm.HotelID, rm.RoomNumber, rm.Price, rm.Capacity,
	).Scan(&rm.ID, &rm.CreatedAt)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Room, error) {
	rm := &model.Room{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, hotel_id, room_number, price, capacity, created_at
		FROM rooms
		WHERE id = $1`, id,
	).Scan(&rm.ID, &rm.HotelID, &rm.RoomNumber, &rm.Price, &rm.Capacity, &rm.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *repo) ListByHotel(ctx context.Context, hotelID int64) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, hotel_id, room_number, price, capacity, created_at
		FROM rooms
		WHERE hotel_id = $1
		ORDER BY id`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Room
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.RoomNumber, &rm.Price, &rm.Capacity, &rm.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *repo) LockForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Room, error) {
	rm := &model.Room{}
	err := tx.QueryRowContext(ctx, `
		SELECT id, hotel_id, room_number, price, capacity, created_at
		FROM rooms
		WHERE id = $1
		FOR UPDATE`, id,
	).Scan(&rm.ID, &rm.HotelID, &rm.RoomNumber, &rm.Price, &rm.Capacity, &rm.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *repo) InsertBooking(ctx context.Context, b *model.Booking) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO bookings(room_id, start_date, end_date, status)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`,
		b.RoomID, b.StartDate, b.EndDate, b.Status,
	).Scan(&b.ID, &b.CreatedAt)
}
