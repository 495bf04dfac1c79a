package reservation

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/saqi06/Hotel-Management-API/model"
)

type Repo interface {
	// CountBlocking counts commitments that make the candidate stay
	// unavailable: active bookings plus pending/confirmed reservations for
	// the room whose dates overlap [start, end] inclusively. excludeID
	// (0 = none) removes a row by id from both halves, so an update does
	// not conflict with the reservation being updated. Must run inside the
	// same tx as the write it guards.
	CountBlocking(ctx context.Context, tx *sql.Tx, roomID int64, start, end time.Time, excludeID int64) (int64, error)

	Insert(ctx context.Context, tx *sql.Tx, res *model.Reservation) error
	UpdateStay(ctx context.Context, tx *sql.Tx, res *model.Reservation) error
	Delete(ctx context.Context, tx *sql.Tx, id int64) (int64, error)
	GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Reservation, error)

	Get(ctx context.Context, id int64) (*model.Reservation, error)
	List(ctx context.Context) ([]model.Reservation, error)

	// SetStatusIf flips status only when the current status is in allowed,
	// returning the number of rows changed. The predicate makes the
	// transition a single atomic compare-and-set.
	SetStatusIf(ctx context.Context, id int64, to model.ReservationStatus, allowed []model.ReservationStatus) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const reservationCols = `id, room_id, user_id, hotel_id, start_date, end_date,
	number_of_guests, total_amount, special_request, status, created_at, updated_at`

// Bookings and reservations answer the same question here, so both are
// folded into one commitment set before the overlap predicate runs. The
// predicate is the inclusive BETWEEN pair plus the encloses branch.
const countBlockingSQL = `
	SELECT COUNT(*)
	FROM (
		SELECT id, start_date, end_date
		FROM bookings
		WHERE room_id = $1 AND status = 1
		UNION ALL
		SELECT id, start_date, end_date
		FROM reservations
		WHERE room_id = $1 AND status IN ('pending','confirmed')
	) c
	WHERE ($4 = 0 OR c.id <> $4)
	  AND (c.start_date BETWEEN $2 AND $3
	    OR c.end_date BETWEEN $2 AND $3
	    OR (c.start_date <= $2 AND c.end_date >= $3))`

func (r *repo) CountBlocking(ctx context.Context, tx *sql.Tx, roomID int64, start, end time.Time, excludeID int64) (int64, error) {
	var n int64
	err := tx.QueryRowContext(ctx, countBlockingSQL, roomID, start, end, excludeID).Scan(&n)
	return n, err
}

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	return tx.QueryRowContext(ctx, `
		INSERT INTO reservations
			(room_id, user_id, hotel_id, start_date, end_date, number_of_guests, total_amount, special_request, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at, updated_at`,
		res.RoomID, res.UserID, res.HotelID, res.StartDate, res.EndDate,
		res.NumberOfGuests, res.TotalAmount, res.SpecialRequest, res.Status,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
}

func (r *repo) UpdateStay(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	return tx.QueryRowContext(ctx, `
		UPDATE reservations
		SET start_date = $2,
			end_date = $3,
			number_of_guests = $4,
			total_amount = $5,
			special_request = $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		res.ID, res.StartDate, res.EndDate, res.NumberOfGuests, res.TotalAmount, res.SpecialRequest,
	).Scan(&res.UpdatedAt)
}

func (r *repo) Delete(ctx context.Context, tx *sql.Tx, id int64) (int64, error) {
	resl, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return resl.RowsAffected()
}

func (r *repo) GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Reservation, error) {
	row := tx.QueryRowContext(ctx, `
		SELECT `+reservationCols+`
		FROM reservations
		WHERE id = $1
		FOR UPDATE`, id)
	return scanReservation(row)
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Reservation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+reservationCols+`
		FROM reservations
		WHERE id = $1`, id)
	return scanReservation(row)
}

func (r *repo) List(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reservationCols+`
		FROM reservations
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

func (r *repo) SetStatusIf(ctx context.Context, id int64, to model.ReservationStatus, allowed []model.ReservationStatus) (int64, error) {
	var (
		resl sql.Result
		err  error
	)
	// Transitions only ever allow one or two source states.
	switch len(allowed) {
	case 1:
		resl, err = r.db.ExecContext(ctx, `
			UPDATE reservations
			SET status = $2, updated_at = NOW()
			WHERE id = $1 AND status = $3`,
			id, to, allowed[0])
	case 2:
		resl, err = r.db.ExecContext(ctx, `
			UPDATE reservations
			SET status = $2, updated_at = NOW()
			WHERE id = $1 AND status IN ($3, $4)`,
			id, to, allowed[0], allowed[1])
	default:
		return 0, errNoAllowedStates
	}
	if err != nil {
		return 0, err
	}
	return resl.RowsAffected()
}

var errNoAllowedStates = errors.New("no allowed source states")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*model.Reservation, error) {
	res := &model.Reservation{}
	err := row.Scan(
		&res.ID, &res.RoomID, &res.UserID, &res.HotelID,
		&res.StartDate, &res.EndDate, &res.NumberOfGuests, &res.TotalAmount,
		&res.SpecialRequest, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}
