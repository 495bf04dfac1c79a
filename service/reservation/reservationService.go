package reservation

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/saqi06/Hotel-Management-API/model"
)

// Store interfaces live here so the service can be tested against func-field
// mocks; the repository packages satisfy them.

type Store interface {
	CountBlocking(ctx context.Context, tx *sql.Tx, roomID int64, start, end time.Time, excludeID int64) (int64, error)
	Insert(ctx context.Context, tx *sql.Tx, res *model.Reservation) error
	UpdateStay(ctx context.Context, tx *sql.Tx, res *model.Reservation) error
	Delete(ctx context.Context, tx *sql.Tx, id int64) (int64, error)
	GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Reservation, error)
	Get(ctx context.Context, id int64) (*model.Reservation, error)
	List(ctx context.Context) ([]model.Reservation, error)
	SetStatusIf(ctx context.Context, id int64, to model.ReservationStatus, allowed []model.ReservationStatus) (int64, error)
}

type RoomStore interface {
	LockForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Room, error)
	ByID(ctx context.Context, id int64) (*model.Room, error)
}

type UserStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type HotelStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type CreateInput struct {
	UserID         int64
	HotelID        int64
	RoomID         int64
	StartDate      time.Time
	EndDate        time.Time
	NumberOfGuests int
	SpecialRequest *string
}

type UpdateInput struct {
	StartDate      time.Time
	EndDate        time.Time
	NumberOfGuests *int    // nil keeps the stored value
	SpecialRequest *string // nil keeps the stored value
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (*model.Reservation, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*model.Reservation, error)
	Cancel(ctx context.Context, id int64) error
	Confirm(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*model.Reservation, error)
	List(ctx context.Context) ([]model.Reservation, error)
	IsAvailable(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
}

type service struct {
	db     *sql.DB
	r      Store
	rooms  RoomStore
	users  UserStore
	hotels HotelStore
	pub    Publisher
	log    *slog.Logger
}

func New(db *sql.DB, r Store, rooms RoomStore, users UserStore, hotels HotelStore, pub Publisher, log *slog.Logger) Service {
	return &service{db: db, r: r, rooms: rooms, users: users, hotels: hotels, pub: pub, log: log}
}

// Create books a room after confirming it is free for the whole stay. The
// room row is locked before the availability count so two concurrent creates
// for the same room cannot both pass the check.
func (s *service) Create(ctx context.Context, in CreateInput) (res *model.Reservation, err error) {
	dr, err := model.NewDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, wrapErr(ErrInvalidRange, err)
	}
	if in.NumberOfGuests <= 0 {
		return nil, makeErr(ErrValidation)
	}

	ok, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		return nil, wrapErr(ErrInternal, err)
	}
	if !ok {
		return nil, makeErr(ErrUserNotFound)
	}
	ok, err = s.hotels.Exists(ctx, in.HotelID)
	if err != nil {
		return nil, wrapErr(ErrInternal, err)
	}
	if !ok {
		return nil, makeErr(ErrHotelNotFound)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr(ErrInternal, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	room, err := s.rooms.LockForUpdate(ctx, tx, in.RoomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrRoomNotFound)
		}
		return nil, wrapErr(ErrInternal, err)
	}

	n, err := s.r.CountBlocking(ctx, tx, room.ID, dr.Start, dr.End, 0)
	if err != nil {
		return nil, wrapErr(ErrInternal, err)
	}
	if n > 0 {
		return nil, makeErr(ErrConflict)
	}

	total, err := ComputeTotal(room.Price, dr)
	if err != nil {
		return nil, err
	}

	res = &model.Reservation{
		RoomID:         room.ID,
		UserID:         in.UserID,
		HotelID:        in.HotelID,
		StartDate:      dr.Start,
		EndDate:        dr.End,
		NumberOfGuests: in.NumberOfGuests,
		TotalAmount:    total,
		SpecialRequest: in.SpecialRequest,
		Status:         model.ReservationPending,
	}
	if err = s.r.Insert(ctx, tx, res); err != nil {
		return nil, wrapErr(ErrInternal, err)
	}
	if err = tx.Commit(); err != nil {
		return nil, wrapErr(ErrInternal, err)
	}

	s.publish(ctx, EventCreated, res.ID, res.RoomID, res.HotelID)
	return res, nil
}

// Update moves a stay to new dates. The availability count excludes the
// reservation itself, so shrinking or shifting within its own prior range is
// not a conflict. Total is recomputed against the room's current rate.
func (s *service) Update(ctx context.Context, id int64, in UpdateInput) (res *model.Reservation, err error) {
	dr, err := model.NewDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, wrapErr(ErrInvalidRange, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr(ErrInternal, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err = s.r.GetForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrReservationNotFound)
		}
		return nil, wrapErr(ErrInternal, err)
	}

	room, err := s.rooms.LockForUpdate(ctx, tx, res.RoomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrRoomNotFound)
		}
		return nil, wrapErr(ErrInternal, err)
	}

	n, err := s.r.CountBlocking(ctx, tx, room.ID, dr.Start, dr.End, res.ID)
	if err != nil {
		return nil, wrapErr(ErrInternal, err)
	}
	if n > 0 {
		return nil, makeErr(ErrConflict)
	}

	total, err := ComputeTotal(room.Price, dr)
	if err != nil {
		return nil, err
	}

	res.StartDate = dr.Start
	res.EndDate = dr.End
	res.TotalAmount = total
	if in.NumberOfGuests != nil {
		if *in.NumberOfGuests <= 0 {
			return nil, makeErr(ErrValidation)
		}
		res.NumberOfGuests = *in.NumberOfGuests
	}
	if in.SpecialRequest != nil {
		res.SpecialRequest = in.SpecialRequest
	}

	if err = s.r.UpdateStay(ctx, tx, res); err != nil {
		return nil, wrapErr(ErrInternal, err)
	}
	if err = tx.Commit(); err != nil {
		return nil, wrapErr(ErrInternal, err)
	}
	return res, nil
}

func (s *service) Cancel(ctx context.Context, id int64) error {
	n, err := s.r.SetStatusIf(ctx, id, model.ReservationCanceled,
		[]model.ReservationStatus{model.ReservationPending, model.ReservationConfirmed})
	if err != nil {
		return wrapErr(ErrInternal, err)
	}
	if n == 0 {
		return s.transitionFailure(ctx, id)
	}
	s.publishFor(ctx, EventCanceled, id)
	return nil
}

func (s *service) Confirm(ctx context.Context, id int64) error {
	n, err := s.r.SetStatusIf(ctx, id, model.ReservationConfirmed,
		[]model.ReservationStatus{model.ReservationPending})
	if err != nil {
		return wrapErr(ErrInternal, err)
	}
	if n == 0 {
		return s.transitionFailure(ctx, id)
	}
	s.publishFor(ctx, EventConfirmed, id)
	return nil
}

// transitionFailure tells apart a missing reservation from one in a state
// the transition does not allow.
func (s *service) transitionFailure(ctx context.Context, id int64) error {
	if _, err := s.r.Get(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrReservationNotFound)
		}
		return wrapErr(ErrInternal, err)
	}
	return makeErr(ErrInvalidTransition)
}

func (s *service) Delete(ctx context.Context, id int64) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr(ErrInternal, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := s.r.GetForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrReservationNotFound)
		}
		return wrapErr(ErrInternal, err)
	}

	if _, err = s.r.Delete(ctx, tx, id); err != nil {
		return wrapErr(ErrInternal, err)
	}
	if err = tx.Commit(); err != nil {
		return wrapErr(ErrInternal, err)
	}
	s.publish(ctx, EventDeleted, id, res.RoomID, res.HotelID)
	return nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.Reservation, error) {
	res, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrReservationNotFound)
		}
		return nil, wrapErr(ErrInternal, err)
	}
	return res, nil
}

func (s *service) List(ctx context.Context) ([]model.Reservation, error) {
	out, err := s.r.List(ctx)
	if err != nil {
		return nil, wrapErr(ErrInternal, err)
	}
	return out, nil
}

// IsAvailable answers the read-only availability question. It runs in a
// read-only transaction and takes no locks; callers wanting a guarantee must
// go through Create or Update, where the count is serialized with the write.
func (s *service) IsAvailable(ctx context.Context, roomID int64, start, end time.Time) (avail bool, err error) {
	dr, err := model.NewDateRange(start, end)
	if err != nil {
		return false, wrapErr(ErrInvalidRange, err)
	}

	if _, err = s.rooms.ByID(ctx, roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, makeErr(ErrRoomNotFound)
		}
		return false, wrapErr(ErrInternal, err)
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return false, wrapErr(ErrInternal, err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := s.r.CountBlocking(ctx, tx, roomID, dr.Start, dr.End, 0)
	if err != nil {
		return false, wrapErr(ErrInternal, err)
	}
	return n == 0, nil
}

// publishFor looks the reservation back up so status-change events carry the
// room and hotel ids. The lookup is best effort like the publish itself.
func (s *service) publishFor(ctx context.Context, t EventType, id int64) {
	if s.pub == nil {
		return
	}
	var roomID, hotelID int64
	if res, err := s.r.Get(ctx, id); err == nil {
		roomID, hotelID = res.RoomID, res.HotelID
	}
	s.publish(ctx, t, id, roomID, hotelID)
}

func (s *service) publish(ctx context.Context, t EventType, id, roomID, hotelID int64) {
	if s.pub == nil {
		return
	}
	ev := Event{Type: t, ReservationID: id, RoomID: roomID, HotelID: hotelID, OccurredAt: time.Now().UTC()}
	if err := s.pub.Publish(ctx, ev); err != nil && s.log != nil {
		s.log.Warn("event publish failed", "type", t, "reservation_id", id, "err", err)
	}
}
