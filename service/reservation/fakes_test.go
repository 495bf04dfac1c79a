package reservation

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/saqi06/Hotel-Management-API/model"
)

// In-memory fakes mirroring the store queries, including the quirk that the
// exclude id filter hits the bookings rows too.

type fakeStore struct {
	bookings     []model.Booking
	reservations map[int64]*model.Reservation
	nextID       int64

	insertErr error
	updateErr error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{reservations: map[int64]*model.Reservation{}}
}

func (f *fakeStore) put(res model.Reservation) {
	if res.ID > f.nextID {
		f.nextID = res.ID
	}
	cp := res
	f.reservations[res.ID] = &cp
}

func (f *fakeStore) CountBlocking(_ context.Context, _ *sql.Tx, roomID int64, start, end time.Time, excludeID int64) (int64, error) {
	cand := model.DateRange{Start: start, End: end}
	var n int64
	for _, b := range f.bookings {
		if b.RoomID != roomID || b.Status != model.BookingActive {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if cand.Overlaps(model.DateRange{Start: b.StartDate, End: b.EndDate}) {
			n++
		}
	}
	for _, r := range f.reservations {
		if r.RoomID != roomID || !r.Status.Blocking() {
			continue
		}
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if cand.Overlaps(r.Range()) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) Insert(_ context.Context, _ *sql.Tx, res *model.Reservation) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now().UTC()
	res.UpdatedAt = res.CreatedAt
	cp := *res
	f.reservations[res.ID] = &cp
	return nil
}

func (f *fakeStore) UpdateStay(_ context.Context, _ *sql.Tx, res *model.Reservation) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	res.UpdatedAt = time.Now().UTC()
	cp := *res
	f.reservations[res.ID] = &cp
	return nil
}

func (f *fakeStore) Delete(_ context.Context, _ *sql.Tx, id int64) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	if _, ok := f.reservations[id]; !ok {
		return 0, nil
	}
	delete(f.reservations, id)
	return 1, nil
}

func (f *fakeStore) GetForUpdate(ctx context.Context, _ *sql.Tx, id int64) (*model.Reservation, error) {
	return f.Get(ctx, id)
}

func (f *fakeStore) Get(_ context.Context, id int64) (*model.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStore) List(_ context.Context) ([]model.Reservation, error) {
	out := make([]model.Reservation, 0, len(f.reservations))
	for _, r := range f.reservations {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) SetStatusIf(_ context.Context, id int64, to model.ReservationStatus, allowed []model.ReservationStatus) (int64, error) {
	r, ok := f.reservations[id]
	if !ok {
		return 0, nil
	}
	for _, a := range allowed {
		if r.Status == a {
			r.Status = to
			r.UpdatedAt = time.Now().UTC()
			return 1, nil
		}
	}
	return 0, nil
}

type fakeRooms struct{ rooms map[int64]*model.Room }

func (f *fakeRooms) LockForUpdate(ctx context.Context, _ *sql.Tx, id int64) (*model.Room, error) {
	return f.ByID(ctx, id)
}

func (f *fakeRooms) ByID(_ context.Context, id int64) (*model.Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *rm
	return &cp, nil
}

type fakeUsers struct{ ids map[int64]bool }

func (f *fakeUsers) Exists(_ context.Context, id int64) (bool, error) { return f.ids[id], nil }

type fakeHotels struct{ ids map[int64]bool }

func (f *fakeHotels) Exists(_ context.Context, id int64) (bool, error) { return f.ids[id], nil }

type fakePub struct{ events []Event }

func (f *fakePub) Publish(_ context.Context, v any) error {
	if ev, ok := v.(Event); ok {
		f.events = append(f.events, ev)
	}
	return nil
}
