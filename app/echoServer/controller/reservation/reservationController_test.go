package reservation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/saqi06/Hotel-Management-API/model"
	rs "github.com/saqi06/Hotel-Management-API/service/reservation"
)

type svcStub struct {
	createFn func(ctx context.Context, in rs.CreateInput) (*model.Reservation, error)
}

func (s *svcStub) Create(ctx context.Context, in rs.CreateInput) (*model.Reservation, error) {
	if s.createFn == nil {
		return nil, errors.New("unexpected Create")
	}
	return s.createFn(ctx, in)
}
func (s *svcStub) Update(context.Context, int64, rs.UpdateInput) (*model.Reservation, error) {
	return nil, errors.New("unexpected Update")
}
func (s *svcStub) Cancel(context.Context, int64) error  { return errors.New("unexpected Cancel") }
func (s *svcStub) Confirm(context.Context, int64) error { return errors.New("unexpected Confirm") }
func (s *svcStub) Delete(context.Context, int64) error  { return errors.New("unexpected Delete") }
func (s *svcStub) Get(context.Context, int64) (*model.Reservation, error) {
	return nil, errors.New("unexpected Get")
}
func (s *svcStub) List(context.Context) ([]model.Reservation, error) {
	return nil, errors.New("unexpected List")
}
func (s *svcStub) IsAvailable(context.Context, int64, time.Time, time.Time) (bool, error) {
	return false, errors.New("unexpected IsAvailable")
}

func newController(svc rs.Service) *Controller {
	return &Controller{Svc: svc, V: validator.New(), Log: slog.Default()}
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestCreateHandler_Success(t *testing.T) {
	svc := &svcStub{
		createFn: func(ctx context.Context, in rs.CreateInput) (*model.Reservation, error) {
			if !in.StartDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
				return nil, errors.New("bad start date")
			}
			return &model.Reservation{ID: 7, RoomID: in.RoomID, Status: model.ReservationPending}, nil
		},
	}
	rec := postJSON(t, newController(svc).Create,
		`{"user_id":1,"hotel_id":1,"room_id":1,"start_date":"2024-03-01","end_date":"2024-03-05","number_of_guests":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"id":7`)
}

func TestCreateHandler_RejectsUnparsableDates(t *testing.T) {
	rec := postJSON(t, newController(&svcStub{}).Create,
		`{"user_id":1,"hotel_id":1,"room_id":1,"start_date":"01-03-2024","end_date":"2024-03-05","number_of_guests":2}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateHandler_RejectsBadJSON(t *testing.T) {
	rec := postJSON(t, newController(&svcStub{}).Create, `{"user_id":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateHandler_InternalError(t *testing.T) {
	svc := &svcStub{
		createFn: func(ctx context.Context, in rs.CreateInput) (*model.Reservation, error) {
			return nil, errors.New("boom")
		},
	}
	rec := postJSON(t, newController(svc).Create,
		`{"user_id":1,"hotel_id":1,"room_id":1,"start_date":"2024-03-01","end_date":"2024-03-05","number_of_guests":2}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
