package hotel

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/saqi06/Hotel-Management-API/model"
	hotelsvc "github.com/saqi06/Hotel-Management-API/service/hotel"
)

type Controller struct {
	Svc hotelsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/hotels
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateHotelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	created, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("hotel create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": created})
}

// GET /v1/hotels
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("hotel list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/hotels/:id
func (h *Controller) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	hotel, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, hotelsvc.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "hotel not found"})
		}
		h.Log.Error("hotel get", "id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": hotel})
}

// POST /v1/hotels/:id/rooms
func (h *Controller) AddRoom(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.CreateRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	rm, err := h.Svc.AddRoom(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, hotelsvc.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "hotel not found"})
		}
		h.Log.Error("room create", "hotel_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": rm})
}

// GET /v1/hotels/:id/rooms
func (h *Controller) Rooms(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	rows, err := h.Svc.Rooms(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, hotelsvc.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "hotel not found"})
		}
		h.Log.Error("room list", "hotel_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/rooms/:id
func (h *Controller) Room(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	rm, err := h.Svc.Room(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, hotelsvc.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
		}
		h.Log.Error("room get", "id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rm})
}

// POST /v1/rooms/:id/bookings
// Seeds an external commitment (front-desk booking) against a room.
func (h *Controller) AddBooking(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	start, err1 := time.Parse("2006-01-02", req.StartDate)
	end, err2 := time.Parse("2006-01-02", req.EndDate)
	if err1 != nil || err2 != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "dates must be YYYY-MM-DD"})
	}

	b, err := h.Svc.AddBooking(c.Request().Context(), id, start, end, req.Active)
	if err != nil {
		switch {
		case errors.Is(err, hotelsvc.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
		case errors.Is(err, hotelsvc.ErrBadDates):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		h.Log.Error("booking create", "room_id", id, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": b})
}

func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
