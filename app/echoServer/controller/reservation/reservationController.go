package reservation

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/saqi06/Hotel-Management-API/app/echoServer/jwtx"
	rs "github.com/saqi06/Hotel-Management-API/service/reservation"
)

const dateLayout = "2006-01-02"

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Create a reservation
// @Summary      Create reservation
// @Description  Books a room for a date range after checking availability
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateReservationReq  true  "Reservation payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any "validation error / invalid dates"
// @Failure      404  {object}  map[string]any "user, hotel or room not found"
// @Failure      409  {object}  map[string]any "room not available for the dates"
// @Failure      500  {object}  map[string]any
// @Router       /v1/reservations [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	start, end, ok := parseDates(req.StartDate, req.EndDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "dates must be YYYY-MM-DD"})
	}

	actor, _ := jwtx.UserIDFromContext(c)

	res, err := h.Svc.Create(c.Request().Context(), rs.CreateInput{
		UserID:         req.UserID,
		HotelID:        req.HotelID,
		RoomID:         req.RoomID,
		StartDate:      start,
		EndDate:        end,
		NumberOfGuests: req.NumberOfGuests,
		SpecialRequest: req.SpecialRequest,
	})
	if err != nil {
		h.Log.Error("reservation create", "err", err, "actor", actor)
		return h.fail(c, err)
	}

	h.Log.Info("reservation created", "id", res.ID, "room_id", res.RoomID, "actor", actor)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "reservation created successfully",
		"data":    res,
	})
}

// GET /v1/reservations
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("reservation list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/reservations/:id
func (h *Controller) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	res, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": res})
}

// PUT /v1/reservations/:id
func (h *Controller) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	start, end, ok := parseDates(req.StartDate, req.EndDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "dates must be YYYY-MM-DD"})
	}

	res, err := h.Svc.Update(c.Request().Context(), id, rs.UpdateInput{
		StartDate:      start,
		EndDate:        end,
		NumberOfGuests: req.NumberOfGuests,
		SpecialRequest: req.SpecialRequest,
	})
	if err != nil {
		h.Log.Error("reservation update", "id", id, "err", err)
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "reservation updated successfully",
		"data":    res,
	})
}

// POST /v1/reservations/:id/cancel
func (h *Controller) Cancel(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Cancel(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation canceled successfully"})
}

// POST /v1/reservations/:id/confirm
func (h *Controller) Confirm(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Confirm(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation confirmed successfully"})
}

// DELETE /v1/reservations/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("reservation delete", "id", id, "err", err)
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation deleted successfully"})
}

// GET /v1/rooms/:id/availability?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (h *Controller) Availability(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	start, err1 := time.Parse(dateLayout, c.QueryParam("start_date"))
	end, err2 := time.Parse(dateLayout, c.QueryParam("end_date"))
	if err1 != nil || err2 != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "start_date and end_date are required as YYYY-MM-DD"})
	}
	avail, err := h.Svc.IsAvailable(c.Request().Context(), id, start, end)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"room_id": id, "available": avail})
}

func (h *Controller) fail(c echo.Context, err error) error {
	switch rs.Code(err) {
	case rs.ErrValidation, rs.ErrInvalidRange, rs.ErrInvalidRate:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	case rs.ErrUserNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	case rs.ErrHotelNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "hotel not found"})
	case rs.ErrRoomNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
	case rs.ErrReservationNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
	case rs.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"message": "the room is not available for the selected dates"})
	case rs.ErrInvalidTransition:
		return c.JSON(http.StatusConflict, echo.Map{"message": "reservation status does not allow this operation"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

func parseDates(startStr, endStr string) (start, end time.Time, ok bool) {
	start, err1 := time.Parse(dateLayout, startStr)
	end, err2 := time.Parse(dateLayout, endStr)
	return start, end, err1 == nil && err2 == nil
}

func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
