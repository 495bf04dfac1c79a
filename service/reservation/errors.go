package reservation

import "errors"

// errors used by controllers

type ErrCode string

const (
	ErrValidation          ErrCode = "VALIDATION"
	ErrInvalidRange        ErrCode = "INVALID_RANGE"
	ErrInvalidRate         ErrCode = "INVALID_RATE"
	ErrUserNotFound        ErrCode = "USER_NOT_FOUND"
	ErrHotelNotFound       ErrCode = "HOTEL_NOT_FOUND"
	ErrRoomNotFound        ErrCode = "ROOM_NOT_FOUND"
	ErrReservationNotFound ErrCode = "RESERVATION_NOT_FOUND"
	ErrConflict            ErrCode = "CONFLICT"
	ErrInvalidTransition   ErrCode = "INVALID_TRANSITION"
	ErrInternal            ErrCode = "INTERNAL"
)

type codedError struct {
	code  ErrCode
	cause error
}

func (e codedError) Error() string {
	if e.cause != nil {
		return string(e.code) + ": " + e.cause.Error()
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }
func (e codedError) Unwrap() error { return e.cause }

func makeErr(c ErrCode) error { return codedError{code: c} }

func wrapErr(c ErrCode, cause error) error { return codedError{code: c, cause: cause} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
