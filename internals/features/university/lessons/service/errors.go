// file: internals/features/university/lessons/service/errors.go
package service

import "net/http"

/* =======================================================
   ScheduleError — error domain ber-tag, dikembalikan (bukan
   di-panic) dan dipetakan ke status HTTP di controller.
   ======================================================= */

type ErrorKind string

const (
	KindEntityNotFound        ErrorKind = "entity_not_found"
	KindInvalidInterval       ErrorKind = "invalid_interval"
	KindOutsideOperatingHours ErrorKind = "outside_operating_hours"
	KindCapacityExceeded      ErrorKind = "capacity_exceeded"
	KindInvalidOnlineLink     ErrorKind = "invalid_online_link"
	KindSlotAlreadyBooked     ErrorKind = "slot_already_booked"
)

type ScheduleError struct {
	Kind    ErrorKind
	Message string
}

func (e *ScheduleError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *ScheduleError) HTTPStatus() int {
	switch e.Kind {
	case KindEntityNotFound:
		return http.StatusNotFound
	case KindSlotAlreadyBooked:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func newErr(kind ErrorKind, msg string) *ScheduleError {
	return &ScheduleError{Kind: kind, Message: msg}
}
