package reservation

import (
	"errors"
	"fmt"

	"hotelops/internal/domain"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
	ErrRoomNotBookable   = errors.New("room is not bookable in its current status")
)

// ConflictError is returned when a candidate stay overlaps active
// reservations on the same room. It carries the conflicts so callers can
// show exactly what blocks the booking.
type ConflictError struct {
	Conflicts []domain.Reservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room not available: %d conflicting reservation(s)", len(e.Conflicts))
}
