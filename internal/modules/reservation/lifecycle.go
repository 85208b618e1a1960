package reservation

import "hotelops/internal/domain"

// The lifecycle graph:
//
//	confirmed -> checked-in -> checked-out
//	confirmed -> cancelled
//	checked-in -> cancelled
//
// checked-out and cancelled are terminal.
var allowedTransitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationConfirmed: {domain.ReservationCheckedIn, domain.ReservationCancelled},
	domain.ReservationCheckedIn: {domain.ReservationCheckedOut, domain.ReservationCancelled},
}

// CanTransition reports whether the lifecycle graph allows moving a
// reservation from one status to another.
func CanTransition(from, to domain.ReservationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// statusIntent returns the room status a transition target implies. Entering
// checked-in means the room is occupied; leaving the stay (checked-out or
// cancelled) means vacant unless reconciliation finds another stay covering
// today. Entering confirmed implies nothing: booking a future stay must not
// flip the room.
func statusIntent(to domain.ReservationStatus) (domain.RoomStatus, bool) {
	switch to {
	case domain.ReservationCheckedIn:
		return domain.RoomOccupied, true
	case domain.ReservationCheckedOut, domain.ReservationCancelled:
		return domain.RoomVacant, true
	}
	return "", false
}
