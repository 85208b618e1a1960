package roomstatus

import (
	"context"

	"hotelops/internal/domain"
)

// RoomRepository writes room status. UpdateStatus must be a single atomic
// row update so concurrent writers on the same room cannot interleave.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) (*domain.Room, error)
}

// ReservationReader loads the room's reservations for reconciliation.
type ReservationReader interface {
	ListForRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error)
}

// BoardNotifier pushes room status changes to the front-desk board. Nil
// disables notifications.
type BoardNotifier interface {
	NotifyRoomStatus(room *domain.Room)
}
