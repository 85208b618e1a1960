package reservation

import (
	"context"
	"time"

	"hotelops/internal/domain"
)

// ReservationRepository is the storage collaborator for reservations. Create
// is expected to enforce the room overlap constraint atomically; a violated
// constraint surfaces as a pgconn unique/exclusion error.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	Update(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListForRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, cancelledAt *time.Time) error
}

// RoomReader loads the room a booking targets.
type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// StatusSynchronizer reconciles a room's operational status after a
// lifecycle event.
type StatusSynchronizer interface {
	Reconcile(ctx context.Context, roomID int64, intended domain.RoomStatus, today time.Time) error
}

// BoardNotifier pushes reservation events to the front-desk board. Nil
// disables notifications.
type BoardNotifier interface {
	NotifyReservation(r *domain.Reservation)
}

// AvailabilityCache invalidates cached blocked dates after writes. Nil
// disables caching.
type AvailabilityCache interface {
	Invalidate(ctx context.Context, roomID int64)
}
