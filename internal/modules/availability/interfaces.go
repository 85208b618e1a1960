package availability

import (
	"context"
	"time"

	"hotelops/internal/domain"
)

// ReservationReader loads reservation snapshots for availability queries.
type ReservationReader interface {
	ListForRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error)
	ListForDate(ctx context.Context, date time.Time) ([]domain.Reservation, error)
}

// RoomReader loads rooms for availability queries.
type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
}

// BlockedDatesCache is an optional read-through cache for per-room blocked
// dates. A nil cache disables caching entirely.
type BlockedDatesCache interface {
	GetBlockedDates(ctx context.Context, roomID int64) ([]time.Time, bool)
	SetBlockedDates(ctx context.Context, roomID int64, dates []time.Time)
	Invalidate(ctx context.Context, roomID int64)
}
