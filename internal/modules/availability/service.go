package availability

import (
	"context"
	"time"

	"hotelops/internal/domain"
)

type Result struct {
	RoomID    int64                `json:"room_id"`
	Available bool                 `json:"available"`
	Conflicts []domain.Reservation `json:"conflicts,omitempty"`
}

type Service struct {
	reservations ReservationReader
	rooms        RoomReader
	cache        BlockedDatesCache
}

func NewService(reservations ReservationReader, rooms RoomReader, cache BlockedDatesCache) *Service {
	return &Service{
		reservations: reservations,
		rooms:        rooms,
		cache:        cache,
	}
}

// CheckRoomAvailability answers whether the room is free for the candidate
// interval, carrying the conflicting reservations when it is not. excludeID
// skips one reservation (the one being edited), 0 skips nothing.
func (s *Service) CheckRoomAvailability(ctx context.Context, roomID int64, candidate domain.StayInterval, excludeID int64) (*Result, error) {
	existing, err := s.reservations.ListForRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	conflicts := FindConflicts(roomID, candidate, existing, excludeID)
	return &Result{
		RoomID:    roomID,
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// ListAvailableRooms returns the hotel's rooms bookable for the interval.
// Rooms under maintenance or cleaning are dropped before any date math.
func (s *Service) ListAvailableRooms(ctx context.Context, hotelID int64, candidate domain.StayInterval) ([]domain.Room, error) {
	rooms, err := s.rooms.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	available := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if !room.Status.Bookable() {
			continue
		}
		existing, err := s.reservations.ListForRoom(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		if IsAvailable(room.ID, candidate, existing, 0) {
			available = append(available, room)
		}
	}
	return available, nil
}

// GetBlockedDates returns the dates a calendar picker should disable for the
// room, served from cache when possible.
func (s *Service) GetBlockedDates(ctx context.Context, roomID int64) ([]time.Time, error) {
	if s.cache != nil {
		if dates, ok := s.cache.GetBlockedDates(ctx, roomID); ok {
			return dates, nil
		}
	}

	existing, err := s.reservations.ListForRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	dates := BlockedDates(roomID, existing)
	if s.cache != nil {
		s.cache.SetBlockedDates(ctx, roomID, dates)
	}
	return dates, nil
}

// GetDayView loads every reservation touching the date and partitions it
// into check-ins, check-outs and staying-over groups.
func (s *Service) GetDayView(ctx context.Context, date time.Time) (*DaySummary, error) {
	reservations, err := s.reservations.ListForDate(ctx, domain.ToDate(date))
	if err != nil {
		return nil, err
	}
	summary := DayView(date, reservations)
	return &summary, nil
}
