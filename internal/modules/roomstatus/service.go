package roomstatus

import (
	"context"
	"log"
	"time"

	"hotelops/internal/domain"
	"hotelops/internal/modules/availability"
)

// Outcome is the per-room result of a bulk status change.
type Outcome struct {
	RoomID int64  `json:"room_id"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

type Service struct {
	rooms        RoomRepository
	reservations ReservationReader
	board        BoardNotifier
}

func NewService(rooms RoomRepository, reservations ReservationReader, board BoardNotifier) *Service {
	return &Service{
		rooms:        rooms,
		reservations: reservations,
		board:        board,
	}
}

// SetStatus is a direct staff override. It is always allowed regardless of
// reservation state and stands until the next reservation-driven
// reconciliation.
func (s *Service) SetStatus(ctx context.Context, roomID int64, status domain.RoomStatus, actingUserID int64) (*domain.Room, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	room, err := s.rooms.UpdateStatus(ctx, roomID, status)
	if err != nil {
		return nil, err
	}

	log.Printf("room_status_set room_id=%d status=%s user_id=%d", roomID, status, actingUserID)
	if s.board != nil {
		s.board.NotifyRoomStatus(room)
	}
	return room, nil
}

// Reconcile applies the status a lifecycle event intends, re-derived against
// the room's current reservations. A checkout on a day with a same-day
// check-in keeps the room occupied instead of flipping it to vacant and back.
func (s *Service) Reconcile(ctx context.Context, roomID int64, intended domain.RoomStatus, today time.Time) error {
	status := intended
	if intended == domain.RoomVacant {
		reservations, err := s.reservations.ListForRoom(ctx, roomID)
		if err != nil {
			return err
		}
		if availability.DayView(today, reservations).Covered() {
			status = domain.RoomOccupied
		}
	}

	room, err := s.rooms.UpdateStatus(ctx, roomID, status)
	if err != nil {
		return err
	}

	log.Printf("room_status_reconciled room_id=%d intended=%s applied=%s", roomID, intended, status)
	if s.board != nil {
		s.board.NotifyRoomStatus(room)
	}
	return nil
}

// BulkSetStatus applies SetStatus to each room independently. One room's
// failure never aborts the rest; the caller gets a per-room outcome list.
func (s *Service) BulkSetStatus(ctx context.Context, roomIDs []int64, status domain.RoomStatus, actingUserID int64) []Outcome {
	outcomes := make([]Outcome, 0, len(roomIDs))
	for _, id := range roomIDs {
		if _, err := s.SetStatus(ctx, id, status, actingUserID); err != nil {
			outcomes = append(outcomes, Outcome{RoomID: id, OK: false, Error: err.Error()})
			continue
		}
		outcomes = append(outcomes, Outcome{RoomID: id, OK: true})
	}
	return outcomes
}
