package reservation

import (
	"context"
	"time"

	"hotelops/internal/domain"
	"hotelops/internal/modules/availability"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	reservations ReservationRepository
	rooms        RoomReader
	sync         StatusSynchronizer
	board        BoardNotifier
	cache        AvailabilityCache

	now func() time.Time
}

func NewService(
	reservations ReservationRepository,
	rooms RoomReader,
	sync StatusSynchronizer,
	board BoardNotifier,
	cache AvailabilityCache,
) *Service {
	return &Service{
		reservations: reservations,
		rooms:        rooms,
		sync:         sync,
		board:        board,
		cache:        cache,
		now:          time.Now,
	}
}

// Create books a room for the requested stay. The availability check runs
// against a snapshot of the room's reservations; the storage overlap
// constraint settles races, and a constraint hit is reported as the same
// ConflictError a plain overlap would be.
func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if req.GuestName == "" || req.Adults < 1 {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.Status.Bookable() {
		return nil, ErrRoomNotBookable
	}

	existing, err := s.reservations.ListForRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if conflicts := availability.FindConflicts(req.RoomID, stay, existing, 0); len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	r := &domain.Reservation{
		Reference:  uuid.New().String(),
		RoomID:     req.RoomID,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		GuestEmail: req.GuestEmail,
		Stay:       stay,
		Adults:     req.Adults,
		Children:   req.Children,
		Status:     domain.ReservationConfirmed,
		Total:      req.Total,
		Notes:      req.Notes,
	}

	if err := s.reservations.Create(ctx, r); err != nil {
		if isOverlapConstraint(err) {
			return nil, s.conflictFromSnapshot(ctx, req.RoomID, stay, 0)
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, r.RoomID)
	}
	if s.board != nil {
		s.board.NotifyReservation(r)
	}
	return r, nil
}

// UpdateStay moves an active reservation to new dates, excluding the
// reservation itself from the conflict check.
func (s *Service) UpdateStay(ctx context.Context, id int64, req UpdateStayRequest) (*domain.Reservation, error) {
	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.Status.Active() {
		return nil, ErrInvalidTransition
	}

	existing, err := s.reservations.ListForRoom(ctx, r.RoomID)
	if err != nil {
		return nil, err
	}
	if conflicts := availability.FindConflicts(r.RoomID, stay, existing, r.ID); len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	r.Stay = stay
	if err := s.reservations.Update(ctx, r); err != nil {
		if isOverlapConstraint(err) {
			return nil, s.conflictFromSnapshot(ctx, r.RoomID, stay, r.ID)
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, r.RoomID)
	}
	if s.board != nil {
		s.board.NotifyReservation(r)
	}
	return r, nil
}

// Transition moves the reservation along the lifecycle graph and reconciles
// the room status the target state implies. An invalid edge is rejected
// before any side effect runs.
func (s *Service) Transition(ctx context.Context, id int64, target domain.ReservationStatus) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(r.Status, target) {
		return nil, ErrInvalidTransition
	}

	var cancelledAt *time.Time
	if target == domain.ReservationCancelled {
		t := s.now()
		cancelledAt = &t
	}

	if err := s.reservations.UpdateStatus(ctx, id, target, cancelledAt); err != nil {
		return nil, err
	}
	r.Status = target
	r.CancelledAt = cancelledAt

	if intended, ok := statusIntent(target); ok {
		if err := s.sync.Reconcile(ctx, r.RoomID, intended, domain.ToDate(s.now())); err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, r.RoomID)
	}
	if s.board != nil {
		s.board.NotifyReservation(r)
	}
	return r, nil
}

func (s *Service) CheckIn(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.Transition(ctx, id, domain.ReservationCheckedIn)
}

func (s *Service) CheckOut(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.Transition(ctx, id, domain.ReservationCheckedOut)
}

func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.Transition(ctx, id, domain.ReservationCancelled)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

func (s *Service) ListForRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	return s.reservations.ListForRoom(ctx, roomID)
}

// conflictFromSnapshot rebuilds the conflict list after the DB constraint
// rejected a write that raced past the advisory check.
func (s *Service) conflictFromSnapshot(ctx context.Context, roomID int64, stay domain.StayInterval, excludeID int64) error {
	existing, err := s.reservations.ListForRoom(ctx, roomID)
	if err != nil {
		return &ConflictError{}
	}
	return &ConflictError{Conflicts: availability.FindConflicts(roomID, stay, existing, excludeID)}
}

func isOverlapConstraint(err error) bool {
	pgErr, ok := err.(*pgconn.PgError)
	if !ok {
		return false
	}
	// 23505 unique violation, 23P01 exclusion violation (daterange overlap).
	return (pgErr.Code == "23505" || pgErr.Code == "23P01") && pgErr.ConstraintName == "idx_no_overlap"
}
