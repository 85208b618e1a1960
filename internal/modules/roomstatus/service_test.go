package roomstatus

import (
	"context"
	"testing"
	"time"

	"hotelops/internal/domain"
	"hotelops/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repositories

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) (*domain.Room, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockReservationReader struct {
	mock.Mock
}

func (m *MockReservationReader) ListForRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_SetStatus_ManualOverride(t *testing.T) {
	rooms := new(MockRoomRepository)
	reservations := new(MockReservationReader)

	rooms.On("UpdateStatus", mock.Anything, int64(7), domain.RoomCleaning).
		Return(&domain.Room{ID: 7, Status: domain.RoomCleaning}, nil)

	service := NewService(rooms, reservations, nil)

	room, err := service.SetStatus(context.Background(), 7, domain.RoomCleaning, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.RoomCleaning, room.Status)
	// Manual overrides never consult reservations.
	reservations.AssertNotCalled(t, "ListForRoom", mock.Anything, mock.Anything)
}

func TestService_SetStatus_RejectsUnknownStatus(t *testing.T) {
	service := NewService(new(MockRoomRepository), new(MockReservationReader), nil)

	_, err := service.SetStatus(context.Background(), 7, domain.RoomStatus("free"), 1)

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_Reconcile_SameDayTurnoverStaysOccupied(t *testing.T) {
	rooms := new(MockRoomRepository)
	reservations := new(MockReservationReader)

	today := date(2024, 6, 5)
	reservations.On("ListForRoom", mock.Anything, int64(7)).Return([]domain.Reservation{
		{ID: 1, RoomID: 7, Status: domain.ReservationCheckedOut,
			Stay: domain.StayInterval{CheckIn: date(2024, 6, 1), CheckOut: today}},
		{ID: 2, RoomID: 7, Status: domain.ReservationConfirmed,
			Stay: domain.StayInterval{CheckIn: today, CheckOut: date(2024, 6, 8)}},
	}, nil)
	rooms.On("UpdateStatus", mock.Anything, int64(7), domain.RoomOccupied).
		Return(&domain.Room{ID: 7, Status: domain.RoomOccupied}, nil)

	service := NewService(rooms, reservations, nil)

	err := service.Reconcile(context.Background(), 7, domain.RoomVacant, today)

	require.NoError(t, err)
	rooms.AssertExpectations(t)
}

func TestService_Reconcile_VacantWhenNothingCoversToday(t *testing.T) {
	rooms := new(MockRoomRepository)
	reservations := new(MockReservationReader)

	today := date(2024, 6, 5)
	reservations.On("ListForRoom", mock.Anything, int64(7)).Return([]domain.Reservation{
		{ID: 1, RoomID: 7, Status: domain.ReservationCheckedOut,
			Stay: domain.StayInterval{CheckIn: date(2024, 6, 1), CheckOut: today}},
	}, nil)
	rooms.On("UpdateStatus", mock.Anything, int64(7), domain.RoomVacant).
		Return(&domain.Room{ID: 7, Status: domain.RoomVacant}, nil)

	service := NewService(rooms, reservations, nil)

	err := service.Reconcile(context.Background(), 7, domain.RoomVacant, today)

	require.NoError(t, err)
	rooms.AssertExpectations(t)
}

func TestService_Reconcile_OccupiedIntentSkipsDayView(t *testing.T) {
	rooms := new(MockRoomRepository)
	reservations := new(MockReservationReader)

	rooms.On("UpdateStatus", mock.Anything, int64(7), domain.RoomOccupied).
		Return(&domain.Room{ID: 7, Status: domain.RoomOccupied}, nil)

	service := NewService(rooms, reservations, nil)

	err := service.Reconcile(context.Background(), 7, domain.RoomOccupied, date(2024, 6, 5))

	require.NoError(t, err)
	reservations.AssertNotCalled(t, "ListForRoom", mock.Anything, mock.Anything)
}

func TestService_BulkSetStatus_PartialFailure(t *testing.T) {
	rooms := new(MockRoomRepository)
	reservations := new(MockReservationReader)

	for _, id := range []int64{1, 2, 4, 5} {
		rooms.On("UpdateStatus", mock.Anything, id, domain.RoomMaintenance).
			Return(&domain.Room{ID: id, Status: domain.RoomMaintenance}, nil)
	}
	rooms.On("UpdateStatus", mock.Anything, int64(3), domain.RoomMaintenance).
		Return(nil, repository.ErrNotFound)

	service := NewService(rooms, reservations, nil)

	outcomes := service.BulkSetStatus(context.Background(), []int64{1, 2, 3, 4, 5}, domain.RoomMaintenance, 1)

	require.Len(t, outcomes, 5)
	var ok, failed int
	for _, o := range outcomes {
		if o.OK {
			ok++
		} else {
			failed++
			assert.Equal(t, int64(3), o.RoomID)
			assert.NotEmpty(t, o.Error)
		}
	}
	assert.Equal(t, 4, ok)
	assert.Equal(t, 1, failed)
}
