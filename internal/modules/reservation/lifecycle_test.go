package reservation

import (
	"testing"

	"hotelops/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_GraphClosure(t *testing.T) {
	states := []domain.ReservationStatus{
		domain.ReservationConfirmed,
		domain.ReservationCheckedIn,
		domain.ReservationCheckedOut,
		domain.ReservationCancelled,
	}

	allowed := map[[2]domain.ReservationStatus]bool{
		{domain.ReservationConfirmed, domain.ReservationCheckedIn}:  true,
		{domain.ReservationCheckedIn, domain.ReservationCheckedOut}: true,
		{domain.ReservationConfirmed, domain.ReservationCancelled}:  true,
		{domain.ReservationCheckedIn, domain.ReservationCancelled}:  true,
	}

	for _, from := range states {
		for _, to := range states {
			want := allowed[[2]domain.ReservationStatus{from, to}]
			assert.Equalf(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestStatusIntent(t *testing.T) {
	status, ok := statusIntent(domain.ReservationCheckedIn)
	assert.True(t, ok)
	assert.Equal(t, domain.RoomOccupied, status)

	status, ok = statusIntent(domain.ReservationCheckedOut)
	assert.True(t, ok)
	assert.Equal(t, domain.RoomVacant, status)

	status, ok = statusIntent(domain.ReservationCancelled)
	assert.True(t, ok)
	assert.Equal(t, domain.RoomVacant, status)

	_, ok = statusIntent(domain.ReservationConfirmed)
	assert.False(t, ok, "booking a future stay must not touch the room status")
}
