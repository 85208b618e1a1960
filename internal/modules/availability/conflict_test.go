package availability

import (
	"testing"
	"time"

	"hotelops/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(t *testing.T, in, out time.Time) domain.StayInterval {
	t.Helper()
	s, err := domain.NewStayInterval(in, out)
	require.NoError(t, err)
	return s
}

func reservation(id, roomID int64, status domain.ReservationStatus, in, out time.Time) domain.Reservation {
	return domain.Reservation{
		ID:     id,
		RoomID: roomID,
		Status: status,
		Stay:   domain.StayInterval{CheckIn: in, CheckOut: out},
	}
}

func TestFindConflicts_OverlapRejected(t *testing.T) {
	existing := []domain.Reservation{
		reservation(1, 7, domain.ReservationConfirmed, date(2024, 6, 1), date(2024, 6, 5)),
	}
	candidate := stay(t, date(2024, 6, 3), date(2024, 6, 6))

	conflicts := FindConflicts(7, candidate, existing, 0)

	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(1), conflicts[0].ID)
	assert.False(t, IsAvailable(7, candidate, existing, 0))
}

func TestFindConflicts_BackToBackAccepted(t *testing.T) {
	existing := []domain.Reservation{
		reservation(1, 7, domain.ReservationConfirmed, date(2024, 6, 1), date(2024, 6, 5)),
	}
	candidate := stay(t, date(2024, 6, 5), date(2024, 6, 8))

	assert.Empty(t, FindConflicts(7, candidate, existing, 0))
	assert.True(t, IsAvailable(7, candidate, existing, 0))
}

func TestFindConflicts_IgnoresOtherRoomsAndInactive(t *testing.T) {
	candidate := stay(t, date(2024, 6, 1), date(2024, 6, 5))
	existing := []domain.Reservation{
		reservation(1, 8, domain.ReservationConfirmed, date(2024, 6, 1), date(2024, 6, 5)),
		reservation(2, 7, domain.ReservationCancelled, date(2024, 6, 1), date(2024, 6, 5)),
		reservation(3, 7, domain.ReservationCheckedOut, date(2024, 6, 1), date(2024, 6, 5)),
	}

	assert.Empty(t, FindConflicts(7, candidate, existing, 0))
}

func TestFindConflicts_ExcludesEditedReservation(t *testing.T) {
	existing := []domain.Reservation{
		reservation(42, 7, domain.ReservationConfirmed, date(2024, 6, 1), date(2024, 6, 5)),
	}

	// Extending reservation 42 by one night must not conflict with itself.
	candidate := stay(t, date(2024, 6, 1), date(2024, 6, 6))
	assert.Empty(t, FindConflicts(7, candidate, existing, 42))
	require.Len(t, FindConflicts(7, candidate, existing, 0), 1)
}

func TestBlockedDates_HalfOpenUnion(t *testing.T) {
	existing := []domain.Reservation{
		reservation(1, 7, domain.ReservationConfirmed, date(2024, 6, 1), date(2024, 6, 3)),
		reservation(2, 7, domain.ReservationCheckedIn, date(2024, 6, 3), date(2024, 6, 5)),
		reservation(3, 7, domain.ReservationCancelled, date(2024, 6, 10), date(2024, 6, 12)),
	}

	blocked := BlockedDates(7, existing)

	assert.Equal(t, []time.Time{
		date(2024, 6, 1),
		date(2024, 6, 2),
		date(2024, 6, 3),
		date(2024, 6, 4),
	}, blocked, "checkout of the last stay stays open, cancelled stays block nothing")
}

func TestDayView_PartitionsByDate(t *testing.T) {
	d := date(2024, 6, 5)
	reservations := []domain.Reservation{
		reservation(1, 7, domain.ReservationCheckedIn, date(2024, 6, 1), d),  // checks out today
		reservation(2, 7, domain.ReservationConfirmed, d, date(2024, 6, 8)),  // checks in today
		reservation(3, 9, domain.ReservationCheckedIn, date(2024, 6, 4), date(2024, 6, 7)),
		reservation(4, 9, domain.ReservationCancelled, d, date(2024, 6, 8)),
	}

	summary := DayView(d, reservations)

	require.Len(t, summary.CheckOuts, 1)
	assert.Equal(t, int64(1), summary.CheckOuts[0].ID)
	require.Len(t, summary.CheckIns, 1)
	assert.Equal(t, int64(2), summary.CheckIns[0].ID)
	require.Len(t, summary.StayingOver, 1)
	assert.Equal(t, int64(3), summary.StayingOver[0].ID)
}

func TestDayView_CheckoutNotStayingOver(t *testing.T) {
	d := date(2024, 6, 5)
	reservations := []domain.Reservation{
		reservation(1, 7, domain.ReservationCheckedIn, date(2024, 6, 1), d),
	}

	summary := DayView(d, reservations)

	assert.Len(t, summary.CheckOuts, 1)
	assert.Empty(t, summary.StayingOver, "a stay ending today is a checkout, not a stayover")
	assert.False(t, summary.Covered())
}

func TestDaySummary_CoveredOnSameDayTurnover(t *testing.T) {
	d := date(2024, 6, 5)
	reservations := []domain.Reservation{
		reservation(1, 7, domain.ReservationCheckedOut, date(2024, 6, 1), d),
		reservation(2, 7, domain.ReservationConfirmed, d, date(2024, 6, 8)),
	}

	summary := DayView(d, reservations)
	assert.True(t, summary.Covered(), "incoming stay keeps the room occupied")
}
