package availability

import (
	"sort"
	"time"

	"hotelops/internal/domain"
)

// FindConflicts returns every reservation on the room whose stay overlaps the
// candidate interval. Cancelled and checked-out reservations never conflict,
// and excludeID skips the reservation currently being edited (0 skips nothing).
func FindConflicts(roomID int64, candidate domain.StayInterval, reservations []domain.Reservation, excludeID int64) []domain.Reservation {
	var conflicts []domain.Reservation
	for _, r := range reservations {
		if r.RoomID != roomID || !r.Status.Active() {
			continue
		}
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if candidate.Overlaps(r.Stay) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}

// IsAvailable reports whether the candidate interval is free of conflicts.
func IsAvailable(roomID int64, candidate domain.StayInterval, reservations []domain.Reservation, excludeID int64) bool {
	return len(FindConflicts(roomID, candidate, reservations, excludeID)) == 0
}

// BlockedDates returns the sorted union of dates occupied by the room's
// active reservations. Checkout dates are not blocked: a departing stay
// leaves its checkout day open for a new check-in.
func BlockedDates(roomID int64, reservations []domain.Reservation) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, r := range reservations {
		if r.RoomID != roomID || !r.Status.Active() {
			continue
		}
		for _, d := range r.Stay.Dates() {
			seen[d] = struct{}{}
		}
	}

	out := make([]time.Time, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// DaySummary partitions the reservations touching a single date.
type DaySummary struct {
	Date        time.Time            `json:"date"`
	CheckIns    []domain.Reservation `json:"check_ins"`
	CheckOuts   []domain.Reservation `json:"check_outs"`
	StayingOver []domain.Reservation `json:"staying_over"`
}

// DayView groups reservations by how they touch the given date: starting on
// it, ending on it, or spanning through it. A reservation whose checkout
// equals the date is reported only as a checkout. Cancelled reservations are
// ignored; checked-out ones appear only as checkouts of that day.
func DayView(date time.Time, reservations []domain.Reservation) DaySummary {
	d := domain.ToDate(date)
	summary := DaySummary{Date: d}

	for _, r := range reservations {
		if r.Status == domain.ReservationCancelled {
			continue
		}
		switch {
		case r.Stay.CheckOut.Equal(d):
			summary.CheckOuts = append(summary.CheckOuts, r)
		case !r.Status.Active():
			continue
		case r.Stay.CheckIn.Equal(d):
			summary.CheckIns = append(summary.CheckIns, r)
		case r.Stay.Contains(d):
			summary.StayingOver = append(summary.StayingOver, r)
		}
	}
	return summary
}

// Covered reports whether any active reservation occupies the date, meaning
// the room should read as occupied. Same-day turnover counts: a check-in on
// the date covers it even while the outgoing stay only checks out.
func (s DaySummary) Covered() bool {
	for _, r := range s.CheckIns {
		if r.Status.Active() {
			return true
		}
	}
	for _, r := range s.StayingOver {
		if r.Status.Active() {
			return true
		}
	}
	return false
}
