package domain

import (
	"errors"
	"time"
)

var ErrInvalidInterval = errors.New("check-out must be after check-in")

// StayInterval is a half-open range of calendar dates [CheckIn, CheckOut).
// The checkout date is not occupied by the stay, so another reservation may
// check in on the same day a previous guest checks out.
type StayInterval struct {
	CheckIn  time.Time `json:"check_in" gorm:"column:check_in"`
	CheckOut time.Time `json:"check_out" gorm:"column:check_out"`
}

// NewStayInterval normalizes both times to calendar dates (midnight UTC) and
// rejects empty or inverted ranges. A stay spans at least one night.
func NewStayInterval(checkIn, checkOut time.Time) (StayInterval, error) {
	in := ToDate(checkIn)
	out := ToDate(checkOut)
	if !in.Before(out) {
		return StayInterval{}, ErrInvalidInterval
	}
	return StayInterval{CheckIn: in, CheckOut: out}, nil
}

// ToDate truncates t to its calendar date at midnight UTC.
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether two stays share at least one occupied night.
// Back-to-back stays (one checkout equal to the other check-in) do not overlap.
func (s StayInterval) Overlaps(other StayInterval) bool {
	return s.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(s.CheckOut)
}

// Contains reports whether the stay occupies the given date. The checkout
// date itself is not occupied.
func (s StayInterval) Contains(date time.Time) bool {
	d := ToDate(date)
	return !d.Before(s.CheckIn) && d.Before(s.CheckOut)
}

// Nights returns the number of nights between check-in and check-out.
func (s StayInterval) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn).Hours() / 24)
}

// Dates returns every occupied date of the stay in order, checkout excluded.
func (s StayInterval) Dates() []time.Time {
	out := make([]time.Time, 0, s.Nights())
	for d := s.CheckIn; d.Before(s.CheckOut); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
