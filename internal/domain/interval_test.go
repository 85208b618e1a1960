package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewStayInterval_RejectsEmptyAndInverted(t *testing.T) {
	_, err := NewStayInterval(date(2024, 6, 5), date(2024, 6, 5))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewStayInterval(date(2024, 6, 6), date(2024, 6, 5))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNewStayInterval_TruncatesTimeOfDay(t *testing.T) {
	in := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	out := time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC)

	s, err := NewStayInterval(in, out)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 1), s.CheckIn)
	assert.Equal(t, date(2024, 6, 3), s.CheckOut)
	assert.Equal(t, 2, s.Nights())
}

func TestStayInterval_OverlapSymmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b StayInterval
		want bool
	}{
		{
			name: "identical",
			a:    StayInterval{date(2024, 6, 1), date(2024, 6, 5)},
			b:    StayInterval{date(2024, 6, 1), date(2024, 6, 5)},
			want: true,
		},
		{
			name: "partial overlap",
			a:    StayInterval{date(2024, 6, 1), date(2024, 6, 5)},
			b:    StayInterval{date(2024, 6, 3), date(2024, 6, 6)},
			want: true,
		},
		{
			name: "contained",
			a:    StayInterval{date(2024, 6, 1), date(2024, 6, 10)},
			b:    StayInterval{date(2024, 6, 3), date(2024, 6, 4)},
			want: true,
		},
		{
			name: "back to back",
			a:    StayInterval{date(2024, 6, 1), date(2024, 6, 5)},
			b:    StayInterval{date(2024, 6, 5), date(2024, 6, 8)},
			want: false,
		},
		{
			name: "disjoint",
			a:    StayInterval{date(2024, 6, 1), date(2024, 6, 3)},
			b:    StayInterval{date(2024, 6, 10), date(2024, 6, 12)},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestStayInterval_ContainsExcludesCheckout(t *testing.T) {
	s := StayInterval{date(2024, 6, 1), date(2024, 6, 5)}

	assert.True(t, s.Contains(date(2024, 6, 1)))
	assert.True(t, s.Contains(date(2024, 6, 4)))
	assert.False(t, s.Contains(date(2024, 6, 5)), "checkout date is not occupied")
	assert.False(t, s.Contains(date(2024, 5, 31)))
}

func TestStayInterval_OneNightStay(t *testing.T) {
	s, err := NewStayInterval(date(2024, 6, 1), date(2024, 6, 2))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Nights())
	assert.Equal(t, []time.Time{date(2024, 6, 1)}, s.Dates())
}
