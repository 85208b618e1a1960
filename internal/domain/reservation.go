package domain

import "time"

type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked-in"
	ReservationCheckedOut ReservationStatus = "checked-out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// Active reports whether the reservation still blocks dates on its room.
// Checked-out and cancelled reservations are kept for history but no longer
// count toward availability.
func (s ReservationStatus) Active() bool {
	return s == ReservationConfirmed || s == ReservationCheckedIn
}

type Reservation struct {
	ID         int64             `json:"id"`
	Reference  string            `json:"reference"`
	RoomID     int64             `json:"room_id" validate:"required"`
	GuestName  string            `json:"guest_name" validate:"required"`
	GuestPhone string            `json:"guest_phone,omitempty"`
	GuestEmail string            `json:"guest_email,omitempty"`
	Stay       StayInterval      `json:"stay" gorm:"embedded"`
	Adults     int               `json:"adults" validate:"required,gt=0"`
	Children   int               `json:"children" validate:"gte=0"`
	Status     ReservationStatus `json:"status"`
	Total      float64           `json:"total" validate:"gte=0"`
	Notes      string            `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}
