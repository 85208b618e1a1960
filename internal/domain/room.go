package domain

import "time"

type RoomStatus string

const (
	RoomVacant      RoomStatus = "vacant"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomCleaning    RoomStatus = "cleaning"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomVacant, RoomOccupied, RoomMaintenance, RoomCleaning:
		return true
	}
	return false
}

// Bookable reports whether a room in this status can accept new reservations.
// Rooms under maintenance or cleaning are never bookable regardless of dates.
func (s RoomStatus) Bookable() bool {
	return s == RoomVacant || s == RoomOccupied
}

type RoomType string

const (
	RoomStandard RoomType = "standard"
	RoomDeluxe   RoomType = "deluxe"
	RoomSuite    RoomType = "suite"
	RoomFamily   RoomType = "family"
)

type BedType string

const (
	BedSingle BedType = "single"
	BedDouble BedType = "double"
	BedTwin   BedType = "twin"
	BedQueen  BedType = "queen"
	BedKing   BedType = "king"
)

type Room struct {
	ID         int64      `json:"id"`
	HotelID    int64      `json:"hotel_id"`
	Number     string     `json:"number" validate:"required" gorm:"uniqueIndex:idx_rooms_number"`
	Floor      int        `json:"floor"`
	RoomType   RoomType   `json:"room_type" validate:"required"`
	BedType    BedType    `json:"bed_type"`
	Capacity   int        `json:"capacity" validate:"required,gt=0"`
	Status     RoomStatus `json:"status"`
	AccessCode string     `json:"access_code,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
