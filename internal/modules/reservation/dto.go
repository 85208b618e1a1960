package reservation

import (
	"time"

	"hotelops/internal/domain"
)

const dateLayout = "2006-01-02"

type CreateReservationRequest struct {
	RoomID     int64   `json:"room_id" binding:"required"`
	GuestName  string  `json:"guest_name" binding:"required"`
	GuestPhone string  `json:"guest_phone"`
	GuestEmail string  `json:"guest_email"`
	CheckIn    string  `json:"check_in" binding:"required"`
	CheckOut   string  `json:"check_out" binding:"required"`
	Adults     int     `json:"adults" binding:"required,gt=0"`
	Children   int     `json:"children" binding:"gte=0"`
	Total      float64 `json:"total" binding:"gte=0"`
	Notes      string  `json:"notes"`
}

type UpdateStayRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

// parseStay turns a pair of YYYY-MM-DD strings into a validated interval.
func parseStay(checkIn, checkOut string) (domain.StayInterval, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return domain.StayInterval{}, domain.ErrInvalidInterval
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return domain.StayInterval{}, domain.ErrInvalidInterval
	}
	return domain.NewStayInterval(in, out)
}
