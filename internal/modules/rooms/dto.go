package rooms

import "hotelops/internal/domain"

type CreateRoomRequest struct {
	Number     string          `json:"number" binding:"required"`
	Floor      int             `json:"floor"`
	RoomType   domain.RoomType `json:"room_type" binding:"required"`
	BedType    domain.BedType  `json:"bed_type"`
	Capacity   int             `json:"capacity" binding:"required,gt=0"`
	AccessCode string          `json:"access_code"`
}
