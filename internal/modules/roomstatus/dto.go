package roomstatus

import "hotelops/internal/domain"

type SetStatusRequest struct {
	Status domain.RoomStatus `json:"status" binding:"required"`
}

type BulkSetStatusRequest struct {
	RoomIDs []int64           `json:"room_ids" binding:"required,min=1"`
	Status  domain.RoomStatus `json:"status" binding:"required"`
}

type BulkSetStatusResponse struct {
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Outcomes  []Outcome `json:"outcomes"`
}
