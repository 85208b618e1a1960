package availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	hotelID int64
}

func NewHandler(service *Service, hotelID int64) *Handler {
	return &Handler{service: service, hotelID: hotelID}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/available", h.ListAvailableRooms)
	rg.GET("/rooms/:id/availability", h.CheckRoomAvailability)
	rg.GET("/rooms/:id/blocked-dates", h.GetBlockedDates)
	rg.GET("/calendar/day", h.GetDayView)
}

func (h *Handler) CheckRoomAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	stay, err := parseStayQuery(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInterval) {
			response.Error(c, http.StatusBadRequest, "INVALID_INTERVAL", "Check-out must be after check-in")
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in and check_out must be YYYY-MM-DD dates")
		return
	}

	result, err := h.service.CheckRoomAvailability(c.Request.Context(), roomID, stay, 0)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"room_id":   result.RoomID,
		"available": result.Available,
		"conflicts": toConflictSummaries(result.Conflicts),
	})
}

func (h *Handler) ListAvailableRooms(c *gin.Context) {
	stay, err := parseStayQuery(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInterval) {
			response.Error(c, http.StatusBadRequest, "INVALID_INTERVAL", "Check-out must be after check-in")
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in and check_out must be YYYY-MM-DD dates")
		return
	}

	rooms, err := h.service.ListAvailableRooms(c.Request.Context(), h.hotelID, stay)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list available rooms")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetBlockedDates(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	dates, err := h.service.GetBlockedDates(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load blocked dates")
		return
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(dateLayout))
	}
	response.Success(c, http.StatusOK, gin.H{"room_id": roomID, "blocked_dates": out})
}

func (h *Handler) GetDayView(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be a YYYY-MM-DD date")
		return
	}

	summary, err := h.service.GetDayView(c.Request.Context(), date)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build day view")
		return
	}

	response.Success(c, http.StatusOK, summary)
}
