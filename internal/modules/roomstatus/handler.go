package roomstatus

import (
	"errors"
	"net/http"
	"strconv"

	"hotelops/internal/pkg/response"
	"hotelops/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/rooms/:id/status", h.SetStatus)
	rg.POST("/rooms/status/bulk", h.BulkSetStatus)
}

func (h *Handler) SetStatus(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.SetStatus(c.Request.Context(), roomID, req.Status, c.GetInt64("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be vacant, occupied, maintenance or cleaning")
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) BulkSetStatus(c *gin.Context) {
	var req BulkSetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	outcomes := h.service.BulkSetStatus(c.Request.Context(), req.RoomIDs, req.Status, c.GetInt64("user_id"))

	resp := BulkSetStatusResponse{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.OK {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}

	// Partial failure is an expected outcome, not an error: every room is
	// reported individually.
	response.Success(c, http.StatusOK, resp)
}
