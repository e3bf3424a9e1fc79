package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beacondev/echobridge/pkg/api/types"
	"github.com/beacondev/echobridge/pkg/control"
	"github.com/beacondev/echobridge/pkg/device"
	"github.com/beacondev/echobridge/pkg/schema"
)

// AnnounceHandler handles announcement endpoints
type AnnounceHandler struct {
	dispatcher *control.Dispatcher
	validator  *schema.Validator
}

// NewAnnounceHandler creates a new announcement handler
func NewAnnounceHandler(dispatcher *control.Dispatcher, validator *schema.Validator) *AnnounceHandler {
	return &AnnounceHandler{dispatcher: dispatcher, validator: validator}
}

// Create handles POST /announcements
// @Summary      Send an announcement
// @Description  Broadcasts a spoken announcement. Outside the daytime window the announcement only goes out if at least one light is on; otherwise it is suppressed.
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        request  body      types.AnnouncementRequest  true  "Announcement to send"
// @Success      200      {object}  types.AnnouncementResponse  "Sent or suppressed"
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      502      {object}  types.ErrorResponse  "Upstream error"
// @Router       /announcements [post]
func (h *AnnounceHandler) Create(c *gin.Context) {
	var req types.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "message is required",
		})
		return
	}

	payload := map[string]any{"message": req.Message}
	if req.Sender != "" {
		payload["sender"] = req.Sender
	}
	if err := h.validator.Validate(schema.Announcement, payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	err := h.dispatcher.Announce(c.Request.Context(), req.Sender, req.Message)
	if errors.Is(err, device.ErrSuppressed) {
		// Suppression is an outcome, not a failure: the night gate held.
		c.JSON(http.StatusOK, types.AnnouncementResponse{
			Status:    "suppressed",
			Timestamp: time.Now(),
		})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.AnnouncementResponse{
		Status:    "sent",
		Sender:    req.Sender,
		Timestamp: time.Now(),
	})
}
