package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacondev/echobridge/pkg/api/types"
	"github.com/beacondev/echobridge/pkg/control"
	"github.com/beacondev/echobridge/pkg/schema"
)

// AudioHandler handles volume, DND and media status endpoints
type AudioHandler struct {
	dispatcher *control.Dispatcher
	validator  *schema.Validator
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(dispatcher *control.Dispatcher, validator *schema.Validator) *AudioHandler {
	return &AudioHandler{dispatcher: dispatcher, validator: validator}
}

// GetVolume handles GET /volume
// @Summary      Get device volume
// @Description  Returns the current volume of one device, defaulting to the first Echo
// @Tags         audio
// @Produce      json
// @Param        serial  query     string  false  "Device serial number"
// @Param        type    query     string  false  "Device type"
// @Success      200     {object}  device.VolumeState
// @Failure      404     {object}  types.ErrorResponse  "No matching device"
// @Failure      502     {object}  types.ErrorResponse  "Upstream error"
// @Router       /volume [get]
func (h *AudioHandler) GetVolume(c *gin.Context) {
	state, err := h.dispatcher.GetVolume(c.Request.Context(), c.Query("serial"), c.Query("type"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// PutVolume handles PUT /volume
// @Summary      Set or adjust device volume
// @Description  Sets an absolute 0-100 level or shifts by a delta, never both
// @Tags         audio
// @Accept       json
// @Produce      json
// @Param        request  body      types.VolumeRequest  true  "Level or delta"
// @Success      200      {object}  device.VolumeState
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "No matching device"
// @Failure      502      {object}  types.ErrorResponse  "Upstream error"
// @Router       /volume [put]
func (h *AudioHandler) PutVolume(c *gin.Context) {
	var req types.VolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	payload := map[string]any{}
	if req.Serial != "" {
		payload["serial"] = req.Serial
	}
	if req.Type != "" {
		payload["type"] = req.Type
	}
	if req.Level != nil {
		payload["level"] = float64(*req.Level)
	}
	if req.Delta != nil {
		payload["delta"] = float64(*req.Delta)
	}
	if err := h.validator.Validate(schema.Volume, payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	if req.Level != nil {
		state, err := h.dispatcher.SetVolume(ctx, req.Serial, req.Type, *req.Level)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, state)
		return
	}

	state, err := h.dispatcher.AdjustVolume(ctx, req.Serial, req.Type, *req.Delta)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetDND handles GET /dnd
// @Summary      Get do-not-disturb state
// @Tags         audio
// @Produce      json
// @Param        serial  query     string  false  "Device serial number"
// @Param        type    query     string  false  "Device type"
// @Success      200     {object}  device.DNDState
// @Failure      404     {object}  types.ErrorResponse  "No matching device"
// @Failure      502     {object}  types.ErrorResponse  "Upstream error"
// @Router       /dnd [get]
func (h *AudioHandler) GetDND(c *gin.Context) {
	state, err := h.dispatcher.GetDND(c.Request.Context(), c.Query("serial"), c.Query("type"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// PutDND handles PUT /dnd
// @Summary      Set do-not-disturb state
// @Tags         audio
// @Accept       json
// @Produce      json
// @Param        request  body      types.DNDRequest  true  "DND state to set"
// @Success      200      {object}  device.DNDState
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "No matching device"
// @Failure      502      {object}  types.ErrorResponse  "Upstream error"
// @Router       /dnd [put]
func (h *AudioHandler) PutDND(c *gin.Context) {
	var req types.DNDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "enabled is required",
		})
		return
	}

	state, err := h.dispatcher.SetDND(c.Request.Context(), req.Serial, req.Type, *req.Enabled)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// NowPlaying handles GET /music/now-playing
// @Summary      Get current media session
// @Description  Returns the playback state, track metadata and volume of one device
// @Tags         audio
// @Produce      json
// @Param        serial  query     string  false  "Device serial number"
// @Param        type    query     string  false  "Device type"
// @Success      200     {object}  device.NowPlaying
// @Failure      404     {object}  types.ErrorResponse  "No matching device"
// @Failure      502     {object}  types.ErrorResponse  "Upstream error"
// @Router       /music/now-playing [get]
func (h *AudioHandler) NowPlaying(c *gin.Context) {
	np, err := h.dispatcher.NowPlaying(c.Request.Context(), c.Query("serial"), c.Query("type"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, np)
}
