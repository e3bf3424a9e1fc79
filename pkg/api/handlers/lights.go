package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beacondev/echobridge/pkg/api/types"
	"github.com/beacondev/echobridge/pkg/control"
	"github.com/beacondev/echobridge/pkg/schema"
)

// LightsHandler handles light state and control endpoints
type LightsHandler struct {
	dispatcher *control.Dispatcher
	validator  *schema.Validator
}

// NewLightsHandler creates a new lights handler
func NewLightsHandler(dispatcher *control.Dispatcher, validator *schema.Validator) *LightsHandler {
	return &LightsHandler{dispatcher: dispatcher, validator: validator}
}

// GetState handles GET /lights/state
// @Summary      Get light state
// @Description  Returns the normalized state of one light (?device=) or of every light
// @Tags         lights
// @Produce      json
// @Param        device  query     string  false  "Light selector (name, entity ID or appliance ID)"
// @Success      200     {object}  types.LightStatesResponse
// @Failure      404     {object}  types.ErrorResponse  "No matching light"
// @Failure      409     {object}  types.ErrorResponse  "Ambiguous selector"
// @Failure      502     {object}  types.ErrorResponse  "Upstream error"
// @Router       /lights/state [get]
func (h *LightsHandler) GetState(c *gin.Context) {
	ctx := c.Request.Context()

	if explicit := c.Query("device"); explicit != "" {
		reading, err := h.dispatcher.LightState(ctx, explicit)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, types.LightStateResponse{Light: *reading})
		return
	}

	readings, err := h.dispatcher.AllLightStates(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.LightStatesResponse{
		Lights: readings,
		Count:  len(readings),
	})
}

// SetPower handles POST /lights/power
// @Summary      Turn a light on or off
// @Description  Switches light power through the graph mutation
// @Tags         lights
// @Accept       json
// @Produce      json
// @Param        request  body      types.PowerRequest  true  "Power state to set"
// @Success      200      {object}  types.ActionResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "No matching light"
// @Failure      409      {object}  types.ErrorResponse  "Ambiguous selector"
// @Failure      502      {object}  types.ErrorResponse  "Upstream error"
// @Router       /lights/power [post]
func (h *LightsHandler) SetPower(c *gin.Context) {
	var req types.PowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "on is required",
		})
		return
	}

	light, err := h.dispatcher.SetLightPower(c.Request.Context(), req.Device, *req.On)
	if err != nil {
		writeError(c, err)
		return
	}

	action := "turn_off"
	if *req.On {
		action = "turn_on"
	}
	c.JSON(http.StatusOK, types.ActionResponse{
		Device:    light.Name,
		Action:    action,
		Timestamp: time.Now(),
	})
}

// SetBrightness handles POST /lights/brightness
// @Summary      Set light brightness
// @Description  Sets brightness as a 0-100 level
// @Tags         lights
// @Accept       json
// @Produce      json
// @Param        request  body      types.BrightnessRequest  true  "Brightness level"
// @Success      200      {object}  types.ActionResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "No matching light"
// @Failure      409      {object}  types.ErrorResponse  "Ambiguous selector"
// @Failure      502      {object}  types.ErrorResponse  "Upstream error"
// @Router       /lights/brightness [post]
func (h *LightsHandler) SetBrightness(c *gin.Context) {
	var req types.BrightnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "level is required",
		})
		return
	}
	if err := h.validator.Validate(schema.Brightness, map[string]any{
		"device": req.Device,
		"level":  float64(*req.Level),
	}); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	light, err := h.dispatcher.SetBrightness(c.Request.Context(), req.Device, *req.Level)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ActionResponse{
		Device:    light.Name,
		Action:    "set_brightness",
		Timestamp: time.Now(),
	})
}

// SetColor handles POST /lights/color
// @Summary      Set light color
// @Description  Sets a named color or a color temperature in kelvin, never both
// @Tags         lights
// @Accept       json
// @Produce      json
// @Param        request  body      types.ColorRequest  true  "Color name or kelvin temperature"
// @Success      200      {object}  types.ActionResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "No matching light"
// @Failure      409      {object}  types.ErrorResponse  "Ambiguous selector"
// @Failure      502      {object}  types.ErrorResponse  "Upstream error"
// @Router       /lights/color [post]
func (h *LightsHandler) SetColor(c *gin.Context) {
	var req types.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	payload := map[string]any{}
	if req.Device != "" {
		payload["device"] = req.Device
	}
	if req.Name != "" {
		payload["name"] = req.Name
	}
	if req.Kelvin != 0 {
		payload["kelvin"] = float64(req.Kelvin)
	}
	if err := h.validator.Validate(schema.Color, payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	light, err := h.dispatcher.SetColor(c.Request.Context(), req.Device, req.Name, req.Kelvin)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ActionResponse{
		Device:    light.Name,
		Action:    "set_color",
		Timestamp: time.Now(),
	})
}
