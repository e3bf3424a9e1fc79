package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacondev/echobridge/pkg/api/types"
	"github.com/beacondev/echobridge/pkg/db"
)

// ProfileHandler exposes the active profile's announcement settings
type ProfileHandler struct {
	db *db.DB
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(database *db.DB) *ProfileHandler {
	return &ProfileHandler{db: database}
}

// Get handles GET /profile
// @Summary      Get active profile
// @Description  Returns the active profile's timezone and announcement settings
// @Tags         profile
// @Produce      json
// @Success      200  {object}  types.ProfileResponse
// @Failure      404  {object}  types.ErrorResponse  "No active profile"
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.db.Profiles().GetActive(c.Request.Context())
	if err != nil {
		if errors.Is(err, db.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "No active profile",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.ProfileResponse{
		Name:           profile.Name,
		Timezone:       profile.Timezone,
		AnnounceSender: profile.AnnounceSender,
		DayStartHour:   profile.DayStartHour,
		DayEndHour:     profile.DayEndHour,
	})
}

// Update handles PUT /profile
// @Summary      Update active profile
// @Description  Updates the active profile's timezone and announcement settings. Changes take effect on restart.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      types.UpdateProfileRequest  true  "Fields to change"
// @Success      200      {object}  types.ProfileResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "No active profile"
// @Router       /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	ctx := c.Request.Context()
	profile, err := h.db.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, db.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "No active profile",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	if req.Timezone != nil {
		profile.Timezone = *req.Timezone
	}
	if req.AnnounceSender != nil {
		profile.AnnounceSender = *req.AnnounceSender
	}
	if req.DayStartHour != nil {
		profile.DayStartHour = *req.DayStartHour
	}
	if req.DayEndHour != nil {
		profile.DayEndHour = *req.DayEndHour
	}

	if profile.DayStartHour < 0 || profile.DayStartHour > 23 ||
		profile.DayEndHour < 0 || profile.DayEndHour > 24 ||
		profile.DayStartHour >= profile.DayEndHour {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: "day window must satisfy 0 <= start < end <= 24",
		})
		return
	}

	if err := h.db.Profiles().Update(ctx, profile); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.ProfileResponse{
		Name:           profile.Name,
		Timezone:       profile.Timezone,
		AnnounceSender: profile.AnnounceSender,
		DayStartHour:   profile.DayStartHour,
		DayEndHour:     profile.DayEndHour,
	})
}
