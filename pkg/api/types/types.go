package types

import (
	"time"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/device"
)

// --- Request DTOs ---

// PowerRequest is the request body for POST /lights/power
type PowerRequest struct {
	Device string `json:"device"`
	On     *bool  `json:"on" binding:"required"`
}

// BrightnessRequest is the request body for POST /lights/brightness
type BrightnessRequest struct {
	Device string `json:"device"`
	Level  *int   `json:"level" binding:"required"`
}

// ColorRequest is the request body for POST /lights/color
type ColorRequest struct {
	Device string `json:"device"`
	Name   string `json:"name,omitempty"`
	Kelvin int    `json:"kelvin,omitempty"`
}

// VolumeRequest is the request body for PUT /volume. Exactly one of level or
// delta must be set.
type VolumeRequest struct {
	Serial string `json:"serial,omitempty"`
	Type   string `json:"type,omitempty"`
	Level  *int   `json:"level,omitempty"`
	Delta  *int   `json:"delta,omitempty"`
}

// DNDRequest is the request body for PUT /dnd
type DNDRequest struct {
	Serial  string `json:"serial,omitempty"`
	Type    string `json:"type,omitempty"`
	Enabled *bool  `json:"enabled" binding:"required"`
}

// AnnouncementRequest is the request body for POST /announcements
type AnnouncementRequest struct {
	Sender  string `json:"sender,omitempty"`
	Message string `json:"message" binding:"required"`
}

// UpdateProfileRequest is the request body for PUT /profile
type UpdateProfileRequest struct {
	Timezone       *string `json:"timezone,omitempty"`
	AnnounceSender *string `json:"announce_sender,omitempty"`
	DayStartHour   *int    `json:"day_start_hour,omitempty"`
	DayEndHour     *int    `json:"day_end_hour,omitempty"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status      string    `json:"status"`
	Credentials string    `json:"credentials"`
	BaseURL     string    `json:"base_url"`
	Timestamp   time.Time `json:"timestamp"`
}

// ListDevicesResponse is returned from GET /devices
type ListDevicesResponse struct {
	Devices []device.Entry `json:"devices"`
	Count   int            `json:"count"`
}

// ListEndpointsResponse is returned from GET /endpoints
type ListEndpointsResponse struct {
	Endpoints []device.Device `json:"endpoints"`
	Count     int             `json:"count"`
}

// ListFavoritesResponse is returned from GET /favorites
type ListFavoritesResponse struct {
	Favorites []alexa.Favorite `json:"favorites"`
	Count     int              `json:"count"`
}

// LightStatesResponse is returned from GET /lights/state
type LightStatesResponse struct {
	Lights []device.Reading `json:"lights"`
	Count  int              `json:"count"`
}

// LightStateResponse is returned from GET /lights/state?device=...
type LightStateResponse struct {
	Light device.Reading `json:"light"`
}

// ActionResponse is returned from light control endpoints
type ActionResponse struct {
	Device    string    `json:"device"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// AnnouncementResponse is returned from POST /announcements
type AnnouncementResponse struct {
	Status    string    `json:"status"`
	Sender    string    `json:"sender,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ProfileResponse is returned from GET/PUT /profile
type ProfileResponse struct {
	Name           string `json:"name"`
	Timezone       string `json:"timezone"`
	AnnounceSender string `json:"announce_sender"`
	DayStartHour   int    `json:"day_start_hour"`
	DayEndHour     int    `json:"day_end_hour"`
}
