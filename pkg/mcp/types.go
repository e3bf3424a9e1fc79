package mcp

import (
	"github.com/beacondev/echobridge/pkg/device"
)

// --- Health Tool ---

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status      string `json:"status" jsonschema:"description=Overall health status (healthy or degraded)"`
	Credentials string `json:"credentials" jsonschema:"description=Whether upstream session credentials are configured"`
	BaseURL     string `json:"base_url" jsonschema:"description=Upstream API host"`
	Timestamp   string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// --- Discovery Tools ---

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	Devices []device.Entry `json:"devices" jsonschema:"description=Registered devices"`
	Count   int            `json:"count" jsonschema:"description=Total number of devices"`
}

// ListEndpointsOutput is the output for the list_endpoints tool
type ListEndpointsOutput struct {
	Endpoints []device.Device `json:"endpoints" jsonschema:"description=Smart-home endpoints with resolved identifiers"`
	Count     int             `json:"count" jsonschema:"description=Total number of endpoints"`
}

// --- Light Tools ---

// LightStateOutput is the output for the get_light_state tool
type LightStateOutput struct {
	Light device.Reading `json:"light" jsonschema:"description=Normalized light state"`
}

// LightActionOutput is the output for light control tools
type LightActionOutput struct {
	Device string `json:"device" jsonschema:"description=Name of the affected light"`
	Action string `json:"action" jsonschema:"description=Action that was performed"`
}

// --- Audio Tools ---

// VolumeOutput is the output for the volume tools
type VolumeOutput struct {
	Serial string `json:"serial" jsonschema:"description=Device serial number"`
	Type   string `json:"type" jsonschema:"description=Device type"`
	Volume int    `json:"volume" jsonschema:"description=Volume level 0-100"`
	Muted  bool   `json:"muted" jsonschema:"description=Whether the device is muted"`
}

// DNDOutput is the output for the DND tools
type DNDOutput struct {
	Serial  string `json:"serial" jsonschema:"description=Device serial number"`
	Type    string `json:"type" jsonschema:"description=Device type"`
	Enabled bool   `json:"enabled" jsonschema:"description=Do-not-disturb state"`
}

// NowPlayingOutput is the output for the get_now_playing tool
type NowPlayingOutput struct {
	Serial   string `json:"serial" jsonschema:"description=Device serial number"`
	Type     string `json:"type" jsonschema:"description=Device type"`
	State    string `json:"state" jsonschema:"description=Playback state (PLAYING, PAUSED, IDLE)"`
	Title    string `json:"title,omitempty" jsonschema:"description=Track title"`
	Artist   string `json:"artist,omitempty" jsonschema:"description=Track artist"`
	Album    string `json:"album,omitempty" jsonschema:"description=Album name"`
	Provider string `json:"provider,omitempty" jsonschema:"description=Music provider"`
	Volume   int    `json:"volume" jsonschema:"description=Volume level 0-100"`
}

// --- Announcement Tool ---

// AnnouncementOutput is the output for the send_announcement tool
type AnnouncementOutput struct {
	Status  string `json:"status" jsonschema:"description=sent or suppressed"`
	Message string `json:"message" jsonschema:"description=Status detail"`
}
