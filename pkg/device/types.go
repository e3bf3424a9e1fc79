package device

// EntityID identifies a device for state reads against the state endpoint.
type EntityID string

// ApplianceID identifies a device for phoenix-style control writes.
type ApplianceID string

// EndpointID identifies a device for graph-mutation power control.
// It is the entity ID carried under a fixed namespace prefix.
type EndpointID string

// EndpointIDPrefix is the namespace prefix expected by the graph endpoint.
const EndpointIDPrefix = "amzn1.alexa.endpoint."

// SerialType identifies a device for audio volume, DND and media calls.
type SerialType struct {
	Serial string `json:"serial"`
	Type   string `json:"type"`
}

// Device is a resolved view of one physical or virtual endpoint. The
// identifier fields are not interchangeable; each downstream call accepts
// exactly one kind, and an empty field means the upstream record did not
// carry that identifier.
type Device struct {
	Name            string      `json:"name"`
	Category        string      `json:"category"`
	Categories      []string    `json:"categories,omitempty"`
	EntityID        EntityID    `json:"entity_id,omitempty"`
	ApplianceID     ApplianceID `json:"appliance_id,omitempty"`
	SerialType      *SerialType `json:"serial_type,omitempty"`
	Online          bool        `json:"online"`
	Capabilities    []string    `json:"capabilities,omitempty"`
	MergedAppliance []string    `json:"merged_appliance_ids,omitempty"`
}

// Endpoint returns the device's graph endpoint ID, deriving it from the
// entity ID when the upstream record did not carry the prefixed form.
func (d *Device) Endpoint() (EndpointID, error) {
	if d.EntityID == "" {
		return "", ErrMissingIdentifier
	}
	s := string(d.EntityID)
	if len(s) >= len(EndpointIDPrefix) && s[:len(EndpointIDPrefix)] == EndpointIDPrefix {
		return EndpointID(s), nil
	}
	return EndpointID(EndpointIDPrefix + s), nil
}

// Display categories used for resolution.
const (
	CategoryLight        = "LIGHT"
	CategoryVoiceEnabled = "ALEXA_VOICE_ENABLED"
	CategoryOther        = "OTHER"
)

// Reading is a normalized capability-state snapshot for one device. Absent
// capabilities keep their zero value so consumers never need presence checks.
type Reading struct {
	EntityID EntityID `json:"entity_id"`
	Name     string   `json:"name,omitempty"`

	TemperatureCelsius    float64 `json:"temperature_celsius"`
	TemperatureFahrenheit float64 `json:"temperature_fahrenheit"`
	HasTemperature        bool    `json:"has_temperature"`

	Illuminance    float64 `json:"illuminance"`
	HasIlluminance bool    `json:"has_illuminance"`

	MotionDetected bool   `json:"motion_detected"`
	MotionAt       string `json:"motion_at,omitempty"`

	PowerOn    bool `json:"power_on"`
	Brightness int  `json:"brightness"`

	ColorMode              string `json:"color_mode,omitempty"` // "name" or "kelvin"
	ColorName              string `json:"color_name,omitempty"`
	ColorKelvin            int    `json:"color_kelvin"`
	ColorTemperatureKelvin int    `json:"color_temperature_kelvin"`
}

// Entry is one row of the flat registered-device list.
type Entry struct {
	Serial       string   `json:"serial"`
	Type         string   `json:"type"`
	Family       string   `json:"family"`
	Name         string   `json:"name"`
	Online       bool     `json:"online"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// VolumeState is the audio volume of one device.
type VolumeState struct {
	SerialType
	Volume int  `json:"volume"`
	Muted  bool `json:"muted"`
}

// DNDState is the do-not-disturb state of one device.
type DNDState struct {
	SerialType
	Enabled bool `json:"enabled"`
}

// NowPlaying describes the current media session on one device.
type NowPlaying struct {
	SerialType
	State    string `json:"state"`
	Title    string `json:"title,omitempty"`
	Artist   string `json:"artist,omitempty"`
	Album    string `json:"album,omitempty"`
	Provider string `json:"provider,omitempty"`
	Volume   int    `json:"volume"`
	Muted    bool   `json:"muted"`
}
