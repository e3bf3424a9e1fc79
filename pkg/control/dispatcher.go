// Package control routes control intents to the correct upstream call shape:
// graph mutation for power, state-endpoint writes for brightness and color,
// the read-then-adjust volume protocol, DND status writes, and announcements
// with the local night gate.
package control

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/device"
	"github.com/beacondev/echobridge/pkg/normalize"
	"github.com/beacondev/echobridge/pkg/resolve"
)

// Config carries the profile-derived settings the dispatcher needs.
type Config struct {
	Timezone     string // IANA zone for the night gate; empty means UTC
	Sender       string // default announcement sender name
	DayStartHour int    // zero means DefaultDayStartHour
	DayEndHour   int    // zero means DefaultDayEndHour
}

// Announcement day window defaults, profile-local hours.
const (
	DefaultDayStartHour = 10
	DefaultDayEndHour   = 22
)

// Dispatcher is the write-side facade over the resolver and upstream client.
type Dispatcher struct {
	client   *alexa.Client
	resolver *resolve.Resolver
	loc      *time.Location
	sender   string
	dayStart int
	dayEnd   int
	now      func() time.Time
}

// New creates a Dispatcher. An unknown timezone falls back to UTC rather
// than failing, since the gate is advisory.
func New(client *alexa.Client, resolver *resolve.Resolver, cfg Config) *Dispatcher {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil || cfg.Timezone == "" {
		if err != nil {
			log.Warn().Str("timezone", cfg.Timezone).Err(err).Msg("unknown timezone, using UTC")
		}
		loc = time.UTC
	}
	d := &Dispatcher{
		client:   client,
		resolver: resolver,
		loc:      loc,
		sender:   cfg.Sender,
		dayStart: cfg.DayStartHour,
		dayEnd:   cfg.DayEndHour,
		now:      time.Now,
	}
	if d.dayStart == 0 {
		d.dayStart = DefaultDayStartHour
	}
	if d.dayEnd == 0 {
		d.dayEnd = DefaultDayEndHour
	}
	return d
}

// Client returns the underlying upstream client, for read-only handlers.
func (d *Dispatcher) Client() *alexa.Client { return d.client }

// Resolver returns the resolver used for device selection.
func (d *Dispatcher) Resolver() *resolve.Resolver { return d.resolver }

// LightState resolves one light (auto-detected when explicit is empty) and
// returns its normalized reading.
func (d *Dispatcher) LightState(ctx context.Context, explicit string) (*device.Reading, error) {
	light, err := d.resolver.Light(ctx, explicit)
	if err != nil {
		return nil, err
	}
	if light.EntityID == "" {
		return nil, device.ErrMissingIdentifier
	}

	resp, err := d.client.QueryState(ctx, []device.EntityID{light.EntityID})
	if err != nil {
		return nil, err
	}
	readings := normalize.DeviceStates(resp)
	if len(readings) == 0 {
		return nil, device.ErrNotFound
	}
	r := readings[0]
	r.Name = light.Name
	return &r, nil
}

// AllLightStates returns normalized readings for every light, in one batch
// state query. Lights without an entity ID are skipped.
func (d *Dispatcher) AllLightStates(ctx context.Context) ([]device.Reading, error) {
	lights, err := d.resolver.Lights(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[device.EntityID]string, len(lights))
	ids := make([]device.EntityID, 0, len(lights))
	for _, l := range lights {
		if l.EntityID == "" {
			continue
		}
		ids = append(ids, l.EntityID)
		names[l.EntityID] = l.Name
	}
	if len(ids) == 0 {
		return nil, device.ErrMissingIdentifier
	}

	resp, err := d.client.QueryState(ctx, ids)
	if err != nil {
		return nil, err
	}
	readings := normalize.DeviceStates(resp)
	for i := range readings {
		readings[i].Name = names[readings[i].EntityID]
	}
	return readings, nil
}

// SetLightPower turns a light on or off through the graph mutation, keyed by
// endpoint ID.
func (d *Dispatcher) SetLightPower(ctx context.Context, explicit string, on bool) (*device.Device, error) {
	light, err := d.resolver.Light(ctx, explicit)
	if err != nil {
		return nil, err
	}
	endpointID, err := light.Endpoint()
	if err != nil {
		return nil, err
	}
	if err := d.client.SetEndpointPower(ctx, endpointID, on); err != nil {
		return nil, err
	}
	return light, nil
}

// SetBrightness sets a light's brightness (0–100) through the state
// endpoint, keyed by appliance ID. The upstream wants a 0–1 fractional
// string, not a percentage.
func (d *Dispatcher) SetBrightness(ctx context.Context, explicit string, level int) (*device.Device, error) {
	if level < 0 || level > 100 {
		return nil, fmt.Errorf("brightness %d out of range 0-100", level)
	}
	light, err := d.resolver.Light(ctx, explicit)
	if err != nil {
		return nil, err
	}
	if light.ApplianceID == "" {
		return nil, device.ErrMissingIdentifier
	}

	params := map[string]any{
		"action":     "setBrightness",
		"brightness": fmt.Sprintf("%.2f", float64(level)/100),
	}
	if err := d.client.ControlState(ctx, light.ApplianceID, params); err != nil {
		return nil, err
	}
	return light, nil
}

// SetColor sets a light's color by name or color temperature in kelvin,
// never both, through the state endpoint keyed by appliance ID.
func (d *Dispatcher) SetColor(ctx context.Context, explicit, name string, kelvin int) (*device.Device, error) {
	if (name == "") == (kelvin == 0) {
		return nil, fmt.Errorf("exactly one of color name or kelvin required")
	}
	light, err := d.resolver.Light(ctx, explicit)
	if err != nil {
		return nil, err
	}
	if light.ApplianceID == "" {
		return nil, device.ErrMissingIdentifier
	}

	var params map[string]any
	if name != "" {
		params = map[string]any{"action": "setColor", "colorName": name}
	} else {
		params = map[string]any{"action": "setColorTemperature", "colorTemperatureInKelvin": kelvin}
	}
	if err := d.client.ControlState(ctx, light.ApplianceID, params); err != nil {
		return nil, err
	}
	return light, nil
}

// GetVolume reads the current volume of one device, defaulting to the first
// Echo when no serial+type is given.
func (d *Dispatcher) GetVolume(ctx context.Context, serial, dtype string) (*device.VolumeState, error) {
	st, err := d.resolver.Echo(ctx, serial, dtype)
	if err != nil {
		return nil, err
	}
	return d.findVolume(ctx, st)
}

func (d *Dispatcher) findVolume(ctx context.Context, st device.SerialType) (*device.VolumeState, error) {
	volumes, err := d.client.AllDeviceVolumes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range volumes {
		if volumes[i].Serial == st.Serial && volumes[i].Type == st.Type {
			return &volumes[i], nil
		}
	}
	return nil, device.ErrNotFound
}

// SetVolume sets an absolute volume level (0–100). The upstream only has an
// adjust-by-delta call, so the level is first read and the delta computed
// from it; the pre-read volume rides along as a consistency hint.
func (d *Dispatcher) SetVolume(ctx context.Context, serial, dtype string, target int) (*device.VolumeState, error) {
	if target < 0 || target > 100 {
		return nil, fmt.Errorf("volume %d out of range 0-100", target)
	}
	st, err := d.resolver.Echo(ctx, serial, dtype)
	if err != nil {
		return nil, err
	}
	current, err := d.findVolume(ctx, st)
	if err != nil {
		return nil, err
	}

	delta := target - current.Volume
	if delta != 0 {
		if err := d.client.AdjustVolume(ctx, st, delta, current.Volume); err != nil {
			return nil, err
		}
	}
	return &device.VolumeState{SerialType: st, Volume: target, Muted: current.Muted}, nil
}

// AdjustVolume shifts a device's volume by delta. The current volume is
// still pre-read because the upstream call requires it.
func (d *Dispatcher) AdjustVolume(ctx context.Context, serial, dtype string, delta int) (*device.VolumeState, error) {
	st, err := d.resolver.Echo(ctx, serial, dtype)
	if err != nil {
		return nil, err
	}
	current, err := d.findVolume(ctx, st)
	if err != nil {
		return nil, err
	}

	if err := d.client.AdjustVolume(ctx, st, delta, current.Volume); err != nil {
		return nil, err
	}
	next := current.Volume + delta
	if next < 0 {
		next = 0
	}
	if next > 100 {
		next = 100
	}
	return &device.VolumeState{SerialType: st, Volume: next, Muted: current.Muted}, nil
}

// GetDND reads one device's do-not-disturb state.
func (d *Dispatcher) GetDND(ctx context.Context, serial, dtype string) (*device.DNDState, error) {
	st, err := d.resolver.Echo(ctx, serial, dtype)
	if err != nil {
		return nil, err
	}
	states, err := d.client.DNDStatusList(ctx)
	if err != nil {
		return nil, err
	}
	for i := range states {
		if states[i].Serial == st.Serial && states[i].Type == st.Type {
			return &states[i], nil
		}
	}
	return nil, device.ErrNotFound
}

// SetDND writes one device's do-not-disturb state.
func (d *Dispatcher) SetDND(ctx context.Context, serial, dtype string, enabled bool) (*device.DNDState, error) {
	st, err := d.resolver.Echo(ctx, serial, dtype)
	if err != nil {
		return nil, err
	}
	return d.client.SetDND(ctx, st, enabled)
}

// NowPlaying reads the current media session, defaulting to the first Echo.
func (d *Dispatcher) NowPlaying(ctx context.Context, serial, dtype string) (*device.NowPlaying, error) {
	st, err := d.resolver.Echo(ctx, serial, dtype)
	if err != nil {
		return nil, err
	}
	return d.client.NowPlaying(ctx, st)
}
