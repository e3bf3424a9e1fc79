// Package resolve turns "which device" plus "which identifier kind do I
// need" into a concrete value. The same physical device shows up under
// several identifier namespaces; every downstream call accepts exactly one
// of them, so extraction is explicit about the kind it produces.
package resolve

import (
	"context"
	"strings"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/device"
)

// Policy decides what happens when a category filter yields more than one
// candidate and the caller gave no explicit selector.
type Policy int

const (
	// AutoSelectFirst silently uses the first discovered candidate. Stable
	// only insofar as upstream ordering is stable; callers are warned in the
	// tool descriptions.
	AutoSelectFirst Policy = iota

	// ErrorOnAmbiguous refuses and surfaces ErrAmbiguous instead.
	ErrorOnAmbiguous
)

// Resolver resolves tool arguments to concrete devices and identifiers.
type Resolver struct {
	client *alexa.Client
	policy Policy
}

// New creates a Resolver with the given ambiguity policy.
func New(client *alexa.Client, policy Policy) *Resolver {
	return &Resolver{client: client, policy: policy}
}

// EntityIDFrom extracts an entity ID from an endpoint record. Precedence is
// fixed: the legacy chrs identifier, then the generic appliance entity ID,
// then the resource ID with its namespace prefix stripped, then the serial
// number. First match wins.
func EntityIDFrom(ep alexa.Endpoint) (device.EntityID, error) {
	if id := ep.LegacyIdentifiers.ChrsIdentifier.EntityID; id != "" {
		return device.EntityID(id), nil
	}
	if id := ep.LegacyAppliance.EntityID; id != "" {
		return device.EntityID(id), nil
	}
	if ep.ID != "" {
		return device.EntityID(strings.TrimPrefix(ep.ID, device.EndpointIDPrefix)), nil
	}
	if serial := ep.LegacyIdentifiers.DmsIdentifier.DeviceSerialNumber.Value.Text; serial != "" {
		return device.EntityID(serial), nil
	}
	return "", device.ErrMissingIdentifier
}

// FromEndpoint builds a resolved Device from one endpoint-graph record.
func FromEndpoint(ep alexa.Endpoint) device.Device {
	d := device.Device{
		Name:            ep.FriendlyName.Value.Text,
		Category:        ep.DisplayCategories.Primary.Value,
		ApplianceID:     device.ApplianceID(ep.LegacyAppliance.ApplianceID),
		Online:          ep.LegacyAppliance.Reachable,
		Capabilities:    ep.LegacyAppliance.CapabilityNames,
		MergedAppliance: ep.LegacyAppliance.MergedApplianceIDs,
	}
	for _, cat := range ep.DisplayCategories.All {
		d.Categories = append(d.Categories, cat.Value)
	}
	if id, err := EntityIDFrom(ep); err == nil {
		d.EntityID = id
	}
	serial := ep.LegacyIdentifiers.DmsIdentifier.DeviceSerialNumber.Value.Text
	dtype := ep.LegacyIdentifiers.DmsIdentifier.DeviceType.Value.Text
	if serial != "" && dtype != "" {
		d.SerialType = &device.SerialType{Serial: serial, Type: dtype}
	}
	return d
}

// ByCategory returns every endpoint whose primary display category equals
// category, in provider order. ErrNotFound when zero match.
func (r *Resolver) ByCategory(ctx context.Context, category string) ([]device.Device, error) {
	endpoints, err := r.client.Endpoints(ctx)
	if err != nil {
		return nil, err
	}

	var out []device.Device
	for _, ep := range endpoints {
		if strings.EqualFold(ep.DisplayCategories.Primary.Value, category) {
			out = append(out, FromEndpoint(ep))
		}
	}
	if len(out) == 0 {
		return nil, device.ErrNotFound
	}
	return out, nil
}

// Select resolves one device of the given category. An explicit selector
// (entity ID, appliance ID or name, compared case-insensitively) narrows the
// candidates; without one, the policy decides between auto-detecting the
// first candidate and refusing.
func (r *Resolver) Select(ctx context.Context, category, explicit string) (*device.Device, error) {
	candidates, err := r.ByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	if explicit != "" {
		for i := range candidates {
			if matches(&candidates[i], explicit) {
				return &candidates[i], nil
			}
		}
		return nil, device.ErrNotFound
	}

	if len(candidates) > 1 && r.policy == ErrorOnAmbiguous {
		return nil, device.ErrAmbiguous
	}
	return &candidates[0], nil
}

func matches(d *device.Device, selector string) bool {
	return strings.EqualFold(string(d.EntityID), selector) ||
		strings.EqualFold(string(d.ApplianceID), selector) ||
		strings.EqualFold(d.Name, selector)
}

// Light resolves one light.
func (r *Resolver) Light(ctx context.Context, explicit string) (*device.Device, error) {
	return r.Select(ctx, device.CategoryLight, explicit)
}

// Lights resolves all lights.
func (r *Resolver) Lights(ctx context.Context) ([]device.Device, error) {
	return r.ByCategory(ctx, device.CategoryLight)
}

// Echo resolves one voice-enabled device as a serial+type pair from the flat
// device list. With explicit serial and type, the entry must match both;
// otherwise the first Echo-family entry is used. The flat list is the only
// source that carries this identifier kind.
func (r *Resolver) Echo(ctx context.Context, serial, dtype string) (device.SerialType, error) {
	entries, err := r.client.Devices(ctx)
	if err != nil {
		return device.SerialType{}, err
	}

	if serial != "" || dtype != "" {
		for _, e := range entries {
			if e.Serial == serial && e.Type == dtype {
				return device.SerialType{Serial: e.Serial, Type: e.Type}, nil
			}
		}
		return device.SerialType{}, device.ErrNotFound
	}

	var echoes []device.SerialType
	for _, e := range entries {
		if alexa.IsEchoFamily(e) {
			echoes = append(echoes, device.SerialType{Serial: e.Serial, Type: e.Type})
		}
	}
	switch {
	case len(echoes) == 0:
		return device.SerialType{}, device.ErrNotFound
	case len(echoes) > 1 && r.policy == ErrorOnAmbiguous:
		return device.SerialType{}, device.ErrAmbiguous
	default:
		return echoes[0], nil
	}
}
