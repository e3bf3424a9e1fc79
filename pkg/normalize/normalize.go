// Package normalize turns raw capability-state payloads into typed readings.
// The upstream delivers each capability record as either a literal JSON
// object or a JSON-encoded string needing one extra decode, with casing that
// varies between endpoints. All of that tolerance lives here, at one
// boundary, as a pure function: raw record in, typed record or skip.
package normalize

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/device"
)

// record is one decoded capability state tuple.
type record struct {
	Namespace                 string          `json:"namespace"`
	Name                      string          `json:"name"`
	Value                     json.RawMessage `json:"value"`
	TimeOfSample              string          `json:"timeOfSample"`
	UncertaintyInMilliseconds int64           `json:"uncertaintyInMilliseconds"`
}

// decodeRecord parses one raw capability state, unwrapping the
// string-encoded form first if present. A record that fails to parse is
// dropped; one bad entry never aborts the batch.
func decodeRecord(raw json.RawMessage) (record, bool) {
	data := []byte(raw)

	// String-encoded form: the record is JSON inside a JSON string.
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return record{}, false
		}
		data = []byte(inner)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return record{}, false
	}
	if rec.Namespace == "" && rec.Name == "" {
		return record{}, false
	}
	return rec, true
}

// scaledValue is the unit-tagged shape some sensors report.
type scaledValue struct {
	Value float64 `json:"value"`
	Scale string  `json:"scale"`
}

// colorValue is the shape of color property reports.
type colorValue struct {
	Name string `json:"name"`
}

// DeviceStates normalizes a whole batch response into one Reading per
// device, in response order.
func DeviceStates(resp *alexa.StateResponse) []device.Reading {
	readings := make([]device.Reading, 0, len(resp.DeviceStates))
	for _, ds := range resp.DeviceStates {
		r := CapabilityStates(ds.CapabilityStates)
		r.EntityID = device.EntityID(ds.Entity.EntityID)
		readings = append(readings, r)
	}
	return readings
}

// CapabilityStates buckets a device's capability records into one Reading.
// Records are applied in input order, so a repeated (namespace, name) pair
// is resolved last-one-wins. Absent capabilities keep their zero value.
func CapabilityStates(raw []json.RawMessage) device.Reading {
	var r device.Reading
	for _, entry := range raw {
		rec, ok := decodeRecord(entry)
		if !ok {
			log.Debug().Msg("dropped undecodable capability record")
			continue
		}
		apply(&r, rec)
	}
	return r
}

// apply folds one record into the reading. Namespace and name matching is
// case-insensitive; the same capability arrives with different casing
// depending on which upstream endpoint produced it.
func apply(r *device.Reading, rec record) {
	switch strings.ToLower(rec.Name) {
	case "temperature":
		var sv scaledValue
		if err := json.Unmarshal(rec.Value, &sv); err != nil {
			// Bare numeric form, Celsius by convention.
			var n float64
			if json.Unmarshal(rec.Value, &n) != nil {
				return
			}
			sv = scaledValue{Value: n, Scale: "CELSIUS"}
		}
		if strings.EqualFold(sv.Scale, "FAHRENHEIT") {
			r.TemperatureFahrenheit = sv.Value
			r.TemperatureCelsius = (sv.Value - 32) * 5 / 9
		} else {
			r.TemperatureCelsius = sv.Value
			r.TemperatureFahrenheit = sv.Value*9/5 + 32
		}
		r.HasTemperature = true

	case "illuminance":
		var sv scaledValue
		if err := json.Unmarshal(rec.Value, &sv); err == nil && sv.Value != 0 {
			r.Illuminance = sv.Value
			r.HasIlluminance = true
			return
		}
		var n float64
		if json.Unmarshal(rec.Value, &n) != nil {
			return
		}
		r.Illuminance = n
		r.HasIlluminance = true

	case "detectionstate":
		var s string
		if json.Unmarshal(rec.Value, &s) != nil {
			return
		}
		r.MotionDetected = strings.EqualFold(s, "DETECTED")
		r.MotionAt = rec.TimeOfSample

	case "powerstate":
		var s string
		if json.Unmarshal(rec.Value, &s) != nil {
			return
		}
		r.PowerOn = strings.EqualFold(s, "ON")

	case "brightness":
		var n float64
		if json.Unmarshal(rec.Value, &n) != nil {
			return
		}
		r.Brightness = int(n)

	case "colorproperties":
		var cv colorValue
		if err := json.Unmarshal(rec.Value, &cv); err == nil && cv.Name != "" {
			r.ColorMode = "name"
			r.ColorName = cv.Name
			r.ColorKelvin = 0
			return
		}
		var kelvin float64
		if json.Unmarshal(rec.Value, &kelvin) != nil {
			return
		}
		r.ColorMode = "kelvin"
		r.ColorKelvin = int(kelvin)
		r.ColorName = ""

	case "colortemperatureinkelvin":
		var kelvin float64
		if json.Unmarshal(rec.Value, &kelvin) != nil {
			return
		}
		r.ColorTemperatureKelvin = int(kelvin)
	}
}
