package normalize

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/beacondev/echobridge/pkg/alexa"
)

// enc wraps a capability record the way the upstream double-encodes it:
// the record JSON is itself carried as a JSON string.
func enc(t *testing.T, record string) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(record)
	if err != nil {
		t.Fatal(err)
	}
	return json.RawMessage(b)
}

func TestCapabilityStates_TemperatureCelsius(t *testing.T) {
	r := CapabilityStates([]json.RawMessage{
		enc(t, `{"namespace":"Alexa.TemperatureSensor","name":"temperature","value":{"value":20.0,"scale":"CELSIUS"},"timeOfSample":"2025-06-01T12:00:00Z"}`),
	})

	if !r.HasTemperature {
		t.Fatal("expected temperature reading")
	}
	if math.Abs(r.TemperatureCelsius-20.0) > 0.01 {
		t.Errorf("celsius = %v, want 20.0", r.TemperatureCelsius)
	}
	if math.Abs(r.TemperatureFahrenheit-68.0) > 0.01 {
		t.Errorf("fahrenheit = %v, want 68.0", r.TemperatureFahrenheit)
	}
}

func TestCapabilityStates_TemperatureFahrenheit(t *testing.T) {
	r := CapabilityStates([]json.RawMessage{
		enc(t, `{"namespace":"Alexa.TemperatureSensor","name":"temperature","value":{"value":68.0,"scale":"FAHRENHEIT"}}`),
	})

	if math.Abs(r.TemperatureCelsius-20.0) > 0.01 {
		t.Errorf("celsius = %v, want 20.0", r.TemperatureCelsius)
	}
	if math.Abs(r.TemperatureFahrenheit-68.0) > 0.01 {
		t.Errorf("fahrenheit = %v, want 68.0", r.TemperatureFahrenheit)
	}
}

func TestCapabilityStates_MalformedRecordIsDropped(t *testing.T) {
	r := CapabilityStates([]json.RawMessage{
		enc(t, `{"namespace":"Alexa.PowerController","name":"powerState","value":"ON"}`),
		enc(t, `{"namespace":"Alexa.BrightnessController","name":"brightness","va`), // truncated
		enc(t, `{"namespace":"Alexa.ColorTemperatureController","name":"colorTemperatureInKelvin","value":2700}`),
	})

	if !r.PowerOn {
		t.Error("valid power record before the malformed one should survive")
	}
	if r.ColorTemperatureKelvin != 2700 {
		t.Error("valid record after the malformed one should survive")
	}
}

func TestCapabilityStates_PreDecodedForm(t *testing.T) {
	// Literal object form, no string wrapping.
	r := CapabilityStates([]json.RawMessage{
		json.RawMessage(`{"namespace":"Alexa.PowerController","name":"powerState","value":"OFF"}`),
		json.RawMessage(`{"namespace":"Alexa.BrightnessController","name":"brightness","value":75}`),
	})

	if r.PowerOn {
		t.Error("expected power off")
	}
	if r.Brightness != 75 {
		t.Errorf("brightness = %d, want 75", r.Brightness)
	}
}

func TestCapabilityStates_CaseInsensitiveNames(t *testing.T) {
	r := CapabilityStates([]json.RawMessage{
		enc(t, `{"namespace":"Alexa.PowerController","name":"PowerState","value":"on"}`),
	})
	if !r.PowerOn {
		t.Error("casing of capability name or sentinel must not matter")
	}
}

func TestCapabilityStates_Motion(t *testing.T) {
	r := CapabilityStates([]json.RawMessage{
		enc(t, `{"namespace":"Alexa.MotionSensor","name":"detectionState","value":"DETECTED","timeOfSample":"2025-06-01T12:00:00Z"}`),
	})

	if !r.MotionDetected {
		t.Error("expected motion detected")
	}
	if r.MotionAt != "2025-06-01T12:00:00Z" {
		t.Errorf("motion timestamp = %q", r.MotionAt)
	}
}

func TestCapabilityStates_ColorName(t *testing.T) {
	r := CapabilityStates([]json.RawMessage{
		enc(t, `{"namespace":"Alexa.ColorPropertiesController","name":"colorProperties","value":{"name":"warm_white"}}`),
	})

	if r.ColorMode != "name" || r.ColorName != "warm_white" {
		t.Errorf("color = %q/%q, want name/warm_white", r.ColorMode, r.ColorName)
	}
}

func TestCapabilityStates_ColorKelvin(t *testing.T) {
	r := CapabilityStates([]json.RawMessage{
		enc(t, `{"namespace":"Alexa.ColorPropertiesController","name":"colorProperties","value":2700}`),
	})

	if r.ColorMode != "kelvin" || r.ColorKelvin != 2700 {
		t.Errorf("color = %q/%d, want kelvin/2700", r.ColorMode, r.ColorKelvin)
	}
}

func TestCapabilityStates_LastRecordWins(t *testing.T) {
	r := CapabilityStates([]json.RawMessage{
		enc(t, `{"namespace":"Alexa.BrightnessController","name":"brightness","value":10}`),
		enc(t, `{"namespace":"Alexa.BrightnessController","name":"brightness","value":90}`),
	})

	if r.Brightness != 90 {
		t.Errorf("brightness = %d, want last record to win (90)", r.Brightness)
	}
}

func TestCapabilityStates_AbsentFieldsZeroValued(t *testing.T) {
	r := CapabilityStates(nil)

	if r.HasTemperature || r.HasIlluminance || r.MotionDetected || r.PowerOn {
		t.Error("empty input must yield zero-valued reading")
	}
	if r.Brightness != 0 || r.ColorKelvin != 0 || r.ColorTemperatureKelvin != 0 {
		t.Error("numeric fields must default to zero")
	}
}

func TestDeviceStates_CarriesEntityIDs(t *testing.T) {
	resp := &alexa.StateResponse{
		DeviceStates: []alexa.RawDeviceState{
			{
				Entity: struct {
					EntityID   string `json:"entityId"`
					EntityType string `json:"entityType"`
				}{EntityID: "entity-1"},
				CapabilityStates: []json.RawMessage{
					enc(t, `{"namespace":"Alexa.PowerController","name":"powerState","value":"ON"}`),
				},
			},
			{
				Entity: struct {
					EntityID   string `json:"entityId"`
					EntityType string `json:"entityType"`
				}{EntityID: "entity-2"},
			},
		},
	}

	readings := DeviceStates(resp)
	if len(readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(readings))
	}
	if string(readings[0].EntityID) != "entity-1" || !readings[0].PowerOn {
		t.Error("first reading lost identity or state")
	}
	if string(readings[1].EntityID) != "entity-2" || readings[1].PowerOn {
		t.Error("second reading should be zero-valued but addressable")
	}
}
