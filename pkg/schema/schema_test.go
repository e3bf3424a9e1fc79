package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestColor_NameOnly(t *testing.T) {
	v := NewValidator()

	err := v.Validate(Color, map[string]any{"name": "warm_white"})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestColor_KelvinOnly(t *testing.T) {
	v := NewValidator()

	err := v.Validate(Color, map[string]any{"kelvin": float64(2700)})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestColor_BothRejected(t *testing.T) {
	v := NewValidator()

	err := v.Validate(Color, map[string]any{
		"name":   "warm_white",
		"kelvin": float64(2700),
	})
	if err == nil {
		t.Error("expected validation error when both name and kelvin are given")
	}
}

func TestColor_NeitherRejected(t *testing.T) {
	v := NewValidator()

	err := v.Validate(Color, map[string]any{"device": "Desk Light"})
	if err == nil {
		t.Error("expected validation error when neither name nor kelvin is given")
	}
}

func TestColor_KelvinOutOfRange(t *testing.T) {
	v := NewValidator()

	err := v.Validate(Color, map[string]any{"kelvin": float64(100)})
	if err == nil {
		t.Error("expected validation error for kelvin below 1000")
	}
}

func TestBrightness_LevelRange(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(Brightness, map[string]any{"level": float64(50)}); err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
	if err := v.Validate(Brightness, map[string]any{"level": float64(101)}); err == nil {
		t.Error("expected validation error for level above 100")
	}
	if err := v.Validate(Brightness, map[string]any{}); err == nil {
		t.Error("expected validation error when level is missing")
	}
}

func TestVolume_LevelOrDelta(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(Volume, map[string]any{"level": float64(40)}); err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
	if err := v.Validate(Volume, map[string]any{"delta": float64(-10)}); err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
	if err := v.Validate(Volume, map[string]any{"level": float64(40), "delta": float64(-10)}); err == nil {
		t.Error("expected validation error when both level and delta are given")
	}
}

func TestAnnouncement_MessageLimit(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(Announcement, map[string]any{"message": "dinner is ready"}); err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}

	long := strings.Repeat("a", 146)
	if err := v.Validate(Announcement, map[string]any{"message": long}); err == nil {
		t.Error("expected validation error for message over 145 chars")
	}
}

func TestAnnouncement_SenderLimit(t *testing.T) {
	v := NewValidator()

	long := strings.Repeat("a", 41)
	err := v.Validate(Announcement, map[string]any{"sender": long, "message": "hi"})
	if err == nil {
		t.Error("expected validation error for sender over 40 chars")
	}
}

func TestValidate_EmptySchemaSkips(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(json.RawMessage(`{}`), map[string]any{"anything": "goes"}); err != nil {
		t.Errorf("empty schema should skip validation, got: %v", err)
	}
	if err := v.Validate(nil, map[string]any{"anything": "goes"}); err != nil {
		t.Errorf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidate_CachesCompiledSchemas(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(Brightness, map[string]any{"level": float64(10)}); err != nil {
		t.Fatal(err)
	}
	if err := v.Validate(Brightness, map[string]any{"level": float64(20)}); err != nil {
		t.Fatal(err)
	}

	v.mu.RLock()
	cacheSize := len(v.cache)
	v.mu.RUnlock()
	if cacheSize != 1 {
		t.Errorf("expected 1 cached schema, got %d", cacheSize)
	}
}
