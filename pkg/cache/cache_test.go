package cache

import (
	"testing"
	"time"
)

func TestGet_Missing(t *testing.T) {
	c := New(0)

	if _, ok := c.Get("devices"); ok {
		t.Error("expected miss for key that was never set")
	}
}

func TestGet_FreshEntry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(DefaultTTL, func() time.Time { return now })

	c.Set("devices", "value")

	// Just inside the TTL window
	now = now.Add(299 * time.Second)
	v, ok := c.Get("devices")
	if !ok {
		t.Fatal("expected hit at t0+299s")
	}
	if v.(string) != "value" {
		t.Errorf("expected cached value, got %v", v)
	}
}

func TestGet_ExpiredEntry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(DefaultTTL, func() time.Time { return now })

	c.Set("devices", "value")

	now = now.Add(301 * time.Second)
	if _, ok := c.Get("devices"); ok {
		t.Error("expected miss at t0+301s")
	}
}

func TestGet_ExactTTLBoundaryIsStale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(DefaultTTL, func() time.Time { return now })

	c.Set("household", 42)

	now = now.Add(DefaultTTL)
	if _, ok := c.Get("household"); ok {
		t.Error("entry aged exactly TTL must be treated as absent")
	}
}

func TestSet_Overwrites(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(DefaultTTL, func() time.Time { return now })

	c.Set("endpoints", "old")
	now = now.Add(4 * time.Minute)
	c.Set("endpoints", "new")

	// The rewrite refreshed the timestamp too
	now = now.Add(2 * time.Minute)
	v, ok := c.Get("endpoints")
	if !ok {
		t.Fatal("expected hit after rewrite")
	}
	if v.(string) != "new" {
		t.Errorf("expected last write to win, got %v", v)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(DefaultTTL, func() time.Time { return now })

	c.Set("devices", 1)
	now = now.Add(4 * time.Minute)
	c.Set("endpoints", 2)
	now = now.Add(2 * time.Minute)

	if _, ok := c.Get("devices"); ok {
		t.Error("devices entry should be stale")
	}
	if _, ok := c.Get("endpoints"); !ok {
		t.Error("endpoints entry should still be fresh")
	}
}
