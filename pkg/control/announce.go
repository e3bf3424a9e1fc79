package control

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/beacondev/echobridge/pkg/device"
)

// Announcement payload limits, enforced locally before the upstream call.
const (
	MaxSenderLen  = 40
	MaxMessageLen = 145
)

var (
	// ErrSenderTooLong indicates the sender name exceeds MaxSenderLen.
	ErrSenderTooLong = errors.New("sender name too long")

	// ErrMessageTooLong indicates the message exceeds MaxMessageLen.
	ErrMessageTooLong = errors.New("announcement message too long")
)

// Announce broadcasts a spoken announcement. An empty sender uses the
// profile default. Outside the day window the announcement goes out only if
// at least one light currently reports power on — someone being awake with
// the lights on is the signal that a night-time announcement is wanted.
func (d *Dispatcher) Announce(ctx context.Context, sender, message string) error {
	if sender == "" {
		sender = d.sender
	}
	if len(sender) > MaxSenderLen {
		return fmt.Errorf("%w: %d > %d chars", ErrSenderTooLong, len(sender), MaxSenderLen)
	}
	if message == "" {
		return fmt.Errorf("announcement message is empty")
	}
	if len(message) > MaxMessageLen {
		return fmt.Errorf("%w: %d > %d chars", ErrMessageTooLong, len(message), MaxMessageLen)
	}

	if !d.isDaytime() {
		lit, err := d.anyLightOn(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("night-gate light check failed, suppressing announcement")
			return device.ErrSuppressed
		}
		if !lit {
			return device.ErrSuppressed
		}
	}

	accountID, err := d.client.CustomerID(ctx)
	if err != nil {
		return err
	}
	return d.client.SendAnnouncement(ctx, accountID, sender, message)
}

// isDaytime reports whether the profile-local hour is inside the day window.
func (d *Dispatcher) isDaytime() bool {
	hour := d.now().In(d.loc).Hour()
	return hour >= d.dayStart && hour < d.dayEnd
}

// anyLightOn reports whether any light currently reports power on, read
// through the same resolution and normalization path as every other state
// query.
func (d *Dispatcher) anyLightOn(ctx context.Context) (bool, error) {
	readings, err := d.AllLightStates(ctx)
	if err != nil {
		if errors.Is(err, device.ErrNotFound) || errors.Is(err, device.ErrMissingIdentifier) {
			// No lights at all: nothing to override the gate with.
			return false, nil
		}
		return false, err
	}
	for _, r := range readings {
		if r.PowerOn {
			return true, nil
		}
	}
	return false, nil
}
