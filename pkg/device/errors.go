package device

import "errors"

var (
	// ErrNotFound indicates resolution yielded no candidate device
	ErrNotFound = errors.New("no matching device")

	// ErrAmbiguous indicates resolution yielded multiple candidates and the
	// active policy refuses to pick one
	ErrAmbiguous = errors.New("multiple matching devices")

	// ErrMissingIdentifier indicates the selected device lacks the identifier
	// kind a specific call requires
	ErrMissingIdentifier = errors.New("device record lacks required identifier")

	// ErrCredentialsMissing indicates required session tokens are absent
	ErrCredentialsMissing = errors.New("session credentials missing")

	// ErrSuppressed indicates an announcement was blocked by the night gate
	ErrSuppressed = errors.New("announcement suppressed during night hours")
)
