package cache

import (
	"errors"
	"fmt"
)

// Backend selectors accepted by New.
const (
	BackendMemory = "memory"
	BackendDisk   = "disk"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by New for a backend selector it does not
// recognize.
var ErrUnknownBackend = errors.New("unknown cache backend")

// BackendError reports a cache that could not be constructed.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("cache backend %q: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Cache stores serialized responses keyed by request digest.
//
// Runtime operations never fail: a Get that cannot read reports a miss, a Set
// that cannot write is a no-op, and Clear is best effort. Only construction,
// via New or the backend constructors, returns errors.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(key string) ([]byte, bool)

	// Set stores value under key, overwriting any previous value.
	Set(key string, value []byte)

	// Clear removes all entries.
	Clear()
}

// New constructs a cache for the given backend selector.
//
// Supported selectors are "memory", "disk", and "sqlite". The path argument
// is the disk cache directory or the sqlite database file; empty selects the
// backend's default location. An unrecognized selector returns a BackendError
// wrapping ErrUnknownBackend.
func New(backend, path string) (Cache, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendDisk:
		c, err := NewDisk(path)
		if err != nil {
			return nil, &BackendError{Backend: backend, Err: err}
		}
		return c, nil
	case BackendSQLite:
		c, err := NewSQLite(path)
		if err != nil {
			return nil, &BackendError{Backend: backend, Err: err}
		}
		return c, nil
	default:
		return nil, &BackendError{Backend: backend, Err: ErrUnknownBackend}
	}
}
