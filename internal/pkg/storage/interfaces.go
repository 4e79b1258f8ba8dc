package storage

import "errors"

// ErrKeyNotFound is returned by Load when no value has been persisted under
// the requested key. Callers treat it as "use the default collection".
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is the persistence port for whole-collection durable storage. A key
// names one collection; every Save serializes and writes the entire value.
//
// Implementations must make Load on a missing key return ErrKeyNotFound and
// must never partially persist a value.
type Store interface {
	// Load reads the value stored under key into v.
	Load(key string, v any) error

	// Save serializes v and writes it under key, replacing any prior value.
	Save(key string, v any) error
}
