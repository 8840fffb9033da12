// Package store persists the application state in a small key/value store.
//
// Two backends exist: a JSON file, the default, and a SQLite database.
// Both hold the same keys with the same string values, so that switching
// backend is a matter of copying values.
package store

import (
	"fmt"

	"github.com/rs/zerolog"
)

// KV is a persistent string to string mapping.
type KV interface {
	// Get returns the value of key, ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set durably writes the value of key.
	Set(key, value string) error
	Close() error
}

// Drivers lists the supported backends.
var Drivers = []string{"file", "sqlite"}

// Open opens the store of this driver at path.
func Open(driver, path string, log zerolog.Logger) (KV, error) {
	switch driver {
	case "", "file":
		return OpenFile(path, log)
	case "sqlite":
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
