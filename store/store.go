// Package store persists tracker records as JSON blobs under logical keys.
// Engines stay pure; controllers go through the Store interface so tests can
// swap the database for an in-memory map.
package store

import "context"

// Store is the key-value persistence boundary for tracker records.
//
// Load unmarshals the record stored under key into v and reports whether one
// was found. A record that exists but no longer parses is treated as absent
// so the caller falls back to defaults instead of crashing on old state.
type Store interface {
	Load(ctx context.Context, key string, v interface{}) (bool, error)
	Save(ctx context.Context, key string, v interface{}) error
}
