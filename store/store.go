// Package store provides the keyed blob storage backing the treasury state.
// Each application collection persists under its own key, so a corrupt blob
// only loses one collection instead of the whole database.
package store

// Store is a keyed blob store. Get reports presence separately from errors so
// a missing key is not an error. Implementations must tolerate concurrent use
// from a single process.
type Store interface {
	// Get returns the blob under key. ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	// Set writes the blob under key, replacing any previous value.
	Set(key string, value []byte) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
	// Close releases underlying resources.
	Close() error
}
