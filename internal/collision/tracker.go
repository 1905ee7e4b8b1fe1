package collision

import (
	"fmt"

	"github.com/claireguyot/root/errs"
)

// Tracker records which layout key produced each fingerprint and detects
// fingerprint collisions: two different keys hashing to the same value.
//
// Tracker is not safe for concurrent use; callers guard it with their own lock.
type Tracker struct {
	keys         map[uint64]string // fingerprint → canonical key
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{keys: make(map[uint64]string)}
}

// Track records that key hashes to fingerprint.
//
// Tracking the same pair twice is not an error. Returns
// errs.ErrFingerprintCollision if fingerprint is already tracked for a
// different key; the existing mapping is kept.
func (t *Tracker) Track(fingerprint uint64, key string) error {
	existing, ok := t.keys[fingerprint]
	if !ok {
		t.keys[fingerprint] = key
		return nil
	}
	if existing != key {
		t.hasCollision = true
		return fmt.Errorf("%w: %q and %q share fingerprint %#016x", errs.ErrFingerprintCollision, existing, key, fingerprint)
	}

	return nil
}

// Matches reports whether fingerprint is tracked for exactly key.
func (t *Tracker) Matches(fingerprint uint64, key string) bool {
	existing, ok := t.keys[fingerprint]
	return ok && existing == key
}

// HasCollision returns true if a collision has been detected since the
// last Reset.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of tracked fingerprints.
func (t *Tracker) Count() int {
	return len(t.keys)
}

// Reset forgets all fingerprints and the collision state.
func (t *Tracker) Reset() {
	clear(t.keys)
	t.hasCollision = false
}
