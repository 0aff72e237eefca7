package collision

import (
	"fmt"
	"slices"

	"github.com/arloliu/rzero/errs"
	"github.com/arloliu/rzero/internal/hash"
)

// Tracker indexes column names by their xxHash64 ID and keeps their order.
//
// Distinct names sharing a hash are not an error: the collision flag is set
// and Lookup falls back to comparing names within the bucket.
type Tracker struct {
	buckets      map[uint64][]int
	names        []string
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		buckets: make(map[uint64][]int),
		names:   make([]string, 0),
	}
}

// Track registers name at the next position.
//
// Returns:
//   - errs.ErrInvalidSubregion if name is empty
//   - errs.ErrDuplicateSubregion if name was already tracked
func (t *Tracker) Track(name string) error {
	if name == "" {
		return errs.ErrInvalidSubregion
	}

	id := hash.ID(name)
	for _, pos := range t.buckets[id] {
		if t.names[pos] == name {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateSubregion, name)
		}
		t.hasCollision = true
	}

	t.buckets[id] = append(t.buckets[id], len(t.names))
	t.names = append(t.names, name)

	return nil
}

// Lookup returns the position at which name was tracked.
func (t *Tracker) Lookup(name string) (int, bool) {
	for _, pos := range t.buckets[hash.ID(name)] {
		if t.names[pos] == name {
			return pos, true
		}
	}

	return 0, false
}

// HasCollision returns true if two tracked names share a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.names
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all tracked names and collision state.
func (t *Tracker) Reset() {
	clear(t.buckets)
	t.names = t.names[:0]
	t.hasCollision = false
}

// Clone returns a copy that can be tracked into without affecting t.
func (t *Tracker) Clone() *Tracker {
	buckets := make(map[uint64][]int, len(t.buckets))
	for id, positions := range t.buckets {
		buckets[id] = slices.Clone(positions)
	}

	return &Tracker{
		buckets:      buckets,
		names:        slices.Clone(t.names),
		hasCollision: t.hasCollision,
	}
}
