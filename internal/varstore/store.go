package varstore

import (
	"sync"
	"time"

	"github.com/vk/gridnodes/internal/value"
)

// Change records one applied mutation. Once created it is never modified.
type Change struct {
	Timestamp time.Time
	Op        Op
	// Key is empty for a clear.
	Key string
	// Old is nil when the key did not exist before a set.
	Old value.Value
	// New is nil for deletes and clears.
	New value.Value
	// Affected is the number of entries written or removed.
	Affected int
}

// Store is the orchestrator-owned variable store. Reads hand out copies taken
// under a read lock; intents are applied one at a time under the write lock,
// so a snapshot never observes a partially applied intent.
type Store struct {
	mu      sync.RWMutex
	vars    map[string]value.Value
	history []Change
}

// New creates a store seeded with a copy of initial.
func New(initial map[string]value.Value) *Store {
	vars := make(map[string]value.Value, len(initial))
	for k, v := range initial {
		vars[k] = value.Normalize(v)
	}
	return &Store{vars: vars}
}

// Snapshot returns a consistent copy of the current contents.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := make(Snapshot, len(s.vars))
	for k, v := range s.vars {
		snap[k] = v
	}
	return snap
}

// Get reads a single key.
func (s *Store) Get(key string) (value.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[key]
	return v, ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vars)
}

// Apply performs the mutation described by in and returns the resulting
// change. A nil intent is a no-op that returns the zero Change.
//
// Delete and Clear act on the store as it is now, not on the snapshot the
// node saw, so Affected may differ from Delete.Existed or Clear.Count when
// other intents landed in between.
func (s *Store) Apply(in Intent) Change {
	if in == nil {
		return Change{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch := Change{Timestamp: time.Now(), Op: in.Op()}
	switch it := in.(type) {
	case Set:
		ch.Key = it.Key
		ch.Old = s.vars[it.Key]
		ch.New = value.Normalize(it.Value)
		ch.Affected = 1
		s.vars[it.Key] = ch.New
	case Delete:
		ch.Key = it.Key
		if old, ok := s.vars[it.Key]; ok {
			ch.Old = old
			ch.Affected = 1
			delete(s.vars, it.Key)
		}
	case Clear:
		ch.Affected = len(s.vars)
		clear(s.vars)
	}
	s.history = append(s.history, ch)
	return ch
}

// History returns the applied changes in order.
func (s *Store) History() []Change {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Change, len(s.history))
	copy(out, s.history)
	return out
}
