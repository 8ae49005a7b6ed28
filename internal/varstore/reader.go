package varstore

import (
	"sort"

	"github.com/vk/gridnodes/internal/value"
)

// Reader is the read-only view of the store handed to nodes.
type Reader interface {
	Get(key string) (value.Value, bool)
	// Keys returns every key in sorted order.
	Keys() []string
	Len() int
}

// Lookup returns the value stored under key. A nil reader behaves as an empty
// store.
func Lookup(r Reader, key string) (value.Value, bool) {
	if r == nil {
		return nil, false
	}
	return r.Get(key)
}

// Has reports whether key exists in r.
func Has(r Reader, key string) bool {
	_, ok := Lookup(r, key)
	return ok
}

// KeysOf returns the sorted keys of r, or an empty slice for a nil reader.
func KeysOf(r Reader) []string {
	if r == nil {
		return []string{}
	}
	return r.Keys()
}

// Count returns the number of entries in r.
func Count(r Reader) int {
	if r == nil {
		return 0
	}
	return r.Len()
}

// Snapshot is an immutable copy of the store contents.
type Snapshot map[string]value.Value

var _ Reader = Snapshot(nil)

func (s Snapshot) Get(key string) (value.Value, bool) {
	v, ok := s[key]
	return v, ok
}

func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s Snapshot) Len() int { return len(s) }

// Object returns the snapshot contents as a value.Object.
func (s Snapshot) Object() value.Object {
	out := make(value.Object, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
