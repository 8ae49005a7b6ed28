package coerce

import (
	"cmp"
	"slices"

	"github.com/vk/gridnodes/internal/value"
)

// Compare orders two values for sorting. Numbers compare numerically (any
// comparison involving NaN is equal), strings by code point, false before
// true. Null sorts before every other variant and ties with Null. Any other
// pair of different variants, lists and objects included, compares equal, so
// their relative placement is left to the stability of the sort.
func Compare(a, b value.Value) int {
	a, b = value.Normalize(a), value.Normalize(b)
	_, aNull := a.(value.Null)
	_, bNull := b.(value.Null)
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return -1
	case bNull:
		return 1
	}

	switch av := a.(type) {
	case value.Number:
		if bv, ok := b.(value.Number); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
		}
	case value.String:
		if bv, ok := b.(value.String); ok {
			return cmp.Compare(av, bv)
		}
	case value.Bool:
		if bv, ok := b.(value.Bool); ok && av != bv {
			if !av {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Sort returns a stably sorted copy of l.
func Sort(l value.List) value.List {
	out := l.Clone()
	slices.SortStableFunc(out, Compare)
	return out
}

// SortDescending returns a stably sorted copy of l in reverse order. Elements
// that compare equal keep their original relative order.
func SortDescending(l value.List) value.List {
	out := l.Clone()
	slices.SortStableFunc(out, func(a, b value.Value) int { return Compare(b, a) })
	return out
}
