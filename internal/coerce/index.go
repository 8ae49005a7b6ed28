package coerce

// NormalizeIndex resolves a signed index against a sequence of the given
// length. Negative indices count from the end. The boolean is false when the
// resolved index falls outside [0, length).
func NormalizeIndex(i, length int) (int, bool) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

// ClampRange resolves a [start, end) range against a sequence of the given
// length. Each bound is resolved for negative values and clamped into
// [0, length] on its own. When the clamped start is not below the clamped
// end the range is empty and lo == hi.
func ClampRange(start, end, length int) (lo, hi int) {
	lo = clampBound(start, length)
	hi = clampBound(end, length)
	if lo >= hi {
		return lo, lo
	}
	return lo, hi
}

func clampBound(i, length int) int {
	if i < 0 {
		i += length
	}
	return min(max(i, 0), length)
}
