package coerce

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/vk/gridnodes/internal/value"
)

// ToBool converts v to a boolean using strict string truthiness.
func ToBool(v value.Value) bool {
	if s, ok := v.(value.String); ok {
		switch strings.ToLower(string(s)) {
		case "true", "1", "yes":
			return true
		}
		return false
	}
	return truthy(v)
}

// ToBoolLoose converts v to a boolean; every non-empty string is true.
func ToBoolLoose(v value.Value) bool {
	if s, ok := v.(value.String); ok {
		return s != ""
	}
	return truthy(v)
}

// truthy covers every non-string variant, identical for both flavours.
func truthy(v value.Value) bool {
	switch tv := value.Normalize(v).(type) {
	case value.Bool:
		return bool(tv)
	case value.Number:
		// NaN != 0 holds, so NaN is truthy.
		return float64(tv) != 0
	case value.List:
		return len(tv) > 0
	case value.Object:
		return len(tv) > 0
	default:
		return false
	}
}

// ToNumber converts v to a float64. Unparseable strings give 0; decimal
// literals beyond the float64 range give ±Inf.
func ToNumber(v value.Value) float64 {
	switch tv := value.Normalize(v).(type) {
	case value.Number:
		return float64(tv)
	case value.String:
		return parseNumber(string(tv))
	case value.Bool:
		if tv {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// parseNumber accepts decimal float literals only. Hex mantissas are rejected.
func parseNumber(s string) float64 {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

// ToInt truncates ToNumber(v) toward zero. NaN gives 0 and out of range
// values saturate at the int bounds.
func ToInt(v value.Value) int {
	f := math.Trunc(ToNumber(v))
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// ToString converts v to text. Strings are returned as is, Null becomes the
// empty string and everything else is rendered as compact JSON.
func ToString(v value.Value) string {
	switch tv := value.Normalize(v).(type) {
	case value.String:
		return string(tv)
	case value.Null:
		return ""
	default:
		out, err := value.Marshal(tv)
		if err != nil {
			return ""
		}
		return string(out)
	}
}

// ToList converts v to a list. A string is split into one single-character
// string per Unicode scalar value.
func ToList(v value.Value) value.List {
	switch tv := value.Normalize(v).(type) {
	case value.List:
		return tv
	case value.String:
		return Chars(string(tv))
	case value.Null:
		return value.List{}
	default:
		return value.List{tv}
	}
}

// Chars splits s into one String per rune.
func Chars(s string) value.List {
	out := make(value.List, 0, len(s))
	for _, r := range s {
		out = append(out, value.String(string(r)))
	}
	return out
}

// ToObject converts v to an object. A list of [key, value, ...] pairs whose
// first element is a string is folded into an object; other elements are
// skipped. Later pairs win on duplicate keys.
func ToObject(v value.Value) value.Object {
	switch tv := value.Normalize(v).(type) {
	case value.Object:
		return tv
	case value.List:
		out := make(value.Object)
		for _, item := range tv {
			pair, ok := item.(value.List)
			if !ok || len(pair) < 2 {
				continue
			}
			key, ok := pair[0].(value.String)
			if !ok {
				continue
			}
			out[string(key)] = value.Normalize(pair[1])
		}
		return out
	default:
		return value.Object{}
	}
}
