package arith

import (
	"math"

	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

const (
	errNeedOne      = "need at least 1 number"
	errNeedTwo      = "need at least 2 numbers"
	errDivByZero    = "division by zero"
	errModByZero    = "modulo by zero"
	errNegativeSqrt = "square root of negative number"
	numbersKey      = "numbers"
	valueKey        = "value"
)

func number(f float64) node.Outputs {
	return node.Result(value.Number(f))
}

func fail(msg string) node.Outputs {
	return node.Fail(value.Number(0), msg)
}

// Add sums "numbers". An empty list sums to 0.
func Add(in node.Inputs, _ varstore.Reader) node.Outputs {
	var sum float64
	for _, n := range in.Numbers(numbersKey) {
		sum += n
	}
	return number(sum)
}

// Subtract returns the first number minus every following one.
func Subtract(in node.Inputs, _ varstore.Reader) node.Outputs {
	nums := in.Numbers(numbersKey)
	if len(nums) < 2 {
		return fail(errNeedTwo)
	}
	result := nums[0]
	for _, n := range nums[1:] {
		result -= n
	}
	return number(result)
}

// Multiply returns the product of "numbers".
func Multiply(in node.Inputs, _ varstore.Reader) node.Outputs {
	nums := in.Numbers(numbersKey)
	if len(nums) == 0 {
		return fail(errNeedOne)
	}
	result := 1.0
	for _, n := range nums {
		result *= n
	}
	return number(result)
}

// Divide returns the first number divided by every following one. A zero
// divisor anywhere in the list fails the whole operation.
func Divide(in node.Inputs, _ varstore.Reader) node.Outputs {
	nums := in.Numbers(numbersKey)
	if len(nums) < 2 {
		return fail(errNeedTwo)
	}
	result := nums[0]
	for _, n := range nums[1:] {
		if n == 0 {
			return fail(errDivByZero)
		}
		result /= n
	}
	return number(result)
}

// Modulo returns math.Mod(a, b); the result takes the sign of a.
func Modulo(in node.Inputs, _ varstore.Reader) node.Outputs {
	a, b := in.Number("a", 0), in.Number("b", 0)
	if b == 0 {
		return fail(errModByZero)
	}
	return number(math.Mod(a, b))
}

// Power returns base raised to exponent.
func Power(in node.Inputs, _ varstore.Reader) node.Outputs {
	return number(math.Pow(in.Number("base", 0), in.Number("exponent", 1)))
}

// Sqrt returns the square root of "value".
func Sqrt(in node.Inputs, _ varstore.Reader) node.Outputs {
	v := in.Number(valueKey, 0)
	if v < 0 {
		return fail(errNegativeSqrt)
	}
	return number(math.Sqrt(v))
}

// Abs returns the absolute value of "value".
func Abs(in node.Inputs, _ varstore.Reader) node.Outputs {
	return number(math.Abs(in.Number(valueKey, 0)))
}

// Floor rounds "value" toward negative infinity.
func Floor(in node.Inputs, _ varstore.Reader) node.Outputs {
	return number(math.Floor(in.Number(valueKey, 0)))
}

// Ceil rounds "value" toward positive infinity.
func Ceil(in node.Inputs, _ varstore.Reader) node.Outputs {
	return number(math.Ceil(in.Number(valueKey, 0)))
}

// Round rounds "value" half away from zero to "decimals" places. Negative
// decimals round to tens, hundreds and so on.
func Round(in node.Inputs, _ varstore.Reader) node.Outputs {
	v := in.Number(valueKey, 0)
	decimals := in.Int("decimals", 0)
	if decimals == 0 {
		return number(math.Round(v))
	}
	scale := math.Pow(10, math.Abs(float64(decimals)))
	if math.IsInf(scale, 0) {
		return number(v)
	}
	if decimals < 0 {
		return number(math.Round(v/scale) * scale)
	}
	return number(math.Round(v*scale) / scale)
}

// Min returns the smallest of "numbers".
func Min(in node.Inputs, _ varstore.Reader) node.Outputs {
	return extreme(in, func(a, b float64) bool { return a < b })
}

// Max returns the largest of "numbers".
func Max(in node.Inputs, _ varstore.Reader) node.Outputs {
	return extreme(in, func(a, b float64) bool { return a > b })
}

func extreme(in node.Inputs, better func(a, b float64) bool) node.Outputs {
	nums := in.Numbers(numbersKey)
	if len(nums) == 0 {
		return fail(errNeedOne)
	}
	best := nums[0]
	for _, n := range nums[1:] {
		if better(n, best) {
			best = n
		}
	}
	return number(best)
}
