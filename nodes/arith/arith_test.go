package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
)

func nums(f ...float64) node.Inputs {
	return node.Inputs{"numbers": value.Numbers(f...)}
}

func assertResult(t *testing.T, want float64, out node.Outputs) {
	t.Helper()
	_, failed := out.Error()
	assert.False(t, failed, "unexpected error output: %v", out)
	assert.Equal(t, value.Number(want), out.Result())
}

func assertFailure(t *testing.T, msg string, out node.Outputs) {
	t.Helper()
	got, failed := out.Error()
	assert.True(t, failed, "expected error output, got %v", out)
	assert.Equal(t, msg, got)
	assert.Equal(t, value.Number(0), out.Result())
}

func TestAdd(t *testing.T) {
	assertResult(t, 6, Add(nums(1, 2, 3), nil))
	assertResult(t, 0, Add(node.Inputs{}, nil))
	assertResult(t, 3.5, Add(node.Inputs{"numbers": value.List{value.String("1.5"), value.Bool(true), value.Number(1)}}, nil))
	assertResult(t, 4, Add(node.Inputs{"numbers": value.Number(4)}, nil))
}

func TestSubtract(t *testing.T) {
	assertResult(t, 5, Subtract(nums(10, 3, 2), nil))
	assertFailure(t, "need at least 2 numbers", Subtract(nums(10), nil))
}

func TestMultiply(t *testing.T) {
	assertResult(t, 24, Multiply(nums(2, 3, 4), nil))
	assertResult(t, 7, Multiply(nums(7), nil))
	assertFailure(t, "need at least 1 number", Multiply(node.Inputs{}, nil))
}

func TestDivide(t *testing.T) {
	assertResult(t, 4, Divide(nums(24, 3, 2), nil))
	assertFailure(t, "need at least 2 numbers", Divide(nums(24), nil))
	assertFailure(t, "need at least 2 numbers", Divide(node.Inputs{}, nil))
	assertFailure(t, "division by zero", Divide(nums(24, 3, 0), nil))
}

func TestModulo(t *testing.T) {
	assertResult(t, 1, Modulo(node.Inputs{"a": value.Number(7), "b": value.Number(3)}, nil))
	assertResult(t, -1, Modulo(node.Inputs{"a": value.Number(-7), "b": value.Number(3)}, nil))
	assertFailure(t, "modulo by zero", Modulo(node.Inputs{"a": value.Number(7)}, nil))
}

func TestPowerAndSqrt(t *testing.T) {
	assertResult(t, 8, Power(node.Inputs{"base": value.Number(2), "exponent": value.Number(3)}, nil))
	assertResult(t, 5, Power(node.Inputs{"base": value.Number(5)}, nil))
	assertResult(t, 3, Sqrt(node.Inputs{"value": value.Number(9)}, nil))
	assertFailure(t, "square root of negative number", Sqrt(node.Inputs{"value": value.Number(-1)}, nil))
}

func TestRounding(t *testing.T) {
	assertResult(t, 2.5, Abs(node.Inputs{"value": value.Number(-2.5)}, nil))
	assertResult(t, -3, Floor(node.Inputs{"value": value.Number(-2.5)}, nil))
	assertResult(t, -2, Ceil(node.Inputs{"value": value.Number(-2.5)}, nil))
	assertResult(t, -3, Round(node.Inputs{"value": value.Number(-2.5)}, nil))
	assertResult(t, 1.3, Round(node.Inputs{"value": value.Number(1.25), "decimals": value.Number(1)}, nil))
	assertResult(t, 1200, Round(node.Inputs{"value": value.Number(1234), "decimals": value.Number(-2)}, nil))
	assertResult(t, 1.5, Round(node.Inputs{"value": value.Number(1.5), "decimals": value.Number(400)}, nil))
}

func TestMinMax(t *testing.T) {
	assertResult(t, -1, Min(nums(3, -1, 2), nil))
	assertResult(t, 3, Max(nums(3, -1, 2), nil))
	assertFailure(t, "need at least 1 number", Min(node.Inputs{}, nil))
	assertFailure(t, "need at least 1 number", Max(node.Inputs{}, nil))
}

func TestDivide_NaNOperandIsNotZero(t *testing.T) {
	out := Divide(nums(1, math.NaN()), nil)
	_, failed := out.Error()
	assert.False(t, failed)
}
