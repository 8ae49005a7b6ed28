package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
)

func sample() value.Object {
	return value.Object{"b": value.Number(2), "a": value.String("x")}
}

func with(key string) node.Inputs {
	return node.Inputs{"object": sample(), "key": value.String(key)}
}

func TestGet(t *testing.T) {
	out := Get(with("a"), nil)
	assert.Equal(t, value.String("x"), out.Result())
	assert.Equal(t, value.Bool(true), out["exists"])

	in := with("zz")
	in["default"] = value.Number(9)
	out = Get(in, nil)
	assert.Equal(t, value.Number(9), out.Result())
	assert.Equal(t, value.Bool(false), out["exists"])

	out = Get(node.Inputs{"object": sample()}, nil)
	msg, failed := out.Error()
	assert.True(t, failed)
	assert.Equal(t, "key is required", msg)
	assert.Equal(t, value.Null{}, out.Result())
}

func TestHas(t *testing.T) {
	assert.Equal(t, value.Bool(true), Has(with("b"), nil).Result())
	assert.Equal(t, value.Bool(false), Has(with("c"), nil).Result())
	assert.Equal(t, value.Bool(false), Has(node.Inputs{"key": value.String("a")}, nil).Result())
}

func TestKeysAndValues(t *testing.T) {
	out := Keys(node.Inputs{"object": sample()}, nil)
	assert.Equal(t, value.Strings("a", "b"), out.Result())
	assert.Equal(t, value.Number(2), out["count"])

	assert.Equal(t, value.List{value.String("x"), value.Number(2)}, Values(node.Inputs{"object": sample()}, nil).Result())
	assert.Equal(t, value.List{}, Values(node.Inputs{}, nil).Result())
}

func TestSet_DoesNotModifyInput(t *testing.T) {
	in := with("c")
	in["value"] = value.Bool(true)

	out := Set(in, nil)
	assert.Equal(t, value.Object{"a": value.String("x"), "b": value.Number(2), "c": value.Bool(true)}, out.Result())
	assert.Equal(t, sample(), in["object"])

	out = Set(node.Inputs{"object": sample()}, nil)
	_, failed := out.Error()
	assert.True(t, failed)
	assert.Equal(t, sample(), out.Result())
}

func TestDelete(t *testing.T) {
	in := with("a")
	out := Delete(in, nil)
	assert.Equal(t, value.Object{"b": value.Number(2)}, out.Result())
	assert.Equal(t, value.Bool(true), out["deleted"])
	assert.Equal(t, sample(), in["object"])

	out = Delete(with("zz"), nil)
	assert.Equal(t, sample(), out.Result())
	assert.Equal(t, value.Bool(false), out["deleted"])
}

func TestMerge(t *testing.T) {
	out := Merge(node.Inputs{"objects": value.List{
		value.Object{"a": value.Number(1), "b": value.Number(1)},
		value.String("skipped"),
		value.Object{"b": value.Number(2)},
	}}, nil)
	assert.Equal(t, value.Object{"a": value.Number(1), "b": value.Number(2)}, out.Result())
	assert.Equal(t, value.Object{}, Merge(node.Inputs{}, nil).Result())
}
