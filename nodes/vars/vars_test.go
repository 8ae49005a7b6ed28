package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

func snapshot() varstore.Snapshot {
	return varstore.Snapshot{"foo": value.String("bar"), "n": value.Number(1)}
}

func key(k string) node.Inputs {
	return node.Inputs{"key": value.String(k)}
}

func TestGet(t *testing.T) {
	out := Get(key("foo"), snapshot())
	assert.Equal(t, value.String("bar"), out.Result())
	assert.Equal(t, value.Bool(true), out["exists"])

	in := key("missing")
	in["default"] = value.String("default_value")
	out = Get(in, snapshot())
	assert.Equal(t, value.String("default_value"), out.Result())
	assert.Equal(t, value.Bool(false), out["exists"])
}

func TestGet_WithoutStore(t *testing.T) {
	in := key("foo")
	in["default"] = value.Number(5)
	out := Get(in, nil)
	assert.Equal(t, value.Number(5), out.Result())
	assert.Equal(t, value.Bool(false), out["exists"])
	_, failed := out.Error()
	assert.False(t, failed)

	out = Get(key("foo"), nil)
	assert.Equal(t, value.Null{}, out.Result())
}

func TestGet_KeyRequired(t *testing.T) {
	for _, in := range []node.Inputs{{}, {"key": value.Number(1)}} {
		out := Get(in, snapshot())
		msg, failed := out.Error()
		assert.True(t, failed)
		assert.Equal(t, "key is required", msg)
		assert.Equal(t, value.Null{}, out.Result())
		assert.Equal(t, value.Bool(false), out["exists"])
	}
}

func TestExistsAndKeys(t *testing.T) {
	assert.Equal(t, value.Bool(true), Exists(key("n"), snapshot()).Result())
	assert.Equal(t, value.Bool(false), Exists(key("n"), nil).Result())

	out := Exists(node.Inputs{}, snapshot())
	_, failed := out.Error()
	assert.True(t, failed)
	assert.Equal(t, value.Bool(false), out.Result())

	out = Keys(nil, snapshot())
	assert.Equal(t, value.Strings("foo", "n"), out.Result())
	assert.Equal(t, value.Number(2), out["count"])

	out = Keys(nil, nil)
	assert.Equal(t, value.List{}, out.Result())
	assert.Equal(t, value.Number(0), out["count"])
}

func TestSet(t *testing.T) {
	in := key("foo")
	in["value"] = value.String("baz")

	out := Set(in, nil)
	assert.Equal(t, node.Outputs{
		"success": value.Bool(true),
		"key":     value.String("foo"),
		"value":   value.String("baz"),
	}, out)

	intent, ok := PlanSet(in, nil)
	require.True(t, ok)
	assert.Equal(t, varstore.Set{Key: "foo", Value: value.String("baz")}, intent)

	out = Set(node.Inputs{"value": value.String("baz")}, nil)
	assert.Equal(t, value.Bool(false), out["success"])
	assert.Contains(t, out, "key")
	assert.Contains(t, out, "value")
	_, failed := out.Error()
	assert.True(t, failed)

	_, ok = PlanSet(node.Inputs{}, nil)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	out := Delete(key("foo"), snapshot())
	assert.Equal(t, value.Bool(true), out["success"])
	assert.Equal(t, value.Bool(true), out["existed"])

	out = Delete(key("foo"), nil)
	assert.Equal(t, value.Bool(false), out["existed"])

	intent, ok := PlanDelete(key("n"), snapshot())
	require.True(t, ok)
	assert.Equal(t, varstore.Delete{Key: "n", Existed: true}, intent)

	out = Delete(node.Inputs{}, snapshot())
	assert.Equal(t, value.Bool(false), out["success"])
	assert.Equal(t, value.Bool(false), out["existed"])
}

func TestClear(t *testing.T) {
	out := Clear(nil, snapshot())
	assert.Equal(t, value.Number(2), out["count"])
	assert.Equal(t, value.Bool(true), out["success"])

	intent, ok := PlanClear(nil, nil)
	require.True(t, ok)
	assert.Equal(t, varstore.Clear{Count: 0}, intent)
}

// TestWriteNodes_DoNotMutate checks that write nodes leave the snapshot
// untouched and that applying their intent is what changes the store.
func TestWriteNodes_DoNotMutate(t *testing.T) {
	store := varstore.New(map[string]value.Value{"foo": value.String("bar")})
	snap := store.Snapshot()

	in := key("foo")
	Delete(in, snap)
	Clear(nil, snap)
	assert.Equal(t, 1, store.Len())

	intent, ok := PlanDelete(in, snap)
	require.True(t, ok)
	store.Apply(intent)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 1, snap.Len())
}
