package nodes

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

func TestCatalog_Definitions(t *testing.T) {
	reg := NewRegistry()
	require.GreaterOrEqual(t, reg.Len(), 50)

	for _, def := range reg.Definitions() {
		assert.Equal(t, def.Namespace(), def.Category, def.Type)
		assert.NotEmpty(t, def.Description, def.Type)
	}

	cats := reg.Categories()
	for _, c := range []string{"math", "string", "list", "convert", "dict", "logic", "var"} {
		assert.NotEmpty(t, cats[c], c)
	}
}

// TestCatalog_TotalOnEmptyInputs runs every node with no inputs, both with and
// without a store, and checks the outputs are never empty.
func TestCatalog_TotalOnEmptyInputs(t *testing.T) {
	reg := NewRegistry()
	stores := []varstore.Reader{nil, varstore.Snapshot{"k": value.Number(1)}}

	for _, typ := range reg.Types() {
		n, err := reg.Lookup(typ)
		require.NoError(t, err)
		for _, store := range stores {
			var out node.Outputs
			require.NotPanics(t, func() { out = n.Execute(node.Inputs{}, store) }, typ)
			assert.NotEmpty(t, out, typ)
		}
	}
}

func TestCatalog_Pure(t *testing.T) {
	reg := NewRegistry()
	in := node.Inputs{
		"numbers": value.Numbers(4, 2),
		"input":   value.String("Hello"),
		"list":    value.List{value.Number(3), value.Number(1), value.Number(2)},
		"values":  value.List{value.Bool(true), value.Number(0)},
		"key":     value.String("k"),
		"value":   value.String("v"),
		"a":       value.Number(7),
		"b":       value.Number(2),
	}
	store := varstore.Snapshot{"k": value.String("x")}

	for _, typ := range reg.Types() {
		n, err := reg.Lookup(typ)
		require.NoError(t, err)
		first := n.Execute(in, store)
		second := n.Execute(in, store)
		assert.True(t, value.Equal(first.Object(), second.Object()), typ)
	}
	assert.Equal(t, value.String("x"), store["k"])
	assert.Len(t, store, 1)
}

func TestCatalog_Examples(t *testing.T) {
	reg := NewRegistry()
	exec := func(typ string, in node.Inputs) node.Outputs {
		n, err := reg.Lookup(typ)
		require.NoError(t, err)
		return n.Execute(in, nil)
	}

	out := exec("math.divide", node.Inputs{"numbers": value.Numbers(10, 0)})
	msg, failed := out.Error()
	assert.True(t, failed)
	assert.Equal(t, "division by zero", msg)
	assert.Equal(t, value.Number(0), out.Result())

	out = exec("convert.to_object", node.Inputs{"value": value.List{
		value.List{value.String("a"), value.Number(1)},
		value.List{value.String("b")},
	}})
	assert.Equal(t, value.Object{"a": value.Number(1)}, out.Result())

	out = exec("var.get", node.Inputs{"key": value.String("missing"), "default": value.String("d")})
	assert.Equal(t, value.String("d"), out.Result())
}

func TestCatalog_Mutators(t *testing.T) {
	reg := NewRegistry()
	for _, typ := range reg.Types() {
		n, err := reg.Lookup(typ)
		require.NoError(t, err)
		_, isMutator := n.(node.Mutator)
		switch typ {
		case "var.set", "var.delete", "var.clear":
			assert.True(t, isMutator, typ)
		default:
			assert.False(t, isMutator, typ)
		}
	}
}

// TestCatalog_FailureKeepsOutputShape checks that a failing call returns the
// keys of a successful one plus "error".
func TestCatalog_FailureKeepsOutputShape(t *testing.T) {
	reg := NewRegistry()
	store := varstore.Snapshot{"name": value.String("ada")}
	nums := func(f ...float64) node.Inputs { return node.Inputs{"numbers": value.Numbers(f...)} }
	key := func(k string) node.Inputs {
		return node.Inputs{"key": value.String(k), "object": value.Object{"a": value.Number(1)}}
	}

	tests := []struct {
		typ  string
		ok   node.Inputs
		fail []node.Inputs
	}{
		{"math.subtract", nums(5, 2), []node.Inputs{nums(5), {}}},
		{"math.multiply", nums(2, 3), []node.Inputs{nums(), {}}},
		{"math.divide", nums(6, 3), []node.Inputs{nums(6), nums(6, 0)}},
		{"math.modulo", node.Inputs{"a": value.Number(7), "b": value.Number(2)}, []node.Inputs{{"a": value.Number(7)}}},
		{"math.sqrt", node.Inputs{"value": value.Number(9)}, []node.Inputs{{"value": value.Number(-1)}}},
		{"math.min", nums(1, 2), []node.Inputs{nums()}},
		{"math.max", nums(1, 2), []node.Inputs{nums()}},
		{"convert.parse_json", node.Inputs{"input": value.String(`{"a":1}`)}, []node.Inputs{{"input": value.String("{")}, {}}},
		{"string.format", node.Inputs{"template": value.String("hi {name}")}, []node.Inputs{{"template": value.String("{nope}")}}},
		{"dict.get", key("a"), []node.Inputs{{}, {"key": value.Number(1)}}},
		{"dict.has", key("a"), []node.Inputs{{}}},
		{"dict.set", key("b"), []node.Inputs{{}}},
		{"dict.delete", key("a"), []node.Inputs{{}}},
		{"var.get", key("name"), []node.Inputs{{}}},
		{"var.exists", key("name"), []node.Inputs{{}}},
		{"var.set", key("name"), []node.Inputs{{}, {"key": value.Bool(true)}}},
		{"var.delete", key("name"), []node.Inputs{{}}},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			n, err := reg.Lookup(tt.typ)
			require.NoError(t, err)

			ok := n.Execute(tt.ok, store)
			_, failed := ok.Error()
			require.False(t, failed, "success input must not fail")
			want := append(slices.Sorted(maps.Keys(ok)), node.ErrorKey)
			slices.Sort(want)

			for _, in := range tt.fail {
				out := n.Execute(in, store)
				_, failed := out.Error()
				require.True(t, failed, "failure input %v", in)
				assert.Equal(t, want, slices.Sorted(maps.Keys(out)), "failure input %v", in)
			}
		})
	}
}

func TestCatalog_InputAliases(t *testing.T) {
	reg := NewRegistry()
	exec := func(typ string, in node.Inputs) value.Value {
		n, err := reg.Lookup(typ)
		require.NoError(t, err)
		return n.Execute(in, nil).Result()
	}

	assert.Equal(t, value.String("HI"), exec("string.upper", node.Inputs{"value": value.String("hi")}))
	assert.Equal(t, value.String("HI"), exec("string.upper", node.Inputs{"text": value.String("hi")}))
	assert.Equal(t, value.String("IN"), exec("string.upper", node.Inputs{"input": value.String("in"), "text": value.String("hi")}))
	assert.Equal(t, value.Number(3), exec("list.length", node.Inputs{"array": value.Numbers(1, 2, 3)}))
	assert.Equal(t, value.Number(6), exec("math.add", node.Inputs{"values": value.Numbers(1, 2, 3)}))
	assert.Equal(t, value.Number(1), exec("math.add", node.Inputs{"numbers": value.Numbers(1), "values": value.Numbers(5)}))
	assert.Equal(t, value.Bool(true), exec("dict.has", node.Inputs{"dict": value.Object{"a": value.Null{}}, "key": value.String("a")}))
}
