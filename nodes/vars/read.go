package vars

import (
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

const (
	keyInput       = "key"
	errKeyRequired = "key is required"
)

// Get returns the variable named by "key", falling back to "default" (Null
// when absent), and whether it exists.
func Get(in node.Inputs, store varstore.Reader) node.Outputs {
	key, ok := in.Text(keyInput)
	if !ok {
		return node.Fail(value.Null{}, errKeyRequired).With("exists", value.Bool(false))
	}
	v, exists := varstore.Lookup(store, key)
	if !exists {
		v = in.Value("default")
	}
	return node.Result(v).With("exists", value.Bool(exists))
}

// Exists reports whether "key" is present in the store.
func Exists(in node.Inputs, store varstore.Reader) node.Outputs {
	key, ok := in.Text(keyInput)
	if !ok {
		return node.Fail(value.Bool(false), errKeyRequired)
	}
	return node.Result(value.Bool(varstore.Has(store, key)))
}

// Keys lists the store's variable names in sorted order.
func Keys(_ node.Inputs, store varstore.Reader) node.Outputs {
	keys := varstore.KeysOf(store)
	return node.Result(value.Strings(keys...)).With("count", value.Number(len(keys)))
}
