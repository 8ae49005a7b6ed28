package dict

import (
	"maps"
	"slices"

	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

const (
	objectKey      = "object"
	keyInput       = "key"
	errKeyRequired = "key is required"
)

func sortedKeys(o value.Object) []string {
	return slices.Sorted(maps.Keys(o))
}

// Get returns object[key], falling back to "default" (Null when absent), and
// whether the key exists.
func Get(in node.Inputs, _ varstore.Reader) node.Outputs {
	key, ok := in.Text(keyInput)
	if !ok {
		return node.Fail(value.Null{}, errKeyRequired).With("exists", value.Bool(false))
	}
	v, exists := in.Object(objectKey)[key]
	if !exists {
		v = in.Value("default")
	}
	return node.Result(value.Normalize(v)).With("exists", value.Bool(exists))
}

// Has reports whether the object holds "key".
func Has(in node.Inputs, _ varstore.Reader) node.Outputs {
	key, ok := in.Text(keyInput)
	if !ok {
		return node.Fail(value.Bool(false), errKeyRequired)
	}
	_, exists := in.Object(objectKey)[key]
	return node.Result(value.Bool(exists))
}

// Keys lists the object's keys in sorted order.
func Keys(in node.Inputs, _ varstore.Reader) node.Outputs {
	keys := sortedKeys(in.Object(objectKey))
	return node.Result(value.Strings(keys...)).With("count", value.Number(len(keys)))
}

// Values lists the object's values ordered by key.
func Values(in node.Inputs, _ varstore.Reader) node.Outputs {
	obj := in.Object(objectKey)
	out := make(value.List, 0, len(obj))
	for _, k := range sortedKeys(obj) {
		out = append(out, value.Normalize(obj[k]))
	}
	return node.Result(out)
}

// Set returns a copy of the object with "key" bound to "value". Without a key
// the object is returned unchanged alongside the error.
func Set(in node.Inputs, _ varstore.Reader) node.Outputs {
	out := in.Object(objectKey).Clone()
	key, ok := in.Text(keyInput)
	if !ok {
		return node.Fail(out, errKeyRequired)
	}
	out[key] = in.Value("value")
	return node.Result(out)
}

// Delete returns a copy of the object without "key" and whether it was there.
func Delete(in node.Inputs, _ varstore.Reader) node.Outputs {
	out := in.Object(objectKey).Clone()
	key, ok := in.Text(keyInput)
	if !ok {
		return node.Fail(out, errKeyRequired).With("deleted", value.Bool(false))
	}
	_, existed := out[key]
	delete(out, key)
	return node.Result(out).With("deleted", value.Bool(existed))
}

// Merge folds "objects" left to right; on conflicting keys the later object
// wins. Elements that are not objects count as empty.
func Merge(in node.Inputs, _ varstore.Reader) node.Outputs {
	out := value.Object{}
	for _, item := range in.List("objects") {
		if obj, ok := value.Normalize(item).(value.Object); ok {
			maps.Copy(out, obj)
		}
	}
	return node.Result(out)
}
