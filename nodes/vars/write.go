package vars

import (
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

// PlanSet asks for "value" (Null when absent) to be stored under "key".
func PlanSet(in node.Inputs, _ varstore.Reader) (varstore.Intent, bool) {
	key, ok := in.Text(keyInput)
	if !ok {
		return nil, false
	}
	return varstore.Set{Key: key, Value: in.Value("value")}, true
}

// Set reports the write PlanSet describes.
func Set(in node.Inputs, store varstore.Reader) node.Outputs {
	intent, ok := PlanSet(in, store)
	if !ok {
		return failure().With("value", value.Null{})
	}
	set := intent.(varstore.Set)
	return success(set.Key).With("value", set.Value)
}

// PlanDelete asks for "key" to be removed, recording whether the snapshot
// held it.
func PlanDelete(in node.Inputs, store varstore.Reader) (varstore.Intent, bool) {
	key, ok := in.Text(keyInput)
	if !ok {
		return nil, false
	}
	return varstore.Delete{Key: key, Existed: varstore.Has(store, key)}, true
}

// Delete reports the removal PlanDelete describes.
func Delete(in node.Inputs, store varstore.Reader) node.Outputs {
	intent, ok := PlanDelete(in, store)
	if !ok {
		return failure().With("existed", value.Bool(false))
	}
	del := intent.(varstore.Delete)
	return success(del.Key).With("existed", value.Bool(del.Existed))
}

// PlanClear asks for every variable to be removed.
func PlanClear(_ node.Inputs, store varstore.Reader) (varstore.Intent, bool) {
	return varstore.Clear{Count: varstore.Count(store)}, true
}

// Clear reports how many entries PlanClear would remove.
func Clear(in node.Inputs, store varstore.Reader) node.Outputs {
	intent, _ := PlanClear(in, store)
	return node.Outputs{
		"success": value.Bool(true),
		"count":   value.Number(intent.(varstore.Clear).Count),
	}
}

func success(key string) node.Outputs {
	return node.Outputs{"success": value.Bool(true), "key": value.String(key)}
}

func failure() node.Outputs {
	return node.Outputs{"success": value.Bool(false), "key": value.String("")}.WithError(errKeyRequired)
}
