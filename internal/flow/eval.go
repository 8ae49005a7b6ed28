package flow

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

// Functions returns the functions available to flow expressions.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"abs":        stdlib.AbsoluteFunc,
		"ceil":       stdlib.CeilFunc,
		"coalesce":   stdlib.CoalesceFunc,
		"concat":     stdlib.ConcatFunc,
		"floor":      stdlib.FloorFunc,
		"format":     stdlib.FormatFunc,
		"join":       stdlib.JoinFunc,
		"jsondecode": stdlib.JSONDecodeFunc,
		"jsonencode": stdlib.JSONEncodeFunc,
		"keys":       stdlib.KeysFunc,
		"length":     stdlib.LengthFunc,
		"lower":      stdlib.LowerFunc,
		"max":        stdlib.MaxFunc,
		"merge":      stdlib.MergeFunc,
		"min":        stdlib.MinFunc,
		"reverse":    stdlib.ReverseListFunc,
		"split":      stdlib.SplitFunc,
		"strlen":     stdlib.StrlenFunc,
		"trimspace":  stdlib.TrimSpaceFunc,
		"upper":      stdlib.UpperFunc,
		"values":     stdlib.ValuesFunc,
	}
}

// EvalContext builds the scope for a step's inputs: `step` holds the outputs
// of the steps run so far, `var` the store snapshot.
func EvalContext(outputs map[string]node.Outputs, vars varstore.Reader) *hcl.EvalContext {
	steps := make(map[string]cty.Value, len(outputs))
	for name, out := range outputs {
		steps[name] = value.ToCty(out.Object())
	}

	store := make(value.Object)
	for _, k := range varstore.KeysOf(vars) {
		store[k], _ = varstore.Lookup(vars, k)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"step": cty.ObjectVal(steps),
			"var":  value.ToCty(store),
		},
		Functions: Functions(),
	}
}

// EvalInputs evaluates the step's inputs expression. It must produce an
// object; a step without inputs gets an empty map.
func (s *Step) EvalInputs(ectx *hcl.EvalContext) (node.Inputs, error) {
	if s.Inputs == nil {
		return node.Inputs{}, nil
	}
	v, diags := s.Inputs.Value(ectx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate inputs of step %q: %w", s.Name, diags)
	}
	switch in := value.FromCty(v).(type) {
	case value.Object:
		return node.Inputs(in), nil
	case value.Null:
		return node.Inputs{}, nil
	default:
		return nil, fmt.Errorf("inputs of step %q must be an object, got %s", s.Name, in.Kind())
	}
}
