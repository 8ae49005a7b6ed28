// Package flow loads local flow files: an ordered list of node invocations
// plus the initial content of the variable store, written in HCL.
//
//	vars {
//	  greeting = "hello"
//	}
//
//	step "math.add" "sum" {
//	  inputs = { numbers = [1, 2, 3] }
//	}
//
//	step "string.concat" "msg" {
//	  inputs = { strings = [var.greeting, step.sum.result] }
//	}
//
// Input expressions may read `var.<key>` (the store as the step sees it) and
// `step.<name>.<key>` for any step declared earlier.
package flow

import (
	"errors"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/gridnodes/internal/value"
)

var (
	// ErrDuplicateStep is returned when two steps share a name.
	ErrDuplicateStep = errors.New("duplicate step name")
	// ErrBadReference is returned for references to unknown or later steps,
	// unknown roots or unknown functions.
	ErrBadReference = errors.New("invalid reference")
)

// Flow is a loaded flow file set.
type Flow struct {
	Vars  map[string]value.Value
	Steps []*Step
}

// Step is one node invocation.
type Step struct {
	Type string
	Name string
	// Inputs is nil when the step declares no inputs.
	Inputs hcl.Expression
	// DependsOn lists the earlier steps the inputs read, sorted.
	DependsOn []string
	Range     hcl.Range
}

// Step returns the step named name, or nil.
func (f *Flow) Step(name string) *Step {
	for _, s := range f.Steps {
		if s.Name == name {
			return s
		}
	}
	return nil
}
