// Package node defines the contract every catalog node implements.
//
// A node is a stateless transform. Given named inputs and an optional
// read-only view of the variable store it returns named outputs. It never
// fails: input shape problems fall back to per-key defaults, and domain
// failures are reported through the reserved "error" output key while the
// primary key still carries a neutral value.
package node

import (
	"strings"

	"github.com/vk/gridnodes/internal/varstore"
)

// Definition identifies a node in the catalog.
type Definition struct {
	// Type is the "namespace.operation" identifier, e.g. "math.add".
	Type        string `json:"type" yaml:"type"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
}

// Namespace returns the part of Type before the first dot.
func (d Definition) Namespace() string {
	ns, _, _ := strings.Cut(d.Type, ".")
	return ns
}

// Node is the uniform execution contract.
//
// Execute must be a pure function of its arguments: it keeps no state between
// calls, performs no I/O and never mutates the store or its inputs. store is
// nil when the node runs outside a workflow.
type Node interface {
	Definition() Definition
	Execute(in Inputs, store varstore.Reader) Outputs
}

// Mutator is implemented by write-intent nodes. Intent returns the store
// mutation the node asks for, or false when the inputs do not describe one.
// Applying it is the caller's job.
type Mutator interface {
	Node
	Intent(in Inputs, store varstore.Reader) (varstore.Intent, bool)
}

// ExecuteFunc is the signature of a node body.
type ExecuteFunc func(in Inputs, store varstore.Reader) Outputs

// IntentFunc is the signature of a write-intent planner.
type IntentFunc func(in Inputs, store varstore.Reader) (varstore.Intent, bool)

// WithAliases lets fn find its key input under any of aliases as well. The
// key itself wins when both are supplied.
func WithAliases(fn ExecuteFunc, key string, aliases ...string) ExecuteFunc {
	return func(in Inputs, store varstore.Reader) Outputs {
		return fn(in.Alias(key, aliases...), store)
	}
}

// Func adapts a plain function into a Node.
type Func struct {
	Def Definition
	Fn  ExecuteFunc
}

var _ Node = Func{}

func (f Func) Definition() Definition { return f.Def }

func (f Func) Execute(in Inputs, store varstore.Reader) Outputs {
	return f.Fn(in, store)
}

// MutatorFunc adapts a pair of functions into a Mutator.
type MutatorFunc struct {
	Func
	Plan IntentFunc
}

var _ Mutator = MutatorFunc{}

func (m MutatorFunc) Intent(in Inputs, store varstore.Reader) (varstore.Intent, bool) {
	return m.Plan(in, store)
}
