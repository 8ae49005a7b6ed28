// Package runner is the local harness around the node catalog. It owns the
// variable store: nodes only ever see a snapshot, and the runner applies the
// intents of write-intent nodes after they return.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vk/gridnodes/internal/ctxlog"
	"github.com/vk/gridnodes/internal/inmemorystore"
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/nodestore"
	"github.com/vk/gridnodes/internal/registry"
	"github.com/vk/gridnodes/internal/varstore"
)

const defaultWorkers = 10

// Runner invokes registered nodes against a variable store.
type Runner struct {
	registry *registry.Registry
	store    *varstore.Store
	results  nodestore.Store
	workers  int
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of concurrent calls in InvokeAll. Values
// below 1 are ignored.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// New creates a Runner. A nil store starts empty and a nil results store is
// replaced by an in-memory one.
func New(reg *registry.Registry, store *varstore.Store, results nodestore.Store, opts ...Option) *Runner {
	if store == nil {
		store = varstore.New(nil)
	}
	if results == nil {
		results = inmemorystore.New()
	}
	r := &Runner{registry: reg, store: store, results: results, workers: defaultWorkers}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Store returns the variable store the runner writes to.
func (r *Runner) Store() *varstore.Store { return r.store }

// Results returns the per-step state recorded so far.
func (r *Runner) Results() nodestore.Store { return r.results }

// Call is one invocation request. Name identifies the call in the results
// store. It defaults to Type for Invoke and to "<type>#<index>" in InvokeAll.
type Call struct {
	Name   string
	Type   string
	Inputs node.Inputs
}

func (c Call) name() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Type
}

// Result is the outcome of one call.
type Result struct {
	Name    string
	Type    string
	Status  nodestore.Status
	Outputs node.Outputs
	// Change is set when the node asked for a store mutation and it was applied.
	Change *varstore.Change
}

// Failed reports whether the node signalled a domain failure.
func (res Result) Failed() bool {
	return res.Status == nodestore.StatusFailed
}

// Invoke runs a single node against the current store and applies its
// intent, if any. Errors come from an unknown node type or the results store;
// domain failures are reported in the Result.
func (r *Runner) Invoke(ctx context.Context, nodeType string, in node.Inputs) (Result, error) {
	ctx, logger := ctxlog.With(ctx, "run_id", uuid.NewString())
	logger.Debug("Invoking node.", "type", nodeType)

	n, err := r.registry.Lookup(nodeType)
	if err != nil {
		return Result{}, err
	}
	call := Call{Type: nodeType, Inputs: in}
	res, intent, err := r.execute(ctx, call, n, r.store.Snapshot())
	if err != nil {
		return Result{}, err
	}
	r.commit(ctx, &res, intent)
	return res, nil
}

// execute runs n and records its outputs. It returns the intent the node asks
// for without applying it. The error is only ever a results store failure.
func (r *Runner) execute(ctx context.Context, call Call, n node.Node, snap varstore.Snapshot) (Result, varstore.Intent, error) {
	name := call.name()
	logger := ctxlog.FromContext(ctx).With("step", name, "type", call.Type)
	logger.Debug("▶️ Starting step.")
	if err := r.results.SetStatus(ctx, name, nodestore.StatusRunning); err != nil {
		return Result{}, nil, fmt.Errorf("failed to record status of step %q: %w", name, err)
	}

	in := call.Inputs
	if in == nil {
		in = node.Inputs{}
	}
	out := n.Execute(in, snap)

	var intent varstore.Intent
	if m, ok := n.(node.Mutator); ok {
		if it, ok := m.Intent(in, snap); ok {
			intent = it
		}
	}

	res := Result{Name: name, Type: call.Type, Status: nodestore.StatusCompleted, Outputs: out}
	if err := r.results.SetOutputs(ctx, name, out); err != nil {
		return Result{}, nil, fmt.Errorf("failed to record outputs of step %q: %w", name, err)
	}
	if msg, failed := out.Error(); failed {
		res.Status = nodestore.StatusFailed
		if err := r.results.SetError(ctx, name, errors.New(msg)); err != nil {
			return Result{}, nil, fmt.Errorf("failed to record error of step %q: %w", name, err)
		}
		logger.Warn("❌ Step reported a failure.", "error", msg)
	} else {
		logger.Debug("✅ Finished step.")
	}
	if err := r.results.SetStatus(ctx, name, res.Status); err != nil {
		return Result{}, nil, fmt.Errorf("failed to record status of step %q: %w", name, err)
	}
	return res, intent, nil
}

func (r *Runner) commit(ctx context.Context, res *Result, intent varstore.Intent) {
	if intent == nil {
		return
	}
	ch := r.store.Apply(intent)
	res.Change = &ch
	ctxlog.FromContext(ctx).Debug("Applied store intent.", "step", res.Name, "op", ch.Op, "key", ch.Key, "affected", ch.Affected)
}

func (r *Runner) lookupAll(calls []Call) ([]node.Node, error) {
	nodes := make([]node.Node, len(calls))
	for i, c := range calls {
		n, err := r.registry.Lookup(c.Type)
		if err != nil {
			return nil, fmt.Errorf("call %d (%s): %w", i, c.name(), err)
		}
		nodes[i] = n
	}
	return nodes, nil
}
