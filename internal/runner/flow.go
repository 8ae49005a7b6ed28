package runner

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/vk/gridnodes/internal/ctxlog"
	"github.com/vk/gridnodes/internal/flow"
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

// Report summarizes a flow run.
type Report struct {
	RunID string
	Steps []Result
	// Vars is the store content after the last step.
	Vars value.Object
}

// Failed returns the names of the steps that reported a failure.
func (rep *Report) Failed() []string {
	var names []string
	for _, s := range rep.Steps {
		if s.Failed() {
			names = append(names, s.Name)
		}
	}
	return names
}

// RunFlow seeds the store with the flow's vars and runs its steps in
// declaration order. A step that reports a failure does not stop the run;
// unknown node types and input evaluation errors do.
func (r *Runner) RunFlow(ctx context.Context, f *flow.Flow) (*Report, error) {
	rep := &Report{RunID: uuid.NewString()}
	ctx, logger := ctxlog.With(ctx, "run_id", rep.RunID)
	logger.Info("🚀 Starting flow run.", "steps", len(f.Steps))

	calls := make([]Call, len(f.Steps))
	for i, s := range f.Steps {
		calls[i] = Call{Name: s.Name, Type: s.Type}
	}
	nodes, err := r.lookupAll(calls)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(f.Vars))
	for k := range f.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.store.Apply(varstore.Set{Key: k, Value: f.Vars[k]})
	}

	for i, s := range f.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outputs, err := r.priorOutputs(ctx, f.Steps[:i])
		if err != nil {
			return nil, err
		}
		snap := r.store.Snapshot()
		in, err := s.EvalInputs(flow.EvalContext(outputs, snap))
		if err != nil {
			return nil, err
		}
		calls[i].Inputs = in

		res, intent, err := r.execute(ctx, calls[i], nodes[i], snap)
		if err != nil {
			return nil, err
		}
		r.commit(ctx, &res, intent)
		rep.Steps = append(rep.Steps, res)
	}

	rep.Vars = r.store.Snapshot().Object()
	if failed := rep.Failed(); len(failed) > 0 {
		logger.Warn("🏁 Flow run finished with failures.", "failed", failed)
	} else {
		logger.Info("🏁 Flow run finished.")
	}
	return rep, nil
}

// priorOutputs reads the recorded outputs of the steps that already ran, which
// is what `step.<name>.<key>` resolves against.
func (r *Runner) priorOutputs(ctx context.Context, steps []*flow.Step) (map[string]node.Outputs, error) {
	outputs := make(map[string]node.Outputs, len(steps))
	for _, s := range steps {
		out, err := r.results.GetOutputs(ctx, s.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to read outputs of step %q: %w", s.Name, err)
		}
		outputs[s.Name] = out
	}
	return outputs, nil
}

// String renders a one-line summary of the step.
func (res Result) String() string {
	return fmt.Sprintf("%s (%s): %s", res.Name, res.Type, res.Status)
}
