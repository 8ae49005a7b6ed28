package runner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vk/gridnodes/internal/ctxlog"
	"github.com/vk/gridnodes/internal/varstore"
)

// InvokeAll runs independent calls concurrently. Every call sees the same
// snapshot taken before the batch starts, and intents are applied afterwards
// in call order, so the final store does not depend on scheduling.
//
// Every node type is resolved before anything runs: an unknown type fails the
// whole batch. A cancelled context stops calls that have not started yet.
func (r *Runner) InvokeAll(ctx context.Context, calls []Call) ([]Result, error) {
	ctx, logger := ctxlog.With(ctx, "run_id", uuid.NewString())
	logger.Debug("Invoking batch.", "calls", len(calls), "workers", r.workers)

	nodes, err := r.lookupAll(calls)
	if err != nil {
		return nil, err
	}

	named := make([]Call, len(calls))
	for i, c := range calls {
		if c.Name == "" {
			c.Name = fmt.Sprintf("%s#%d", c.Type, i)
		}
		named[i] = c
	}

	snap := r.store.Snapshot()
	results := make([]Result, len(calls))
	intents := make([]varstore.Intent, len(calls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range calls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var err error
			results[i], intents[i], err = r.execute(gctx, named[i], nodes[i], snap)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range results {
		r.commit(ctx, &results[i], intents[i])
	}
	logger.Debug("Batch finished.", "calls", len(calls))
	return results, nil
}
