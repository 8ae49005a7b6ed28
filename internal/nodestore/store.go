// Package nodestore defines the interface for recording what happened to each
// invocation during a local run.
//
// The store keeps the mutable, per-step state (status, outputs, errors) apart
// from the variable store, which only the runner writes through intents. It is
// created once per run and discarded afterwards.
//
// During a run:
//   - the runner calls SetStatus/SetOutputs/SetError as steps execute
//   - RunFlow reads GetOutputs back to resolve `step.<name>.<key>`
//
// Steps move through:
//
//	Pending → Running → Completed (with outputs) OR Failed (with outputs and error)
package nodestore

import (
	"context"
	"fmt"

	"github.com/vk/gridnodes/internal/node"
)

// Status is the lifecycle state of one invocation.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusCompleted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText renders the status by name in JSON and YAML reports.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Store is the interface for managing per-step execution state.
//
// Implementations MUST be safe for concurrent use: InvokeAll records the
// results of parallel calls at the same time.
type Store interface {
	// SetStatus updates the status of a step.
	SetStatus(ctx context.Context, step string, status Status) error

	// GetStatus returns StatusPending if no status has been set yet.
	GetStatus(ctx context.Context, step string) (Status, error)

	// SetOutputs records the outputs of a finished step. Failed steps have
	// outputs too, since node failures are reported in-band.
	SetOutputs(ctx context.Context, step string, outputs node.Outputs) error

	// GetOutputs returns nil if the step has not finished.
	GetOutputs(ctx context.Context, step string) (node.Outputs, error)

	// SetError records why a step failed.
	SetError(ctx context.Context, step string, stepErr error) error

	// GetError returns nil if the step succeeded or has not run.
	GetError(ctx context.Context, step string) (error, error)
}
