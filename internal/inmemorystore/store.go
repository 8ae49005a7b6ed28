package inmemorystore

import (
	"context"
	"sync"

	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/nodestore"
)

// Store is an in-memory implementation of nodestore.Store.
//
// Each concern lives in its own sync.Map keyed by step name. Steps write
// disjoint keys, so there is no global lock.
type Store struct {
	states  sync.Map // Key: step name, Value: nodestore.Status
	outputs sync.Map // Key: step name, Value: node.Outputs
	errors  sync.Map // Key: step name, Value: error
}

// New creates a new, empty in-memory step state store.
func New() nodestore.Store {
	return &Store{}
}

// SetStatus updates the status of a step.
func (s *Store) SetStatus(ctx context.Context, step string, status nodestore.Status) error {
	s.states.Store(step, status)
	return nil
}

// GetStatus returns the status of a step, StatusPending if none was set.
func (s *Store) GetStatus(ctx context.Context, step string) (nodestore.Status, error) {
	status, ok := s.states.Load(step)
	if !ok {
		return nodestore.StatusPending, nil
	}
	return status.(nodestore.Status), nil
}

// SetOutputs records the outputs of a step.
func (s *Store) SetOutputs(ctx context.Context, step string, outputs node.Outputs) error {
	s.outputs.Store(step, outputs)
	return nil
}

// GetOutputs returns the recorded outputs of a step.
func (s *Store) GetOutputs(ctx context.Context, step string) (node.Outputs, error) {
	outputs, ok := s.outputs.Load(step)
	if !ok {
		return nil, nil
	}
	return outputs.(node.Outputs), nil
}

// SetError records the failure of a step.
func (s *Store) SetError(ctx context.Context, step string, stepErr error) error {
	s.errors.Store(step, stepErr)
	return nil
}

// GetError returns the recorded failure of a step.
func (s *Store) GetError(ctx context.Context, step string) (error, error) {
	err, ok := s.errors.Load(step)
	if !ok {
		return nil, nil
	}
	return err.(error), nil
}
