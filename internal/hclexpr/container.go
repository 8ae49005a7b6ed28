// Package hclexpr collects HCL expressions and reports what they refer to:
// the variable traversals they read and the functions they call. The flow
// loader uses it to validate step references before anything runs.
package hclexpr

import (
	"sync"

	"github.com/hashicorp/hcl/v2"
)

// Container gathers expressions and caches the analysis of them.
type Container struct {
	mu       sync.RWMutex
	analyzed bool
	exprs    []hcl.Expression

	references []hcl.Traversal
	functions  []string
}

// NewContainer creates a new, empty expression container.
func NewContainer(exprs ...hcl.Expression) *Container {
	c := &Container{}
	c.Add(exprs...)
	return c
}

// Add appends expressions to the container, ignoring nil ones. Any cached
// analysis is discarded.
func (c *Container) Add(exprs ...hcl.Expression) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.analyzed = false
	for _, expr := range exprs {
		if expr != nil {
			c.exprs = append(c.exprs, expr)
		}
	}
}

func (c *Container) analyze() {
	c.mu.RLock()
	done := c.analyzed
	c.mu.RUnlock()
	if done {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.analyzed {
		return
	}
	c.references, c.functions = extract(c.exprs...)
	c.analyzed = true
}

// References returns every unique traversal, sorted by TraversalKey.
func (c *Container) References() []hcl.Traversal {
	c.analyze()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.references
}

// CalledFunctions returns every unique function name, sorted.
func (c *Container) CalledFunctions() []string {
	c.analyze()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.functions
}
