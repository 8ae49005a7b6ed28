// Package registry provides the central "glue" for the node catalog.
//
// The Registry maps the node type identifiers used by callers (e.g.
// "math.add") to the factories that build the compiled Go nodes. It is
// populated once at process start by the node family modules and is read-only
// afterwards, so lookups need no locking.
//
// Registering the same type twice is a programmer error and panics, which
// surfaces catalog mistakes at startup rather than during a workflow run.
package registry
