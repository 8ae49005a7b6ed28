// Package varstore implements the workflow variable store and the protocol
// nodes use to reach it.
//
// Nodes only ever see a Reader, which may be nil when a node runs outside a
// workflow. Nodes never write: a write-intent node returns an Intent
// describing the mutation it wants, and the owner of the Store applies it.
// The Store is the one shared, mutable resource in the system and is the only
// place that takes a lock.
package varstore
