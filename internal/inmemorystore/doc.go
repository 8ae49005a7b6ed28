// Package inmemorystore provides a thread-safe, in-memory implementation
// of the nodestore.Store interface. It is suitable for local runs and tests,
// where step state does not outlive the process.
package inmemorystore
