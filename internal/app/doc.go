// Package app wires the node catalog, the variable store and the runner
// together behind a small API used by the CLI. It owns configuration loading
// and logger construction, and knows nothing about command-line parsing.
package app
