// Package cli builds the gridnodes command tree, validates user input and
// maps failures to process exit codes. It translates flags into app.Config
// and leaves everything else to package app.
package cli
