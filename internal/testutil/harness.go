// Package testutil provides the harness the end-to-end tests use to run flow
// files through a fully wired App.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/gridnodes/internal/app"
	"github.com/vk/gridnodes/internal/registry"
	"github.com/vk/gridnodes/internal/runner"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	Report    *runner.Report
	App       *app.App
}

// WriteFiles writes files, keyed by relative path, under a fresh temporary
// directory and returns the directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

// RunIntegrationTest writes files and runs every .hcl file among them as one
// flow, using the full catalog unless modules are given.
func RunIntegrationTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, modules...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	testApp, logs := app.SetupAppTest(t, app.Config{}, modules...)
	rep, err := testApp.RunFlow(ctx, dir)

	return &HarnessResult{
		LogOutput: logs.String(),
		Err:       err,
		Report:    rep,
		App:       testApp,
	}
}
