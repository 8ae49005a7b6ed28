package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/gridnodes/internal/runner"
)

// AssertStepRan checks the log output for the start of the named step.
func AssertStepRan(t *testing.T, result *HarnessResult, stepName string) {
	t.Helper()

	expected := fmt.Sprintf("step=%s ", stepName)
	require.True(t,
		strings.Contains(result.LogOutput, expected),
		"expected log output for step '%s' was not found in logs", stepName,
	)
}

// StepResult returns the report entry of the named step, failing the test
// when it did not run.
func StepResult(t *testing.T, result *HarnessResult, stepName string) runner.Result {
	t.Helper()

	require.NoError(t, result.Err)
	require.NotNil(t, result.Report)
	for _, s := range result.Report.Steps {
		if s.Name == stepName {
			return s
		}
	}
	require.FailNow(t, "step did not run", "step %q is missing from the report", stepName)
	return runner.Result{}
}
