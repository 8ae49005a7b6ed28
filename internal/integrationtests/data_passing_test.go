package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridnodes/internal/testutil"
	"github.com/vk/gridnodes/internal/value"
)

func TestFlow_PassesOutputsBetweenSteps(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			step "string.split" "words" {
				inputs = { input = "delta alpha charlie bravo", separator = " " }
			}

			step "list.sort" "sorted" {
				inputs = { list = step.words.result }
			}

			step "list.join" "joined" {
				inputs = { list = step.sorted.result, separator = "," }
			}

			step "string.upper" "shout" {
				inputs = { input = step.joined.result }
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	for _, name := range []string{"words", "sorted", "joined", "shout"} {
		testutil.AssertStepRan(t, result, name)
	}
	shout := testutil.StepResult(t, result, "shout")
	assert.Equal(t, value.String("ALPHA,BRAVO,CHARLIE,DELTA"), shout.Outputs.Result())
}

func TestFlow_ExpressionsAndFunctions(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			vars {
				base = 10
			}

			step "math.add" "sum" {
				inputs = { numbers = [var.base, 5] }
			}

			step "logic.if" "pick" {
				inputs = {
					condition = step.sum.result > 12
					then      = format("big:%d", step.sum.result)
					else      = "small"
				}
			}

			step "convert.to_json" "dump" {
				inputs = { value = { total = step.sum.result, label = step.pick.result } }
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, value.String("big:15"), testutil.StepResult(t, result, "pick").Outputs.Result())
	assert.Equal(t, value.String(`{"label":"big:15","total":15}`), testutil.StepResult(t, result, "dump").Outputs.Result())
}
