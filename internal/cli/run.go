package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/gridnodes/internal/runner"
	"github.com/vk/gridnodes/internal/value"
)

func newRunCommand(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "run <flow.hcl|dir>...",
		Short: "Run a flow file, or every .hcl file in a directory",
		Args:  minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			rep, err := a.RunFlow(cmd.Context(), args...)
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), rep); err != nil {
				return err
			}
			if failed := rep.Failed(); len(failed) > 0 {
				return &ExitError{Code: ExitFailure, Message: "failed steps: " + strings.Join(failed, ", ")}
			}
			return nil
		},
	}
}

func writeReport(w io.Writer, rep *runner.Report) error {
	fmt.Fprintf(w, "run %s\n", rep.RunID)
	for _, s := range rep.Steps {
		data, err := value.Marshal(s.Outputs.Object())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s %s\n", s, data)
	}
	data, err := value.Marshal(rep.Vars)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "vars %s\n", data)
	return err
}
