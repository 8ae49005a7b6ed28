package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/registry"
	"github.com/vk/gridnodes/internal/value"
)

func newExecCommand(newApp appFactory) *cobra.Command {
	var inputsJSON, varsJSON string

	cmd := &cobra.Command{
		Use:   "exec <type>",
		Short: "Invoke a single node and print its outputs as JSON",
		Example: `  gridnodes exec math.add --inputs '{"numbers":[1,2,3]}'
  gridnodes exec var.get --inputs '{"key":"name"}' --vars '{"name":"ada"}'`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := value.ParseObject([]byte(inputsJSON))
			if err != nil {
				return usageError("invalid --inputs: %s", err)
			}
			vars, err := value.ParseObject([]byte(varsJSON))
			if err != nil {
				return usageError("invalid --vars: %s", err)
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			res, err := a.Exec(cmd.Context(), args[0], node.Inputs(inputs), vars)
			if errors.Is(err, registry.ErrUnknownNode) {
				return usageError("%s", err)
			}
			if err != nil {
				return err
			}

			data, err := value.MarshalIndent(res.Outputs.Object())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			if msg, failed := res.Outputs.Error(); failed {
				return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%s: %s", args[0], msg)}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inputsJSON, "inputs", "", "Node inputs as a JSON object.")
	cmd.Flags().StringVar(&varsJSON, "vars", "", "Initial variable store as a JSON object.")
	return cmd
}
