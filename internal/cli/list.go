package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vk/gridnodes/internal/app"
	"github.com/vk/gridnodes/internal/node"
)

type appFactory func(cmd *cobra.Command) (*app.App, error)

func newListCommand(newApp appFactory) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the node types in the catalog",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return writeCatalog(cmd.OutOrStdout(), a.Registry().Definitions(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format. Options: 'text', 'json', 'yaml'.")
	return cmd
}

func writeCatalog(w io.Writer, defs []node.Definition, format string) error {
	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tCATEGORY\tDESCRIPTION")
		for _, d := range defs {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Type, d.Category, d.Description)
		}
		return tw.Flush()
	case "json":
		data, err := json.MarshalIndent(defs, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(defs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return usageError("invalid output format %q: must be 'text', 'json' or 'yaml'", format)
	}
}
