package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vk/gridnodes/internal/app"
)

// Exit codes.
const (
	ExitFailure = 1 // a node or flow step reported a failure
	ExitUsage   = 2 // bad flags, arguments or input documents
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	workers    int
}

// NewRootCommand builds the gridnodes command tree. Command output goes to
// outW; logs go to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "gridnodes",
		Short: "Run workflow nodes locally",
		Long: "gridnodes invokes the nodes of the workflow catalog one at a time or as\n" +
			"a flow file, using a local variable store.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%s", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to a config file (default ./gridnodes.yaml when present).")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	pf.IntVar(&flags.workers, "workers", 10, "Number of concurrent workers for batch invocations.")

	// newApp is resolved lazily so that flags are parsed first.
	newApp := func(cmd *cobra.Command) (*app.App, error) {
		cfg, err := loadConfig(cmd, flags.configPath)
		if err != nil {
			return nil, err
		}
		slog.Debug("CLI configuration resolved.", "config", cfg)
		return app.NewApp(errW, cfg), nil
	}

	root.AddCommand(
		newListCommand(newApp),
		newExecCommand(newApp),
		newRunCommand(newApp),
	)
	return root
}

// loadConfig merges the config file and environment with the flags the user
// actually set.
func loadConfig(cmd *cobra.Command, path string) (*app.Config, error) {
	v := app.NewViper()
	for key, name := range map[string]string{
		"log_level":  "log-level",
		"log_format": "log-format",
		"workers":    "workers",
	} {
		if err := v.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(name)); err != nil {
			return nil, err
		}
	}
	cfg, err := app.LoadConfig(v, path)
	if err != nil {
		return nil, usageError("%s", err)
	}
	return cfg, nil
}

// Execute runs the command tree with args. Every returned error is an
// *ExitError.
func Execute(args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageError("%s: accepts %d arg(s), received %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usageError("%s: requires at least %d arg(s), received %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}
