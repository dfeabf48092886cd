package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/capigen/internal/app"
	"github.com/specialistvlad/capigen/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// Execute parses args and runs the selected command. The run summary goes to
// stdout; logs and errors go to stderr. Usage and configuration problems are
// returned as *ExitError with code 2.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, loaders ...config.Loader) error {
	root := newRootCmd(stdout, stderr, loaders)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer, loaders []config.Loader) *cobra.Command {
	flags := &globalFlags{}

	// newApp reads the project file and builds the app for one command run.
	newApp := func() (*app.App, error) {
		raw, err := app.ReadConfig(flags.configPath)
		if err != nil {
			return nil, usageError(err)
		}
		raw.LogLevel = strings.ToLower(flags.logLevel)
		raw.LogFormat = strings.ToLower(flags.logFormat)
		if raw.LogFormat == "" {
			raw.LogFormat = defaultLogFormat(stderr)
		}

		cfg, err := app.NewConfig(raw)
		if err != nil {
			return nil, usageError(err)
		}
		return app.NewApp(stdout, stderr, cfg, loaders...), nil
	}

	var dryRun bool
	generate := func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		_, err = a.Generate(cmd.Context(), app.GenerateOptions{DryRun: dryRun})
		return err
	}

	root := &cobra.Command{
		Use:   "capigen",
		Short: "Generate versioned C API headers from function definitions",
		Long: `capigen reads function definitions, API version manifests and an exclusion
list, validates them against each other and generates three headers:

  * the public header with every function declaration,
  * the extension header with the versioned function table struct,
  * the internal header with the CreateApi table initializer.

Running capigen without a command is the same as "capigen generate".`,
		Args:          usageArgs(cobra.NoArgs),
		RunE:          generate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	root.Flags().BoolVar(&dryRun, "dry-run", false, "Render the headers without writing them")

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", app.DefaultConfigFile, "Path to the project file")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log output format. Options: 'text' or 'json'. Defaults to text on a terminal and json otherwise.")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Validate the definitions and write all three headers",
		Args:  usageArgs(cobra.NoArgs),
		RunE:  generate,
	}
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render the headers without writing them")

	var skipExclusions bool
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the definitions without generating anything",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			_, err = a.Check(cmd.Context(), skipExclusions)
			return err
		},
	}
	checkCmd.Flags().BoolVar(&skipExclusions, "skip-exclusions", false, "Do not reconcile the exclusion list with the function table")

	var minor, patch int
	negotiateCmd := &cobra.Command{
		Use:   "negotiate",
		Short: "Show which function table slots a client at the given version receives",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minor < 0 || patch < 0 {
				return &ExitError{Code: 2, Message: "--minor and --patch must not be negative"}
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			_, err = a.Negotiate(cmd.Context(), minor, patch)
			return err
		},
	}
	negotiateCmd.Flags().IntVar(&minor, "minor", 0, "Requested minor version")
	negotiateCmd.Flags().IntVar(&patch, "patch", 0, "Requested patch version")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the capigen version",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "capigen %s\n", Version)
		},
	}

	root.AddCommand(generateCmd, checkCmd, negotiateCmd, versionCmd)
	return root
}

// usageArgs turns argument validation failures into usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// defaultLogFormat picks text logs for a terminal and JSON otherwise.
func defaultLogFormat(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "text"
	}
	return "json"
}
