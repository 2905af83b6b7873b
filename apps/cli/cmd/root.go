package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdul-hamid-achik/veryhttp/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// usageError marks flag parsing failures reported by cobra.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// rootOptions holds the persistent flags shared by get and post.
type rootOptions struct {
	noColor    bool
	verbose    bool
	timeout    string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "veryhttp",
		Short: "A tiny HTTP client for the terminal.",
		Long: `veryhttp sends a single GET or POST request and prints the
response status, headers and body. JSON bodies are indented and
colorized.

Examples:
  veryhttp get https://httpbin.org/get
  veryhttp post https://httpbin.org/post name=ada lang=go`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetVersionTemplate("veryhttp version {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", getEnvBool("VERYHTTP_NO_COLOR", false), "Disable colored output (env: VERYHTTP_NO_COLOR)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", getEnvBool("VERYHTTP_VERBOSE", false), "Log request diagnostics to stderr (env: VERYHTTP_VERBOSE)")
	rootCmd.PersistentFlags().StringVar(&opts.timeout, "timeout", getEnvString("VERYHTTP_TIMEOUT", "0s"), "Request timeout, 0 waits forever (e.g., 30s, 1m) (env: VERYHTTP_TIMEOUT)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", getEnvString("VERYHTTP_CONFIG", ""), "Path to a YAML or JSON config file (env: VERYHTTP_CONFIG)")

	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newPostCmd(opts))
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(completionCmd())

	return rootCmd
}

func Execute(v, bt string) {
	version = v
	buildTime = bt

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	c, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return ExitSuccess
	}

	noColor := !isTerminal(stderr)
	if nc, ferr := rootCmd.PersistentFlags().GetBool("no-color"); ferr == nil && nc {
		noColor = true
	}
	output.NewRenderer(output.WithWriter(stderr), output.WithNoColor(noColor)).FormatError(err)

	code := exitCode(err)
	if code == ExitUsageError && c != nil {
		c.PrintErrf("Run '%s --help' for usage.\n", c.CommandPath())
	}
	return code
}

func isUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}
