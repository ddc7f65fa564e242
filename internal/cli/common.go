// Package cli implements the cobra commands for the devkit tools.
//
// Each tool (passgen, phpswitch, devbranch, backup) is a standalone binary
// whose root command is defined in its own file within this package. This
// file holds what the tools share: version injection, the execute loop that
// translates errors into exit codes, and verbose logging.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/devkit/internal/model"
	"github.com/mmr-tortoise/devkit/internal/prompt"
)

// verbose enables detailed logging output for debugging.
// When true, additional information about operations is printed to stderr.
var verbose bool

// version, commit, and date are set at build time via ldflags.
// They are injected from the main packages to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// configureRoot applies the settings every devkit root command shares:
// version string, global flags, and self-managed error output.
func configureRoot(cmd *cobra.Command) *cobra.Command {
	// SilenceUsage prevents cobra from printing usage on every error.
	// SilenceErrors prevents cobra from printing errors automatically —
	// we format errors ourselves in Execute.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	return cmd
}

// Execute runs a root command and handles exit codes.
// This is the main entry point called from each main.go.
//
// Interrupt signals cancel the command context, so a Ctrl-C during a prompt
// or a long copy queue surfaces as a cancellation, never a stack trace.
// Cancellation is a non-error path and exits 0. CLIError values carry their
// own exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	if errors.Is(err, prompt.ErrCancelled) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "\nCancelled.")
		os.Exit(int(model.ExitSuccess))
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(cliErr.Message, cliErr.Err)
		os.Exit(int(cliErr.Code))
	}

	printError(err.Error(), nil)
	os.Exit(int(model.ExitGeneralError))
}

// printError outputs an error message to stderr: "Error: <message>".
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
