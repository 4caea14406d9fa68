// Package cli implements the cobra-based CLI for nextjs-cursor-setup.
//
// The tool has a single job, so the root command itself runs the setup
// procedure (see setup.go). This file defines the root command, global
// flags, error rendering and exit code handling.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/customizer"
	"github.com/shinji-kodama/nextjs-cursor-setup/internal/model"
)

// Global flag variables. These are bound to cobra persistent flags on the
// root command.
var (
	// jsonOutput prints a machine-readable summary after the run.
	jsonOutput bool

	// verbose enables [verbose] trace lines on stderr.
	verbose bool
)

// Set at build time via ldflags from the main package.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	flags := &setupFlags{}

	rootCmd := &cobra.Command{
		Use:   "nextjs-cursor-setup",
		Short: "Personalize the Next.js Cursor AI boilerplate",
		Long: `nextjs-cursor-setup customizes a freshly cloned Next.js Cursor AI boilerplate.

It asks for the project name, description, author and GitHub username, then:
  - updates name, description, author and repository in package.json
  - creates .env.local from .env.example (never overwrites an existing one)
  - replaces the boilerplate title and repository path in README.md

Examples:
  nextjs-cursor-setup
  nextjs-cursor-setup --dir ../my-app
  nextjs-cursor-setup --answers answers.yaml --strict`,

		Args: cobra.NoArgs,

		// Errors are rendered by Execute (text or JSON), not by cobra.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print a JSON summary of the result")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().StringVar(&flags.dir, "dir", "", "Project directory (default: current directory)")
	rootCmd.Flags().StringVar(&flags.answers, "answers", "", "Read answers from a YAML file instead of prompting")
	rootCmd.Flags().BoolVar(&flags.strict, "strict", false, "Exit with a non-zero code when setup fails")

	return rootCmd
}

// Execute runs the root command with ctx and handles exit codes. Cancelling
// ctx interrupts a pending prompt.
//
// A setup failure has already been reported by the customizer, so it is not
// printed again; only its exit code is applied.
func Execute(ctx context.Context, rootCmd *cobra.Command) {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		if !errors.Is(err, customizer.ErrSetupFailed) {
			printError(rootCmd.ErrOrStderr(), cliErr.Message, cliErr.Err)
		}
		os.Exit(int(cliErr.Code))
	}

	printError(rootCmd.ErrOrStderr(), err.Error(), nil)
	os.Exit(int(model.ExitGeneralError))
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// stdout is reserved for the result summary, so errors go to stderr
		// even in JSON mode.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
