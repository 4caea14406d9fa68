// Package cli — setup.go wires flags, prompt source and output streams into
// a customizer run.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/customizer"
	"github.com/shinji-kodama/nextjs-cursor-setup/internal/model"
	"github.com/shinji-kodama/nextjs-cursor-setup/internal/prompt"
)

// setupFlags holds the flag values for the root command.
type setupFlags struct {
	dir     string // --dir: project directory
	answers string // --answers: YAML answers file
	strict  bool   // --strict: non-zero exit on setup failure
}

// runSetup resolves the project directory and prompt source, runs the
// customizer, and maps its outcome to an exit code.
//
// Without --strict a failed setup still returns nil: the failure has been
// reported on stderr and the process exits 0. With --strict, an interrupt
// or input that ends before every question is answered exits
// ExitUserCancelled; any other failure exits ExitSetupFailed.
func runSetup(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, flags *setupFlags) error {
	dir, err := resolveProjectDir(flags.dir)
	if err != nil {
		return err
	}
	VerboseLog("Project directory: %s", dir)

	// With --json, stdout carries only the summary document; prompts and
	// progress messages move to stderr.
	msgOut := stdout
	if IsJSONOutput() {
		msgOut = stderr
	}

	var p prompt.Prompter
	if flags.answers != "" {
		answers, loadErr := prompt.LoadAnswers(flags.answers)
		if loadErr != nil {
			return model.WrapCLIError(model.ExitAnswersFileError, "invalid answers file", loadErr)
		}
		VerboseLog("Using answers from %s", flags.answers)
		p = prompt.NewFilePrompter(answers, msgOut)
	} else {
		p = prompt.NewLinePrompter(stdin, msgOut)
	}

	c := &customizer.Customizer{
		Dir:      dir,
		Paths:    model.DefaultPaths(),
		Prompter: p,
		Out:      msgOut,
		Err:      stderr,
		Theme:    themeFor(msgOut),
		ErrTheme: themeFor(stderr),
		Logf:     VerboseLog,
	}

	result, runErr := c.Run(ctx)

	if IsJSONOutput() {
		printResultJSON(stdout, result, runErr)
	}

	if runErr == nil || !flags.strict {
		return nil
	}
	if errors.Is(runErr, context.Canceled) || errors.Is(runErr, prompt.ErrInputClosed) {
		return model.WrapCLIError(model.ExitUserCancelled, "setup cancelled", runErr)
	}
	return model.WrapCLIError(model.ExitSetupFailed, "setup failed", runErr)
}

// resolveProjectDir returns the absolute project directory, defaulting to
// the working directory.
func resolveProjectDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
		}
		return cwd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "failed to resolve project directory", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "project directory not found", err)
	}
	if !info.IsDir() {
		return "", model.NewCLIError(model.ExitGeneralError, fmt.Sprintf("%s is not a directory", abs))
	}
	return abs, nil
}

// setupSummary is the --json output document.
type setupSummary struct {
	Success bool               `json:"success"`
	Error   string             `json:"error,omitempty"`
	Result  *customizer.Result `json:"result,omitempty"`
}

// printResultJSON outputs the run summary as structured JSON.
func printResultJSON(w io.Writer, result *customizer.Result, runErr error) {
	summary := setupSummary{
		Success: runErr == nil,
		Result:  result,
	}
	if runErr != nil {
		summary.Error = runErr.Error()
	}

	data, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Fprintln(w, string(data))
}
