// Package customizer implements the one-shot project personalization
// procedure.
//
// Orchestration steps:
//  1. Collect five answers from the Prompter
//  2. Load package.json (fatal when missing or unparsable)
//  3. Apply answers and defaults to the descriptor
//  4. Persist package.json
//  5. Bootstrap .env.local from .env.example unless it already exists
//  6. Rewrite README.md
//  7. Print completion and next-step messages
//  8. Release the Prompter on every exit path
//
// Any error in steps 1-6 is reported once as "❌ Setup failed: <message>"
// on the error stream. Nothing is retried and completed steps are not rolled
// back: a README failure leaves the already rewritten package.json in place.
//
// Input that ends before all five answers arrive is not a failure notice:
// the run stops quietly before step 2 and no file is touched.
package customizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/descriptor"
	"github.com/shinji-kodama/nextjs-cursor-setup/internal/envfile"
	"github.com/shinji-kodama/nextjs-cursor-setup/internal/model"
	"github.com/shinji-kodama/nextjs-cursor-setup/internal/prompt"
	"github.com/shinji-kodama/nextjs-cursor-setup/internal/readme"
)

// ErrSetupFailed wraps every error returned by Run. The failure has already
// been reported on the error stream when Run returns it, except when the
// cause is prompt.ErrInputClosed.
var ErrSetupFailed = errors.New("setup failed")

// WelcomeMessage is printed before the first question.
const WelcomeMessage = "🚀 Welcome to Next.js Cursor AI Boilerplate Setup!"

// Customizer holds everything one run needs. Out and Err default to
// io.Discard, Paths to model.DefaultPaths, Theme and ErrTheme to PlainTheme.
type Customizer struct {
	// Dir is the project directory that Paths are resolved against.
	// Empty means the process working directory.
	Dir string

	// Paths names the files to touch, relative to Dir.
	Paths model.Paths

	// Prompter supplies the answers. It is closed when Run returns.
	Prompter prompt.Prompter

	// Out receives progress and completion messages.
	Out io.Writer

	// Err receives the failure notice.
	Err io.Writer

	// Theme decorates messages written to Out.
	Theme Theme

	// ErrTheme decorates the failure notice written to Err.
	ErrTheme Theme

	// Logf receives verbose trace output. Nil disables tracing.
	Logf func(format string, args ...interface{})
}

// Result describes what a run did. Fields for steps that did not run are
// left at their zero values.
type Result struct {
	// Answers are the collected answers as entered (before defaults).
	Answers model.Answers `json:"answers"`

	// Paths are the resolved file paths.
	Paths model.Paths `json:"paths"`

	// Package holds the values written to the descriptor.
	Package PackageFields `json:"package"`

	// Env is the outcome of the environment bootstrap.
	Env model.EnvStatus `json:"env,omitempty"`

	// EnvUnset lists variables left blank in a freshly created local env file.
	EnvUnset []string `json:"envUnset,omitempty"`

	// Readme counts the README replacements.
	Readme readme.Stats `json:"readme"`

	// Warnings are non-fatal descriptor validation messages.
	Warnings []string `json:"warnings,omitempty"`
}

// PackageFields are the four descriptor fields owned by the customizer.
type PackageFields struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Repository  string `json:"repository"`
}

// Run executes the procedure once.
//
// The returned Result is never nil and reflects the steps completed before
// any failure. The returned error, if any, wraps ErrSetupFailed and the
// underlying cause.
func (c *Customizer) Run(ctx context.Context) (*Result, error) {
	c.setDefaults()

	defer func() {
		if closeErr := c.Prompter.Close(); closeErr != nil {
			c.logf("failed to release input: %v", closeErr)
		}
	}()

	fmt.Fprintf(c.Out, "%s\n\n", c.Theme.Heading(WelcomeMessage))

	result := &Result{Paths: c.Paths.Resolve(c.Dir)}
	if err := c.run(ctx, result); err != nil {
		if errors.Is(err, prompt.ErrInputClosed) {
			c.logf("Input closed, no files were changed")
		} else {
			fmt.Fprintf(c.Err, "%s %s\n", c.ErrTheme.Failure("❌ Setup failed:"), err.Error())
		}
		return result, fmt.Errorf("%w: %w", ErrSetupFailed, err)
	}

	c.printNextSteps(result)
	return result, nil
}

func (c *Customizer) setDefaults() {
	if c.Out == nil {
		c.Out = io.Discard
	}
	if c.Err == nil {
		c.Err = io.Discard
	}
	if c.Paths == (model.Paths{}) {
		c.Paths = model.DefaultPaths()
	}
	if c.Theme == nil {
		c.Theme = PlainTheme{}
	}
	if c.ErrTheme == nil {
		c.ErrTheme = PlainTheme{}
	}
	if c.Prompter == nil {
		c.Prompter = prompt.NewFilePrompter(model.Answers{}, nil)
	}
}

func (c *Customizer) logf(format string, args ...interface{}) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

// run performs steps 1-6.
func (c *Customizer) run(ctx context.Context, result *Result) error {
	paths := result.Paths

	// Step 1: collect answers.
	answers, err := c.collect(ctx)
	if err != nil {
		return err
	}
	result.Answers = answers
	c.logf("Collected answers for %q", answers.ProjectName)

	if err := ctx.Err(); err != nil {
		return err
	}

	// Steps 2-4: package descriptor.
	if err := c.updateDescriptor(paths.PackageJSON, answers, result); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Step 5: environment bootstrap.
	if err := c.bootstrapEnv(paths.EnvExample, paths.EnvLocal, result); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Step 6: README rewrite.
	stats, err := readme.RewriteFile(paths.Readme, answers)
	if err != nil {
		return err
	}
	result.Readme = stats
	c.logf("Rewrote %s: %d title(s), %d repository path(s)", paths.Readme, stats.Titles, stats.RepoPaths)

	return nil
}

// collect runs step 1. Reading a prompt blocks without timeout, so the
// answers are gathered on a separate goroutine and ctx can end the wait.
func (c *Customizer) collect(ctx context.Context) (model.Answers, error) {
	if err := ctx.Err(); err != nil {
		return model.Answers{}, err
	}

	type collected struct {
		answers model.Answers
		err     error
	}
	done := make(chan collected, 1)
	go func() {
		answers, err := prompt.Collect(c.Prompter)
		done <- collected{answers: answers, err: err}
	}()

	select {
	case res := <-done:
		return res.answers, res.err
	case <-ctx.Done():
		return model.Answers{}, ctx.Err()
	}
}

func (c *Customizer) updateDescriptor(path string, answers model.Answers, result *Result) error {
	doc, err := descriptor.Load(path)
	if err != nil {
		return err
	}
	c.logf("Loaded %s (%d top-level fields)", path, doc.Len())

	if err := descriptor.Apply(doc, answers); err != nil {
		return err
	}

	for _, v := range descriptor.Validate(doc) {
		result.Warnings = append(result.Warnings, v.Error())
		c.logf("%s", v.Error())
	}

	if err := doc.Save(path); err != nil {
		return err
	}

	result.Package = PackageFields{
		Name:        answers.PackageName(),
		Description: answers.PackageDescription(),
		Author:      answers.Author(),
		Repository:  answers.RepositoryURL(),
	}
	c.logf("Updated %s", path)
	return nil
}

func (c *Customizer) bootstrapEnv(examplePath, localPath string, result *Result) error {
	status, err := envfile.Bootstrap(examplePath, localPath)
	if err != nil {
		return err
	}
	result.Env = status

	switch status {
	case model.EnvCreated:
		fmt.Fprintln(c.Out, c.Theme.Success(fmt.Sprintf("✅ Created %s from %s",
			filepath.Base(localPath), filepath.Base(examplePath))))

		// Informational only: a malformed example is still copied verbatim.
		entries, parseErr := envfile.ParseFile(localPath)
		if parseErr != nil {
			c.logf("Could not inspect %s: %v", localPath, parseErr)
			return nil
		}
		result.EnvUnset = envfile.Unset(entries)
		if len(result.EnvUnset) > 0 {
			c.logf("Variables to fill in %s: %v", localPath, result.EnvUnset)
		}
	case model.EnvSkipped:
		c.logf("%s already exists, leaving it untouched", localPath)
	case model.EnvNoExample:
		c.logf("%s not found, skipping environment bootstrap", examplePath)
	}
	return nil
}

// printNextSteps prints step 7's fixed guidance.
func (c *Customizer) printNextSteps(result *Result) {
	envLocal := filepath.Base(result.Paths.EnvLocal)

	fmt.Fprintf(c.Out, "\n%s\n", c.Theme.Success("✅ Setup complete!"))
	fmt.Fprintf(c.Out, "\n%s\n", c.Theme.Heading("Next steps:"))
	fmt.Fprintf(c.Out, "1. Edit %s with your API keys\n", envLocal)
	fmt.Fprintln(c.Out, "2. Run: yarn dev")
	fmt.Fprintln(c.Out, "3. Start building with Cursor AI!")
	fmt.Fprintf(c.Out, "\n%s\n", c.Theme.Hint("🤖 Pro tip: Check .cursor/rules/ for AI development guidelines"))
}
