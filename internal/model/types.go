// Package model defines the domain types for the nextjs-cursor-setup CLI.
//
// Answers and the values derived from it (package name, author string,
// repository URL, README heading) are pure functions of the five prompt
// replies. Keeping them here lets the descriptor, README and customizer
// packages agree on the exact defaults without importing each other.
package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Fixed defaults applied when the corresponding answer is empty.
const (
	// DefaultProjectName is written to the descriptor "name" field when
	// no project name was entered.
	DefaultProjectName = "my-nextjs-project"

	// DefaultProjectDescription is written to the descriptor "description"
	// field when no description was entered.
	DefaultProjectDescription = "A Next.js project built with Cursor AI"

	// DefaultReadmeTitle replaces the boilerplate README heading when no
	// project name was entered. It intentionally differs from
	// DefaultProjectName: the README heading is prose, not a package name.
	DefaultReadmeTitle = "My Next.js Project"
)

// Field identifies one of the five interactive questions.
// The order of AllFields is the order in which questions are asked.
type Field string

const (
	// FieldProjectName is the kebab-case project (package) name.
	FieldProjectName Field = "projectName"

	// FieldProjectDescription is the one-line project description.
	FieldProjectDescription Field = "projectDescription"

	// FieldAuthorName is the author's display name.
	FieldAuthorName Field = "authorName"

	// FieldAuthorEmail is the author's e-mail address.
	FieldAuthorEmail Field = "authorEmail"

	// FieldGitHubUsername is the GitHub account that will host the repository.
	FieldGitHubUsername Field = "githubUsername"
)

// AllFields lists every question field in prompt order.
var AllFields = []Field{
	FieldProjectName,
	FieldProjectDescription,
	FieldAuthorName,
	FieldAuthorEmail,
	FieldGitHubUsername,
}

// String returns the string representation of Field.
func (f Field) String() string {
	return string(f)
}

// IsValid checks whether the Field value is one of the five known questions.
func (f Field) IsValid() bool {
	switch f {
	case FieldProjectName, FieldProjectDescription, FieldAuthorName, FieldAuthorEmail, FieldGitHubUsername:
		return true
	default:
		return false
	}
}

// Question returns the prompt text shown to the user for this field.
// The trailing ": " is part of the prompt; the cursor stays on the same line.
func (f Field) Question() string {
	switch f {
	case FieldProjectName:
		return "Project name (kebab-case): "
	case FieldProjectDescription:
		return "Project description: "
	case FieldAuthorName:
		return "Author name: "
	case FieldAuthorEmail:
		return "Author email: "
	case FieldGitHubUsername:
		return "GitHub username: "
	default:
		return string(f) + ": "
	}
}

// ParseField converts a string to a Field.
// Returns an error if the string does not match any known question.
func ParseField(s string) (Field, error) {
	field := Field(s)
	if !field.IsValid() {
		return "", fmt.Errorf("invalid answer field: %q (valid: projectName, projectDescription, authorName, authorEmail, githubUsername)", s)
	}
	return field, nil
}

// Answers holds the five free-form replies collected from the user.
// Every field is optional: the empty string is a valid answer and is
// handled by the derived-value methods below.
type Answers struct {
	// ProjectName is the kebab-case package name, e.g. "my-app".
	ProjectName string `yaml:"projectName" json:"projectName"`

	// ProjectDescription is a short human-readable description.
	ProjectDescription string `yaml:"projectDescription" json:"projectDescription"`

	// AuthorName is combined with AuthorEmail into the descriptor "author" field.
	AuthorName string `yaml:"authorName" json:"authorName"`

	// AuthorEmail is combined with AuthorName into the descriptor "author" field.
	AuthorEmail string `yaml:"authorEmail" json:"authorEmail"`

	// GitHubUsername controls the repository URL and the README repo slug.
	GitHubUsername string `yaml:"githubUsername" json:"githubUsername"`
}

// Get returns the answer stored for the given field.
func (a *Answers) Get(f Field) string {
	switch f {
	case FieldProjectName:
		return a.ProjectName
	case FieldProjectDescription:
		return a.ProjectDescription
	case FieldAuthorName:
		return a.AuthorName
	case FieldAuthorEmail:
		return a.AuthorEmail
	case FieldGitHubUsername:
		return a.GitHubUsername
	default:
		return ""
	}
}

// Set stores an answer for the given field.
// Returns an error for unknown fields so callers never silently drop input.
func (a *Answers) Set(f Field, value string) error {
	switch f {
	case FieldProjectName:
		a.ProjectName = value
	case FieldProjectDescription:
		a.ProjectDescription = value
	case FieldAuthorName:
		a.AuthorName = value
	case FieldAuthorEmail:
		a.AuthorEmail = value
	case FieldGitHubUsername:
		a.GitHubUsername = value
	default:
		return fmt.Errorf("cannot set unknown answer field %q", f)
	}
	return nil
}

// PackageName returns the value for the descriptor "name" field.
func (a *Answers) PackageName() string {
	if a.ProjectName == "" {
		return DefaultProjectName
	}
	return a.ProjectName
}

// PackageDescription returns the value for the descriptor "description" field.
func (a *Answers) PackageDescription() string {
	if a.ProjectDescription == "" {
		return DefaultProjectDescription
	}
	return a.ProjectDescription
}

// Author returns the "Name <email>" string for the descriptor "author" field.
// The format is applied even when one or both parts are empty, so an empty
// form yields " <>".
func (a *Answers) Author() string {
	return fmt.Sprintf("%s <%s>", a.AuthorName, a.AuthorEmail)
}

// RepositoryURL returns the GitHub clone URL for the descriptor "repository"
// field, or the empty string when no GitHub username was given.
//
// The raw ProjectName is used, not PackageName: an empty project name
// produces "https://github.com/<user>/.git".
func (a *Answers) RepositoryURL() string {
	if a.GitHubUsername == "" {
		return ""
	}
	return fmt.Sprintf("https://github.com/%s/%s.git", a.GitHubUsername, a.ProjectName)
}

// ReadmeTitle returns the level-one Markdown heading for the README.
func (a *Answers) ReadmeTitle() string {
	if a.ProjectName == "" {
		return "# " + DefaultReadmeTitle
	}
	return "# " + a.ProjectName
}

// RepositorySlug returns "<user>/<project>" from the raw answers.
func (a *Answers) RepositorySlug() string {
	return a.GitHubUsername + "/" + a.ProjectName
}

// IsEmpty reports whether every answer is blank after trimming whitespace.
func (a *Answers) IsEmpty() bool {
	for _, f := range AllFields {
		if strings.TrimSpace(a.Get(f)) != "" {
			return false
		}
	}
	return true
}

// Paths names the files the customizer touches, relative to a project
// directory. The zero value is not useful; use DefaultPaths.
type Paths struct {
	// PackageJSON is the package descriptor (read-modify-write).
	PackageJSON string `json:"packageJson"`

	// EnvExample is the committed example environment file.
	EnvExample string `json:"envExample"`

	// EnvLocal is the local environment file; never overwritten once present.
	EnvLocal string `json:"envLocal"`

	// Readme is the README text document rewritten in place.
	Readme string `json:"readme"`
}

// DefaultPaths returns the file names used by the boilerplate.
func DefaultPaths() Paths {
	return Paths{
		PackageJSON: "package.json",
		EnvExample:  ".env.example",
		EnvLocal:    ".env.local",
		Readme:      "README.md",
	}
}

// Resolve returns a copy of p with every relative path joined to dir.
// Absolute paths are kept as-is.
func (p Paths) Resolve(dir string) Paths {
	join := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}
	return Paths{
		PackageJSON: join(p.PackageJSON),
		EnvExample:  join(p.EnvExample),
		EnvLocal:    join(p.EnvLocal),
		Readme:      join(p.Readme),
	}
}

// EnvStatus records what the environment bootstrap step did.
type EnvStatus string

const (
	// EnvCreated means the local file was copied from the example.
	EnvCreated EnvStatus = "created"

	// EnvSkipped means the local file already existed and was left untouched.
	EnvSkipped EnvStatus = "skipped"

	// EnvNoExample means there was no example file to copy.
	EnvNoExample EnvStatus = "no-example"
)

// String returns the string representation of EnvStatus.
func (s EnvStatus) String() string {
	return string(s)
}

// ExitCode defines the CLI exit codes.
// By default a caught setup failure still exits with ExitSuccess; the
// --strict flag maps it to ExitSetupFailed instead.
type ExitCode int

const (
	// ExitSuccess indicates the command completed (or failed gracefully).
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitSetupFailed indicates reading or writing a project file failed
	// and --strict was set.
	ExitSetupFailed ExitCode = 2

	// ExitAnswersFileError indicates the --answers file could not be
	// read or parsed.
	ExitAnswersFileError ExitCode = 3

	// ExitUserCancelled indicates the run was interrupted before completion.
	ExitUserCancelled ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
