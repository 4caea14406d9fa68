package model

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestField_String verifies that Field values produce the keys used in
// answers files and JSON output.
func TestField_String(t *testing.T) {
	tests := []struct {
		field    Field
		expected string
	}{
		{FieldProjectName, "projectName"},
		{FieldProjectDescription, "projectDescription"},
		{FieldAuthorName, "authorName"},
		{FieldAuthorEmail, "authorEmail"},
		{FieldGitHubUsername, "githubUsername"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.field.String())
		})
	}
}

// TestAllFields_Order pins the prompt order and wording.
func TestAllFields_Order(t *testing.T) {
	questions := make([]string, 0, len(AllFields))
	for _, f := range AllFields {
		assert.True(t, f.IsValid())
		questions = append(questions, f.Question())
	}

	assert.Equal(t, []string{
		"Project name (kebab-case): ",
		"Project description: ",
		"Author name: ",
		"Author email: ",
		"GitHub username: ",
	}, questions)
}

// TestParseField verifies string-to-field conversion. Keys are case sensitive
// because they mirror the YAML answers file.
func TestParseField(t *testing.T) {
	tests := []struct {
		input    string
		expected Field
		hasError bool
	}{
		{"projectName", FieldProjectName, false},
		{"githubUsername", FieldGitHubUsername, false},
		{"ProjectName", "", true},
		{"license", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseField(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestAnswers_GetSet checks that every field round-trips through Set/Get
// and unknown fields are rejected.
func TestAnswers_GetSet(t *testing.T) {
	var a Answers
	for _, f := range AllFields {
		require.NoError(t, a.Set(f, "value-"+f.String()))
	}
	for _, f := range AllFields {
		assert.Equal(t, "value-"+f.String(), a.Get(f))
	}

	assert.Error(t, a.Set(Field("license"), "MIT"))
	assert.Empty(t, a.Get(Field("license")))
}

// TestAnswers_Defaults covers the documented defaults for empty answers.
func TestAnswers_Defaults(t *testing.T) {
	tests := []struct {
		name            string
		answers         Answers
		wantName        string
		wantDescription string
		wantTitle       string
	}{
		{
			name:            "all empty uses defaults",
			answers:         Answers{},
			wantName:        "my-nextjs-project",
			wantDescription: "A Next.js project built with Cursor AI",
			wantTitle:       "# My Next.js Project",
		},
		{
			name:            "values are used verbatim",
			answers:         Answers{ProjectName: "my-app", ProjectDescription: "desc"},
			wantName:        "my-app",
			wantDescription: "desc",
			wantTitle:       "# my-app",
		},
		{
			name:            "whitespace is not treated as empty",
			answers:         Answers{ProjectName: " ", ProjectDescription: "\t"},
			wantName:        " ",
			wantDescription: "\t",
			wantTitle:       "#  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.answers.PackageName())
			assert.Equal(t, tt.wantDescription, tt.answers.PackageDescription())
			assert.Equal(t, tt.wantTitle, tt.answers.ReadmeTitle())
		})
	}
}

// TestAnswers_Author verifies the "Name <email>" format is always applied.
func TestAnswers_Author(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    string
	}{
		{"both set", Answers{AuthorName: "Jane", AuthorEmail: "jane@x.com"}, "Jane <jane@x.com>"},
		{"name only", Answers{AuthorName: "Jane"}, "Jane <>"},
		{"email only", Answers{AuthorEmail: "jane@x.com"}, " <jane@x.com>"},
		{"both empty", Answers{}, " <>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.answers.Author())
		})
	}
}

// TestAnswers_RepositoryURL verifies that the URL is only built when a
// GitHub username is present, and that it uses the raw project name.
func TestAnswers_RepositoryURL(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    string
	}{
		{"no username", Answers{ProjectName: "my-app"}, ""},
		{"username and project", Answers{ProjectName: "my-app", GitHubUsername: "janedoe"}, "https://github.com/janedoe/my-app.git"},
		{"username without project", Answers{GitHubUsername: "janedoe"}, "https://github.com/janedoe/.git"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.answers.RepositoryURL())
		})
	}
}

func TestAnswers_RepositorySlug(t *testing.T) {
	a := Answers{ProjectName: "my-app", GitHubUsername: "janedoe"}
	assert.Equal(t, "janedoe/my-app", a.RepositorySlug())
	assert.Equal(t, "/", (&Answers{}).RepositorySlug())
}

func TestAnswers_IsEmpty(t *testing.T) {
	assert.True(t, (&Answers{}).IsEmpty())
	assert.True(t, (&Answers{AuthorName: "  "}).IsEmpty())
	assert.False(t, (&Answers{AuthorEmail: "a@b.c"}).IsEmpty())
}

// TestPaths_Resolve checks that relative names are joined to the project
// directory and absolute names are left alone.
func TestPaths_Resolve(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere", "README.md")

	p := DefaultPaths()
	p.Readme = abs
	resolved := p.Resolve(dir)

	assert.Equal(t, filepath.Join(dir, "package.json"), resolved.PackageJSON)
	assert.Equal(t, filepath.Join(dir, ".env.example"), resolved.EnvExample)
	assert.Equal(t, filepath.Join(dir, ".env.local"), resolved.EnvLocal)
	assert.Equal(t, abs, resolved.Readme)
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitAnswersFileError, "answers file is empty")
		assert.Equal(t, ExitAnswersFileError, err.Code)
		assert.Equal(t, "answers file is empty", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitSetupFailed, "setup failed", inner)
		assert.Equal(t, ExitSetupFailed, err.Code)
		assert.Contains(t, err.Error(), "permission denied")
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitSetupFailed, "setup failed", inner)
		assert.True(t, errors.Is(err, inner))
	})
}
