package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/model"
)

func getString(t *testing.T, doc *Document, key string) string {
	t.Helper()
	s, ok := doc.GetString(key)
	require.True(t, ok, "%s should be a string field", key)
	return s
}

// TestApply_Scenario checks the canonical filled-in form.
func TestApply_Scenario(t *testing.T) {
	doc, err := Parse([]byte(boilerplateJSON))
	require.NoError(t, err)

	err = Apply(doc, model.Answers{
		ProjectName:        "my-app",
		ProjectDescription: "desc",
		AuthorName:         "Jane",
		AuthorEmail:        "jane@x.com",
		GitHubUsername:     "janedoe",
	})
	require.NoError(t, err)

	assert.Equal(t, "my-app", getString(t, doc, FieldName))
	assert.Equal(t, "desc", getString(t, doc, FieldDescription))
	assert.Equal(t, "Jane <jane@x.com>", getString(t, doc, FieldAuthor))
	assert.Equal(t, "https://github.com/janedoe/my-app.git", getString(t, doc, FieldRepository))

	// Existing keys keep their position; new ones are appended.
	assert.Equal(t,
		[]string{"name", "version", "private", "description", "scripts", "dependencies", "keywords", "engines", "author", "repository"},
		doc.Keys())
}

// TestApply_AllEmpty checks the documented defaults.
func TestApply_AllEmpty(t *testing.T) {
	doc, err := Parse([]byte(boilerplateJSON))
	require.NoError(t, err)

	require.NoError(t, Apply(doc, model.Answers{}))

	assert.Equal(t, model.DefaultProjectName, getString(t, doc, FieldName))
	assert.Equal(t, model.DefaultProjectDescription, getString(t, doc, FieldDescription))
	assert.Equal(t, " <>", getString(t, doc, FieldAuthor))
	assert.Equal(t, "", getString(t, doc, FieldRepository))
}

// TestApply_ReplacesObjectFields verifies that object-valued author and
// repository fields are replaced by their string form.
func TestApply_ReplacesObjectFields(t *testing.T) {
	doc, err := Parse([]byte(`{
		"author": {"name": "Old", "email": "old@x.com"},
		"repository": {"type": "git", "url": "https://example.com/old.git"}
	}`))
	require.NoError(t, err)

	require.NoError(t, Apply(doc, model.Answers{AuthorName: "New", GitHubUsername: "u", ProjectName: "p"}))

	assert.Equal(t, "New <>", getString(t, doc, FieldAuthor))
	assert.Equal(t, "https://github.com/u/p.git", getString(t, doc, FieldRepository))
	assert.Equal(t, []string{"author", "repository", "name", "description"}, doc.Keys())
}
