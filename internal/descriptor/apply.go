// apply.go writes the customizer's answers into a package descriptor.
//
// Only four top-level fields are owned by the customizer. Every other field
// in the descriptor (scripts, dependencies, engines, ...) is preserved
// byte-for-byte apart from indentation.
package descriptor

import (
	"fmt"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/model"
)

// Descriptor field names written by Apply.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldAuthor      = "author"
	FieldRepository  = "repository"
)

// Apply sets name, description, author and repository from the answers.
//
// Defaults are applied for empty project name and description. The author
// is always "Name <email>", and repository is the empty string when no
// GitHub username was given. An existing object-valued "author" or
// "repository" is replaced by the string form.
func Apply(doc *Document, answers model.Answers) error {
	fields := []struct {
		key   string
		value string
	}{
		{FieldName, answers.PackageName()},
		{FieldDescription, answers.PackageDescription()},
		{FieldAuthor, answers.Author()},
		{FieldRepository, answers.RepositoryURL()},
	}

	for _, f := range fields {
		if err := doc.Set(f.key, f.value); err != nil {
			return fmt.Errorf("failed to set %s: %w", f.key, err)
		}
	}
	return nil
}
