// validate.go reports package.json name problems that npm would reject.
//
// Nothing here blocks the customizer: any answer is accepted and written
// as entered. The warnings are surfaced in verbose output so a user who typed
// "My App" learns why `npm publish` later complains.
package descriptor

import (
	"fmt"
	"net/url"
	"strings"
)

// maxNameLength is npm's limit on package name length, scope included.
const maxNameLength = 214

// ValidationError represents a single problem with a descriptor field.
type ValidationError struct {
	// Field is the descriptor key that failed validation (e.g., "name").
	Field string

	// Message describes what's wrong with the field value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("package.json validation warning: %s: %s", e.Field, e.Message)
}

// ValidateName checks a package name against npm's naming rules.
// It returns a list of problems (empty list = valid name).
func ValidateName(name string) []ValidationError {
	var errs []ValidationError
	add := func(msg string) {
		errs = append(errs, ValidationError{Field: FieldName, Message: msg})
	}

	if name == "" {
		add("name must not be empty")
		return errs
	}
	if len(name) > maxNameLength {
		add(fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}
	if strings.TrimSpace(name) != name {
		add("name must not have leading or trailing spaces")
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		add("name must not start with a dot or an underscore")
	}
	if strings.ToLower(name) != name {
		add("name must not contain uppercase letters")
	}

	// Scoped names ("@scope/pkg") are checked per segment; everything else
	// must survive URL path escaping unchanged.
	bare := name
	if strings.HasPrefix(name, "@") {
		if scope, pkg, ok := strings.Cut(name[1:], "/"); ok {
			if url.PathEscape(scope) != scope || url.PathEscape(pkg) != pkg {
				add("name can only contain URL-friendly characters")
			}
			return errs
		}
		bare = name[1:]
	}
	if url.PathEscape(bare) != bare || strings.ContainsAny(bare, "~'!()*") {
		add("name can only contain URL-friendly characters")
	}

	return errs
}

// Validate checks the fields written by Apply.
func Validate(doc *Document) []ValidationError {
	name, ok := doc.GetString(FieldName)
	if !ok {
		return []ValidationError{{Field: FieldName, Message: "name must be a string"}}
	}
	return ValidateName(name)
}
