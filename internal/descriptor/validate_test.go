package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"kebab case", "my-app", true},
		{"dots and underscores inside", "my.app_v2", true},
		{"scoped", "@acme/my-app", true},
		{"default name", "my-nextjs-project", true},
		{"empty", "", false},
		{"uppercase", "My-App", false},
		{"space", "my app", false},
		{"leading dot", ".app", false},
		{"leading underscore", "_app", false},
		{"surrounding spaces", " app ", false},
		{"special characters", "app!", false},
		{"tilde", "app~1", false},
		{"scoped with space", "@acme/my app", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateName(tt.input)
			if tt.wantValid {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}

func TestValidateName_TooLong(t *testing.T) {
	long := make([]byte, maxNameLength+1)
	for i := range long {
		long[i] = 'a'
	}
	errs := ValidateName(string(long))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "214")
}

func TestValidate_Document(t *testing.T) {
	doc := NewDocument()
	errs := Validate(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, FieldName, errs[0].Field)

	require.NoError(t, doc.Set(FieldName, "My App"))
	errs = Validate(doc)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "package.json validation warning: name:")
}
