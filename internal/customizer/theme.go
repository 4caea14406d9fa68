package customizer

// Theme decorates user-facing messages. Implementations must not change
// the text itself, only wrap it (for example in ANSI color codes).
type Theme interface {
	Heading(s string) string
	Success(s string) string
	Failure(s string) string
	Hint(s string) string
}

// PlainTheme returns every message unchanged.
type PlainTheme struct{}

func (PlainTheme) Heading(s string) string { return s }
func (PlainTheme) Success(s string) string { return s }
func (PlainTheme) Failure(s string) string { return s }
func (PlainTheme) Hint(s string) string    { return s }
