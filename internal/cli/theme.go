package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/customizer"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	failureStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// terminalTheme colors messages for an interactive terminal.
type terminalTheme struct{}

func (terminalTheme) Heading(s string) string { return headingStyle.Render(s) }
func (terminalTheme) Success(s string) string { return successStyle.Render(s) }
func (terminalTheme) Failure(s string) string { return failureStyle.Render(s) }
func (terminalTheme) Hint(s string) string    { return hintStyle.Render(s) }

// themeFor picks colored output only when w is a terminal, so redirected
// output and --json runs stay plain.
func themeFor(w io.Writer) customizer.Theme {
	if jsonOutput || !isTerminal(w) {
		return customizer.PlainTheme{}
	}
	return terminalTheme{}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
