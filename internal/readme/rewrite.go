// Package readme personalizes the boilerplate README.
//
// Two literal find/replace passes are applied: the boilerplate title heading
// becomes a heading with the project name, and the placeholder GitHub path
// becomes "<user>/<project>". Matching is plain substring matching with no
// anchoring, so "## Next.js Cursor AI Boilerplate" is rewritten too (its
// "# ..." suffix matches).
package readme

import (
	"fmt"
	"os"
	"strings"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/model"
)

const (
	// TitleHeading is the boilerplate's level-one heading.
	TitleHeading = "# Next.js Cursor AI Boilerplate"

	// PlaceholderRepo is the GitHub path used in clone instructions and badges.
	PlaceholderRepo = "your-username/nextjs-cursor-boilerplate"
)

// Stats counts the replacements made by Rewrite.
type Stats struct {
	// Titles is the number of TitleHeading occurrences replaced.
	Titles int `json:"titles"`

	// RepoPaths is the number of PlaceholderRepo occurrences replaced.
	RepoPaths int `json:"repoPaths"`
}

// Changed reports whether at least one replacement was made.
func (s Stats) Changed() bool {
	return s.Titles > 0 || s.RepoPaths > 0
}

// Rewrite applies both replacements to content.
//
// The title pass runs first. Replacement text is never rescanned, so a
// project named "Next.js Cursor AI Boilerplate" does not loop.
func Rewrite(content string, answers model.Answers) (string, Stats) {
	stats := Stats{
		Titles: strings.Count(content, TitleHeading),
	}
	content = strings.ReplaceAll(content, TitleHeading, answers.ReadmeTitle())

	stats.RepoPaths = strings.Count(content, PlaceholderRepo)
	content = strings.ReplaceAll(content, PlaceholderRepo, answers.RepositorySlug())

	return content, stats
}

// RewriteFile reads path, applies Rewrite and writes the result back,
// fully overwriting the file. The file is written even when nothing
// changed.
func RewriteFile(path string, answers model.Answers) (Stats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content, stats := Rewrite(string(data), answers)

	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return Stats{}, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return stats, nil
}
