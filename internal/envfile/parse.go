package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is a single KEY=VALUE assignment from an env file.
type Entry struct {
	// Key is the variable name.
	Key string `json:"key"`

	// Value is the unquoted value. Empty when the example leaves it blank.
	Value string `json:"value"`

	// Line is the 1-based line number the entry was read from.
	Line int `json:"line"`
}

// Parse reads KEY=VALUE lines from r.
//
// Blank lines and lines starting with '#' are ignored, an optional
// "export " prefix is stripped, and values wrapped in matching single or
// double quotes are unquoted. Unquoted values lose a trailing " # comment".
// A non-blank line without '=' is an error.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected KEY=VALUE, got %q", lineNo, line)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNo)
		}

		entries = append(entries, Entry{
			Key:   key,
			Value: parseValue(strings.TrimSpace(value)),
			Line:  lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return entries, nil
}

func parseValue(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '"' || first == '\'') && first == last {
			return v[1 : len(v)-1]
		}
	}
	if i := strings.Index(v, " #"); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}
	return v
}

// Unset returns the keys whose value is empty, in file order. After a fresh
// bootstrap these are the variables the user still has to fill in.
func Unset(entries []Entry) []string {
	var keys []string
	for _, e := range entries {
		if e.Value == "" {
			keys = append(keys, e.Key)
		}
	}
	return keys
}
