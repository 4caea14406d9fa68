package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/model"
)

// LoadAnswers reads a YAML answers file.
//
// Keys match model.Field names (projectName, projectDescription, authorName,
// authorEmail, githubUsername). Missing keys are empty answers; unknown keys
// are rejected so a typo does not silently fall back to a default.
//
// Example:
//
//	projectName: my-app
//	projectDescription: My app
//	authorName: Jane
//	authorEmail: jane@x.com
//	githubUsername: janedoe
func LoadAnswers(path string) (model.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Answers{}, fmt.Errorf("failed to read answers file: %w", err)
	}
	return ParseAnswers(data)
}

// ParseAnswers decodes YAML answers from raw bytes. An empty document yields
// empty answers.
func ParseAnswers(data []byte) (model.Answers, error) {
	var answers model.Answers

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&answers); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Answers{}, nil
		}
		return model.Answers{}, fmt.Errorf("failed to parse answers file: %w", err)
	}
	return answers, nil
}

// FilePrompter answers questions from a pre-loaded set of answers.
// Each question and its answer are echoed to out so the transcript reads
// like an interactive session.
type FilePrompter struct {
	answers model.Answers
	out     io.Writer
	closed  atomic.Bool
}

// NewFilePrompter creates a FilePrompter. out may be nil to disable echoing.
func NewFilePrompter(answers model.Answers, out io.Writer) *FilePrompter {
	return &FilePrompter{answers: answers, out: out}
}

// Ask returns the stored answer for field.
func (p *FilePrompter) Ask(field model.Field) (string, error) {
	if p.closed.Load() {
		return "", ErrClosed
	}
	if !field.IsValid() {
		return "", fmt.Errorf("unknown question %q", field)
	}

	value := p.answers.Get(field)
	if p.out != nil {
		fmt.Fprintf(p.out, "%s%s\n", field.Question(), value)
	}
	return value, nil
}

// Close marks the prompter as closed.
func (p *FilePrompter) Close() error {
	p.closed.Store(true)
	return nil
}
