package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/model"
)

// ErrClosed is returned by Ask after Close has been called.
var ErrClosed = errors.New("prompter is closed")

// ErrInputClosed is returned by Ask when the input ends before a line is
// received. An empty line is an answer; end of input is not.
var ErrInputClosed = errors.New("input closed before all questions were answered")

// Prompter asks one question per answer field.
type Prompter interface {
	// Ask blocks until an answer for field is available.
	// Any string, including the empty string, is a valid answer.
	Ask(field model.Field) (string, error)

	// Close releases the underlying input. It is safe to call more than once.
	Close() error
}

// Collect asks every question in model.AllFields order and returns the
// answers. It stops at the first error.
func Collect(p Prompter) (model.Answers, error) {
	var answers model.Answers
	for _, field := range model.AllFields {
		value, err := p.Ask(field)
		if err != nil {
			return model.Answers{}, fmt.Errorf("failed to read %s: %w", field, err)
		}
		if err := answers.Set(field, value); err != nil {
			return model.Answers{}, err
		}
	}
	return answers, nil
}

// LinePrompter reads answers line by line from an input stream.
//
// The question is written without a trailing newline so the cursor stays on
// the prompt line. Line terminators (LF or CRLF) are stripped; nothing else
// is trimmed and lines of any length are accepted. A final line without a
// terminator is still an answer.
type LinePrompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
	closed atomic.Bool
}

// NewLinePrompter creates a LinePrompter reading from in and writing
// questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Ask writes the question for field and blocks until one line is read.
// It returns ErrInputClosed when the input ends first.
func (p *LinePrompter) Ask(field model.Field) (string, error) {
	if p.closed.Load() {
		return "", ErrClosed
	}

	fmt.Fprint(p.out, field.Question())

	line, err := p.reader.ReadString('\n')
	if err == nil {
		line = strings.TrimSuffix(line, "\n")
		return strings.TrimSuffix(line, "\r"), nil
	}
	if !errors.Is(err, io.EOF) {
		return "", err
	}
	if line != "" {
		return strings.TrimSuffix(line, "\r"), nil
	}

	// End the dangling prompt line so later output starts cleanly.
	fmt.Fprintln(p.out)
	return "", ErrInputClosed
}

// Close releases the input. os.Stdin is never closed; other inputs are
// closed when they implement io.Closer.
func (p *LinePrompter) Close() error {
	if p.closed.Swap(true) {
		return nil
	}

	if p.in == os.Stdin {
		return nil
	}
	if c, ok := p.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
