// Package descriptor loads and persists package.json documents.
//
// Key responsibilities:
//   - Load a descriptor (with JSONC support) into an order-preserving Document
//   - Replace or append top-level string fields
//   - Serialize with stable key order and two-space indentation
package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/tidwall/jsonc"
)

// ErrNotObject is returned when the descriptor's top-level value is not a
// JSON object.
var ErrNotObject = errors.New("package descriptor must be a JSON object")

// Document is a top-level JSON object that remembers the order of its keys.
//
// Values are kept as raw JSON so nested objects (scripts, dependencies, ...)
// pass through untouched apart from re-indentation. A Document with no keys
// serializes as "{}".
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{values: make(map[string]json.RawMessage)}
}

// Load reads a package descriptor from disk and parses it.
//
// A missing file is reported with an error that satisfies
// errors.Is(err, os.ErrNotExist); callers decide whether that is fatal.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a descriptor from raw bytes.
//
// Comments and trailing commas are stripped first. When a key appears more
// than once, the last value wins but the key keeps its first position, which
// matches how JavaScript engines build objects from JSON text.
func Parse(data []byte) (*Document, error) {
	cleanJSON := jsonc.ToJSON(data)

	dec := json.NewDecoder(bytes.NewReader(cleanJSON))
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected end of JSON input")
		}
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	doc := NewDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		// Object keys are always decoded as strings by encoding/json.
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in object", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", key, err)
		}
		doc.setRaw(key, bytes.TrimSpace(raw))
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	// Anything after the top-level object is an error, just as JSON.parse
	// rejects "{} {}".
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level object")
	}

	return doc, nil
}

// Keys returns the document's keys in output order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Get returns the raw JSON value stored under key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	raw, ok := d.values[key]
	return raw, ok
}

// GetString returns the value under key when it is a JSON string.
func (d *Document) GetString(key string) (string, bool) {
	raw, ok := d.values[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Set stores a string value under key. An existing key is replaced in place;
// a new key is appended after all existing keys.
func (d *Document) Set(key, value string) error {
	raw, err := encodeString(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	d.setRaw(key, raw)
	return nil
}

func (d *Document) setRaw(key string, raw json.RawMessage) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = raw
}

// Marshal serializes the document with two-space indentation, keys in their
// stored order, and a trailing newline.
func (d *Document) Marshal() ([]byte, error) {
	if len(d.keys) == 0 {
		return []byte("{}\n"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, key := range d.keys {
		encodedKey, err := encodeString(key)
		if err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", key, err)
		}

		buf.WriteString("  ")
		buf.Write(encodedKey)
		buf.WriteString(": ")

		// Nested values start at the key's column, so each new line gets
		// one level of prefix plus its own indentation.
		if err := json.Indent(&buf, d.values[key], "  ", "  "); err != nil {
			return nil, fmt.Errorf("failed to indent value of %q: %w", key, err)
		}

		if i < len(d.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// Save writes the document to path, fully replacing any previous contents.
// The existing file mode is kept; new files are created with 0644.
func (d *Document) Save(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}

	mode := os.FileMode(0644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// encodeString marshals s as a JSON string the way JSON.stringify does: no
// HTML escaping, so an author like "Jane <jane@x.com>" is written literally
// instead of as "Jane \u003cjane@x.com\u003e", and U+2028/U+2029 are kept
// as raw characters.
func encodeString(s string) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('"')

	start := 0
	for i, r := range s {
		if r != '\u2028' && r != '\u2029' {
			continue
		}
		if err := writeEscaped(&buf, s[start:i]); err != nil {
			return nil, err
		}
		buf.WriteRune(r)
		start = i + utf8.RuneLen(r)
	}
	if err := writeEscaped(&buf, s[start:]); err != nil {
		return nil, err
	}

	buf.WriteByte('"')
	return buf.Bytes(), nil
}

// writeEscaped appends the escaped body of s, without quotes, to buf.
func writeEscaped(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encoder.Encode terminates every value with a newline.
	quoted := bytes.TrimRight(tmp.Bytes(), "\n")
	buf.Write(quoted[1 : len(quoted)-1])
	return nil
}
