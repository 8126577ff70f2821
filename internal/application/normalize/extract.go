// Package normalize turns untrusted provider output into fully populated domain types.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	errEmptyOutput = errors.New("empty provider output")
	errNoJSON      = errors.New("no JSON value found in provider output")

	fencePattern = regexp.MustCompile("(?s)```[A-Za-z0-9_-]*[ \t]*\r?\n?(.*?)```")
)

// StripCodeFences returns the body of the first Markdown code fence in s, or s trimmed.
func StripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if m := fencePattern.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	return trimmed
}

// ExtractJSON finds the JSON document in provider text: fenced first, then the
// first object or array embedded in surrounding prose.
func ExtractJSON(s string) (string, error) {
	raw := StripCodeFences(s)
	if raw == "" {
		return "", errEmptyOutput
	}
	if json.Valid([]byte(raw)) {
		return raw, nil
	}

	for i := 0; i < len(raw); i++ {
		if raw[i] != '{' && raw[i] != '[' {
			continue
		}
		if doc, ok := firstValue(raw[i:]); ok {
			return doc, nil
		}
	}
	return "", errNoJSON
}

// firstValue decodes the complete JSON value at the start of s, ignoring whatever follows it.
func firstValue(s string) (string, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	var v json.RawMessage
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	return s[:dec.InputOffset()], true
}

// decode parses a JSON document keeping numbers as json.Number.
func decode(doc string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(doc)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
