// Package util provides the ingest boundary's error-accumulation and
// JSON-decoding helpers: malformed aircraft or site records are collected
// here and rejected before they ever reach the engine, per the
// MalformedInput error kind.
package util

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ErrorLogger accumulates validation errors while tracking a hierarchy of
// context (e.g. "aircraft[3]" / "glide" / "speed") so a single pass over
// a record can report every problem with it instead of stopping at the
// first one.
type ErrorLogger struct {
	hierarchy []string
	errors    []string
}

func (e *ErrorLogger) Push(s string) {
	e.hierarchy = append(e.hierarchy, s)
}

func (e *ErrorLogger) Pop() {
	e.hierarchy = e.hierarchy[:len(e.hierarchy)-1]
}

func (e *ErrorLogger) ErrorString(format string, args ...interface{}) {
	e.errors = append(e.errors, strings.Join(e.hierarchy, " / ")+": "+fmt.Sprintf(format, args...))
}

func (e *ErrorLogger) Error(err error) {
	e.errors = append(e.errors, strings.Join(e.hierarchy, " / ")+": "+err.Error())
}

func (e *ErrorLogger) HaveErrors() bool {
	return len(e.errors) > 0
}

// Err returns the accumulated errors as a single error, or nil if there
// were none.
func (e *ErrorLogger) Err() error {
	if !e.HaveErrors() {
		return nil
	}
	return fmt.Errorf("%s", strings.Join(e.errors, "\n"))
}

func (e *ErrorLogger) String() string {
	return strings.Join(e.errors, "\n")
}

// UnmarshalJSON decodes JSON read from r into out, annotating syntax
// errors with a line/character location.
func UnmarshalJSON[T any](r io.Reader, out *T) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return UnmarshalJSONBytes(b, out)
}

// UnmarshalJSONBytes decodes b into out, rewriting encoding/json's
// offset-based error messages into line/character locations so a
// MalformedInput error is actionable without a debugger.
func UnmarshalJSONBytes[T any](b []byte, out *T) error {
	err := json.Unmarshal(b, out)
	if err == nil {
		return nil
	}

	decodeOffset := func(offset int64) (line, char int) {
		line, char = 1, 1
		for i := 0; i < int(offset) && i < len(b); i++ {
			if b[i] == '\n' {
				line++
				char = 1
			} else {
				char++
			}
		}
		return
	}

	switch jerr := err.(type) {
	case *json.SyntaxError:
		line, char := decodeOffset(jerr.Offset)
		return fmt.Errorf("error at line %d, character %d: %w", line, char, jerr)
	case *json.UnmarshalTypeError:
		line, char := decodeOffset(jerr.Offset)
		return fmt.Errorf("error at line %d, character %d: %s value for %s.%s invalid for type %s",
			line, char, jerr.Value, jerr.Struct, jerr.Field, jerr.Type.String())
	default:
		return err
	}
}
