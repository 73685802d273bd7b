package themespec

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType  = "invalid_type"       // value is not of the schema's declared type
	CodeNoMatch      = "no_matching_schema" // value satisfies none of a oneOf's alternatives
	CodeUnknownKey   = "unknown_key"        // undeclared key under additionalProperties: false
	CodeInvalidShape = "invalid_shape"      // mapper required an object and got something else
	CodeParseError   = "parse_error"        // input text could not be decoded
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /colors/primary).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /colors/primary
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ParseError reports that input text could not be decoded into a generic
// value. The decoder's error is preserved verbatim.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "themespec: parse: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// MappingError reports that a value assumed to be object-shaped during
// Theme construction was not. Mapping fails fast on the first shape
// mismatch, unlike validation which aggregates.
type MappingError struct {
	Path  string // JSON Pointer to the offending value.
	Value any    // The offending value.
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("themespec: mapping: expected object at %s, got %T", e.Path, e.Value)
}
