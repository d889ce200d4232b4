package typebuilder

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for shape classification and factory misuse. Compare with
// errors.Is; wrapped variants may carry extra context.
var (
	// ErrUnrecognizedShape indicates the input is neither a schema, a
	// constructor function, nor a field-name list.
	ErrUnrecognizedShape = errors.New("typebuilder: unrecognized shape")
	// ErrEmptyFieldList indicates a listed input (or explicit override) with
	// zero field names.
	ErrEmptyFieldList = errors.New("typebuilder: empty field list")
	// ErrAsyncUnsupported indicates an async factory was requested for a
	// non-schema input.
	ErrAsyncUnsupported = errors.New("typebuilder: async build requires a schema input")
	// ErrUnknownMutator indicates a dynamic mutator invocation whose name does
	// not map to a configured field.
	ErrUnknownMutator = errors.New("typebuilder: unknown mutator")
	// ErrMutatorCollision indicates two configured fields derive the same
	// mutator name, which would leave one of them unreachable via Invoke.
	ErrMutatorCollision = errors.New("typebuilder: mutator name collision")
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeUnknownKey  = "unknown_key"
	CodeParseError  = "parse_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Field path (for example: /email).
	Code    string // One of the codes listed above, or a schema-defined code.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"got": "bad"}) for
	// observability.
	Params map[string]any
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
		// e.g. invalid_type at /path
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

// issuesFromErr converts an error into Issues, wrapping non-Issues with
// CodeParseError so schema-library failures surface in the stable model.
func issuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if i2, ok := AsIssues(err); ok {
		return i2
	}
	return Issues{Issue{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}
