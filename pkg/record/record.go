// Package record defines the structured output types of the toonify
// pipeline. Records are pure data — renderers decide presentation.
package record

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrorType identifies the category of a compressed error.
type ErrorType string

// The closed set of error categories. Grouped by origin; TypeRuntime is the
// catch-all returned when no classification rule matches.
const (
	// DOM / React
	TypeDOMNesting    ErrorType = "DOM_NESTING"
	TypeHydration     ErrorType = "HYDRATION"
	TypeReactMinified ErrorType = "REACT_MINIFIED"
	TypeInvalidHook   ErrorType = "INVALID_HOOK"
	TypeReactKey      ErrorType = "REACT_KEY"

	// JavaScript
	TypeTypeError   ErrorType = "TYPE_ERROR"
	TypeRefError    ErrorType = "REF_ERROR"
	TypeSyntaxError ErrorType = "SYNTAX_ERROR"
	TypeRangeError  ErrorType = "RANGE_ERROR"
	TypeURIError    ErrorType = "URI_ERROR"
	TypeEvalError   ErrorType = "EVAL_ERROR"

	// Network
	TypeCORS      ErrorType = "CORS_ERROR"
	TypeNetwork   ErrorType = "NETWORK_ERROR"
	TypeHTTP      ErrorType = "HTTP_ERROR"
	TypeWebSocket ErrorType = "WEBSOCKET_ERROR"

	// Security
	TypeCSP          ErrorType = "CSP_ERROR"
	TypeSecurity     ErrorType = "SECURITY_ERROR"
	TypeMixedContent ErrorType = "MIXED_CONTENT"

	// Build tools / testing
	TypeStorybook      ErrorType = "STORYBOOK"
	TypeNextJS         ErrorType = "NEXTJS"
	TypeModuleNotFound ErrorType = "MODULE_NOT_FOUND"
	TypePlaywright     ErrorType = "PLAYWRIGHT"

	// System / Node
	TypeSystem ErrorType = "SYSTEM_ERROR"

	// Promises
	TypeUnhandledRejection ErrorType = "UNHANDLED_REJECTION"

	// Browser APIs
	TypeMedia         ErrorType = "MEDIA_ERROR"
	TypeIndexedDB     ErrorType = "INDEXEDDB_ERROR"
	TypeServiceWorker ErrorType = "SERVICE_WORKER"

	// Warnings
	TypeDeprecation ErrorType = "DEPRECATION"

	// Catch-all
	TypeRuntime ErrorType = "RUNTIME_ERROR"
)

// FileLocation is a parsed file position reference.
type FileLocation struct {
	Path   string
	Line   int // 0 when unknown
	Column int // 0 when unknown
}

// String renders the location as path:line[:column], omitting unknown parts.
func (l FileLocation) String() string {
	var sb strings.Builder
	sb.WriteString(l.Path)
	if l.Line > 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(l.Line))
		if l.Column > 0 {
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(l.Column))
		}
	}
	return sb.String()
}

// Equal reports whether two locations refer to the same position.
// Path, line, and column must all match.
func (l FileLocation) Equal(other FileLocation) bool {
	return l.Path == other.Path && l.Line == other.Line && l.Column == other.Column
}

// Frame is one parsed stack-frame line. Func and Loc are best-effort; Raw
// always holds the trimmed original line.
type Frame struct {
	Func string
	Loc  *FileLocation
	Raw  string
}

// ErrorRecord is the compressed form of one detected error.
type ErrorRecord struct {
	Type            ErrorType
	Loc             *FileLocation
	Message         string
	Frames          []Frame
	OriginalChars   int
	CompressedChars int
}

// Compact returns the canonical minimal serialization of the record. Its
// length defines CompressedChars, independent of which renderer the caller
// eventually picks.
func (r *ErrorRecord) Compact() string {
	var sb strings.Builder
	sb.WriteString("type: ")
	sb.WriteString(string(r.Type))
	if r.Loc != nil {
		sb.WriteString("\nfile: ")
		sb.WriteString(r.Loc.String())
	}
	if r.Message != "" {
		sb.WriteString("\nissue: ")
		sb.WriteString(r.Message)
	}
	if len(r.Frames) > 0 {
		sb.WriteString("\nframes:")
		for _, f := range r.Frames {
			sb.WriteString("\n  ")
			sb.WriteString(f.Raw)
		}
	}
	return sb.String()
}

// SavingsPct returns the percentage saved versus the original text,
// clamped at 0 when compression did not shrink the input.
func (r *ErrorRecord) SavingsPct() int {
	if r.OriginalChars <= r.CompressedChars || r.OriginalChars == 0 {
		return 0
	}
	return (r.OriginalChars - r.CompressedChars) * 100 / r.OriginalChars
}

// Stats sums size accounting across records.
type Stats struct {
	OriginalChars   int
	CompressedChars int
}

// Aggregate totals the size accounting of a batch of records.
func Aggregate(records []ErrorRecord) Stats {
	var s Stats
	for i := range records {
		s.OriginalChars += records[i].OriginalChars
		s.CompressedChars += records[i].CompressedChars
	}
	return s
}

// SavingsPct returns the overall percentage saved, clamped at 0.
func (s Stats) SavingsPct() int {
	if s.OriginalChars <= s.CompressedChars || s.OriginalChars == 0 {
		return 0
	}
	return (s.OriginalChars - s.CompressedChars) * 100 / s.OriginalChars
}

// String renders the stats footer line shared by the plain renderers.
func (s Stats) String() string {
	return fmt.Sprintf("compressed: %dc → %dc (%d%% saved)", s.OriginalChars, s.CompressedChars, s.SavingsPct())
}
