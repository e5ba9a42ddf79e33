package mlst

import "fmt"

// FormatError is a fatal data-integrity error: a malformed reference
// sequence line, a malformed allele identifier, a malformed ST table line,
// or a conflicting duplicate ST. It aborts the entire run.
type FormatError struct {
	Path string // source file, empty if not file-scoped
	Line int    // 1-based line number, 0 if not line-scoped
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	}
	return fmt.Sprintf("%s:%d %s", e.Path, e.Line, e.Msg)
}

func formatErrf(path string, line int, format string, args ...interface{}) *FormatError {
	return &FormatError{Path: path, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// AmbiguityError is fatal: more than one allele of a locus present in a
// reference, or more than one ST row matching a complete profile.
type AmbiguityError struct {
	Msg string
}

func (e *AmbiguityError) Error() string { return e.Msg }

func ambiguityErrf(format string, args ...interface{}) *AmbiguityError {
	return &AmbiguityError{Msg: fmt.Sprintf(format, args...)}
}
