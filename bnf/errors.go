package bnf

import "fmt"

// LoadError is returned for any failure encountered while lexing or
// resolving grammar source text: a missing or duplicated '::=', a duplicate
// rule name, a broken string or regex literal, an unresolved rule reference,
// a malformed regex, or an exceeded size cap (see Grammar's size limits).
//
// Line is 1-indexed and refers to the offending source line. It is 0 when
// the error was detected during resolution, where no single source line is
// uniquely at fault (e.g. a duplicate rule name, or an oversized grammar).
type LoadError struct {
	Message string
	Line    int
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("grammar: line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("grammar: %s", e.Message)
}

func lexError(line int, format string, args ...interface{}) error {
	return &LoadError{Message: fmt.Sprintf(format, args...), Line: line}
}

func resolveError(format string, args ...interface{}) error {
	return &LoadError{Message: fmt.Sprintf(format, args...)}
}
