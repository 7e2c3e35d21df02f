package earley

import "fmt"

// ParseError is returned when the chart filler cannot produce a
// recognition or a parse: either the chart ran dry before reaching the
// end of the token stream (EarlyTermination), or it reached the end but no
// item for the start rule, spanning the whole input, ever completed.
type ParseError struct {
	Column          int
	EarlyTermination bool
}

func (e *ParseError) Error() string {
	if e.EarlyTermination {
		return fmt.Sprintf("earley: parse failed, chart exhausted at column %d", e.Column)
	}
	return fmt.Sprintf("earley: no derivation of the start rule spans the input (column %d)", e.Column)
}
