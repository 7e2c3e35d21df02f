package packrat

import "fmt"

// Error is returned when the root rule fails to match, either because no
// alternation of it (or of some rule it depends on) matched at all, or
// because a match was found but it didn't consume the entire token
// stream.
type Error struct {
	RuleName  string
	Partial   bool // true if a match was found but didn't cover all tokens
	Consumed  int  // tokens consumed by the partial match, if Partial
	NumTokens int
}

func (e *Error) Error() string {
	if e.Partial {
		return fmt.Sprintf("packrat: %s matched only %d of %d tokens", e.RuleName, e.Consumed, e.NumTokens)
	}
	return fmt.Sprintf("packrat: no alternation of %s matches", e.RuleName)
}
