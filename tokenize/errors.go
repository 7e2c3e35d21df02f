package tokenize

import "fmt"

// Error reports that no candidate literal or regex matched at Offset: the
// input cannot be tokenized any further from that byte position onward.
type Error struct {
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("tokenize: no token matches at byte offset %d", e.Offset)
}
