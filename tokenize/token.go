package tokenize

// Token is one lexical unit produced by a Tokenizer: the longest-matching
// run of input text at its starting byte offset, together with the byte
// range it covers in the original input.
type Token struct {
	Text string

	// ByteFrom and ByteTo delimit the token in the original input string,
	// ByteTo being exclusive.
	ByteFrom int
	ByteTo   int
}

// Len returns the number of bytes the token covers.
func (t Token) Len() int {
	return t.ByteTo - t.ByteFrom
}
