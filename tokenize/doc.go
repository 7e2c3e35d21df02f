/*
Package tokenize turns input text into a stream of tokens suitable for
feeding to package earley or package packrat.

A Tokenizer is built from a bnf.Grammar: every distinct literal and regex
term appearing anywhere in the grammar becomes a candidate token pattern.
At each input position the tokenizer finds the longest match among all
candidates; ties are broken in favor of literals over regexes, and among
literals or among regexes, in first-use order within the source grammar
(the order bnf.Grammar.Literals / RegexPatterns report them in). No
separator is required between tokens: the tokenizer advances purely by
repeated longest-match, the same way the grammar's own scan step would
test a term against a token.

Internally, matching is delegated to a single merged DFA built by
github.com/timtadh/lexmachine, whose maximal-munch scanning semantics are
exactly the longest-match-wins rule the tokenizer needs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tokenize

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'wearley.tokenize'.
func tracer() tracing.Trace {
	return tracing.Select("wearley.tokenize")
}
