/*
Package packrat implements an alternative to package earley: a memoizing,
backtracking recursive-descent (PEG-style) parser.

Where earley.Parser handles arbitrary context-free grammars, including
ambiguous ones, at the cost of a cubic worst case, Parser here assumes an
ordered-choice grammar (the first alternation that matches at a given
position wins, tried in source order) and runs in better practice time by
memoizing, per (rule, token position) pair, whether that rule matched
there and how many tokens it consumed. It cannot handle left-recursive
rules: a rule that reaches itself at the same token position it started
at, before finishing, is treated as a failed match at that position
rather than looping forever.

Both rule matching and node construction happen in one pass, driven by an
explicit stack of in-progress alternatives rather than recursive function
calls, for the same reason package earley's tree builder is iterative:
deep right recursion in a grammar must not translate into deep Go call
stacks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package packrat

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'wearley.packrat'.
func tracer() tracing.Trace {
	return tracing.Select("wearley.packrat")
}
