/*
Package earley implements an Earley chart filler, and builds a concrete
syntax tree (package ast) from the resulting chart.

Given a compiled grammar (package bnf) and a token stream (package
tokenize), Recognize reports whether the start rule matches the entire
token stream, and Parse additionally reconstructs a syntax tree. Both
share the same chart-filling routine; Recognize simply discards the chart
once the column count matches the token count.

The algorithm is the textbook predict/scan/complete worklist, with two
additions. The first is nullable preemption. When predicting a nonterminal that can
derive the empty string, the filler immediately advances the predicting
item past it in the same pass, rather than waiting for a later, separate
completion of the empty derivation to trigger it. This keeps nullable
rules from requiring an extra worklist round-trip. The second is
right-recursion compression: a completion at the end of a chain of
single-parent, last-position items advances the chain's top ancestor
directly, and the AST builder regenerates the skipped items on demand.

Ambiguity is resolved, not reported: when more than one derivation would
produce the same (rule, alternation, dot, start) item, only the first one
found is kept, and it is the one the AST builder reconstructs. Grammars
that rely on a specific disambiguation policy beyond first-derivation-wins
are out of scope.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package earley

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'wearley.earley'.
func tracer() tracing.Trace {
	return tracing.Select("wearley.earley")
}
