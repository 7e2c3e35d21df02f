/*
Package bnf implements the grammar model and grammar loader for wearley.

Building a grammar

Grammars are loaded from source text in two stages: a lexical pass
(lexSource) splits the text into (rule-name, alternations-of-raw-tokens)
tuples line by line, and a resolution pass (Compile) interns literals and
regex patterns, assigns dense rule ids in definition order, and resolves
bareword references against the name table.

	g, err := bnf.Compile(`
	    S ::= A "a" #eof
	    A ::= B D
	    B ::= "b" |
	    D ::= "d" |
	`)

Rule names resolve to contiguous integer ids assigned in the order rules are
defined; each rule is defined once, and defining a name a second time is an
error. Grammars may contain epsilon productions (an Alternation with zero
terms, written as an empty alternative such as the one after the trailing
'|' above). Terms are immutable after load.

Nullable analysis

AnalyzeNullable computes the set of (rule, alternation) pairs that can derive
the empty string, using a bipartite worklist algorithm over the grammar's
rule-reference graph. This is a prerequisite for the Earley chart filler's
preemptive nullable-completion step.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wearley.bnf'.
func tracer() tracing.Trace {
	return tracing.Select("wearley.bnf")
}
