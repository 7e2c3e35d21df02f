/*
Package wearley implements a general context-free grammar parsing engine.

Given a grammar written in an extended BNF-like notation (see package bnf)
and an input string, it produces either a boolean recognition verdict or a
concrete syntax tree. Two parsing strategies are provided: an Earley
recognizer/parser (package earley), which is cubic in token count and handles
arbitrary context-free grammars including ambiguous and highly recursive
ones, and an alternative memoizing recursive-descent (packrat) parser
(package packrat) for grammars that don't need Earley's generality.

Grammar source format

	NAME ::= ALT ( "|" ALT )*

A term is one of: a bareword NAME (a reference to another rule), a "..."
string literal (supporting \" and \\ escapes), or a rx%PATTERN%rx inline
regular expression. Lines starting with '#' (after whitespace) are comments;
'#' elsewhere on a line terminates that line.

	A ::= A "a" | "a"

Package layout

	bnf        grammar model, loader (lexer + resolver), nullable analysis
	tokenize   longest-prefix-wins tokenizer, backed by a DFA lexer
	earley     Earley chart filler and AST builder
	earley/iteratable  insertion-ordered item sets used by the chart
	ast        the syntax tree produced by the Earley parser
	packrat    the alternative memoizing recursive-descent parser

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package wearley
