package packrat

import (
	"testing"

	"github.com/wareya/wearley/bnf"
	"github.com/wareya/wearley/tokenize"
)

func mustCompile(t *testing.T, src string) *bnf.Grammar {
	t.Helper()
	g, err := bnf.Compile(src)
	if err != nil {
		t.Fatalf("bnf.Compile: %v", err)
	}
	return g
}

func mustTokenize(t *testing.T, g *bnf.Grammar, input string) []tokenize.Token {
	t.Helper()
	tok, err := tokenize.New(g)
	if err != nil {
		t.Fatalf("tokenize.New: %v", err)
	}
	tokens, err := tok.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return tokens
}

func TestParseRightRecursive(t *testing.T) {
	g := mustCompile(t, `S ::= "a" S | "a"`)
	p, err := New(g, "S")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tokens := mustTokenize(t, g, "aaa")
	tree, err := p.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tree.Rule != "S" || tree.From() != 0 || tree.To() != 3 {
		t.Fatalf("unexpected tree: %+v", tree)
	}
}

func TestParseOrderedChoiceFirstWins(t *testing.T) {
	g := mustCompile(t, `S ::= "a" | "aa"`)
	p, err := New(g, "S")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tokens := mustTokenize(t, g, "a")
	tree, err := p.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tree.Alt != 0 {
		t.Fatalf("expected the first alternation to win, matched alt %d", tree.Alt)
	}
}

func TestParseFailsOnNoMatch(t *testing.T) {
	g := mustCompile(t, `
		S ::= "a"
		Unused ::= "b"
	`)
	p, err := New(g, "S")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tokens := mustTokenize(t, g, "b")
	_, err = p.Parse(tokens)
	if err == nil {
		t.Fatalf("expected failure for input outside the language")
	}
}

func TestParseFailsOnPartialMatch(t *testing.T) {
	g := mustCompile(t, `S ::= "a"`)
	p, err := New(g, "S")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tok, err := tokenize.New(g)
	if err != nil {
		t.Fatalf("tokenize.New: %v", err)
	}
	tokens, err := tok.Tokenize("a")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	tokens = append(tokens, tokens[0]) // simulate trailing input the rule doesn't consume
	_, err = p.Parse(tokens)
	if err == nil {
		t.Fatalf("expected failure for a match that doesn't consume every token")
	}
	if perr, ok := err.(*Error); !ok || !perr.Partial {
		t.Fatalf("expected a partial-match Error, got %#v", err)
	}
}

func TestParseLeftRecursionFailsInsteadOfHanging(t *testing.T) {
	g := mustCompile(t, `S ::= S "a" | "a"`)
	p, err := New(g, "S")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tokens := mustTokenize(t, g, "aaa")
	// Left-recursive rules aren't supported by the packrat parser; this
	// must return promptly with an error rather than loop forever.
	tree, err := p.Parse(tokens)
	if err == nil {
		t.Fatalf("expected left recursion to fail cleanly, got tree %+v", tree)
	}
}

func TestParseNullableRule(t *testing.T) {
	g := mustCompile(t, `
		S ::= A "x"
		A ::= "a" |
	`)
	p, err := New(g, "S")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tokens := mustTokenize(t, g, "x")
	tree, err := p.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 children, got %d: %+v", len(tree.Children), tree.Children)
	}
	a := tree.Children[0]
	if a.Rule != "A" || a.From() != a.To() {
		t.Fatalf("expected an empty A node, got %+v", a)
	}
}
