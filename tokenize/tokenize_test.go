package tokenize

import (
	"testing"

	"github.com/wareya/wearley/bnf"
)

func compile(t *testing.T, src string) *bnf.Grammar {
	t.Helper()
	g, err := bnf.Compile(src)
	if err != nil {
		t.Fatalf("bnf.Compile: %v", err)
	}
	return g
}

func TestTokenizeLiterals(t *testing.T) {
	g := compile(t, `S ::= "a" "bb" "ccc"`)
	tok, err := New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tokens, err := tok.Tokenize("abbccc")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"a", "bb", "ccc"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Text != w {
			t.Errorf("token %d: got %q, want %q", i, tokens[i].Text, w)
		}
	}
}

func TestTokenizeLongestMatchWins(t *testing.T) {
	g := compile(t, `S ::= "a" | "aa"`)
	tok, err := New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tokens, err := tok.Tokenize("aa")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Text != "aa" {
		t.Fatalf("expected a single 'aa' token, got %+v", tokens)
	}
}

func TestTokenizeRegex(t *testing.T) {
	g := compile(t, `S ::= rx%[0-9]+%rx "+" rx%[0-9]+%rx`)
	tok, err := New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tokens, err := tok.Tokenize("12+345")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"12", "+", "345"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Text != w {
			t.Errorf("token %d: got %q, want %q", i, tokens[i].Text, w)
		}
	}
}

func TestTokenizeSkip(t *testing.T) {
	g := compile(t, `S ::= "a" "b"`)
	tok, err := New(g, WithSkip(`[ \t]+`))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tokens, err := tok.Tokenize("a   b")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 2 || tokens[0].Text != "a" || tokens[1].Text != "b" {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
}

func TestTokenizeUnmatchedInput(t *testing.T) {
	g := compile(t, `S ::= "a"`)
	tok, err := New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = tok.Tokenize("a#")
	if err == nil {
		t.Fatalf("expected an error tokenizing unmatched input")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
}
