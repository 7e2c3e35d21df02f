package tokenize

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/wareya/wearley/bnf"
)

// Option configures a Tokenizer at construction time.
type Option func(*Tokenizer)

// WithSkip marks a regex pattern (in the same dialect as a grammar's rx%...%rx
// terms, unanchored) as whitespace-like: tokens it matches are produced by
// the scanner, dropped, and never appear in Tokenize's output. Runs of
// spaces, tabs, carriage returns and newlines are always skipped; WithSkip
// adds further patterns on top of that.
func WithSkip(pattern string) Option {
	return func(t *Tokenizer) {
		t.skip = append(t.skip, pattern)
	}
}

// Tokenizer produces the longest-match-wins token stream for one grammar's
// vocabulary of literal and regex terms.
type Tokenizer struct {
	lexer *lexmachine.Lexer
	skip  []string
}

// New builds a Tokenizer from every literal and regex term used anywhere in
// g. Literals are given match priority over regexes; within each kind,
// candidates are tried in the order bnf.Grammar reports them in (first use
// in the source grammar), and lexmachine's underlying DFA resolves
// longest-match ties in that same priority order.
func New(g *bnf.Grammar, opts ...Option) (*Tokenizer, error) {
	t := &Tokenizer{lexer: lexmachine.NewLexer()}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.lexer.Add([]byte("( |\t|\r|\n)+"), skipAction); err != nil {
		return nil, err
	}
	for _, skip := range t.skip {
		if err := t.lexer.Add([]byte(skip), skipAction); err != nil {
			return nil, err
		}
	}
	for _, lit := range g.Literals() {
		if err := t.lexer.Add([]byte(escapeLiteral(lit)), tokenAction); err != nil {
			return nil, err
		}
	}
	for _, pat := range g.RegexPatterns() {
		if err := t.lexer.Add([]byte(pat), tokenAction); err != nil {
			return nil, err
		}
	}
	if err := t.lexer.Compile(); err != nil {
		return nil, err
	}
	return t, nil
}

func skipAction(scan *lexmachine.Scanner, match *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokenAction(scan *lexmachine.Scanner, match *machines.Match) (interface{}, error) {
	return Token{
		Text:     string(match.Bytes),
		ByteFrom: match.StartByte,
		ByteTo:   match.EndByte + 1,
	}, nil
}

// Tokenize scans input from start to end, returning every non-skipped
// token in order. It fails with an *Error at the first byte offset that
// matches no candidate literal or regex.
func (t *Tokenizer) Tokenize(input string) ([]Token, error) {
	scanner, err := t.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if me, ok := err.(*machines.UnconsumedInput); ok {
				return nil, &Error{Offset: me.StartByte}
			}
			return nil, err
		}
		tokens = append(tokens, tok.(Token))
	}
	tracer().Debugf("tokenized %d bytes into %d tokens", len(input), len(tokens))
	return tokens, nil
}

// escapeLiteral renders s as a lexmachine regex that matches it literally.
func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
