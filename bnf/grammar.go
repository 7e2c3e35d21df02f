package bnf

import (
	"regexp"
	"strings"
)

// Hard caps on grammar size. These exist so that rule ids, alternation
// indices, and dot positions fit into the compact fixed-width integers the
// Earley chart filler uses for its 16-byte state items (see package earley).
const (
	MaxAlternationsPerRule = 60000
	MaxTermsPerAlternation = 60000
	MaxRules               = 4000000000
)

// TermKind distinguishes the three kinds of matching terms a grammar
// alternation can hold.
type TermKind uint8

const (
	// TermRuleRef is a reference to another rule, by id.
	TermRuleRef TermKind = iota
	// TermLiteral is a decoded string literal, matched by equality.
	TermLiteral
	// TermRegex is a compiled regex, matched by full string match.
	TermRegex
)

// Term is one element of an Alternation's right-hand side: a rule
// reference, a literal, or a regex. Terms are immutable after load.
type Term struct {
	Kind TermKind

	RuleID uint32 // valid iff Kind == TermRuleRef
	Literal string // valid iff Kind == TermLiteral; the decoded text

	// Regex is the full-match compiled form (anchored at both ends),
	// used by the chart filler's scan step. Valid iff Kind == TermRegex.
	Regex *regexp.Regexp
	// Pattern is the original, undecorated user pattern (no anchors),
	// used by the tokenizer to build its prefix-anchored longest-match
	// lexer. Valid iff Kind == TermRegex.
	Pattern string
}

// Alternation is one right-hand side of a rule: an ordered sequence of
// matching terms.
type Alternation struct {
	Terms []Term
}

// Rule is a named, ordered list of alternations.
type Rule struct {
	Name  string
	ID    uint32
	Forms []Alternation
}

// Grammar is the compiled form of a user grammar: a dense, zero-indexed
// list of rules, a name-to-id index, and the interned literal/regex
// vocabulary used by the tokenizer.
type Grammar struct {
	rules  []*Rule
	byName map[string]uint32

	literals []string // all literal term texts, in first-use order
	patterns []string // all regex term patterns (unanchored), in first-use order
}

// Rule returns the rule with the given id. It panics if id is out of range;
// ids returned by Compile/RuleID are always valid.
func (g *Grammar) Rule(id uint32) *Rule {
	return g.rules[id]
}

// NumRules returns the number of rules in the grammar.
func (g *Grammar) NumRules() int {
	return len(g.rules)
}

// RuleID resolves a rule name to its id.
func (g *Grammar) RuleID(name string) (uint32, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// Literals returns every distinct literal string used anywhere in the
// grammar, in first-use order.
func (g *Grammar) Literals() []string {
	return g.literals
}

// RegexPatterns returns every distinct (unanchored) regex pattern used
// anywhere in the grammar, in first-use order.
func (g *Grammar) RegexPatterns() []string {
	return g.patterns
}

// Compile performs both stages of grammar loading: the lexical pass
// (lexSource) followed by the resolution pass (resolve).
func Compile(source string) (*Grammar, error) {
	raw, err := lexSource(source)
	if err != nil {
		return nil, err
	}
	g, err := resolve(raw)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("compiled grammar: %d rules, %d literals, %d regexes",
		g.NumRules(), len(g.literals), len(g.patterns))
	return g, nil
}

func resolve(raw []rawRule) (*Grammar, error) {
	if len(raw) > MaxRules {
		return nil, resolveError("more than %d rules in grammar", MaxRules)
	}
	byName := make(map[string]uint32, len(raw))
	for i, r := range raw {
		if _, dup := byName[r.name]; dup {
			return nil, resolveError(
				"duplicate rule %s; use alternations (e.g. x ::= a | b), not additional definitions", r.name)
		}
		byName[r.name] = uint32(i)
	}

	g := &Grammar{
		byName: byName,
		rules:  make([]*Rule, len(raw)),
	}
	seenLiteral := map[string]bool{}
	seenPattern := map[string]bool{}

	for i, r := range raw {
		if len(r.alts) > MaxAlternationsPerRule {
			return nil, resolveError("more than %d alternations in %s. Factor them out.", MaxAlternationsPerRule, r.name)
		}
		forms := make([]Alternation, 0, len(r.alts))
		for _, alt := range r.alts {
			if len(alt) > MaxTermsPerAlternation {
				return nil, resolveError("more than %d items in an alternation of %s. Factor them out.", MaxTermsPerAlternation, r.name)
			}
			terms := make([]Term, 0, len(alt))
			for _, raw := range alt {
				term, err := resolveTerm(raw, byName, seenLiteral, seenPattern, g)
				if err != nil {
					return nil, err
				}
				terms = append(terms, term)
			}
			forms = append(forms, Alternation{Terms: terms})
		}
		g.rules[i] = &Rule{Name: r.name, ID: uint32(i), Forms: forms}
	}
	return g, nil
}

func resolveTerm(raw string, byName map[string]uint32, seenLiteral, seenPattern map[string]bool, g *Grammar) (Term, error) {
	if strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) && len(raw) >= 2 {
		body := raw[1 : len(raw)-1]
		body = strings.ReplaceAll(body, `\"`, `"`)
		body = strings.ReplaceAll(body, `\\`, `\`)
		if !seenLiteral[body] {
			seenLiteral[body] = true
			g.literals = append(g.literals, body)
		}
		return Term{Kind: TermLiteral, Literal: body}, nil
	}
	if strings.HasPrefix(raw, "rx%") && strings.HasSuffix(raw, "%rx") && len(raw) >= 6 {
		pattern := raw[3 : len(raw)-3]
		full, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
		if err != nil {
			return Term{}, resolveError("invalid regex %q: %v", pattern, err)
		}
		if _, err := regexp.Compile(`\A(?:` + pattern + `)`); err != nil {
			return Term{}, resolveError("invalid regex %q: %v", pattern, err)
		}
		if !seenPattern[pattern] {
			seenPattern[pattern] = true
			g.patterns = append(g.patterns, pattern)
		}
		return Term{Kind: TermRegex, Regex: full, Pattern: pattern}, nil
	}
	id, ok := byName[raw]
	if !ok {
		return Term{}, resolveError("not a defined grammar rule: %q", raw)
	}
	return Term{Kind: TermRuleRef, RuleID: id}, nil
}

// Matches reports whether a term that is a literal or regex matches text in
// full (as opposed to the tokenizer's longest-prefix matching).
func (t Term) Matches(text string) bool {
	switch t.Kind {
	case TermLiteral:
		return t.Literal == text
	case TermRegex:
		return t.Regex.MatchString(text)
	default:
		return false
	}
}
