package bnf

import "github.com/cnf/structhash"

// fingerprintView is the hashed shape of a grammar: stable across
// re-serialization of the same grammar, sensitive to any change in rule
// names, alternation structure, or term content/order.
type fingerprintView struct {
	Rules []fingerprintRule
}

type fingerprintRule struct {
	Name  string
	Forms [][]fingerprintTerm
}

type fingerprintTerm struct {
	Kind    TermKind
	Ref     string // referenced rule's name, not its id (ids aren't stable across equivalent sources)
	Literal string
	Pattern string
}

// Fingerprint computes a stable content hash for grammar source text. Two
// grammars that differ only in whitespace or comment text hash
// identically; any change to rule names, rule definition order,
// alternation shape, or term content changes the hash.
//
// It is intended for cache keys and change detection, not cryptographic
// integrity.
func Fingerprint(source string) (string, error) {
	g, err := Compile(source)
	if err != nil {
		return "", err
	}
	return FingerprintGrammar(g), nil
}

// FingerprintGrammar hashes an already-compiled grammar.
func FingerprintGrammar(g *Grammar) string {
	view := fingerprintView{Rules: make([]fingerprintRule, len(g.rules))}
	for i, rule := range g.rules {
		forms := make([][]fingerprintTerm, len(rule.Forms))
		for j, alt := range rule.Forms {
			terms := make([]fingerprintTerm, len(alt.Terms))
			for k, t := range alt.Terms {
				ft := fingerprintTerm{Kind: t.Kind, Literal: t.Literal, Pattern: t.Pattern}
				if t.Kind == TermRuleRef {
					ft.Ref = g.rules[t.RuleID].Name
				}
				terms[k] = ft
			}
			forms[j] = terms
		}
		view.Rules[i] = fingerprintRule{Name: rule.Name, Forms: forms}
	}
	return structhash.Sha1(view, 1)
}
