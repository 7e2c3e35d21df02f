package bnf

// AltKey identifies a single alternation within a grammar: a rule id paired
// with that rule's alternation index.
type AltKey struct {
	RuleID uint32
	Alt    uint16
}

// Nullable is the result of AnalyzeNullable: the set of alternations that
// can derive the empty string, and the set of rules for which at least one
// alternation is nullable.
type Nullable struct {
	Alts  map[AltKey]bool
	Rules map[uint32]bool
}

// IsAltNullable reports whether a specific (rule, alternation) pair is
// nullable.
func (n *Nullable) IsAltNullable(rule uint32, alt int) bool {
	return n.Alts[AltKey{RuleID: rule, Alt: uint16(alt)}]
}

// IsRuleNullable reports whether any alternation of rule can derive the
// empty string.
func (n *Nullable) IsRuleNullable(rule uint32) bool {
	return n.Rules[rule]
}

// AnalyzeNullable computes the nullable alternations and rules of g.
//
// The computation is a fixpoint over a bipartite dependency graph: rules
// depend on alternations (a rule is nullable if any of its alternations
// is), and alternations depend on rules (an alternation is nullable if
// every rule-reference term in it is nullable; literal and regex terms are
// never nullable, since the empty string is never produced by matching one
// against input). Seed the worklist with alternations that contain zero
// terms — those are nullable unconditionally — then propagate outward
// until no alternation's status changes.
func AnalyzeNullable(g *Grammar) *Nullable {
	n := &Nullable{
		Alts:  map[AltKey]bool{},
		Rules: map[uint32]bool{},
	}

	// dependents[ruleID] lists every alternation that references ruleID,
	// so that marking a rule nullable can wake up exactly the
	// alternations that might now also be nullable.
	dependents := map[uint32][]AltKey{}

	// An alternation may be queued more than once: it is re-examined each
	// time one of the rules it references becomes nullable, since an
	// earlier check may have run before all of them were.
	var worklist []AltKey
	push := func(k AltKey) {
		if !n.Alts[k] {
			worklist = append(worklist, k)
		}
	}

	for _, rule := range g.rules {
		for altIdx, alt := range rule.Forms {
			key := AltKey{RuleID: rule.ID, Alt: uint16(altIdx)}
			if len(alt.Terms) == 0 {
				push(key)
				continue
			}
			for _, t := range alt.Terms {
				if t.Kind == TermRuleRef {
					dependents[t.RuleID] = append(dependents[t.RuleID], key)
				}
			}
		}
	}

	markRuleNullable := func(ruleID uint32) {
		if n.Rules[ruleID] {
			return
		}
		n.Rules[ruleID] = true
		for _, dep := range dependents[ruleID] {
			push(dep)
		}
	}

	for len(worklist) > 0 {
		key := worklist[0]
		worklist = worklist[1:]

		if n.Alts[key] {
			continue
		}
		rule := g.rules[key.RuleID]
		alt := rule.Forms[key.Alt]
		if !allTermsNullable(alt, n) {
			continue
		}
		n.Alts[key] = true
		markRuleNullable(key.RuleID)
	}
	return n
}

func allTermsNullable(alt Alternation, n *Nullable) bool {
	for _, t := range alt.Terms {
		if t.Kind != TermRuleRef || !n.Rules[t.RuleID] {
			return false
		}
	}
	return true
}
