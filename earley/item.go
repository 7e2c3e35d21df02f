package earley

import "github.com/wareya/wearley/bnf"

// item is a single Earley state item: "rule, at alternation alt, with the
// dot at position pos, started in column start". It is deliberately laid
// out as four fixed-width fields (32+16+16+64 bits, 16 bytes total) rather
// than holding pointers, so that a chart column's backing item slice
// stays dense and items can be used directly as map keys and set
// elements.
type item struct {
	ruleID uint32
	alt    uint16
	pos    uint16
	start  uint64
}

func startItem(ruleID uint32, alt int, col uint64) item {
	return item{ruleID: ruleID, alt: uint16(alt), pos: 0, start: col}
}

func (it item) alternation(g *bnf.Grammar) bnf.Alternation {
	return g.Rule(it.ruleID).Forms[it.alt]
}

func (it item) isComplete(g *bnf.Grammar) bool {
	return int(it.pos) == len(it.alternation(g).Terms)
}

// nextTerm returns the term immediately after the dot, or false if the
// item is already complete.
func (it item) nextTerm(g *bnf.Grammar) (bnf.Term, bool) {
	terms := it.alternation(g).Terms
	if int(it.pos) >= len(terms) {
		return bnf.Term{}, false
	}
	return terms[it.pos], true
}

// advanced returns a copy of it with the dot moved one position forward.
func (it item) advanced() item {
	it.pos++
	return it
}
