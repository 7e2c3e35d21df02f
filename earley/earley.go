package earley

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"

	"github.com/wareya/wearley/ast"
	"github.com/wareya/wearley/bnf"
	"github.com/wareya/wearley/tokenize"
)

// Option configures a Parser at construction time.
type Option func(*Parser)

// OnError installs a callback invoked with a human-readable message
// whenever the chart filler notices something a caller might want to log
// — e.g. a predicted rule with zero alternations. It does not replace the
// error returned by Parse/Recognize; it's a secondary diagnostic channel.
func OnError(f func(p *Parser, msg string)) Option {
	return func(p *Parser) { p.onError = f }
}

// Parser runs the Earley algorithm against one fixed grammar.
type Parser struct {
	grammar  *bnf.Grammar
	nullable *bnf.Nullable
	startID  uint32

	onError func(p *Parser, msg string)
}

// New builds a Parser for g, recognizing/parsing from rule startRule.
func New(g *bnf.Grammar, startRule string, opts ...Option) (*Parser, error) {
	id, ok := g.RuleID(startRule)
	if !ok {
		return nil, &bnf.LoadError{Message: "start rule not defined: " + startRule}
	}
	p := &Parser{
		grammar:  g,
		nullable: bnf.AnalyzeNullable(g),
		startID:  id,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Parser) reportError(msg string) {
	if p.onError != nil {
		p.onError(p, msg)
	}
}

// stuck is consulted whenever the filler detects an internal invariant
// violation that should never happen for a well-formed grammar (e.g. a
// rule id with no alternations reachable from a live item). Depending on
// the "panic-on-parser-stuck" config flag, it either panics (useful while
// developing a new grammar loader or filler change) or logs and lets the
// caller receive a ParseError instead of a silent wrong answer.
func (p *Parser) stuck(format string, args ...interface{}) bool {
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf(msg)
	p.reportError(msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic("earley parser is stuck: " + msg)
	}
	return false
}

// Recognize reports whether the token stream is a member of the language
// defined by the grammar's start rule, without building a syntax tree.
func (p *Parser) Recognize(tokens []tokenize.Token) (bool, error) {
	c := newChart(p.grammar, p.nullable, len(tokens))
	if err := p.chartFill(c, tokens); err != nil {
		return false, err
	}
	return p.accepted(c, len(tokens)), nil
}

// Parse recognizes the token stream and, if it matches, reconstructs a
// syntax tree rooted at the start rule.
func (p *Parser) Parse(tokens []tokenize.Token) (*ast.Node, error) {
	c := newChart(p.grammar, p.nullable, len(tokens))
	if err := p.chartFill(c, tokens); err != nil {
		return nil, err
	}
	root, ok := p.acceptedItem(c, len(tokens))
	if !ok {
		return nil, &ParseError{Column: len(tokens), EarlyTermination: false}
	}
	return p.build(c, tokens, root, len(tokens))
}

// accepted reports whether some alternation of the start rule completed,
// starting at column 0, ending at the final column.
func (p *Parser) accepted(c *chart, last int) bool {
	_, ok := p.acceptedItem(c, last)
	return ok
}

// acceptedItem returns the first-found completed start-rule item spanning
// the whole input, if any.
func (p *Parser) acceptedItem(c *chart, last int) (item, bool) {
	col := c.columns[last]
	var found item
	ok := false
	col.items.Each(func(it item) {
		if !ok && it.ruleID == p.startID && it.start == 0 && it.isComplete(p.grammar) {
			found = it
			ok = true
		}
	})
	return found, ok
}

// chartFill runs predict/scan/complete to a fixpoint in every column in
// turn, in order, each column's fixpoint depending only on earlier
// columns plus itself (scan is the only step that writes into the next
// column, and it only ever appends, never triggering more work in the
// column it reads from).
func (p *Parser) chartFill(c *chart, tokens []tokenize.Token) error {
	g := p.grammar

	// Seed column 0 with the start rule's alternations.
	p.predict(c, 0, p.startID)

	for i := 0; i < len(c.columns); i++ {
		col := c.columns[i]
		col.items.IterateOnce()
		for {
			it, ok := col.items.Next()
			if !ok {
				break
			}
			term, complete := it.nextTerm(g)
			if !complete {
				p.complete(c, i, it)
				continue
			}
			switch term.Kind {
			case bnf.TermRuleRef:
				p.predict(c, i, term.RuleID)
				col.addWaiting(term.RuleID, it)
				p.predictNullable(c, i, it, term.RuleID)
				p.setupTailret(c, i, it, term.RuleID)
			case bnf.TermLiteral, bnf.TermRegex:
				if i < len(tokens) {
					p.scan(c, i, it, term, tokens[i])
				}
			}
		}
		if i < len(tokens) && c.columns[i+1].items.Size() == 0 && col.items.Size() > 0 {
			// Every live item in this column wanted either a rule that
			// can't be predicted further or a terminal the next token
			// doesn't satisfy: the chart can make no further progress.
			hasScanWaiting := false
			col.items.Each(func(it item) {
				if t, ok := it.nextTerm(g); ok && t.Kind != bnf.TermRuleRef {
					hasScanWaiting = true
				}
			})
			if hasScanWaiting {
				return &ParseError{Column: i, EarlyTermination: true}
			}
		}
	}
	return nil
}

// predict adds every alternation of ruleID to column i (if not already
// predicted there). It does not advance the predicting item itself:
// callers of predict are responsible for registering their own item in
// the column's waiting index so the resulting completion can find them,
// and for nullable preemption (predictNullable).
func (p *Parser) predict(c *chart, i int, ruleID uint32) {
	col := c.columns[i]
	if col.predicted[ruleID] {
		return
	}
	col.predicted[ruleID] = true

	rule := p.grammar.Rule(ruleID)
	if len(rule.Forms) == 0 {
		p.stuck("rule %s has no alternations", rule.Name)
		return
	}
	for altIdx := range rule.Forms {
		newItem := startItem(ruleID, altIdx, uint64(i))
		col.add(newItem, backPointer{kind: causeNone})
	}
}

// scan advances it past a terminal term if tok's text satisfies it,
// placing the advanced item in the next column.
func (p *Parser) scan(c *chart, i int, it item, term bnf.Term, tok tokenize.Token) {
	if !term.Matches(tok.Text) {
		return
	}
	next := c.columns[i+1]
	next.add(it.advanced(), backPointer{kind: causeScan, prev: it, prevCol: i})
}

// complete advances every item in it.start's column that was waiting on
// it.ruleID, placing the advanced items into column i (the completion's
// end column).
//
// Before doing that the normal way, it checks for the right-recursion
// short-circuit of §4.4(d): if it.start's column has exactly one item
// waiting on it.ruleID, and that single waiter has a tailret entry, the
// waiter's own ordinary advance — and the whole cascade of further
// single-parent advances that would otherwise follow it, one per
// completion, through the rest of this recursion — is skipped. Instead
// the ultimate ancestor named by the tailret entry is advanced directly,
// and the item that would have triggered the skipped cascade is recorded
// in taildown so the AST builder can regenerate it lazily, along the one
// derivation path it actually needs.
func (p *Parser) complete(c *chart, i int, it item) {
	g := p.grammar
	key := reductionKey{ruleID: it.ruleID, alt: it.alt, start: it.start}
	col := c.columns[i]
	if col.reduced[key] {
		return
	}
	col.reduced[key] = true

	startCol := c.columns[it.start]
	waiters := startCol.waitingOn(it.ruleID)

	if len(waiters) == 1 {
		parentKey := tailKey{col: int(it.start), it: waiters[0]}
		if target, ok := c.tailret[parentKey]; ok {
			jump := target.it.advanced()
			col.add(jump, backPointer{kind: causeTailret, prev: target.it, prevCol: target.col})
			col.taildown[jump] = append(col.taildown[jump], it)
			return
		}
	}

	for _, waiter := range waiters {
		term, ok := waiter.nextTerm(g)
		if !ok || term.Kind != bnf.TermRuleRef || term.RuleID != it.ruleID {
			continue
		}
		col.add(waiter.advanced(), backPointer{
			kind:        causeComplete,
			prev:        waiter,
			prevCol:     int(it.start),
			childRuleID: it.ruleID,
			childAlt:    it.alt,
			childStart:  it.start,
		})
	}
}

// setupTailret records a right-recursion compression entry (§4.4(d)) for
// the current item it, whose next term is a reference to ruleID, when
// all of the following hold:
//
//   - ruleID itself is non-nullable (a nullable derivation can complete
//     via the empty string, which doesn't fit the single-parent-chain
//     shape this compression targets);
//   - it is at its own last term position, i.e. matching ruleID will
//     complete it;
//   - it.start's column has exactly one item waiting on it.ruleID (call
//     it parent), so there is a unique next link in the chain; and
//   - parent is itself at its last term position and its rule is
//     non-nullable, the same shape one level up.
//
// The recorded target is parent's own tailret target if it has one
// (already fully resolved, by induction — every tailret value names a
// final target, never another tailret key), or parent itself otherwise.
func (p *Parser) setupTailret(c *chart, i int, it item, ruleID uint32) {
	if p.nullable.IsRuleNullable(ruleID) {
		return
	}
	terms := it.alternation(p.grammar).Terms
	if int(it.pos)+1 != len(terms) {
		return
	}
	startCol := c.columns[it.start]
	waiters := startCol.waitingOn(it.ruleID)
	if len(waiters) != 1 {
		return
	}
	parent := waiters[0]
	parentTerms := parent.alternation(p.grammar).Terms
	if int(parent.pos)+1 != len(parentTerms) {
		return
	}
	if p.nullable.IsRuleNullable(parent.ruleID) {
		return
	}

	target := tailKey{col: int(it.start), it: parent}
	if resolved, ok := c.tailret[target]; ok {
		target = resolved
	}
	key := tailKey{col: i, it: it}
	if _, exists := c.tailret[key]; exists {
		p.stuck("duplicate tailret entry recorded for the same item in column %d", i)
		return
	}
	c.tailret[key] = target
}

// predictNullable is invoked from chartFill right after predict has seeded
// ruleID's alternations and the waiting item has been registered: if
// ruleID is nullable, the waiting item (the one whose next term is ruleID)
// is advanced in place, without waiting for scan/complete to reach it.
func (p *Parser) predictNullable(c *chart, i int, waiter item, ruleID uint32) {
	if !p.nullable.IsRuleNullable(ruleID) {
		return
	}
	altIdx := p.nullableAltFor(ruleID)
	col := c.columns[i]
	col.add(waiter.advanced(), backPointer{
		kind:        causeNullable,
		prev:        waiter,
		prevCol:     i,
		childRuleID: ruleID,
		childAlt:    uint16(altIdx),
		childStart:  uint64(i),
	})
}

// nullableAltFor picks which of ruleID's nullable alternatives stands for
// its empty derivation. A zero-term alternative is preferred when one
// exists, since it needs no further recursive expansion; every nullable
// rule's nullability is ultimately grounded in some zero-term alternative
// reachable this way, so preferring it keeps nullable tree construction
// from chasing a cycle of rules that only reference each other.
func (p *Parser) nullableAltFor(ruleID uint32) int {
	rule := p.grammar.Rule(ruleID)
	for idx, alt := range rule.Forms {
		if len(alt.Terms) == 0 && p.nullable.IsAltNullable(ruleID, idx) {
			return idx
		}
	}
	for idx := range rule.Forms {
		if p.nullable.IsAltNullable(ruleID, idx) {
			return idx
		}
	}
	return 0
}
