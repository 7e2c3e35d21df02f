package earley

import (
	"github.com/wareya/wearley"
	"github.com/wareya/wearley/ast"
	"github.com/wareya/wearley/tokenize"
)

// maxBuildSteps bounds the total number of backward steps build will take
// across every frame combined. A well-formed grammar's nullable analysis
// guarantees every nullable derivation chain bottoms out at a zero-term
// alternative, so this is only ever hit if that invariant has somehow
// been violated; it exists so a broken invariant produces an error
// instead of a process that never returns.
const maxBuildSteps = 50_000_000

// frame tracks the in-progress reconstruction of one completed item's
// subtree. Building walks the chart's backward derivation chain using an
// explicit stack of frames rather than recursive function calls, so that
// a grammar with very deep right recursion (thousands of nested
// completions) cannot exhaust the Go call stack.
type frame struct {
	ruleID uint32
	alt    uint16
	start  uint64
	endCol uint64

	cur    item
	curCol int

	reverseChildren []*ast.Node
}

// build reconstructs the syntax tree for root, a completed item known to
// exist in column endCol.
func (p *Parser) build(c *chart, tokens []tokenize.Token, root item, endCol int) (*ast.Node, error) {
	g := p.grammar
	stack := []*frame{newFrame(root, endCol)}
	steps := 0

	for {
		if steps > maxBuildSteps {
			p.stuck("tree construction exceeded %d steps; nullable analysis invariant likely violated", maxBuildSteps)
			return nil, &ParseError{Column: endCol, EarlyTermination: false}
		}
		steps++

		top := stack[len(stack)-1]
		bp, ok := c.columns[top.curCol].back[top.cur]
		if !ok {
			p.stuck("no back pointer recorded for item in column %d", top.curCol)
			return nil, &ParseError{Column: top.curCol, EarlyTermination: false}
		}

		switch bp.kind {
		case causeNone:
			node := &ast.Node{
				Rule:     g.Rule(top.ruleID).Name,
				Alt:      int(top.alt),
				Span:     wearley.Span{top.start, top.endCol},
				Children: reverseNodes(top.reverseChildren),
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return node, nil
			}
			parent := stack[len(stack)-1]
			parent.reverseChildren = append(parent.reverseChildren, node)

		case causeScan:
			tok := tokens[top.curCol-1]
			leaf := &ast.Node{
				Token: &ast.Token{Text: tok.Text, ByteFrom: tok.ByteFrom, ByteTo: tok.ByteTo},
				Span:  wearley.Span{uint64(top.curCol - 1), uint64(top.curCol)},
			}
			top.reverseChildren = append(top.reverseChildren, leaf)
			top.cur = bp.prev
			top.curCol = bp.prevCol

		case causeComplete, causeNullable:
			childTerms := g.Rule(bp.childRuleID).Forms[bp.childAlt].Terms
			child := item{
				ruleID: bp.childRuleID,
				alt:    bp.childAlt,
				pos:    uint16(len(childTerms)),
				start:  bp.childStart,
			}
			stack = append(stack, newFrame(child, top.curCol))
			top.cur = bp.prev
			top.curCol = bp.prevCol

		case causeTailret:
			child, ok := p.resolveTailret(c, top.curCol, top.cur)
			if !ok {
				p.stuck("taildown chain missing for a right-recursion jump in column %d", top.curCol)
				return nil, &ParseError{Column: top.curCol, EarlyTermination: false}
			}
			stack = append(stack, newFrame(child, top.curCol))
			top.cur = bp.prev
			top.curCol = bp.prevCol
		}
	}
}

// resolveTailret reconstructs, lazily and only along the one derivation
// being built, the cascade of single-parent completions that the
// right-recursion short-circuit (complete, §4.4(d)) skipped when it
// advanced target directly instead of one parent at a time. It walks
// upward from the bottom-most completion that originally triggered the
// jump — recorded in colI's taildown index under target — re-deriving
// each intermediate advance exactly as ordinary completion would have,
// and recording a normal causeComplete back pointer for each, until it
// reaches the step whose advance is target itself. It returns the item
// one level below target in that reconstructed chain: the child whose
// completion target's own back pointer (already recorded as
// causeTailret) is standing in for.
func (p *Parser) resolveTailret(c *chart, colI int, target item) (item, bool) {
	col := c.columns[colI]
	bottoms, ok := col.taildown[target]
	if !ok || len(bottoms) == 0 {
		return item{}, false
	}
	cur := bottoms[0]
	for steps := 0; ; steps++ {
		if steps > maxBuildSteps {
			p.stuck("tailret reconstruction exceeded %d steps in column %d", maxBuildSteps, colI)
			return item{}, false
		}
		startCol := c.columns[cur.start]
		waiters := startCol.waitingOn(cur.ruleID)
		if len(waiters) != 1 {
			p.stuck("tailret reconstruction lost its single-parent chain in column %d", colI)
			return item{}, false
		}
		parent := waiters[0]
		next := parent.advanced()
		if next == target {
			return cur, true
		}
		if _, exists := col.back[next]; !exists {
			col.add(next, backPointer{
				kind:        causeComplete,
				prev:        parent,
				prevCol:     int(cur.start),
				childRuleID: cur.ruleID,
				childAlt:    cur.alt,
				childStart:  cur.start,
			})
		}
		cur = next
	}
}

func newFrame(it item, col int) *frame {
	return &frame{
		ruleID: it.ruleID,
		alt:    it.alt,
		start:  it.start,
		endCol: uint64(col),
		cur:    it,
		curCol: col,
	}
}

func reverseNodes(nodes []*ast.Node) []*ast.Node {
	out := make([]*ast.Node, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}
	return out
}
