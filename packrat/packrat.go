package packrat

import (
	"github.com/wareya/wearley"
	"github.com/wareya/wearley/ast"
	"github.com/wareya/wearley/bnf"
	"github.com/wareya/wearley/tokenize"
)

// Parser runs the packrat algorithm against one fixed grammar.
type Parser struct {
	grammar *bnf.Grammar
	startID uint32
}

// New builds a Parser for g, starting from rule startRule.
func New(g *bnf.Grammar, startRule string) (*Parser, error) {
	id, ok := g.RuleID(startRule)
	if !ok {
		return nil, &bnf.LoadError{Message: "start rule not defined: " + startRule}
	}
	return &Parser{grammar: g, startID: id}, nil
}

type memoKey struct {
	ruleID uint32
	pos    int
}

// memoEntry caches the outcome of attempting ruleID at a token position:
// node is non-nil iff the attempt succeeded.
type memoEntry struct {
	node *ast.Node
}

// frame is one in-progress attempt at matching a rule, starting from one
// particular alternation and term index. Matching is driven with an
// explicit stack of frames instead of recursive calls: whenever a term is
// a rule reference not yet memoized, the current frame is pushed and a
// new one for that rule begins; whenever a rule's current alternation
// either succeeds or runs out of alternations to try, the frame pops, and
// its result (success or failure) is recorded in the cache.
type frame struct {
	ruleID     uint32
	forms      []bnf.Alternation
	altIdx     int
	termIdx    int
	tokenStart int
	tokenI     int
	children   []*ast.Node
}

func newFrame(g *bnf.Grammar, ruleID uint32, tokenStart int) *frame {
	return &frame{
		ruleID:     ruleID,
		forms:      g.Rule(ruleID).Forms,
		tokenStart: tokenStart,
		tokenI:     tokenStart,
	}
}

func (f *frame) key() memoKey {
	return memoKey{ruleID: f.ruleID, pos: f.tokenStart}
}

func (f *frame) currentTerms() []bnf.Term {
	return f.forms[f.altIdx].Terms
}

func (f *frame) inBounds(numTokens int) bool {
	return f.altIdx < len(f.forms) && f.termIdx < len(f.currentTerms()) && f.tokenI <= numTokens
}

// Parse matches the grammar's start rule against the entire token stream,
// returning the resulting tree. It fails if no alternation matches at
// all, or if a match is found that doesn't consume every token.
func (p *Parser) Parse(tokens []tokenize.Token) (*ast.Node, error) {
	node, err := p.parseRule(p.startID, 0, tokens)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, &Error{RuleName: p.grammar.Rule(p.startID).Name, NumTokens: len(tokens)}
	}
	if int(node.To()) != len(tokens) {
		return nil, &Error{
			RuleName: p.grammar.Rule(p.startID).Name, Partial: true,
			Consumed: int(node.To()), NumTokens: len(tokens),
		}
	}
	return node, nil
}

// parseRule attempts to match ruleID starting at token position start. A
// nil, nil result means the rule provably doesn't match there.
func (p *Parser) parseRule(ruleID uint32, start int, tokens []tokenize.Token) (*ast.Node, error) {
	g := p.grammar
	n := len(tokens)

	cache := map[memoKey]memoEntry{}
	cached := map[memoKey]bool{} // distinguishes "no entry yet" from "entry present, node nil"
	workStarted := map[memoKey]bool{}

	cur := newFrame(g, ruleID, start)
	var stash []*frame

	for cur.inBounds(n) || len(stash) > 0 {
		if cur.altIdx == 0 && cur.termIdx == 0 {
			workStarted[cur.key()] = true
		}

		if len(stash) > 0 && !cur.inBounds(n) {
			// Every term of the current alternation matched: success.
			node := &ast.Node{
				Rule:     g.Rule(cur.ruleID).Name,
				Alt:      cur.altIdx,
				Span:     wearley.Span{uint64(cur.tokenStart), uint64(cur.tokenI)},
				Children: cur.children,
			}
			cache[cur.key()] = memoEntry{node: node}
			cached[cur.key()] = true
			cur = stash[len(stash)-1]
			stash = stash[:len(stash)-1]
			continue
		}

		term := cur.currentTerms()[cur.termIdx]

		if term.Kind == bnf.TermRuleRef {
			k := memoKey{ruleID: term.RuleID, pos: cur.tokenI}
			if !cached[k] {
				tokenI := cur.tokenI
				stash = append(stash, cur)
				cur = newFrame(g, term.RuleID, tokenI)
				if workStarted[cur.key()] {
					// Left recursion: this rule is already being
					// attempted from the same position further up the
					// stack. Treat it as a failed match here.
					cache[cur.key()] = memoEntry{}
					cached[cur.key()] = true
					cur = stash[len(stash)-1]
					stash = stash[:len(stash)-1]
				}
				continue
			}
		}

		oldChildCount := len(cur.children)

		switch term.Kind {
		case bnf.TermRuleRef:
			if entry, ok := cache[memoKey{ruleID: term.RuleID, pos: cur.tokenI}]; ok && entry.node != nil {
				cur.tokenI += int(entry.node.To() - entry.node.From())
				cur.children = append(cur.children, entry.node)
			}
		case bnf.TermLiteral, bnf.TermRegex:
			if cur.tokenI < n && term.Matches(tokens[cur.tokenI].Text) {
				tok := tokens[cur.tokenI]
				cur.children = append(cur.children, &ast.Node{
					Token: &ast.Token{Text: tok.Text, ByteFrom: tok.ByteFrom, ByteTo: tok.ByteTo},
					Span:  wearley.Span{uint64(cur.tokenI), uint64(cur.tokenI + 1)},
				})
				cur.tokenI++
			}
		}

		cur.termIdx++
		if len(cur.children) == oldChildCount {
			// This term failed to match: the whole alternation fails,
			// restart from the next alternation.
			cur.termIdx = 0
			cur.tokenI = cur.tokenStart
			cur.children = nil
			cur.altIdx++
			if cur.altIdx >= len(cur.forms) {
				if len(stash) > 0 {
					cache[cur.key()] = memoEntry{}
					cached[cur.key()] = true
					cur = stash[len(stash)-1]
					stash = stash[:len(stash)-1]
					continue
				}
				return nil, nil
			}
		}
	}

	return &ast.Node{
		Rule:     g.Rule(cur.ruleID).Name,
		Alt:      cur.altIdx,
		Span:     wearley.Span{uint64(cur.tokenStart), uint64(cur.tokenI)},
		Children: cur.children,
	}, nil
}
