package ast

import "github.com/wareya/wearley"

// Token is the leaf payload of a Node matched directly against a
// grammar's terminal term (a literal or a regex).
type Token struct {
	Text     string
	ByteFrom int
	ByteTo   int
}

// Node is one node of a parse tree: either a rule node (Rule non-empty,
// Token nil, zero or more Children) or a token leaf (Token non-nil,
// Children always empty).
type Node struct {
	Rule string
	Alt  int
	Span wearley.Span

	Token *Token

	Children []*Node
}

// IsLeaf reports whether n is a token leaf rather than a rule node.
func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

// From returns the start of the node's span, in token positions.
func (n *Node) From() uint64 { return n.Span.From() }

// To returns the end of the node's span, in token positions.
func (n *Node) To() uint64 { return n.Span.To() }

// Release severs every Children slice in the subtree rooted at n,
// iteratively: it walks the tree once with an explicit stack, and at each
// node flattens that node's children into the stack before clearing the
// node's own Children field, rather than freeing bottom-up via
// recursion. This keeps teardown of a very deep or very wide tree from
// growing the Go call stack.
func (n *Node) Release() {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(cur.Children) > 0 {
			stack = append(stack, cur.Children...)
			cur.Children = nil
		}
	}
}
