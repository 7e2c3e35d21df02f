package ast

import (
	"testing"

	"github.com/wareya/wearley"
)

func TestIsLeaf(t *testing.T) {
	leaf := &Node{Token: &Token{Text: "x"}}
	if !leaf.IsLeaf() {
		t.Fatalf("node with a Token should be a leaf")
	}
	rule := &Node{Rule: "S"}
	if rule.IsLeaf() {
		t.Fatalf("node with a Rule should not be a leaf")
	}
}

func TestSpanAccessors(t *testing.T) {
	n := &Node{Span: wearley.Span{3, 7}}
	if n.From() != 3 || n.To() != 7 {
		t.Fatalf("unexpected span accessors: from=%d to=%d", n.From(), n.To())
	}
}

func TestReleaseClearsWholeTree(t *testing.T) {
	leaf1 := &Node{Token: &Token{Text: "a"}}
	leaf2 := &Node{Token: &Token{Text: "b"}}
	mid := &Node{Rule: "M", Children: []*Node{leaf1, leaf2}}
	root := &Node{Rule: "S", Children: []*Node{mid}}

	root.Release()

	if root.Children != nil {
		t.Fatalf("root's children should be cleared")
	}
	if mid.Children != nil {
		t.Fatalf("mid's children should be cleared too, even though root no longer references mid")
	}
}

func TestReleaseOnNilIsNoop(t *testing.T) {
	var n *Node
	n.Release() // must not panic
}

func TestReleaseDeepChain(t *testing.T) {
	head := &Node{Rule: "top"}
	cur := head
	for i := 0; i < 100000; i++ {
		child := &Node{Rule: "chain"}
		cur.Children = []*Node{child}
		cur = child
	}
	head.Release() // must not stack overflow
}
