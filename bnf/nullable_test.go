package bnf

import "testing"

func TestAnalyzeNullableDirect(t *testing.T) {
	g, err := Compile(`
		A ::= "a" |
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	n := AnalyzeNullable(g)
	aID, _ := g.RuleID("A")
	if !n.IsRuleNullable(aID) {
		t.Fatalf("A should be nullable")
	}
	if !n.IsAltNullable(aID, 1) {
		t.Fatalf("A's second (empty) alternation should be nullable")
	}
	if n.IsAltNullable(aID, 0) {
		t.Fatalf("A's first alternation is not nullable")
	}
}

func TestAnalyzeNullableTransitive(t *testing.T) {
	g, err := Compile(`
		S ::= A B
		A ::=
		B ::=
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	n := AnalyzeNullable(g)
	sID, _ := g.RuleID("S")
	if !n.IsRuleNullable(sID) {
		t.Fatalf("S should be transitively nullable")
	}
}

func TestAnalyzeNullableNotWhenOneBranchIsNot(t *testing.T) {
	g, err := Compile(`
		S ::= A B
		A ::=
		B ::= "b"
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	n := AnalyzeNullable(g)
	sID, _ := g.RuleID("S")
	if n.IsRuleNullable(sID) {
		t.Fatalf("S should not be nullable: B is mandatory and non-nullable")
	}
}

func TestAnalyzeNullableLeftRecursive(t *testing.T) {
	g, err := Compile(`
		A ::= A "a" | "a"
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	n := AnalyzeNullable(g)
	aID, _ := g.RuleID("A")
	if n.IsRuleNullable(aID) {
		t.Fatalf("A should not be nullable: every alternation consumes a literal")
	}
}

func TestAnalyzeNullableMutualRecursion(t *testing.T) {
	g, err := Compile(`
		A ::= B
		B ::= A |
	`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	n := AnalyzeNullable(g)
	aID, _ := g.RuleID("A")
	bID, _ := g.RuleID("B")
	if !n.IsRuleNullable(bID) {
		t.Fatalf("B should be nullable directly")
	}
	if !n.IsRuleNullable(aID) {
		t.Fatalf("A should be nullable via B")
	}
}
