package earley

import (
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/wareya/wearley/bnf"
	"github.com/wareya/wearley/earley/iteratable"
)

type setOfItems = iteratable.Set[item]

func newSetOfItems() *setOfItems {
	return iteratable.New[item]()
}

// causeKind identifies why an item's dot advanced, for the benefit of the
// AST builder.
type causeKind uint8

const (
	causeNone causeKind = iota
	// causeScan: the dot advanced because a terminal term matched the
	// token consumed going from this column's predecessor to this column.
	causeScan
	// causeComplete: the dot advanced because a nonterminal's rule
	// finished matching, covering [childStart, thisColumn).
	causeComplete
	// causeNullable: the dot advanced immediately at predict time,
	// because the predicted rule can derive the empty string; the child
	// span is empty.
	causeNullable
	// causeTailret: the dot advanced by jumping straight to the
	// ultimate ancestor of a chain of single-parent, last-term-position
	// completions (the right-recursion compression of §4.4(d)), instead
	// of advancing one parent at a time. prev/prevCol name that ultimate
	// ancestor directly; the intermediate items the jump skipped are not
	// in the chart and have to be regenerated on demand — see
	// resolveTailret in build.go — using this column's taildown index.
	causeTailret
)

// backPointer records, for one item newly inserted into a column, how it
// was derived: the item it advanced from and the column that item lives
// in (not always this column — a completion's waiter lives in the
// completed item's start column, which can be much earlier) and what
// justified the advance. Only the first-ever insertion of a given item
// records a backPointer — later, redundant derivations of the same item
// are suppressed by item-set dedup — which is what makes tree
// reconstruction from an ambiguous chart deterministic: the
// earliest-found derivation wins.
type backPointer struct {
	kind    causeKind
	prev    item
	prevCol int

	// childRuleID/childAlt/childStart are valid iff kind is
	// causeComplete or causeNullable: they identify the completed child
	// covering [childStart, <this column>).
	childRuleID uint32
	childAlt    uint16
	childStart  uint64
}

// tailKey identifies an item by the column it currently lives in; chart
// identity in this package is otherwise column-implicit (an item value
// alone doesn't say which column's set it was found in), but tailret needs
// to name items across column boundaries. taildown is kept per column and
// keyed by item alone.
type tailKey struct {
	col int
	it  item
}

// column is one position in the chart: the set of items whose dot has
// reached this position, an index of those back-pointers, and an
// auxiliary index (origin_sets) of items grouped by the nonterminal they
// are waiting on, used so that completing a rule doesn't require
// rescanning every item in its start column.
type column struct {
	items *setOfItems
	back  map[item]backPointer

	// waiting[ruleID] holds every item in this column of the shape
	// (A -> α • ruleID β, s), i.e. items about to predict/require
	// ruleID next. Indexed by ruleID so that when some rule completes
	// with this column as its start, the chart filler can fetch exactly
	// the items that need advancing instead of scanning the whole
	// column.
	waiting map[uint32]*linkedhashset.Set

	// predicted marks which rule ids have already been predicted into
	// this column, so repeated predictions of the same rule (common with
	// a shared nonterminal appearing after the dot in many items) don't
	// re-walk every alternation.
	predicted map[uint32]bool

	// reduced marks which (ruleID, altIdx) pairs have already completed
	// with this column as their end position and some particular start,
	// keyed by start column too, to avoid reprocessing the exact same
	// completion twice within one column's worklist pass.
	reduced map[reductionKey]bool

	// taildown records, for an item inserted into this column via the
	// right-recursion short-circuit (causeTailret), the completions it
	// stood in for: the item(s) whose normal single-parent advance was
	// skipped in favor of jumping straight here. The AST builder walks
	// this, on demand, to regenerate the elided intermediate completions
	// along the one derivation it actually needs (see resolveTailret in
	// build.go).
	taildown map[item][]item
}

type reductionKey struct {
	ruleID uint32
	alt    uint16
	start  uint64
}

func newColumn() *column {
	return &column{
		items:     newSetOfItems(),
		back:      map[item]backPointer{},
		waiting:   map[uint32]*linkedhashset.Set{},
		predicted: map[uint32]bool{},
		reduced:   map[reductionKey]bool{},
		taildown:  map[item][]item{},
	}
}

// addWaiting registers it (whose next term is a reference to ruleID) in
// this column's origin_sets index.
func (c *column) addWaiting(ruleID uint32, it item) {
	set, ok := c.waiting[ruleID]
	if !ok {
		set = linkedhashset.New()
		c.waiting[ruleID] = set
	}
	set.Add(it)
}

// waitingOn returns every item in this column waiting on ruleID, in the
// order they were first registered.
func (c *column) waitingOn(ruleID uint32) []item {
	set, ok := c.waiting[ruleID]
	if !ok {
		return nil
	}
	values := set.Values()
	out := make([]item, len(values))
	for i, v := range values {
		out[i] = v.(item)
	}
	return out
}

// add inserts it into the column if not already present, recording bp as
// its derivation iff it was newly inserted. It returns whether it was new.
func (c *column) add(it item, bp backPointer) bool {
	if !c.items.Add(it) {
		return false
	}
	c.back[it] = bp
	return true
}

// chart is the full table of columns built by the chart filler, one per
// token position from 0 (before any token) to len(tokens) (after the
// last).
type chart struct {
	grammar  *bnf.Grammar
	nullable *bnf.Nullable
	columns  []*column

	// tailret maps an item eligible for right-recursion compression (one
	// at its last term position, with exactly one equally-eligible
	// parent) straight to the ultimate ancestor its own completion
	// should advance, skipping the cascade of intermediate single-parent
	// completions in between. Recorded once, at prediction time, per
	// §4.4(d); by construction every value already names a final target
	// (never another tailret key), so lookups never chain.
	tailret map[tailKey]tailKey
}

func newChart(g *bnf.Grammar, n *bnf.Nullable, numTokens int) *chart {
	cols := make([]*column, numTokens+1)
	for i := range cols {
		cols[i] = newColumn()
	}
	return &chart{grammar: g, nullable: n, columns: cols, tailret: map[tailKey]tailKey{}}
}
