package earley

import "fmt"

// Dump renders the chart's item sets, column by column, for debugging a
// grammar or the filler itself. It is not used on any hot path.
func (c *chart) Dump() string {
	g := c.grammar
	out := ""
	for i, col := range c.columns {
		out += fmt.Sprintf("=== column %d ===\n", i)
		col.items.Each(func(it item) {
			rule := g.Rule(it.ruleID)
			out += fmt.Sprintf("%s[%d] @%d from %d\n", rule.Name, it.alt, it.pos, it.start)
		})
	}
	return out
}
