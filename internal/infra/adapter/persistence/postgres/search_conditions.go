package postgres

import (
	"fmt"
	"strings"
)

// conditionSet accumulates WHERE conditions with numbered placeholders.
// It is shared by all entity adapters so COUNT-style and SELECT-style
// queries stay consistent.
type conditionSet struct {
	conds []string
	args  []any
}

// addRaw appends a condition that takes no parameter, such as an
// eligibility predicate on a constant.
func (c *conditionSet) addRaw(cond string) {
	c.conds = append(c.conds, cond)
}

// add appends a parameterized condition. The format receives the placeholder
// position as its single argument; use %[1]d to reference it more than once.
func (c *conditionSet) add(format string, arg any) {
	c.args = append(c.args, arg)
	c.conds = append(c.conds, fmt.Sprintf(format, len(c.args)))
}

// next returns the position of the next placeholder, for LIMIT/OFFSET
// parameters appended after the WHERE clause.
func (c *conditionSet) next() int {
	return len(c.args) + 1
}

// clause renders the accumulated conditions as a WHERE clause, or an empty
// string when there are none.
func (c *conditionSet) clause() string {
	if len(c.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(c.conds, " AND ")
}
