package sqlinline

import (
	"fmt"
	"strings"
)

// Conditions composes optional report filters into a parameterized SQL
// clause. Each active filter contributes one predicate fragment whose
// placeholder index is assigned by the builder, so the final clause never
// contains a literal value. Fragments reference their argument with %d
// (or %[1]d when the same argument appears more than once).
type Conditions struct {
	exprs []string
	args  []any
}

func NewConditions() *Conditions {
	return &Conditions{}
}

// Add activates a predicate bound to one argument and returns the builder
// for chaining.
func (c *Conditions) Add(expr string, arg any) *Conditions {
	c.args = append(c.args, arg)
	c.exprs = append(c.exprs, fmt.Sprintf(expr, len(c.args)))
	return c
}

// Where renders "where p1 and p2 ..." or the empty string when no
// predicate is active.
func (c *Conditions) Where() string {
	if len(c.exprs) == 0 {
		return ""
	}
	return "where " + strings.Join(c.exprs, " and ")
}

// And renders "and p1 and p2 ..." for queries that carry a fixed base
// predicate of their own.
func (c *Conditions) And() string {
	if len(c.exprs) == 0 {
		return ""
	}
	return "and " + strings.Join(c.exprs, " and ")
}

// Args returns the accumulated arguments in placeholder order.
func (c *Conditions) Args() []any {
	return c.args
}

// Next returns the placeholder index a caller should use for the first
// argument it appends after the composed clause (limit, offset).
func (c *Conditions) Next() int {
	return len(c.args) + 1
}
