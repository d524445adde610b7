package validator

import "slices"

// Chain is an ordered, immutable sequence of constraints.
// Insertion order is evaluation order. A Chain holds no per-request state
// and is safe for concurrent use.
type Chain struct {
	constraints []Constraint
}

// NewChain creates a chain from constraints. Nil constraints are dropped.
func NewChain(constraints ...Constraint) *Chain {
	c := &Chain{constraints: make([]Constraint, 0, len(constraints))}
	for _, constraint := range constraints {
		if constraint != nil {
			c.constraints = append(c.constraints, constraint)
		}
	}
	return c
}

// Validate evaluates constraints in order and returns the first failure.
// Later constraints are not evaluated once one fails. An empty chain always passes.
func (c *Chain) Validate(params Params) error {
	if c == nil {
		return nil
	}
	for _, constraint := range c.constraints {
		if err := constraint.Validate(params); err != nil {
			return err
		}
	}
	return nil
}

// With returns a new chain with constraints appended. The receiver is left unchanged.
func (c *Chain) With(constraints ...Constraint) *Chain {
	return NewChain(append(c.Constraints(), constraints...)...)
}

// Requires returns a new chain with a Required constraint appended for every
// non-empty name.
func (c *Chain) Requires(names ...string) *Chain {
	constraints := make([]Constraint, 0, len(names))
	for _, name := range names {
		if constraint, err := Required(name); err == nil {
			constraints = append(constraints, constraint)
		}
	}
	return c.With(constraints...)
}

// Len returns the number of constraints in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.constraints)
}

// Constraints returns a copy of the chain's constraints in evaluation order.
func (c *Chain) Constraints() []Constraint {
	if c == nil {
		return nil
	}
	return slices.Clone(c.constraints)
}
