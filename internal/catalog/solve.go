package catalog

import (
	"fmt"
	"slices"
)

// Solution is the outcome of solving an equation for its blank symbol.
type Solution struct {
	Symbol string
	Param  string
	Value  float64
}

// Solve maps display symbols to parameter names and runs the equation's
// solver. inputs holds every symbol of the equation; exactly one value
// must be nil.
func (c *Chapter) Solve(eq *Equation, inputs map[string]*float64) (Solution, error) {
	if !eq.Solvable() {
		return Solution{}, fmt.Errorf("%w: %s", ErrNotSolvable, eq.Name)
	}

	var blank []string
	args := make(map[string]float64, len(inputs))
	for _, sym := range eq.Symbols() {
		v := inputs[sym]
		if v == nil {
			blank = append(blank, sym)
			continue
		}
		p, err := c.Param(eq, sym)
		if err != nil {
			return Solution{}, err
		}
		args[p] = *v
	}
	for sym := range inputs {
		if !slices.Contains(eq.Symbols(), sym) {
			return Solution{}, fmt.Errorf("%w: %q is not a variable of %s", ErrUnmappedSymbol, sym, eq.Name)
		}
	}
	if len(blank) != 1 {
		return Solution{}, fmt.Errorf("%w (%d blank)", ErrBlankCount, len(blank))
	}

	param, err := c.Param(eq, blank[0])
	if err != nil {
		return Solution{}, err
	}
	v, err := eq.Solver.Solve(args)
	if err != nil {
		return Solution{}, err
	}
	return Solution{Symbol: blank[0], Param: param, Value: v}, nil
}

// Validate checks that every solvable equation's symbols map one-to-one
// onto its solver's parameters.
func (c *Chapter) Validate() error {
	for i := range c.Equations {
		eq := &c.Equations[i]
		if !eq.Solvable() {
			continue
		}
		seen := make(map[string]string, len(eq.Variables))
		for _, v := range eq.Variables {
			p, err := c.Param(eq, v.Symbol)
			if err != nil {
				return fmt.Errorf("chapter %d, %s: %w", c.Number, eq.Name, err)
			}
			if !slices.Contains(eq.Solver.Params, p) {
				return fmt.Errorf("chapter %d, %s: symbol %q maps to %q, which %s does not take",
					c.Number, eq.Name, v.Symbol, p, eq.Solver.ID)
			}
			if prev, dup := seen[p]; dup {
				return fmt.Errorf("chapter %d, %s: symbols %q and %q both map to %q",
					c.Number, eq.Name, prev, v.Symbol, p)
			}
			seen[p] = v.Symbol
		}
		for _, p := range eq.Solver.Params {
			if _, ok := seen[p]; !ok {
				return fmt.Errorf("chapter %d, %s: parameter %q has no symbol", c.Number, eq.Name, p)
			}
		}
	}
	return nil
}
