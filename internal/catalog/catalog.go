// Package catalog describes chapters of equations and definitions and
// connects display symbols to solver parameters.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/physcalc/internal/physics"
)

var (
	// ErrNotSolvable is returned when an equation has no solver attached.
	ErrNotSolvable = errors.New("catalog: equation has no calculator")

	// ErrBlankCount is returned when a form does not leave exactly one field blank.
	ErrBlankCount = errors.New("catalog: leave exactly one field blank")

	// ErrUnmappedSymbol is returned when a display symbol has no parameter.
	ErrUnmappedSymbol = errors.New("catalog: symbol has no parameter mapping")

	// ErrUnknownEquation is returned by lookups that match nothing.
	ErrUnknownEquation = errors.New("catalog: unknown equation")
)

// Variable is one quantity of an equation as shown to the user.
type Variable struct {
	Symbol      string
	Description string
}

// Definition is a glossary term.
type Definition struct {
	Term    string
	Meaning string
}

// Solver is the calculator attached to an equation.
type Solver struct {
	ID     string
	Params []string
	solve  physics.Func
}

// NewSolver wraps a typed solver. The parameter list comes from the
// params struct tags, so it cannot drift from the function.
func NewSolver[P any](id string, fn func(P) (float64, error)) *Solver {
	return &Solver{
		ID:     id,
		Params: physics.Params[P](),
		solve:  physics.Wrap(fn),
	}
}

// Solve calls the solver with parameter names as keys.
func (s *Solver) Solve(args map[string]float64) (float64, error) {
	return s.solve(args)
}

// Forward is the quantity on the left-hand side of the equation.
func (s *Solver) Forward() string {
	return s.Params[0]
}

// Equation is an immutable catalog entry.
type Equation struct {
	Name      string
	Formula   string
	Variables []Variable
	// Notes mentions constants that appear in the formula but are not inputs.
	Notes string
	// Mapping overrides the chapter mapper for symbols whose meaning is
	// specific to this equation.
	Mapping Mapper
	Solver  *Solver
}

// Solvable reports whether a calculator is attached.
func (e *Equation) Solvable() bool {
	return e.Solver != nil
}

// Symbols lists the variable symbols in display order.
func (e *Equation) Symbols() []string {
	out := make([]string, len(e.Variables))
	for i, v := range e.Variables {
		out[i] = v.Symbol
	}
	return out
}

// Mapper translates display symbols to solver parameter names.
type Mapper map[string]string

// Param returns the parameter name for a symbol.
func (m Mapper) Param(symbol string) (string, bool) {
	p, ok := m[symbol]
	return p, ok
}

// Chapter is one textbook chapter.
type Chapter struct {
	Number      int
	Slug        string
	Title       string
	Description string
	Equations   []Equation
	Definitions []Definition
	Mapper      Mapper
}

// Key identifies the chapter in URLs and on the command line.
func (c *Chapter) Key() string {
	return strconv.Itoa(c.Number)
}

// Equation finds an equation by name (case-insensitive) or solver ID.
func (c *Chapter) Equation(name string) (*Equation, error) {
	for i := range c.Equations {
		eq := &c.Equations[i]
		if strings.EqualFold(eq.Name, name) {
			return eq, nil
		}
		if eq.Solver != nil && eq.Solver.ID == name {
			return eq, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in chapter %d", ErrUnknownEquation, name, c.Number)
}

// Solvable lists the equations that carry a solver.
func (c *Chapter) Solvable() []*Equation {
	var out []*Equation
	for i := range c.Equations {
		if c.Equations[i].Solvable() {
			out = append(out, &c.Equations[i])
		}
	}
	return out
}

// Param resolves a symbol for an equation, consulting the equation's own
// overrides before the chapter mapper.
func (c *Chapter) Param(eq *Equation, symbol string) (string, error) {
	if p, ok := eq.Mapping.Param(symbol); ok {
		return p, nil
	}
	if p, ok := c.Mapper.Param(symbol); ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnmappedSymbol, symbol)
}

// Symbol is the reverse of Param for one equation.
func (c *Chapter) Symbol(eq *Equation, param string) (string, bool) {
	for _, v := range eq.Variables {
		if p, err := c.Param(eq, v.Symbol); err == nil && p == param {
			return v.Symbol, true
		}
	}
	return "", false
}

// Var builds a Variable.
func Var(symbol, description string) Variable {
	return Variable{Symbol: symbol, Description: description}
}

// Def builds a Definition.
func Def(term, meaning string) Definition {
	return Definition{Term: term, Meaning: meaning}
}
