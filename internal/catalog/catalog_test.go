package catalog

import (
	"errors"
	"testing"

	"github.com/san-kum/physcalc/internal/physics"
)

type momentumParams struct {
	Momentum *float64 `param:"momentum"`
	Mass     *float64 `param:"mass"`
	Velocity *float64 `param:"velocity"`
}

func momentum(p momentumParams) (float64, error) {
	if err := physics.Positive(p.Mass, "mass"); err != nil {
		return 0, err
	}
	m, v, mom := physics.Value(p.Mass), physics.Value(p.Velocity), physics.Value(p.Momentum)
	switch {
	case p.Momentum == nil:
		return physics.Finish(m * v)
	case p.Mass == nil:
		if err := physics.NonZero(v, "velocity"); err != nil {
			return 0, err
		}
		return physics.Finish(mom / v)
	default:
		return physics.Finish(mom / m)
	}
}

func testChapter() *Chapter {
	return &Chapter{
		Number: 9,
		Slug:   "momentum",
		Title:  "Linear Momentum",
		Equations: []Equation{
			{
				Name:    "Momentum",
				Formula: "p = m·v",
				Variables: []Variable{
					{"p", "momentum (kg·m/s)"},
					{"m", "mass (kg)"},
					{"v", "velocity (m/s)"},
				},
				Solver: NewSolver("momentum", momentum),
			},
			{
				Name:    "Impulse",
				Formula: "J = ∫F dt",
				Variables: []Variable{
					{"J", "impulse (N·s)"},
				},
			},
		},
		Mapper: Mapper{"p": "momentum", "m": "mass", "v": "velocity"},
	}
}

func TestChapterSolve(t *testing.T) {
	ch := testChapter()
	eq, err := ch.Equation("momentum")
	if err != nil {
		t.Fatal(err)
	}

	sol, err := ch.Solve(eq, map[string]*float64{
		"p": physics.Given(30),
		"m": nil,
		"v": physics.Given(3),
	})
	if err != nil {
		t.Fatal(err)
	}
	if sol.Symbol != "m" || sol.Param != "mass" || sol.Value != 10 {
		t.Errorf("unexpected solution %+v", sol)
	}
}

func TestChapterSolveErrors(t *testing.T) {
	ch := testChapter()
	eq, _ := ch.Equation("Momentum")

	tests := []struct {
		name   string
		inputs map[string]*float64
		want   error
	}{
		{"nothing blank", map[string]*float64{"p": physics.Given(1), "m": physics.Given(1), "v": physics.Given(1)}, ErrBlankCount},
		{"two blank", map[string]*float64{"p": physics.Given(1)}, ErrBlankCount},
		{"stray symbol", map[string]*float64{"p": physics.Given(1), "m": physics.Given(1), "x": physics.Given(1)}, ErrUnmappedSymbol},
		{"solver domain", map[string]*float64{"m": physics.Given(-2), "v": physics.Given(1)}, physics.ErrInvalidInput},
		{"solver divisor", map[string]*float64{"p": physics.Given(2), "v": physics.Given(0)}, physics.ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ch.Solve(eq, tt.inputs)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	impulse, _ := ch.Equation("impulse")
	if _, err := ch.Solve(impulse, map[string]*float64{"J": nil}); !errors.Is(err, ErrNotSolvable) {
		t.Errorf("expected ErrNotSolvable, got %v", err)
	}
}

func TestEquationLookup(t *testing.T) {
	ch := testChapter()
	if _, err := ch.Equation("missing"); !errors.Is(err, ErrUnknownEquation) {
		t.Errorf("expected ErrUnknownEquation, got %v", err)
	}
	if n := len(ch.Solvable()); n != 1 {
		t.Errorf("expected 1 solvable equation, got %d", n)
	}
}

func TestEquationMappingOverride(t *testing.T) {
	ch := testChapter()
	eq := &ch.Equations[0]
	eq.Variables[2].Symbol = "u"
	eq.Mapping = Mapper{"u": "velocity"}

	if p, err := ch.Param(eq, "u"); err != nil || p != "velocity" {
		t.Errorf("override not applied: %q, %v", p, err)
	}
	if sym, ok := ch.Symbol(eq, "velocity"); !ok || sym != "u" {
		t.Errorf("reverse lookup = %q, %v", sym, ok)
	}
	if err := ch.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestValidateCatchesDrift(t *testing.T) {
	ch := testChapter()
	ch.Mapper = Mapper{"p": "momentum", "m": "mass", "v": "speed"}
	if err := ch.Validate(); err == nil {
		t.Error("expected drift between mapper and solver to be reported")
	}

	ch = testChapter()
	ch.Equations[0].Variables = ch.Equations[0].Variables[:2]
	if err := ch.Validate(); err == nil {
		t.Error("expected uncovered parameter to be reported")
	}
}
