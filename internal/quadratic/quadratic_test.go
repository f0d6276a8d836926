package quadratic

import (
	"errors"
	"math"
	"testing"
)

func naive(a, b, c float64) (float64, float64) {
	sq := math.Sqrt(b*b - 4*a*c)
	return (-b - sq) / (2 * a), (-b + sq) / (2 * a)
}

func TestSolveMatchesNaiveFormula(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
	}{
		{"positive b", 1, 5, 6},
		{"negative b", 1, -5, 6},
		{"mixed signs", 2.5, 25, -937.5},
		{"negative leading", -4.91, 50, 10},
		{"double root", 1, -4, 4},
		{"zero b", 2, 0, -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.a, tt.b, tt.c)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			n1, n2 := naive(tt.a, tt.b, tt.c)
			lo, hi := math.Min(n1, n2), math.Max(n1, n2)
			if math.Abs(got.Min()-lo) > 1e-9 || math.Abs(got.Max()-hi) > 1e-9 {
				t.Errorf("roots (%v, %v), want (%v, %v)", got.Min(), got.Max(), lo, hi)
			}
		})
	}
}

func TestSolveNoRealSolution(t *testing.T) {
	if _, err := Solve(1, 1, 1); !errors.Is(err, ErrNoRealSolution) {
		t.Errorf("expected ErrNoRealSolution, got %v", err)
	}
	if _, err := Solve(1, 2, 1); err != nil {
		t.Errorf("zero discriminant should solve, got %v", err)
	}
}

func TestSolveDegenerate(t *testing.T) {
	r, err := Solve(3, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.R1 != 0 || r.R2 != 0 {
		t.Errorf("expected (0, 0), got (%v, %v)", r.R1, r.R2)
	}

	if _, err := Solve(0, 2, 1); !errors.Is(err, ErrNotQuadratic) {
		t.Errorf("expected ErrNotQuadratic, got %v", err)
	}
}

func TestSolveStableForSmallRoot(t *testing.T) {
	// x² - 1e8x + 1 = 0 has a root near 1e-8 that the naive formula loses.
	r, err := Solve(1, -1e8, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Min()-1e-8)/1e-8 > 1e-9 {
		t.Errorf("small root %v, want 1e-8", r.Min())
	}
}

func TestSmallestNonNegative(t *testing.T) {
	tests := []struct {
		name  string
		roots Roots
		want  float64
		ok    bool
	}{
		{"both positive", Roots{R1: 25, R2: 15}, 15, true},
		{"one negative", Roots{R1: -25, R2: 15}, 15, true},
		{"zero root", Roots{R1: 0, R2: 3}, 0, true},
		{"both negative", Roots{R1: -1, R2: -2}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.roots.SmallestNonNegative()
			if ok != tt.ok || got != tt.want {
				t.Errorf("got (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
