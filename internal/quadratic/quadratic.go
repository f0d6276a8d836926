// Package quadratic solves ax² + bx + c = 0 without the cancellation error
// of the textbook formula.
package quadratic

import (
	"errors"
	"math"
)

var (
	// ErrNoRealSolution is returned when b² - 4ac < 0.
	ErrNoRealSolution = errors.New("quadratic: no real solution")

	// ErrNotQuadratic is returned when a == 0 and the equation is linear.
	ErrNotQuadratic = errors.New("quadratic: leading coefficient is zero")
)

// Roots holds both real roots of a quadratic. They may be equal.
type Roots struct {
	R1, R2 float64
}

// Solve returns the real roots of ax² + bx + c = 0.
//
// The branch is picked by the sign of b so that -b and √D never cancel:
// one root comes from the usual formula, the other from Vieta's product
// c/a = r1·r2.
func Solve(a, b, c float64) (Roots, error) {
	d := b*b - 4*a*c
	if d < 0 {
		return Roots{}, ErrNoRealSolution
	}
	if b == 0 && c == 0 {
		return Roots{}, nil
	}
	if a == 0 {
		return Roots{}, ErrNotQuadratic
	}

	sq := math.Sqrt(d)
	if b >= 0 {
		q := -b - sq
		return Roots{R1: q / (2 * a), R2: 2 * c / q}, nil
	}
	q := -b + sq
	return Roots{R1: 2 * c / q, R2: q / (2 * a)}, nil
}

// Min returns the smaller root.
func (r Roots) Min() float64 { return math.Min(r.R1, r.R2) }

// Max returns the larger root.
func (r Roots) Max() float64 { return math.Max(r.R1, r.R2) }

// SmallestNonNegative returns the earliest root at or after zero, the
// convention used for elapsed times. ok is false when both roots are negative.
func (r Roots) SmallestNonNegative() (float64, bool) {
	lo, hi := r.Min(), r.Max()
	switch {
	case lo >= 0:
		return lo, true
	case hi >= 0:
		return hi, true
	default:
		return 0, false
	}
}
