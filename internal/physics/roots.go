package physics

import (
	"errors"

	"github.com/san-kum/physcalc/internal/quadratic"
)

// EarliestTime solves at² + bt + c = 0 for the smallest t ≥ 0. what
// completes the sentence "no real time ...", e.g. "reaches the final
// position". A zero a falls back to the linear solution; callers reject
// a == b == 0 with their own message first.
func EarliestTime(a, b, c float64, what string) (float64, error) {
	if a == 0 {
		if b == 0 {
			return 0, Undefined("no time %s: both the linear and quadratic terms are zero", what)
		}
		t := -c / b
		if t < 0 {
			return 0, NoSolution("no non-negative time %s", what)
		}
		return t, nil
	}

	r, err := quadratic.Solve(a, b, c)
	if errors.Is(err, quadratic.ErrNoRealSolution) {
		return 0, NonReal("the discriminant cannot be negative: no real time %s", what)
	}
	if err != nil {
		return 0, err
	}
	t, ok := r.SmallestNonNegative()
	if !ok {
		return 0, NoSolution("both roots are negative: no non-negative time %s", what)
	}
	return t, nil
}
