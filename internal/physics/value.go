package physics

import "math"

// Given returns a pointer to x for filling in solver parameters. A nil
// parameter is the unknown being solved for; a pointer to 0 is a known zero.
func Given(x float64) *float64 {
	return &x
}

// Value dereferences p, reading nil as 0.
func Value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Check returns the first non-nil error. Solvers list their domain checks
// through it so that every check runs before branch dispatch.
func Check(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Finite fails when a given value is NaN or infinite.
func Finite(p *float64, name string) error {
	if p != nil && (math.IsNaN(*p) || math.IsInf(*p, 0)) {
		return Invalid("%s must be a finite number", name)
	}
	return nil
}

// Positive fails when a given value is zero, negative or not finite.
func Positive(p *float64, name string) error {
	if err := Finite(p, name); err != nil {
		return err
	}
	if p != nil && *p <= 0 {
		return Invalid("%s must be greater than zero", name)
	}
	return nil
}

// NonNegative fails when a given value is negative or not finite.
func NonNegative(p *float64, name string) error {
	if err := Finite(p, name); err != nil {
		return err
	}
	if p != nil && *p < 0 {
		return Invalid("%s cannot be negative", name)
	}
	return nil
}

// NonZero guards a divisor.
func NonZero(x float64, name string) error {
	if x == 0 {
		return Undefined("%s cannot be zero: division by zero is undefined", name)
	}
	return nil
}

// Sqrt returns √x, or a non-real error naming the radicand when x < 0.
func Sqrt(x float64, radicand string) (float64, error) {
	if x < 0 {
		return 0, NonReal("the discriminant cannot be negative: %s is below zero", radicand)
	}
	return math.Sqrt(x), nil
}

// MustBePositive is the post-check for solved quantities that are never
// zero or negative.
func MustBePositive(x float64, name string) error {
	if x <= 0 {
		return Implausible("%s must be greater than zero; check the signs of the given values", name)
	}
	return nil
}

// MustNotBeNegative is the post-check for solved quantities that may be zero.
func MustNotBeNegative(x float64, name string) error {
	if x < 0 {
		return Implausible("%s cannot be negative; check the signs of the given values", name)
	}
	return nil
}
