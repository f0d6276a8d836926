package newton

import "github.com/san-kum/physcalc/internal/physics"

// SecondLawParams relates F = ma.
type SecondLawParams struct {
	Force *float64 `param:"force"`
	Mass  *float64 `param:"mass"`
	Accel *float64 `param:"accel"`
}

func NewtonsSecondLaw(p SecondLawParams) (float64, error) {
	if err := physics.Positive(p.Mass, "mass"); err != nil {
		return 0, err
	}
	f, m, a := physics.Value(p.Force), physics.Value(p.Mass), physics.Value(p.Accel)

	switch {
	case p.Force == nil:
		return physics.Finish(m * a)
	case p.Mass == nil:
		if err := physics.NonZero(a, "acceleration"); err != nil {
			return 0, err
		}
		m = f / a
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	case p.Accel == nil:
		return physics.Finish(f / m)
	}
	return 0, physics.NoUnknown()
}

// WeightParams relates w = mg.
type WeightParams struct {
	Weight *float64 `param:"weight"`
	Mass   *float64 `param:"mass"`
}

func Weight(p WeightParams) (float64, error) {
	if err := physics.Positive(p.Mass, "mass"); err != nil {
		return 0, err
	}

	switch {
	case p.Weight == nil:
		return physics.Finish(physics.Value(p.Mass) * physics.Gravity)
	case p.Mass == nil:
		m := physics.Value(p.Weight) / physics.Gravity
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	}
	return 0, physics.NoUnknown()
}

// NormalForceParams relates N = mg·cosθ on an incline. θ in degrees.
type NormalForceParams struct {
	NormalF *float64 `param:"normal_F"`
	Mass    *float64 `param:"mass"`
	Theta   *float64 `param:"theta"`
}

func NormalForce(p NormalForceParams) (float64, error) {
	if err := physics.Positive(p.Mass, "mass"); err != nil {
		return 0, err
	}
	n, m, theta := physics.Value(p.NormalF), physics.Value(p.Mass), physics.Value(p.Theta)
	const g = physics.Gravity

	switch {
	case p.NormalF == nil:
		return physics.Finish(m * g * physics.CosDeg(theta))
	case p.Mass == nil:
		c := physics.CosDeg(theta)
		if err := physics.NonZero(c, "cos θ"); err != nil {
			return 0, err
		}
		m = n / (g * c)
		if m < 0 {
			return 0, physics.Implausible("mass cannot be negative; check the incline angle and the sign of the normal force")
		}
		return physics.Finish(m)
	case p.Theta == nil:
		theta, err := physics.AcosDeg(n/(m*g), "incline angle")
		if err != nil {
			return 0, err
		}
		return physics.Finish(theta)
	}
	return 0, physics.NoUnknown()
}

// HookesLawParams relates F = -kx.
type HookesLawParams struct {
	Force        *float64 `param:"force"`
	SpringConst  *float64 `param:"spring_const"`
	Displacement *float64 `param:"displacement"`
}

// HookesLaw solves for the restoring force of an ideal spring. The force
// always opposes the displacement, so F and x must differ in sign.
func HookesLaw(p HookesLawParams) (float64, error) {
	if p.SpringConst != nil && *p.SpringConst < 0 {
		return 0, physics.Invalid("spring constant (k) cannot be a negative value")
	}
	f, k, x := physics.Value(p.Force), physics.Value(p.SpringConst), physics.Value(p.Displacement)

	switch {
	case p.Force == nil:
		return physics.Finish(-k * x)
	case p.SpringConst == nil:
		if err := physics.NonZero(x, "displacement"); err != nil {
			return 0, err
		}
		k = -f / x
		if k < 0 {
			return 0, physics.Implausible("spring constant cannot be negative; the restoring force must oppose the displacement")
		}
		return physics.Finish(k)
	case p.Displacement == nil:
		if err := physics.NonZero(k, "spring constant"); err != nil {
			return 0, err
		}
		return physics.Finish(-f / k)
	}
	return 0, physics.NoUnknown()
}
