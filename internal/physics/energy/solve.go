package energy

import (
	"math"

	"github.com/san-kum/physcalc/internal/physics"
)

// GravitationalParams relates U = mgh near the Earth's surface.
type GravitationalParams struct {
	PotentialE *float64 `param:"potential_E"`
	Mass       *float64 `param:"mass"`
	Height     *float64 `param:"height"`
}

func GravitationalPotentialEnergy(p GravitationalParams) (float64, error) {
	if err := physics.Positive(p.Mass, "mass"); err != nil {
		return 0, err
	}
	u, m, h := physics.Value(p.PotentialE), physics.Value(p.Mass), physics.Value(p.Height)
	const g = physics.Gravity

	switch {
	case p.PotentialE == nil:
		return physics.Finish(m * g * h)
	case p.Mass == nil:
		if err := physics.NonZero(h, "height"); err != nil {
			return 0, err
		}
		m = u / (g * h)
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	case p.Height == nil:
		return physics.Finish(u / (m * g))
	}
	return 0, physics.NoUnknown()
}

// ElasticParams relates U = ½kx².
type ElasticParams struct {
	PotentialE   *float64 `param:"potential_E"`
	SpringConst  *float64 `param:"spring_const"`
	Displacement *float64 `param:"displacement"`
}

// ElasticPotentialEnergy returns the displacement as a distance from
// equilibrium.
func ElasticPotentialEnergy(p ElasticParams) (float64, error) {
	if p.SpringConst != nil && *p.SpringConst < 0 {
		return 0, physics.Invalid("spring constant (k) cannot be a negative value")
	}
	if err := physics.NonNegative(p.PotentialE, "elastic potential energy"); err != nil {
		return 0, err
	}
	u, k, x := physics.Value(p.PotentialE), physics.Value(p.SpringConst), physics.Value(p.Displacement)

	switch {
	case p.PotentialE == nil:
		return physics.Finish(0.5 * k * x * x)
	case p.SpringConst == nil:
		if err := physics.NonZero(x, "displacement"); err != nil {
			return 0, err
		}
		return physics.Finish(2 * u / (x * x))
	case p.Displacement == nil:
		if err := physics.NonZero(k, "spring constant"); err != nil {
			return 0, err
		}
		return physics.Finish(math.Sqrt(2 * u / k))
	}
	return 0, physics.NoUnknown()
}

// ConservationParams relates K₂ + U₂ = K₁ + U₁ for a system with no
// non-conservative work.
type ConservationParams struct {
	Kinetic2   *float64 `param:"kinetic_2"`
	Potential2 *float64 `param:"potential_2"`
	Kinetic1   *float64 `param:"kinetic_1"`
	Potential1 *float64 `param:"potential_1"`
}

func ConservationOfEnergy(p ConservationParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.Kinetic2, "final kinetic energy"),
		physics.NonNegative(p.Kinetic1, "initial kinetic energy"),
	); err != nil {
		return 0, err
	}
	k2, u2, k1, u1 := physics.Value(p.Kinetic2), physics.Value(p.Potential2), physics.Value(p.Kinetic1), physics.Value(p.Potential1)

	switch {
	case p.Kinetic2 == nil:
		k2 = k1 + u1 - u2
		if err := physics.MustNotBeNegative(k2, "final kinetic energy"); err != nil {
			return 0, err
		}
		return physics.Finish(k2)
	case p.Potential2 == nil:
		return physics.Finish(k1 + u1 - k2)
	case p.Kinetic1 == nil:
		k1 = k2 + u2 - u1
		if err := physics.MustNotBeNegative(k1, "initial kinetic energy"); err != nil {
			return 0, err
		}
		return physics.Finish(k1)
	case p.Potential1 == nil:
		return physics.Finish(k2 + u2 - k1)
	}
	return 0, physics.NoUnknown()
}
