package projectile

import (
	"errors"

	"github.com/san-kum/physcalc/internal/physics"
	"github.com/san-kum/physcalc/internal/quadratic"
)

const g = physics.Gravity

// TimeOfFlightParams relates T = 2v₀sinθ/g. θ in degrees.
type TimeOfFlightParams struct {
	T     *float64 `param:"t"`
	V0    *float64 `param:"v_0"`
	Theta *float64 `param:"theta"`
}

func TimeOfFlight(p TimeOfFlightParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.T, "time of flight"),
		physics.NonNegative(p.V0, "launch speed"),
	); err != nil {
		return 0, err
	}
	t, v0, theta := physics.Value(p.T), physics.Value(p.V0), physics.Value(p.Theta)

	switch {
	case p.T == nil:
		t = 2 * v0 * physics.SinDeg(theta) / g
		if err := physics.MustNotBeNegative(t, "time of flight"); err != nil {
			return 0, err
		}
		return physics.Finish(t)
	case p.V0 == nil:
		s := physics.SinDeg(theta)
		if err := physics.NonZero(s, "sin θ"); err != nil {
			return 0, err
		}
		v0 = g * t / (2 * s)
		if err := physics.MustNotBeNegative(v0, "launch speed"); err != nil {
			return 0, err
		}
		return physics.Finish(v0)
	case p.Theta == nil:
		if err := physics.NonZero(v0, "launch speed"); err != nil {
			return 0, err
		}
		theta, err := physics.AsinDeg(g*t/(2*v0), "launch angle")
		if err != nil {
			return 0, err
		}
		return physics.Finish(theta)
	}
	return 0, physics.NoUnknown()
}

// TrajectoryParams relates y = x·tanθ - gx²/(2(v₀cosθ)²). θ in degrees.
type TrajectoryParams struct {
	Y     *float64 `param:"y"`
	X     *float64 `param:"x"`
	Theta *float64 `param:"theta"`
	V0    *float64 `param:"v_0"`
}

// Trajectory solves the projectile path equation. Solving for x returns
// the farther crossing of height y, where the projectile comes back down.
// Solving for θ returns the lower of the two launch angles.
func Trajectory(p TrajectoryParams) (float64, error) {
	if err := physics.NonNegative(p.V0, "launch speed"); err != nil {
		return 0, err
	}
	y, x, theta, v0 := physics.Value(p.Y), physics.Value(p.X), physics.Value(p.Theta), physics.Value(p.V0)

	switch {
	case p.Y == nil:
		if err := physics.NonZero(v0, "launch speed"); err != nil {
			return 0, err
		}
		c := physics.CosDeg(theta)
		tan, err := physics.TanDeg(theta)
		if err != nil {
			return 0, err
		}
		return physics.Finish(x*tan - g*x*x/(2*v0*v0*c*c))
	case p.X == nil:
		if err := physics.NonZero(v0, "launch speed"); err != nil {
			return 0, err
		}
		c := physics.CosDeg(theta)
		tan, err := physics.TanDeg(theta)
		if err != nil {
			return 0, err
		}
		r, err := quadratic.Solve(g/(2*v0*v0*c*c), -tan, y)
		if errors.Is(err, quadratic.ErrNoRealSolution) {
			return 0, physics.NonReal("the discriminant cannot be negative: the projectile never reaches that height")
		}
		if err != nil {
			return 0, err
		}
		if r.Max() < 0 {
			return 0, physics.NoSolution("the projectile reaches that height only behind the launch point")
		}
		return physics.Finish(r.Max())
	case p.Theta == nil:
		if err := physics.Check(
			physics.NonZero(v0, "launch speed"),
			physics.NonZero(x, "horizontal position"),
		); err != nil {
			return 0, err
		}
		// Quadratic in T = tanθ, using 1/cos²θ = 1 + tan²θ.
		k := g * x * x / (2 * v0 * v0)
		r, err := quadratic.Solve(k, -x, y+k)
		if errors.Is(err, quadratic.ErrNoRealSolution) {
			return 0, physics.NonReal("the discriminant cannot be negative: the launch speed is too low to reach that point")
		}
		if err != nil {
			return 0, err
		}
		return physics.Finish(physics.AtanDeg(r.Min()))
	case p.V0 == nil:
		if err := physics.NonZero(x, "horizontal position"); err != nil {
			return 0, err
		}
		c := physics.CosDeg(theta)
		tan, err := physics.TanDeg(theta)
		if err != nil {
			return 0, err
		}
		rise := x*tan - y
		if err := physics.NonZero(rise, "x·tanθ − y"); err != nil {
			return 0, err
		}
		v0, err := physics.Sqrt(g*x*x/(2*c*c*rise), "g·x² / (2cos²θ(x·tanθ − y))")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v0)
	}
	return 0, physics.NoUnknown()
}

// RangeParams relates R = v₀²sin2θ/g. θ in degrees.
type RangeParams struct {
	Range *float64 `param:"range"`
	V0    *float64 `param:"v_0"`
	Theta *float64 `param:"theta"`
}

// ProjectileRange solves the level-ground range equation. Solving for θ
// returns the low-angle solution; 90° minus it reaches the same range.
func ProjectileRange(p RangeParams) (float64, error) {
	if err := physics.NonNegative(p.V0, "launch speed"); err != nil {
		return 0, err
	}
	rng, v0, theta := physics.Value(p.Range), physics.Value(p.V0), physics.Value(p.Theta)

	switch {
	case p.Range == nil:
		return physics.Finish(v0 * v0 * physics.SinDeg(2*theta) / g)
	case p.V0 == nil:
		s := physics.SinDeg(2 * theta)
		if err := physics.NonZero(s, "sin 2θ"); err != nil {
			return 0, err
		}
		v0, err := physics.Sqrt(rng*g/s, "R·g / sin 2θ")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v0)
	case p.Theta == nil:
		if err := physics.NonZero(v0, "launch speed"); err != nil {
			return 0, err
		}
		twice, err := physics.AsinDeg(rng*g/(v0*v0), "launch angle")
		if err != nil {
			return 0, err
		}
		return physics.Finish(twice / 2)
	}
	return 0, physics.NoUnknown()
}

// CentripetalAccelerationParams relates a꜀ = v²/r.
type CentripetalAccelerationParams struct {
	AccelC   *float64 `param:"accel_c"`
	Velocity *float64 `param:"velocity"`
	Radius   *float64 `param:"radius"`
}

func CentripetalAcceleration(p CentripetalAccelerationParams) (float64, error) {
	if err := physics.Positive(p.Radius, "radius"); err != nil {
		return 0, err
	}
	a, v, r := physics.Value(p.AccelC), physics.Value(p.Velocity), physics.Value(p.Radius)

	switch {
	case p.AccelC == nil:
		return physics.Finish(v * v / r)
	case p.Velocity == nil:
		v, err := physics.Sqrt(a*r, "a꜀·r")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v)
	case p.Radius == nil:
		if err := physics.NonZero(a, "centripetal acceleration"); err != nil {
			return 0, err
		}
		r = v * v / a
		if err := physics.MustBePositive(r, "radius"); err != nil {
			return 0, err
		}
		return physics.Finish(r)
	}
	return 0, physics.NoUnknown()
}
