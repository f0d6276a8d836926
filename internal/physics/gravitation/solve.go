package gravitation

import (
	"math"

	"github.com/san-kum/physcalc/internal/physics"
)

// positive runs the post-check shared by every branch that solves for a
// mass, radius or period.
func positive(x float64, name string) (float64, error) {
	if err := physics.MustBePositive(x, name); err != nil {
		return 0, err
	}
	return physics.Finish(x)
}

// NewtonParams relates F = Gm₁m₂/r².
type NewtonParams struct {
	Force  *float64 `param:"force"`
	Mass1  *float64 `param:"mass_1"`
	Mass2  *float64 `param:"mass_2"`
	Radius *float64 `param:"radius"`
}

func NewtonsLawOfGravitation(p NewtonParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Force, "gravitational force"),
		physics.Positive(p.Mass1, "mass of the first object"),
		physics.Positive(p.Mass2, "mass of the second object"),
		physics.Positive(p.Radius, "distance between the centers of mass"),
	); err != nil {
		return 0, err
	}
	f, m1, m2, r := physics.Value(p.Force), physics.Value(p.Mass1), physics.Value(p.Mass2), physics.Value(p.Radius)

	switch {
	case p.Force == nil:
		return physics.Finish(physics.G * m1 * m2 / (r * r))
	case p.Mass1 == nil:
		return positive(f*r*r/(physics.G*m2), "mass of the first object")
	case p.Mass2 == nil:
		return positive(f*r*r/(physics.G*m1), "mass of the second object")
	case p.Radius == nil:
		r, err := physics.Sqrt(physics.G*m1*m2/f, "Gm₁m₂/F")
		if err != nil {
			return 0, err
		}
		return positive(r, "distance between the centers of mass")
	}
	return 0, physics.NoUnknown()
}

// SurfaceGravityParams relates g = GM/r².
type SurfaceGravityParams struct {
	SurfaceGravity *float64 `param:"surface_gravity"`
	Mass           *float64 `param:"mass"`
	Radius         *float64 `param:"radius"`
}

func GravitationalAcceleration(p SurfaceGravityParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.SurfaceGravity, "gravitational acceleration"),
		physics.Positive(p.Mass, "mass of the body"),
		physics.Positive(p.Radius, "radius of the body"),
	); err != nil {
		return 0, err
	}
	g, m, r := physics.Value(p.SurfaceGravity), physics.Value(p.Mass), physics.Value(p.Radius)

	switch {
	case p.SurfaceGravity == nil:
		return physics.Finish(physics.G * m / (r * r))
	case p.Mass == nil:
		return positive(g*r*r/physics.G, "mass of the body")
	case p.Radius == nil:
		r, err := physics.Sqrt(physics.G*m/g, "GM/g")
		if err != nil {
			return 0, err
		}
		return positive(r, "radius of the body")
	}
	return 0, physics.NoUnknown()
}

// EscapeParams relates v(esc) = √(2GM/R).
type EscapeParams struct {
	EscapeVel *float64 `param:"escape_vel"`
	Mass      *float64 `param:"mass"`
	Radius    *float64 `param:"radius"`
}

func EscapeVelocity(p EscapeParams) (float64, error) {
	return circular(p.EscapeVel, p.Mass, p.Radius, 2, "escape velocity")
}

// OrbitalParams relates v(orbit) = √(GM/r).
type OrbitalParams struct {
	OrbitalVel *float64 `param:"orbital_vel"`
	Mass       *float64 `param:"mass"`
	Radius     *float64 `param:"radius"`
}

func OrbitalVelocity(p OrbitalParams) (float64, error) {
	return circular(p.OrbitalVel, p.Mass, p.Radius, 1, "orbital velocity")
}

// circular solves v = √(kGM/r), the escape speed for k = 2 and the
// circular orbit speed for k = 1.
func circular(vp, mp, rp *float64, k float64, name string) (float64, error) {
	if err := physics.Check(
		physics.Positive(vp, name),
		physics.Positive(mp, "mass of the body"),
		physics.Positive(rp, "radius"),
	); err != nil {
		return 0, err
	}
	v, m, r := physics.Value(vp), physics.Value(mp), physics.Value(rp)

	switch {
	case vp == nil:
		return physics.Finish(math.Sqrt(k * physics.G * m / r))
	case mp == nil:
		return positive(v*v*r/(k*physics.G), "mass of the body")
	case rp == nil:
		return positive(k*physics.G*m/(v*v), "radius")
	}
	return 0, physics.NoUnknown()
}

// PeriodParams relates T = 2π√(r³/(GM)).
type PeriodParams struct {
	Period *float64 `param:"period"`
	Radius *float64 `param:"radius"`
	Mass   *float64 `param:"mass"`
}

func OrbitalPeriod(p PeriodParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Period, "orbital period"),
		physics.Positive(p.Radius, "orbital radius"),
		physics.Positive(p.Mass, "mass of the central body"),
	); err != nil {
		return 0, err
	}
	t, r, m := physics.Value(p.Period), physics.Value(p.Radius), physics.Value(p.Mass)

	switch {
	case p.Period == nil:
		return physics.Finish(2 * math.Pi * math.Sqrt(r*r*r/(physics.G*m)))
	case p.Radius == nil:
		return positive(math.Cbrt(physics.G*m*t*t/(4*math.Pi*math.Pi)), "orbital radius")
	case p.Mass == nil:
		return positive(4*math.Pi*math.Pi*r*r*r/(physics.G*t*t), "mass of the central body")
	}
	return 0, physics.NoUnknown()
}

// KeplerParams relates T₁²/T₂² = r₁³/r₂³ for two bodies orbiting the same
// central mass.
type KeplerParams struct {
	Period1 *float64 `param:"period_1"`
	Period2 *float64 `param:"period_2"`
	Radius1 *float64 `param:"radius_1"`
	Radius2 *float64 `param:"radius_2"`
}

func KeplersThirdLaw(p KeplerParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Period1, "period of the first orbit"),
		physics.Positive(p.Period2, "period of the second orbit"),
		physics.Positive(p.Radius1, "radius of the first orbit"),
		physics.Positive(p.Radius2, "radius of the second orbit"),
	); err != nil {
		return 0, err
	}
	t1, t2, r1, r2 := physics.Value(p.Period1), physics.Value(p.Period2), physics.Value(p.Radius1), physics.Value(p.Radius2)

	switch {
	case p.Period1 == nil:
		return physics.Finish(t2 * math.Pow(r1/r2, 1.5))
	case p.Period2 == nil:
		return physics.Finish(t1 * math.Pow(r2/r1, 1.5))
	case p.Radius1 == nil:
		return physics.Finish(r2 * math.Cbrt((t1/t2)*(t1/t2)))
	case p.Radius2 == nil:
		return physics.Finish(r1 * math.Cbrt((t2/t1)*(t2/t1)))
	}
	return 0, physics.NoUnknown()
}

// SchwarzschildParams relates R(S) = 2GM/c².
type SchwarzschildParams struct {
	SchwarzschildRadius *float64 `param:"schwarzschild_radius"`
	Mass                *float64 `param:"mass"`
}

func SchwarzschildRadius(p SchwarzschildParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.SchwarzschildRadius, "Schwarzschild radius"),
		physics.Positive(p.Mass, "mass"),
	); err != nil {
		return 0, err
	}
	const c2 = physics.SpeedOfLight * physics.SpeedOfLight

	switch {
	case p.SchwarzschildRadius == nil:
		return physics.Finish(2 * physics.G * physics.Value(p.Mass) / c2)
	case p.Mass == nil:
		return physics.Finish(physics.Value(p.SchwarzschildRadius) * c2 / (2 * physics.G))
	}
	return 0, physics.NoUnknown()
}

// PotentialParams relates U = −Gm₁m₂/r, taking U = 0 at infinite
// separation.
type PotentialParams struct {
	PotentialE *float64 `param:"potential_E"`
	Mass1      *float64 `param:"mass_1"`
	Mass2      *float64 `param:"mass_2"`
	Radius     *float64 `param:"radius"`
}

func GravitationalPotentialEnergy(p PotentialParams) (float64, error) {
	if p.PotentialE != nil && *p.PotentialE >= 0 {
		return 0, physics.Invalid("gravitational potential energy must be negative for a bound pair at finite distance")
	}
	if err := physics.Check(
		physics.Positive(p.Mass1, "mass of the first object"),
		physics.Positive(p.Mass2, "mass of the second object"),
		physics.Positive(p.Radius, "distance between the centers of mass"),
	); err != nil {
		return 0, err
	}
	u, m1, m2, r := physics.Value(p.PotentialE), physics.Value(p.Mass1), physics.Value(p.Mass2), physics.Value(p.Radius)

	switch {
	case p.PotentialE == nil:
		return physics.Finish(-physics.G * m1 * m2 / r)
	case p.Mass1 == nil:
		return positive(-u*r/(physics.G*m2), "mass of the first object")
	case p.Mass2 == nil:
		return positive(-u*r/(physics.G*m1), "mass of the second object")
	case p.Radius == nil:
		return positive(-physics.G*m1*m2/u, "distance between the centers of mass")
	}
	return 0, physics.NoUnknown()
}
