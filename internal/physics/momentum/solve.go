package momentum

import (
	"math"

	"github.com/san-kum/physcalc/internal/physics"
)

// MomentumParams relates p = mv.
type MomentumParams struct {
	Momentum *float64 `param:"momentum"`
	Mass     *float64 `param:"mass"`
	Velocity *float64 `param:"velocity"`
}

func Momentum(p MomentumParams) (float64, error) {
	if err := physics.Positive(p.Mass, "mass"); err != nil {
		return 0, err
	}
	mom, m, v := physics.Value(p.Momentum), physics.Value(p.Mass), physics.Value(p.Velocity)

	switch {
	case p.Momentum == nil:
		return physics.Finish(m * v)
	case p.Mass == nil:
		if err := physics.NonZero(v, "velocity"); err != nil {
			return 0, err
		}
		m = mom / v
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	case p.Velocity == nil:
		return physics.Finish(mom / m)
	}
	return 0, physics.NoUnknown()
}

// ImpulseParams relates J = F(ave)Δt.
type ImpulseParams struct {
	Impulse     *float64 `param:"impulse"`
	AvgForce    *float64 `param:"avg_force"`
	ElapsedTime *float64 `param:"elapsed_time"`
}

func Impulse(p ImpulseParams) (float64, error) {
	if err := physics.Positive(p.ElapsedTime, "elapsed time"); err != nil {
		return 0, err
	}
	j, f, dt := physics.Value(p.Impulse), physics.Value(p.AvgForce), physics.Value(p.ElapsedTime)

	switch {
	case p.Impulse == nil:
		return physics.Finish(f * dt)
	case p.AvgForce == nil:
		return physics.Finish(j / dt)
	case p.ElapsedTime == nil:
		if err := physics.NonZero(f, "average force"); err != nil {
			return 0, err
		}
		dt = j / f
		if err := physics.MustBePositive(dt, "elapsed time"); err != nil {
			return 0, err
		}
		return physics.Finish(dt)
	}
	return 0, physics.NoUnknown()
}

// ImpulseMomentumParams relates J = Δp = m(v₂ - v₁).
type ImpulseMomentumParams struct {
	Impulse    *float64 `param:"impulse"`
	Mass       *float64 `param:"mass"`
	FinalVel   *float64 `param:"final_vel"`
	InitialVel *float64 `param:"initial_vel"`
}

func ImpulseMomentum(p ImpulseMomentumParams) (float64, error) {
	if err := physics.Positive(p.Mass, "mass"); err != nil {
		return 0, err
	}
	j, m, v2, v1 := physics.Value(p.Impulse), physics.Value(p.Mass), physics.Value(p.FinalVel), physics.Value(p.InitialVel)

	switch {
	case p.Impulse == nil:
		return physics.Finish(m * (v2 - v1))
	case p.Mass == nil:
		if err := physics.NonZero(v2-v1, "the change in velocity"); err != nil {
			return 0, err
		}
		m = j / (v2 - v1)
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	case p.FinalVel == nil:
		return physics.Finish(v1 + j/m)
	case p.InitialVel == nil:
		return physics.Finish(v2 - j/m)
	}
	return 0, physics.NoUnknown()
}

// InelasticParams relates m₁v₁ + m₂v₂ = m(f)v(f) for two bodies that stick
// together.
type InelasticParams struct {
	VelocityF *float64 `param:"velocity_f"`
	MassF     *float64 `param:"mass_f"`
	Mass1     *float64 `param:"mass_1"`
	Velocity1 *float64 `param:"velocity_1"`
	Mass2     *float64 `param:"mass_2"`
	Velocity2 *float64 `param:"velocity_2"`
}

func InelasticCollisionMomentum(p InelasticParams) (float64, error) {
	for _, m := range []*float64{p.MassF, p.Mass1, p.Mass2} {
		if m != nil && *m <= 0 {
			return 0, physics.Invalid("all objects must have a mass greater than zero")
		}
	}
	vf, mf := physics.Value(p.VelocityF), physics.Value(p.MassF)
	m1, v1 := physics.Value(p.Mass1), physics.Value(p.Velocity1)
	m2, v2 := physics.Value(p.Mass2), physics.Value(p.Velocity2)

	// mass solves share the same shape: the momentum left over divided by
	// the velocity it belongs to.
	mass := func(rest, v float64, name string) (float64, error) {
		if err := physics.NonZero(v, name+" velocity"); err != nil {
			return 0, err
		}
		m := rest / v
		if err := physics.MustBePositive(m, name+" mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	}

	switch {
	case p.VelocityF == nil:
		return physics.Finish((m1*v1 + m2*v2) / mf)
	case p.MassF == nil:
		return mass(m1*v1+m2*v2, vf, "final")
	case p.Mass1 == nil:
		return mass(mf*vf-m2*v2, v1, "first object's")
	case p.Velocity1 == nil:
		return physics.Finish((mf*vf - m2*v2) / m1)
	case p.Mass2 == nil:
		return mass(mf*vf-m1*v1, v2, "second object's")
	case p.Velocity2 == nil:
		return physics.Finish((mf*vf - m1*v1) / m2)
	}
	return 0, physics.NoUnknown()
}

// ElasticParams describes a one-dimensional elastic collision between two
// bodies with initial velocities u₁ and u₂.
type ElasticParams struct {
	FinalVel1 *float64 `param:"final_vel_1"`
	Mass1     *float64 `param:"mass_1"`
	Mass2     *float64 `param:"mass_2"`
	InitVel1  *float64 `param:"init_vel_1"`
	InitVel2  *float64 `param:"init_vel_2"`
}

// ElasticCollision solves v₁′ = ((m₁ - m₂)u₁ + 2m₂u₂)/(m₁ + m₂).
func ElasticCollision(p ElasticParams) (float64, error) {
	return elastic(p.FinalVel1, p.Mass1, p.Mass2, p.InitVel1, p.InitVel2)
}

// ElasticSecondParams is ElasticParams seen from the second body.
type ElasticSecondParams struct {
	FinalVel2 *float64 `param:"final_vel_2"`
	Mass1     *float64 `param:"mass_1"`
	Mass2     *float64 `param:"mass_2"`
	InitVel1  *float64 `param:"init_vel_1"`
	InitVel2  *float64 `param:"init_vel_2"`
}

// ElasticCollisionSecond solves v₂′ = ((m₂ - m₁)u₂ + 2m₁u₁)/(m₁ + m₂).
func ElasticCollisionSecond(p ElasticSecondParams) (float64, error) {
	return elastic(p.FinalVel2, p.Mass2, p.Mass1, p.InitVel2, p.InitVel1)
}

// elastic solves for the final velocity of body a after hitting body b.
func elastic(vp, maP, mbP, uaP, ubP *float64) (float64, error) {
	for _, m := range []*float64{maP, mbP} {
		if m != nil && *m <= 0 {
			return 0, physics.Invalid("all objects must have a mass greater than zero")
		}
	}
	v, ma, mb, ua, ub := physics.Value(vp), physics.Value(maP), physics.Value(mbP), physics.Value(uaP), physics.Value(ubP)

	switch {
	case vp == nil:
		return physics.Finish(((ma-mb)*ua + 2*mb*ub) / (ma + mb))
	case maP == nil:
		if err := physics.NonZero(v-ua, "the change in velocity"); err != nil {
			return 0, err
		}
		ma = mb * (2*ub - ua - v) / (v - ua)
		if err := physics.MustBePositive(ma, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(ma)
	case mbP == nil:
		denom := v + ua - 2*ub
		if err := physics.NonZero(denom, "v′ + u - 2u(other)"); err != nil {
			return 0, err
		}
		mb = ma * (ua - v) / denom
		if err := physics.MustBePositive(mb, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(mb)
	case uaP == nil:
		if err := physics.NonZero(ma-mb, "the difference in masses"); err != nil {
			return 0, err
		}
		return physics.Finish((v*(ma+mb) - 2*mb*ub) / (ma - mb))
	case ubP == nil:
		return physics.Finish((v*(ma+mb) - (ma-mb)*ua) / (2 * mb))
	}
	return 0, physics.NoUnknown()
}

// RocketParams relates Δv = u·ln(mᵢ/m).
type RocketParams struct {
	DeltaV     *float64 `param:"delta_v"`
	ExhaustVel *float64 `param:"exhaust_vel"`
	InitMass   *float64 `param:"init_mass"`
	FinalMass  *float64 `param:"final_mass"`
}

func RocketEquation(p RocketParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.DeltaV, "change in velocity"),
		physics.Positive(p.ExhaustVel, "exhaust velocity"),
		physics.Positive(p.InitMass, "initial mass"),
		physics.Positive(p.FinalMass, "final mass"),
	); err != nil {
		return 0, err
	}
	if p.InitMass != nil && p.FinalMass != nil && *p.FinalMass > *p.InitMass {
		return 0, physics.Invalid("final mass cannot exceed the initial mass")
	}
	dv, u, mi, mf := physics.Value(p.DeltaV), physics.Value(p.ExhaustVel), physics.Value(p.InitMass), physics.Value(p.FinalMass)

	switch {
	case p.DeltaV == nil:
		return physics.Finish(u * math.Log(mi/mf))
	case p.ExhaustVel == nil:
		l := math.Log(mi / mf)
		if err := physics.NonZero(l, "ln(mᵢ/m)"); err != nil {
			return 0, err
		}
		u = dv / l
		if err := physics.MustBePositive(u, "exhaust velocity"); err != nil {
			return 0, err
		}
		return physics.Finish(u)
	case p.InitMass == nil:
		return physics.Finish(mf * math.Exp(dv/u))
	case p.FinalMass == nil:
		return physics.Finish(mi * math.Exp(-dv/u))
	}
	return 0, physics.NoUnknown()
}

// CenterOfMassParams locates the centre of mass of two bodies on a line.
type CenterOfMassParams struct {
	XCM   *float64 `param:"x_cm"`
	Mass1 *float64 `param:"mass_1"`
	X1    *float64 `param:"x_1"`
	Mass2 *float64 `param:"mass_2"`
	X2    *float64 `param:"x_2"`
}

func CenterOfMass(p CenterOfMassParams) (float64, error) {
	for _, m := range []*float64{p.Mass1, p.Mass2} {
		if m != nil && *m <= 0 {
			return 0, physics.Invalid("all objects must have a mass greater than zero")
		}
	}
	xcm, m1, x1, m2, x2 := physics.Value(p.XCM), physics.Value(p.Mass1), physics.Value(p.X1), physics.Value(p.Mass2), physics.Value(p.X2)

	switch {
	case p.XCM == nil:
		return physics.Finish((m1*x1 + m2*x2) / (m1 + m2))
	case p.Mass1 == nil:
		if err := physics.NonZero(x1-xcm, "x₁ - x(CM)"); err != nil {
			return 0, err
		}
		m1 = m2 * (xcm - x2) / (x1 - xcm)
		if err := physics.MustBePositive(m1, "first mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m1)
	case p.X1 == nil:
		return physics.Finish((xcm*(m1+m2) - m2*x2) / m1)
	case p.Mass2 == nil:
		if err := physics.NonZero(x2-xcm, "x₂ - x(CM)"); err != nil {
			return 0, err
		}
		m2 = m1 * (xcm - x1) / (x2 - xcm)
		if err := physics.MustBePositive(m2, "second mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m2)
	case p.X2 == nil:
		return physics.Finish((xcm*(m1+m2) - m1*x1) / m2)
	}
	return 0, physics.NoUnknown()
}
