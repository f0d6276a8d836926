package work

import (
	"math"

	"github.com/san-kum/physcalc/internal/physics"
)

const g = physics.Gravity

// ConstantForceParams relates W = Fd·cosθ. θ in degrees.
type ConstantForceParams struct {
	Work     *float64 `param:"work"`
	ConstF   *float64 `param:"const_F"`
	Distance *float64 `param:"distance"`
	Theta    *float64 `param:"theta"`
}

func WorkConstantForce(p ConstantForceParams) (float64, error) {
	if err := physics.NonNegative(p.Distance, "distance"); err != nil {
		return 0, err
	}
	w, f, d, theta := physics.Value(p.Work), physics.Value(p.ConstF), physics.Value(p.Distance), physics.Value(p.Theta)

	switch {
	case p.Work == nil:
		return physics.Finish(f * d * physics.CosDeg(theta))
	case p.ConstF == nil:
		denom := d * physics.CosDeg(theta)
		if err := physics.NonZero(denom, "d·cos θ"); err != nil {
			return 0, err
		}
		return physics.Finish(w / denom)
	case p.Distance == nil:
		denom := f * physics.CosDeg(theta)
		if err := physics.NonZero(denom, "F·cos θ"); err != nil {
			return 0, err
		}
		d = w / denom
		if err := physics.MustNotBeNegative(d, "distance"); err != nil {
			return 0, err
		}
		return physics.Finish(d)
	case p.Theta == nil:
		if err := physics.NonZero(f*d, "F·d"); err != nil {
			return 0, err
		}
		theta, err := physics.AcosDeg(w/(f*d), "angle between force and displacement")
		if err != nil {
			return 0, err
		}
		return physics.Finish(theta)
	}
	return 0, physics.NoUnknown()
}

// GravityParams relates W = -mg(y₂ - y₁).
type GravityParams struct {
	Work          *float64 `param:"work"`
	Mass          *float64 `param:"mass"`
	InitialHeight *float64 `param:"initial_height"`
	FinalHeight   *float64 `param:"final_height"`
}

func WorkByGravity(p GravityParams) (float64, error) {
	if err := physics.Positive(p.Mass, "mass"); err != nil {
		return 0, err
	}
	w, m, y1, y2 := physics.Value(p.Work), physics.Value(p.Mass), physics.Value(p.InitialHeight), physics.Value(p.FinalHeight)

	switch {
	case p.Work == nil:
		return physics.Finish(-m * g * (y2 - y1))
	case p.Mass == nil:
		if err := physics.NonZero(y2-y1, "the change in height"); err != nil {
			return 0, err
		}
		m = -w / (g * (y2 - y1))
		if m < 0 {
			return 0, physics.Implausible("mass cannot be negative; check your signs or initial and final heights")
		}
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	case p.InitialHeight == nil:
		return physics.Finish(w/(m*g) + y2)
	case p.FinalHeight == nil:
		return physics.Finish(-w/(m*g) + y1)
	}
	return 0, physics.NoUnknown()
}

// SpringParams relates W = -½k(x₂² - x₁²).
type SpringParams struct {
	Work        *float64 `param:"work"`
	SpringConst *float64 `param:"spring_const"`
	InitialXPos *float64 `param:"initial_xpos"`
	FinalXPos   *float64 `param:"final_xpos"`
}

// WorkBySpring solves for the work done by an ideal spring between two
// positions. Positions enter squared, so solved positions are distances
// from equilibrium.
func WorkBySpring(p SpringParams) (float64, error) {
	if p.SpringConst != nil && *p.SpringConst < 0 {
		return 0, physics.Invalid("spring constant (k) cannot be a negative value")
	}
	w, k, x1, x2 := physics.Value(p.Work), physics.Value(p.SpringConst), physics.Value(p.InitialXPos), physics.Value(p.FinalXPos)

	switch {
	case p.Work == nil:
		return physics.Finish(-0.5 * k * (x2*x2 - x1*x1))
	case p.SpringConst == nil:
		d := x2*x2 - x1*x1
		if err := physics.NonZero(d, "x₂² - x₁²"); err != nil {
			return 0, err
		}
		k = -2 * w / d
		if err := physics.MustNotBeNegative(k, "spring constant"); err != nil {
			return 0, err
		}
		return physics.Finish(k)
	case p.InitialXPos == nil:
		if err := physics.NonZero(k, "spring constant"); err != nil {
			return 0, err
		}
		x, err := physics.Sqrt(2*w/k+x2*x2, "2W/k + x₂²")
		if err != nil {
			return 0, err
		}
		return physics.Finish(x)
	case p.FinalXPos == nil:
		if err := physics.NonZero(k, "spring constant"); err != nil {
			return 0, err
		}
		x, err := physics.Sqrt(-2*w/k+x1*x1, "x₁² - 2W/k")
		if err != nil {
			return 0, err
		}
		return physics.Finish(x)
	}
	return 0, physics.NoUnknown()
}

// KineticEnergyParams relates K = ½mv².
type KineticEnergyParams struct {
	KineticE *float64 `param:"kinetic_E"`
	Mass     *float64 `param:"mass"`
	Velocity *float64 `param:"velocity"`
}

// KineticEnergy returns a speed when solving for velocity.
func KineticEnergy(p KineticEnergyParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.KineticE, "kinetic energy"),
		physics.Positive(p.Mass, "mass"),
	); err != nil {
		return 0, err
	}
	k, m, v := physics.Value(p.KineticE), physics.Value(p.Mass), physics.Value(p.Velocity)

	switch {
	case p.KineticE == nil:
		return physics.Finish(0.5 * m * v * v)
	case p.Mass == nil:
		if err := physics.NonZero(v, "velocity"); err != nil {
			return 0, err
		}
		m = 2 * k / (v * v)
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	case p.Velocity == nil:
		return physics.Finish(math.Sqrt(2 * k / m))
	}
	return 0, physics.NoUnknown()
}

// MomentumFormParams relates K = p²/2m.
type MomentumFormParams struct {
	KineticE *float64 `param:"kinetic_E"`
	Mass     *float64 `param:"mass"`
	Momentum *float64 `param:"momentum"`
}

func KineticEnergyMomentum(p MomentumFormParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.KineticE, "kinetic energy"),
		physics.Positive(p.Mass, "mass"),
	); err != nil {
		return 0, err
	}
	k, m, mom := physics.Value(p.KineticE), physics.Value(p.Mass), physics.Value(p.Momentum)

	switch {
	case p.KineticE == nil:
		return physics.Finish(mom * mom / (2 * m))
	case p.Mass == nil:
		if err := physics.NonZero(k, "kinetic energy"); err != nil {
			return 0, err
		}
		m = mom * mom / (2 * k)
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	case p.Momentum == nil:
		return physics.Finish(math.Sqrt(2 * k * m))
	}
	return 0, physics.NoUnknown()
}

// WorkEnergyParams relates W(net) = ½mv² - ½mv₀².
type WorkEnergyParams struct {
	NetWork    *float64 `param:"net_work"`
	Mass       *float64 `param:"mass"`
	FinalVel   *float64 `param:"final_vel"`
	InitialVel *float64 `param:"initial_vel"`
}

func WorkEnergyTheorem(p WorkEnergyParams) (float64, error) {
	if err := physics.Positive(p.Mass, "mass"); err != nil {
		return 0, err
	}
	w, m, v, v0 := physics.Value(p.NetWork), physics.Value(p.Mass), physics.Value(p.FinalVel), physics.Value(p.InitialVel)

	switch {
	case p.NetWork == nil:
		return physics.Finish(0.5 * m * (v*v - v0*v0))
	case p.Mass == nil:
		d := v*v - v0*v0
		if err := physics.NonZero(d, "v² - v₀²"); err != nil {
			return 0, err
		}
		m = 2 * w / d
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	case p.FinalVel == nil:
		v, err := physics.Sqrt(2*w/m+v0*v0, "2W/m + v₀²")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v)
	case p.InitialVel == nil:
		v0, err := physics.Sqrt(v*v-2*w/m, "v² - 2W/m")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v0)
	}
	return 0, physics.NoUnknown()
}

// AveragePowerParams relates P = ΔW/Δt.
type AveragePowerParams struct {
	Power       *float64 `param:"power"`
	Work        *float64 `param:"work"`
	ElapsedTime *float64 `param:"elapsed_time"`
}

func AveragePower(p AveragePowerParams) (float64, error) {
	if err := physics.Positive(p.ElapsedTime, "elapsed time"); err != nil {
		return 0, err
	}
	pw, w, dt := physics.Value(p.Power), physics.Value(p.Work), physics.Value(p.ElapsedTime)

	switch {
	case p.Power == nil:
		return physics.Finish(w / dt)
	case p.Work == nil:
		return physics.Finish(pw * dt)
	case p.ElapsedTime == nil:
		if err := physics.NonZero(pw, "power"); err != nil {
			return 0, err
		}
		dt = w / pw
		if err := physics.MustBePositive(dt, "elapsed time"); err != nil {
			return 0, err
		}
		return physics.Finish(dt)
	}
	return 0, physics.NoUnknown()
}
