package forces

import (
	"math"

	"github.com/san-kum/physcalc/internal/physics"
)

const g = physics.Gravity

// KineticFrictionParams relates fₖ = μₖN.
type KineticFrictionParams struct {
	FrictionK *float64 `param:"friction_k"`
	MuK       *float64 `param:"mu_k"`
	NormalF   *float64 `param:"normal_F"`
}

func KineticFriction(p KineticFrictionParams) (float64, error) {
	return friction(p.FrictionK, p.MuK, p.NormalF, "coefficient of kinetic friction")
}

// StaticFrictionParams relates fₛ(max) = μₛN.
type StaticFrictionParams struct {
	FrictionS *float64 `param:"friction_s"`
	MuS       *float64 `param:"mu_s"`
	NormalF   *float64 `param:"normal_F"`
}

// StaticFrictionMax solves for the largest static friction force the
// surfaces can supply before slipping.
func StaticFrictionMax(p StaticFrictionParams) (float64, error) {
	return friction(p.FrictionS, p.MuS, p.NormalF, "coefficient of static friction")
}

func friction(fp, mup, np *float64, coeff string) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(fp, "friction force"),
		physics.NonNegative(mup, coeff),
		physics.NonNegative(np, "normal force"),
	); err != nil {
		return 0, err
	}
	f, mu, n := physics.Value(fp), physics.Value(mup), physics.Value(np)

	switch {
	case fp == nil:
		return physics.Finish(mu * n)
	case mup == nil:
		if err := physics.NonZero(n, "normal force"); err != nil {
			return 0, err
		}
		return physics.Finish(f / n)
	case np == nil:
		if err := physics.NonZero(mu, coeff); err != nil {
			return 0, err
		}
		return physics.Finish(f / mu)
	}
	return 0, physics.NoUnknown()
}

// CentripetalTangentialParams relates F꜀ = mv²/r.
type CentripetalTangentialParams struct {
	CentripetalF *float64 `param:"centripetal_F"`
	Mass         *float64 `param:"mass"`
	Velocity     *float64 `param:"velocity"`
	Radius       *float64 `param:"radius"`
}

func CentripetalForceTangVel(p CentripetalTangentialParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Mass, "mass"),
		physics.Positive(p.Radius, "radius"),
	); err != nil {
		return 0, err
	}
	f, m, v, r := physics.Value(p.CentripetalF), physics.Value(p.Mass), physics.Value(p.Velocity), physics.Value(p.Radius)

	switch {
	case p.CentripetalF == nil:
		return physics.Finish(m * v * v / r)
	case p.Mass == nil:
		if err := physics.NonZero(v, "velocity"); err != nil {
			return 0, err
		}
		m = f * r / (v * v)
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	case p.Velocity == nil:
		v, err := physics.Sqrt(f*r/m, "F꜀·r/m")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v)
	case p.Radius == nil:
		if err := physics.NonZero(f, "centripetal force"); err != nil {
			return 0, err
		}
		r = m * v * v / f
		if err := physics.MustBePositive(r, "radius"); err != nil {
			return 0, err
		}
		return physics.Finish(r)
	}
	return 0, physics.NoUnknown()
}

// CentripetalAngularParams relates F꜀ = mrω².
type CentripetalAngularParams struct {
	CentripetalF *float64 `param:"centripetal_F"`
	Mass         *float64 `param:"mass"`
	AngularVel   *float64 `param:"angular_vel"`
	Radius       *float64 `param:"radius"`
}

func CentripetalForceAngVel(p CentripetalAngularParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Mass, "mass"),
		physics.Positive(p.Radius, "radius"),
	); err != nil {
		return 0, err
	}
	f, m, w, r := physics.Value(p.CentripetalF), physics.Value(p.Mass), physics.Value(p.AngularVel), physics.Value(p.Radius)

	switch {
	case p.CentripetalF == nil:
		return physics.Finish(m * r * w * w)
	case p.Mass == nil:
		if err := physics.NonZero(w, "angular velocity"); err != nil {
			return 0, err
		}
		m = f / (r * w * w)
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	case p.AngularVel == nil:
		w, err := physics.Sqrt(f/(m*r), "F꜀/(m·r)")
		if err != nil {
			return 0, err
		}
		return physics.Finish(w)
	case p.Radius == nil:
		if err := physics.NonZero(w, "angular velocity"); err != nil {
			return 0, err
		}
		r = f / (m * w * w)
		if err := physics.MustBePositive(r, "radius"); err != nil {
			return 0, err
		}
		return physics.Finish(r)
	}
	return 0, physics.NoUnknown()
}

// BankedCurveParams relates tanθ = v²/(rg). θ in degrees.
type BankedCurveParams struct {
	Theta    *float64 `param:"theta"`
	Velocity *float64 `param:"velocity"`
	Radius   *float64 `param:"radius"`
}

// IdealAngBankedCurve solves for the banking angle at which a curve needs
// no friction at speed v.
func IdealAngBankedCurve(p BankedCurveParams) (float64, error) {
	if err := physics.Positive(p.Radius, "radius"); err != nil {
		return 0, err
	}
	if p.Theta != nil && (*p.Theta < 0 || *p.Theta >= 90) {
		return 0, physics.Invalid("banking angle must be at least 0° and below 90°")
	}
	theta, v, r := physics.Value(p.Theta), physics.Value(p.Velocity), physics.Value(p.Radius)

	switch {
	case p.Theta == nil:
		return physics.Finish(physics.AtanDeg(v * v / (r * g)))
	case p.Velocity == nil:
		tan, err := physics.TanDeg(theta)
		if err != nil {
			return 0, err
		}
		v, err := physics.Sqrt(r*g*tan, "r·g·tanθ")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v)
	case p.Radius == nil:
		tan, err := physics.TanDeg(theta)
		if err != nil {
			return 0, err
		}
		if err := physics.NonZero(tan, "tan θ"); err != nil {
			return 0, err
		}
		r = v * v / (g * tan)
		if err := physics.MustBePositive(r, "radius"); err != nil {
			return 0, err
		}
		return physics.Finish(r)
	}
	return 0, physics.NoUnknown()
}

// DragForceParams relates F(D) = ½CρAv².
type DragForceParams struct {
	DragF     *float64 `param:"drag_F"`
	DragCoeff *float64 `param:"drag_coeff"`
	FluidDens *float64 `param:"fluid_dens"`
	Area      *float64 `param:"area"`
	Velocity  *float64 `param:"velocity"`
}

// DragForce solves the quadratic drag equation. The force is a magnitude
// and the velocity is returned as a speed.
func DragForce(p DragForceParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.DragF, "drag force"),
		physics.Positive(p.DragCoeff, "drag coefficient"),
		physics.Positive(p.FluidDens, "fluid density"),
		physics.Positive(p.Area, "cross-sectional area"),
	); err != nil {
		return 0, err
	}
	f, c, rho, a, v := physics.Value(p.DragF), physics.Value(p.DragCoeff), physics.Value(p.FluidDens), physics.Value(p.Area), physics.Value(p.Velocity)

	// Each of C, ρ and A is 2F/(v² times the other two).
	other := func(x, y float64, name string) (float64, error) {
		if err := physics.NonZero(v, "velocity"); err != nil {
			return 0, err
		}
		r := 2 * f / (x * y * v * v)
		if err := physics.MustBePositive(r, name); err != nil {
			return 0, err
		}
		return physics.Finish(r)
	}

	switch {
	case p.DragF == nil:
		return physics.Finish(0.5 * c * rho * a * v * v)
	case p.DragCoeff == nil:
		return other(rho, a, "drag coefficient")
	case p.FluidDens == nil:
		return other(c, a, "fluid density")
	case p.Area == nil:
		return other(c, rho, "cross-sectional area")
	case p.Velocity == nil:
		return physics.Finish(math.Sqrt(2 * f / (c * rho * a)))
	}
	return 0, physics.NoUnknown()
}

// StokesLawParams relates Fₛ = 6πrηv.
type StokesLawParams struct {
	DragFs    *float64 `param:"drag_Fs"`
	Radius    *float64 `param:"radius"`
	Viscosity *float64 `param:"viscosity"`
	Velocity  *float64 `param:"velocity"`
}

func StokesLaw(p StokesLawParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.DragFs, "drag force"),
		physics.Positive(p.Radius, "radius"),
		physics.Positive(p.Viscosity, "viscosity"),
		physics.NonNegative(p.Velocity, "speed"),
	); err != nil {
		return 0, err
	}
	f, r, eta, v := physics.Value(p.DragFs), physics.Value(p.Radius), physics.Value(p.Viscosity), physics.Value(p.Velocity)
	const sixPi = 6 * math.Pi

	switch {
	case p.DragFs == nil:
		return physics.Finish(sixPi * r * eta * v)
	case p.Radius == nil:
		if err := physics.NonZero(v, "velocity"); err != nil {
			return 0, err
		}
		r = f / (sixPi * eta * v)
		if err := physics.MustBePositive(r, "radius"); err != nil {
			return 0, err
		}
		return physics.Finish(r)
	case p.Viscosity == nil:
		if err := physics.NonZero(v, "velocity"); err != nil {
			return 0, err
		}
		eta = f / (sixPi * r * v)
		if err := physics.MustBePositive(eta, "viscosity"); err != nil {
			return 0, err
		}
		return physics.Finish(eta)
	case p.Velocity == nil:
		return physics.Finish(f / (sixPi * r * eta))
	}
	return 0, physics.NoUnknown()
}

// TerminalVelocityParams relates vₜ = √(2mg/(ρCA)).
type TerminalVelocityParams struct {
	TerminalVel *float64 `param:"terminal_vel"`
	Mass        *float64 `param:"mass"`
	DragCoeff   *float64 `param:"drag_coeff"`
	FluidDens   *float64 `param:"fluid_dens"`
	Area        *float64 `param:"area"`
}

func TerminalVelocity(p TerminalVelocityParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.TerminalVel, "terminal velocity"),
		physics.Positive(p.Mass, "mass"),
		physics.Positive(p.DragCoeff, "drag coefficient"),
		physics.Positive(p.FluidDens, "fluid density"),
		physics.Positive(p.Area, "cross-sectional area"),
	); err != nil {
		return 0, err
	}
	vt, m, c, rho, a := physics.Value(p.TerminalVel), physics.Value(p.Mass), physics.Value(p.DragCoeff), physics.Value(p.FluidDens), physics.Value(p.Area)

	switch {
	case p.TerminalVel == nil:
		return physics.Finish(math.Sqrt(2 * m * g / (rho * c * a)))
	case p.Mass == nil:
		return physics.Finish(vt * vt * rho * c * a / (2 * g))
	case p.DragCoeff == nil:
		return physics.Finish(2 * m * g / (vt * vt * rho * a))
	case p.FluidDens == nil:
		return physics.Finish(2 * m * g / (vt * vt * c * a))
	case p.Area == nil:
		return physics.Finish(2 * m * g / (vt * vt * rho * c))
	}
	return 0, physics.NoUnknown()
}
