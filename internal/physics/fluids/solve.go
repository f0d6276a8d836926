package fluids

import (
	"math"

	"github.com/san-kum/physcalc/internal/physics"
)

const g = physics.Gravity

func positive(x float64, name string) (float64, error) {
	if err := physics.MustBePositive(x, name); err != nil {
		return 0, err
	}
	return physics.Finish(x)
}

func nonNegative(x float64, name string) (float64, error) {
	if err := physics.MustNotBeNegative(x, name); err != nil {
		return 0, err
	}
	return physics.Finish(x)
}

// DensityParams relates ρ = m/V.
type DensityParams struct {
	Density *float64 `param:"density"`
	Mass    *float64 `param:"mass"`
	Volume  *float64 `param:"volume"`
}

func Density(p DensityParams) (float64, error) {
	if err := physics.Positive(p.Density, "density"); err != nil {
		return 0, err
	}
	return ratio(p.Density, p.Mass, p.Volume, "density", "mass", "volume")
}

// PressureParams relates p = F/A.
type PressureParams struct {
	Pressure *float64 `param:"pressure"`
	Force    *float64 `param:"force"`
	Area     *float64 `param:"area"`
}

func Pressure(p PressureParams) (float64, error) {
	if err := physics.NonNegative(p.Pressure, "pressure"); err != nil {
		return 0, err
	}
	return ratio(p.Pressure, p.Force, p.Area, "pressure", "force", "area")
}

// ratio solves q = num/den for a strictly positive denominator.
func ratio(qp, np, dp *float64, qName, nName, dName string) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(np, nName),
		physics.Positive(dp, dName),
	); err != nil {
		return 0, err
	}
	q, n, d := physics.Value(qp), physics.Value(np), physics.Value(dp)

	switch {
	case qp == nil:
		return physics.Finish(n / d)
	case np == nil:
		return nonNegative(q*d, nName)
	case dp == nil:
		if err := physics.NonZero(q, qName); err != nil {
			return 0, err
		}
		return positive(n/q, dName)
	}
	return 0, physics.NoUnknown()
}

// HydrostaticParams relates p = p₀ + ρgh.
type HydrostaticParams struct {
	Pressure    *float64 `param:"pressure"`
	PressureAtm *float64 `param:"pressure_atm"`
	Density     *float64 `param:"density"`
	Depth       *float64 `param:"depth"`
}

func HydrostaticPressure(p HydrostaticParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.Pressure, "hydrostatic pressure"),
		physics.NonNegative(p.PressureAtm, "atmospheric pressure"),
		physics.Positive(p.Density, "density of the fluid"),
		physics.NonNegative(p.Depth, "depth"),
	); err != nil {
		return 0, err
	}
	pr, p0, rho, h := physics.Value(p.Pressure), physics.Value(p.PressureAtm), physics.Value(p.Density), physics.Value(p.Depth)

	switch {
	case p.Pressure == nil:
		return physics.Finish(p0 + rho*g*h)
	case p.PressureAtm == nil:
		return nonNegative(pr-rho*g*h, "atmospheric pressure")
	case p.Density == nil:
		if err := physics.NonZero(h, "depth"); err != nil {
			return 0, err
		}
		return positive((pr-p0)/(g*h), "density of the fluid")
	case p.Depth == nil:
		return nonNegative((pr-p0)/(g*rho), "depth")
	}
	return 0, physics.NoUnknown()
}

// PascalParams relates F₁/A₁ = F₂/A₂.
type PascalParams struct {
	Force1 *float64 `param:"force_1"`
	Area1  *float64 `param:"area_1"`
	Force2 *float64 `param:"force_2"`
	Area2  *float64 `param:"area_2"`
}

func PascalsPrinciple(p PascalParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Area1, "area of piston 1"),
		physics.Positive(p.Area2, "area of piston 2"),
	); err != nil {
		return 0, err
	}
	f1, a1, f2, a2 := physics.Value(p.Force1), physics.Value(p.Area1), physics.Value(p.Force2), physics.Value(p.Area2)

	switch {
	case p.Force1 == nil:
		return physics.Finish(f2 / a2 * a1)
	case p.Area1 == nil:
		if err := physics.NonZero(f2, "force on piston 2"); err != nil {
			return 0, err
		}
		return positive(f1*a2/f2, "area of piston 1")
	case p.Force2 == nil:
		return physics.Finish(f1 / a1 * a2)
	case p.Area2 == nil:
		if err := physics.NonZero(f1, "force on piston 1"); err != nil {
			return 0, err
		}
		return positive(f2*a1/f1, "area of piston 2")
	}
	return 0, physics.NoUnknown()
}

// ContinuityParams relates A₁v₁ = A₂v₂ for an incompressible fluid.
type ContinuityParams struct {
	Area1     *float64 `param:"area_1"`
	Velocity1 *float64 `param:"velocity_1"`
	Area2     *float64 `param:"area_2"`
	Velocity2 *float64 `param:"velocity_2"`
}

func ContinuityConstDensity(p ContinuityParams) (float64, error) {
	one := physics.Given(1)
	return massFlux([6]*float64{one, p.Area1, p.Velocity1, one, p.Area2, p.Velocity2})
}

// ContinuityGeneralParams relates ρ₁A₁v₁ = ρ₂A₂v₂.
type ContinuityGeneralParams struct {
	Density1  *float64 `param:"density_1"`
	Area1     *float64 `param:"area_1"`
	Velocity1 *float64 `param:"velocity_1"`
	Density2  *float64 `param:"density_2"`
	Area2     *float64 `param:"area_2"`
	Velocity2 *float64 `param:"velocity_2"`
}

func ContinuityGeneral(p ContinuityGeneralParams) (float64, error) {
	return massFlux([6]*float64{p.Density1, p.Area1, p.Velocity1, p.Density2, p.Area2, p.Velocity2})
}

var fluxNames = [6]string{
	"density of the fluid in nozzle 1",
	"area of nozzle 1",
	"velocity of the fluid in nozzle 1",
	"density of the fluid in nozzle 2",
	"area of nozzle 2",
	"velocity of the fluid in nozzle 2",
}

// massFlux solves ρ₁A₁v₁ = ρ₂A₂v₂ with the factors laid out as
// [ρ₁ A₁ v₁ ρ₂ A₂ v₂]. The unknown is the product of the other side over
// its two partners on its own side.
func massFlux(f [6]*float64) (float64, error) {
	for _, i := range []int{0, 1, 3, 4} {
		if err := physics.Positive(f[i], fluxNames[i]); err != nil {
			return 0, err
		}
	}
	unknown := -1
	for i, x := range f {
		if x == nil {
			unknown = i
			break
		}
	}
	if unknown < 0 {
		return 0, physics.NoUnknown()
	}

	own, other := 0, 3
	if unknown >= 3 {
		own, other = 3, 0
	}
	num := physics.Value(f[other]) * physics.Value(f[other+1]) * physics.Value(f[other+2])
	den := 1.0
	for i := own; i < own+3; i++ {
		if i != unknown {
			den *= physics.Value(f[i])
		}
	}
	if err := physics.NonZero(den, "mass flow on the side being solved"); err != nil {
		return 0, err
	}
	x := num / den
	if unknown%3 == 2 {
		return physics.Finish(x)
	}
	return positive(x, fluxNames[unknown])
}

// FlowParams relates Q = Av.
type FlowParams struct {
	Flow     *float64 `param:"flow"`
	Area     *float64 `param:"area"`
	Velocity *float64 `param:"velocity"`
}

func FlowRate(p FlowParams) (float64, error) {
	if err := physics.Positive(p.Area, "cross-sectional area"); err != nil {
		return 0, err
	}
	q, a, v := physics.Value(p.Flow), physics.Value(p.Area), physics.Value(p.Velocity)

	switch {
	case p.Flow == nil:
		return physics.Finish(a * v)
	case p.Area == nil:
		if err := physics.NonZero(v, "velocity"); err != nil {
			return 0, err
		}
		return positive(q/v, "cross-sectional area")
	case p.Velocity == nil:
		return physics.Finish(q / a)
	}
	return 0, physics.NoUnknown()
}

// BernoulliParams relates p₁ + ½ρv₁² + ρgy₁ = p₂ + ½ρv₂² + ρgy₂.
type BernoulliParams struct {
	Pressure1 *float64 `param:"pressure_1"`
	Density   *float64 `param:"density"`
	Velocity1 *float64 `param:"velocity_1"`
	Height1   *float64 `param:"height_1"`
	Pressure2 *float64 `param:"pressure_2"`
	Velocity2 *float64 `param:"velocity_2"`
	Height2   *float64 `param:"height_2"`
}

// BernoullisEquation solves Bernoulli's equation along a streamline.
// Velocities are speeds: a solved velocity is the non-negative root.
func BernoullisEquation(p BernoulliParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.Pressure1, "pressure at point 1"),
		physics.Positive(p.Density, "density of the fluid"),
		physics.NonNegative(p.Pressure2, "pressure at point 2"),
	); err != nil {
		return 0, err
	}
	p1, rho, v1, y1 := physics.Value(p.Pressure1), physics.Value(p.Density), physics.Value(p.Velocity1), physics.Value(p.Height1)
	p2, v2, y2 := physics.Value(p.Pressure2), physics.Value(p.Velocity2), physics.Value(p.Height2)

	switch {
	case p.Pressure1 == nil:
		return nonNegative(p2+0.5*rho*(v2*v2-v1*v1)+rho*g*(y2-y1), "pressure at point 1")
	case p.Density == nil:
		den := 0.5*(v1*v1-v2*v2) + g*(y1-y2)
		if err := physics.NonZero(den, "½(v₁² − v₂²) + g(y₁ − y₂)"); err != nil {
			return 0, err
		}
		return positive((p2-p1)/den, "density of the fluid")
	case p.Velocity1 == nil:
		v, err := physics.Sqrt(2*(p2-p1)/rho+v2*v2+2*g*(y2-y1), "v₁²")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v)
	case p.Height1 == nil:
		return physics.Finish((p2-p1)/(rho*g) + (v2*v2-v1*v1)/(2*g) + y2)
	case p.Pressure2 == nil:
		return nonNegative(p1+0.5*rho*(v1*v1-v2*v2)+rho*g*(y1-y2), "pressure at point 2")
	case p.Velocity2 == nil:
		v, err := physics.Sqrt(2*(p1-p2)/rho+v1*v1+2*g*(y1-y2), "v₂²")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v)
	case p.Height2 == nil:
		return physics.Finish((p1-p2)/(rho*g) + (v1*v1-v2*v2)/(2*g) + y1)
	}
	return 0, physics.NoUnknown()
}

// ViscosityParams relates η = FL/(vA) for a fluid sheared between plates.
type ViscosityParams struct {
	Viscosity *float64 `param:"viscosity"`
	Force     *float64 `param:"force"`
	Distance  *float64 `param:"distance"`
	Area      *float64 `param:"area"`
	Velocity  *float64 `param:"velocity"`
}

func Viscosity(p ViscosityParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Viscosity, "viscosity"),
		physics.Positive(p.Distance, "distance between plates"),
		physics.Positive(p.Area, "area of the plates"),
	); err != nil {
		return 0, err
	}
	eta, f, l, a, v := physics.Value(p.Viscosity), physics.Value(p.Force), physics.Value(p.Distance), physics.Value(p.Area), physics.Value(p.Velocity)

	switch {
	case p.Viscosity == nil:
		if err := physics.NonZero(v, "velocity"); err != nil {
			return 0, err
		}
		return positive(f*l/(v*a), "viscosity")
	case p.Force == nil:
		return physics.Finish(eta * v * a / l)
	case p.Distance == nil:
		if err := physics.NonZero(f, "force"); err != nil {
			return 0, err
		}
		return positive(eta*v*a/f, "distance between plates")
	case p.Area == nil:
		if err := physics.NonZero(v, "velocity"); err != nil {
			return 0, err
		}
		return positive(f*l/(eta*v), "area of the plates")
	case p.Velocity == nil:
		return physics.Finish(f * l / (eta * a))
	}
	return 0, physics.NoUnknown()
}

// ResistanceParams relates R = 8ηl/(πr⁴).
type ResistanceParams struct {
	Resistance *float64 `param:"resistance"`
	Viscosity  *float64 `param:"viscosity"`
	Length     *float64 `param:"length"`
	Radius     *float64 `param:"radius"`
}

func PoiseuillesLawResistance(p ResistanceParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Resistance, "resistance"),
		physics.Positive(p.Viscosity, "viscosity"),
		physics.Positive(p.Length, "length of the tube"),
		physics.Positive(p.Radius, "radius of the tube"),
	); err != nil {
		return 0, err
	}
	res, eta, l, r := physics.Value(p.Resistance), physics.Value(p.Viscosity), physics.Value(p.Length), physics.Value(p.Radius)
	r4 := math.Pow(r, 4)

	switch {
	case p.Resistance == nil:
		return physics.Finish(8 * eta * l / (math.Pi * r4))
	case p.Viscosity == nil:
		return physics.Finish(res * math.Pi * r4 / (8 * l))
	case p.Length == nil:
		return physics.Finish(res * math.Pi * r4 / (8 * eta))
	case p.Radius == nil:
		return physics.Finish(math.Pow(8*eta*l/(math.Pi*res), 0.25))
	}
	return 0, physics.NoUnknown()
}

// PoiseuilleParams relates Q = (p₁ − p₂)πr⁴/(8ηl).
type PoiseuilleParams struct {
	Flow      *float64 `param:"flow"`
	Viscosity *float64 `param:"viscosity"`
	Length    *float64 `param:"length"`
	Radius    *float64 `param:"radius"`
	Pressure1 *float64 `param:"pressure_1"`
	Pressure2 *float64 `param:"pressure_2"`
}

// PoiseuillesLaw solves for laminar flow through a tube. Flow runs from
// point 1 to point 2, so a positive flow needs p₁ > p₂.
func PoiseuillesLaw(p PoiseuilleParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Viscosity, "viscosity"),
		physics.Positive(p.Length, "length of the tube"),
		physics.Positive(p.Radius, "radius of the tube"),
		physics.NonNegative(p.Pressure1, "pressure at point 1"),
		physics.NonNegative(p.Pressure2, "pressure at point 2"),
	); err != nil {
		return 0, err
	}
	q, eta, l, r := physics.Value(p.Flow), physics.Value(p.Viscosity), physics.Value(p.Length), physics.Value(p.Radius)
	p1, p2 := physics.Value(p.Pressure1), physics.Value(p.Pressure2)
	r4 := math.Pow(r, 4)

	switch {
	case p.Flow == nil:
		return physics.Finish((p1 - p2) * math.Pi * r4 / (8 * eta * l))
	case p.Viscosity == nil:
		if err := physics.NonZero(q, "flow rate"); err != nil {
			return 0, err
		}
		return positive((p1-p2)*math.Pi*r4/(8*l*q), "viscosity")
	case p.Length == nil:
		if err := physics.NonZero(q, "flow rate"); err != nil {
			return 0, err
		}
		return positive((p1-p2)*math.Pi*r4/(8*eta*q), "length of the tube")
	case p.Radius == nil:
		if err := physics.NonZero(p1-p2, "pressure difference"); err != nil {
			return 0, err
		}
		r2, err := physics.Sqrt(8*eta*l*q/(math.Pi*(p1-p2)), "8ηlQ/(π(p₁ − p₂))")
		if err != nil {
			return 0, err
		}
		return positive(math.Sqrt(r2), "radius of the tube")
	case p.Pressure1 == nil:
		return nonNegative(p2+8*eta*l*q/(math.Pi*r4), "pressure at point 1")
	case p.Pressure2 == nil:
		return nonNegative(p1-8*eta*l*q/(math.Pi*r4), "pressure at point 2")
	}
	return 0, physics.NoUnknown()
}
