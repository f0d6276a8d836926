package rotation

import (
	"math"

	"github.com/san-kum/physcalc/internal/physics"
)

// AngularPositionParams relates θ = s/r. θ in radians.
type AngularPositionParams struct {
	Theta     *float64 `param:"theta"`
	ArcLength *float64 `param:"arc_length"`
	Radius    *float64 `param:"radius"`
}

func AngularPosition(p AngularPositionParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Radius, "radius of the rotational trajectory"),
		physics.NonNegative(p.ArcLength, "arc length"),
	); err != nil {
		return 0, err
	}
	theta, s, r := physics.Value(p.Theta), physics.Value(p.ArcLength), physics.Value(p.Radius)

	switch {
	case p.Theta == nil:
		return physics.Finish(s / r)
	case p.ArcLength == nil:
		s = theta * r
		if err := physics.MustNotBeNegative(s, "arc length"); err != nil {
			return 0, err
		}
		return physics.Finish(s)
	case p.Radius == nil:
		if err := physics.NonZero(theta, "angular position"); err != nil {
			return 0, err
		}
		r = s / theta
		if err := physics.MustBePositive(r, "radius"); err != nil {
			return 0, err
		}
		return physics.Finish(r)
	}
	return 0, physics.NoUnknown()
}

// TangentialSpeedParams relates v(t) = rω.
type TangentialSpeedParams struct {
	TangSpeed *float64 `param:"tang_speed"`
	Radius    *float64 `param:"radius"`
	Omega     *float64 `param:"omega"`
}

func TangentialSpeed(p TangentialSpeedParams) (float64, error) {
	return tangential(p.TangSpeed, p.Radius, p.Omega, "angular velocity")
}

// TangentialAccelParams relates a(t) = rα.
type TangentialAccelParams struct {
	TangAccel    *float64 `param:"tang_accel"`
	Radius       *float64 `param:"radius"`
	AngularAccel *float64 `param:"angular_accel"`
}

func TangentialAccel(p TangentialAccelParams) (float64, error) {
	return tangential(p.TangAccel, p.Radius, p.AngularAccel, "angular acceleration")
}

// tangential solves linear = r·angular for a point at radius r.
func tangential(lp, rp, ap *float64, angular string) (float64, error) {
	if err := physics.Positive(rp, "radius"); err != nil {
		return 0, err
	}
	l, r, a := physics.Value(lp), physics.Value(rp), physics.Value(ap)

	switch {
	case lp == nil:
		return physics.Finish(r * a)
	case rp == nil:
		if err := physics.NonZero(a, angular); err != nil {
			return 0, err
		}
		r = l / a
		if err := physics.MustBePositive(r, "radius"); err != nil {
			return 0, err
		}
		return physics.Finish(r)
	case ap == nil:
		return physics.Finish(l / r)
	}
	return 0, physics.NoUnknown()
}

// AverageAngularVelParams relates ω(ave) = (ω₀ + ω(f))/2.
type AverageAngularVelParams struct {
	AveAngularVel   *float64 `param:"ave_angular_vel"`
	InitAngularVel  *float64 `param:"init_angular_vel"`
	FinalAngularVel *float64 `param:"final_angular_vel"`
}

func AverageAngularVel(p AverageAngularVelParams) (float64, error) {
	ave, w0, w := physics.Value(p.AveAngularVel), physics.Value(p.InitAngularVel), physics.Value(p.FinalAngularVel)

	switch {
	case p.AveAngularVel == nil:
		return physics.Finish((w0 + w) / 2)
	case p.InitAngularVel == nil:
		return physics.Finish(2*ave - w)
	case p.FinalAngularVel == nil:
		return physics.Finish(2*ave - w0)
	}
	return 0, physics.NoUnknown()
}

// AngularDisplacementParams relates θ(f) = θ₀ + ω(ave)t.
type AngularDisplacementParams struct {
	FinalTheta    *float64 `param:"final_theta"`
	InitTheta     *float64 `param:"init_theta"`
	AveAngularVel *float64 `param:"ave_angular_vel"`
	T             *float64 `param:"t"`
}

func AngularDisplacement(p AngularDisplacementParams) (float64, error) {
	if err := physics.NonNegative(p.T, "time"); err != nil {
		return 0, err
	}
	theta, theta0, w, t := physics.Value(p.FinalTheta), physics.Value(p.InitTheta), physics.Value(p.AveAngularVel), physics.Value(p.T)

	switch {
	case p.FinalTheta == nil:
		return physics.Finish(theta0 + w*t)
	case p.InitTheta == nil:
		return physics.Finish(theta - w*t)
	case p.AveAngularVel == nil:
		if err := physics.NonZero(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish((theta - theta0) / t)
	case p.T == nil:
		if err := physics.NonZero(w, "average angular velocity"); err != nil {
			return 0, err
		}
		t = (theta - theta0) / w
		if err := physics.MustNotBeNegative(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish(t)
	}
	return 0, physics.NoUnknown()
}

// AngularVelocityParams relates ω(f) = ω₀ + αt.
type AngularVelocityParams struct {
	FinalAngularVel *float64 `param:"final_angular_vel"`
	InitAngularVel  *float64 `param:"init_angular_vel"`
	AngularAccel    *float64 `param:"angular_accel"`
	T               *float64 `param:"t"`
}

func AngularVelConstAccel(p AngularVelocityParams) (float64, error) {
	if err := physics.NonNegative(p.T, "time"); err != nil {
		return 0, err
	}
	w, w0, a, t := physics.Value(p.FinalAngularVel), physics.Value(p.InitAngularVel), physics.Value(p.AngularAccel), physics.Value(p.T)

	switch {
	case p.FinalAngularVel == nil:
		return physics.Finish(w0 + a*t)
	case p.InitAngularVel == nil:
		return physics.Finish(w - a*t)
	case p.AngularAccel == nil:
		if err := physics.NonZero(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish((w - w0) / t)
	case p.T == nil:
		if err := physics.NonZero(a, "angular acceleration"); err != nil {
			return 0, err
		}
		t = (w - w0) / a
		if err := physics.MustNotBeNegative(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish(t)
	}
	return 0, physics.NoUnknown()
}

// AngularDisplacementAccelParams relates θ(f) = θ₀ + ω₀t + ½αt².
type AngularDisplacementAccelParams struct {
	FinalTheta     *float64 `param:"final_theta"`
	InitTheta      *float64 `param:"init_theta"`
	InitAngularVel *float64 `param:"init_angular_vel"`
	T              *float64 `param:"t"`
	AngularAccel   *float64 `param:"angular_accel"`
}

func AngularDisplacementConstAccel(p AngularDisplacementAccelParams) (float64, error) {
	if err := physics.NonNegative(p.T, "time"); err != nil {
		return 0, err
	}
	theta, theta0, w0, t, a := physics.Value(p.FinalTheta), physics.Value(p.InitTheta), physics.Value(p.InitAngularVel), physics.Value(p.T), physics.Value(p.AngularAccel)

	switch {
	case p.FinalTheta == nil:
		return physics.Finish(theta0 + w0*t + 0.5*a*t*t)
	case p.InitTheta == nil:
		return physics.Finish(theta - w0*t - 0.5*a*t*t)
	case p.InitAngularVel == nil:
		if err := physics.NonZero(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish((theta - theta0 - 0.5*a*t*t) / t)
	case p.T == nil:
		if w0 == 0 && a == 0 {
			return 0, physics.Undefined("ω₀ and α cannot both be equal to zero")
		}
		t, err := physics.EarliestTime(0.5*a, w0, theta0-theta, "reaches the final angular position")
		if err != nil {
			return 0, err
		}
		return physics.Finish(t)
	case p.AngularAccel == nil:
		if err := physics.NonZero(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish(2 * (theta - theta0 - w0*t) / (t * t))
	}
	return 0, physics.NoUnknown()
}

// ChangeAngularVelParams relates ω(f)² = ω₀² + 2αΔθ.
type ChangeAngularVelParams struct {
	FinalAngularVel *float64 `param:"final_angular_vel"`
	InitAngularVel  *float64 `param:"init_angular_vel"`
	AngularAccel    *float64 `param:"angular_accel"`
	DeltaTheta      *float64 `param:"delta_theta"`
}

// ChangeAngularVelocity returns angular speeds as magnitudes.
func ChangeAngularVelocity(p ChangeAngularVelParams) (float64, error) {
	w, w0, a, dtheta := physics.Value(p.FinalAngularVel), physics.Value(p.InitAngularVel), physics.Value(p.AngularAccel), physics.Value(p.DeltaTheta)

	switch {
	case p.FinalAngularVel == nil:
		w, err := physics.Sqrt(w0*w0+2*a*dtheta, "ω₀² + 2αΔθ")
		if err != nil {
			return 0, err
		}
		return physics.Finish(w)
	case p.InitAngularVel == nil:
		w0, err := physics.Sqrt(w*w-2*a*dtheta, "ω(f)² − 2αΔθ")
		if err != nil {
			return 0, err
		}
		return physics.Finish(w0)
	case p.AngularAccel == nil:
		if err := physics.NonZero(dtheta, "angular displacement"); err != nil {
			return 0, err
		}
		return physics.Finish((w*w - w0*w0) / (2 * dtheta))
	case p.DeltaTheta == nil:
		if a == 0 {
			return 0, physics.Undefined("angular acceleration cannot be equal to zero")
		}
		return physics.Finish((w*w - w0*w0) / (2 * a))
	}
	return 0, physics.NoUnknown()
}

// RotationalKEParams relates K = ½Iω².
type RotationalKEParams struct {
	KineticE *float64 `param:"kinetic_E"`
	Inertia  *float64 `param:"inertia"`
	Omega    *float64 `param:"omega"`
}

// RotationalKE returns the angular speed as a magnitude.
func RotationalKE(p RotationalKEParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.KineticE, "rotational kinetic energy"),
		physics.Positive(p.Inertia, "moment of inertia"),
	); err != nil {
		return 0, err
	}
	k, i, w := physics.Value(p.KineticE), physics.Value(p.Inertia), physics.Value(p.Omega)

	switch {
	case p.KineticE == nil:
		return physics.Finish(0.5 * i * w * w)
	case p.Inertia == nil:
		if err := physics.NonZero(w, "angular velocity"); err != nil {
			return 0, err
		}
		i = 2 * k / (w * w)
		if err := physics.MustBePositive(i, "moment of inertia"); err != nil {
			return 0, err
		}
		return physics.Finish(i)
	case p.Omega == nil:
		return physics.Finish(math.Sqrt(2 * k / i))
	}
	return 0, physics.NoUnknown()
}

// TorqueParams relates |τ| = rF·sinθ. θ in degrees, between 0° and 180°.
type TorqueParams struct {
	Torque *float64 `param:"torque"`
	Radius *float64 `param:"radius"`
	Force  *float64 `param:"force"`
	Theta  *float64 `param:"theta"`
}

// MagnitudeOfTorque solves for the torque magnitude of a force applied at
// a lever arm. Solving θ returns the acute angle; its supplement produces
// the same torque.
func MagnitudeOfTorque(p TorqueParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.Torque, "magnitude of torque"),
		physics.Positive(p.Radius, "lever arm"),
		physics.NonNegative(p.Force, "applied force"),
	); err != nil {
		return 0, err
	}
	if p.Theta != nil && (*p.Theta < 0 || *p.Theta > 180) {
		return 0, physics.Invalid("angle of the applied force must be between 0° and 180°")
	}
	tau, r, f, theta := physics.Value(p.Torque), physics.Value(p.Radius), physics.Value(p.Force), physics.Value(p.Theta)

	switch {
	case p.Torque == nil:
		return physics.Finish(r * f * physics.SinDeg(theta))
	case p.Radius == nil:
		d := f * physics.SinDeg(theta)
		if err := physics.NonZero(d, "F·sin θ"); err != nil {
			return 0, err
		}
		r = tau / d
		if err := physics.MustBePositive(r, "lever arm"); err != nil {
			return 0, err
		}
		return physics.Finish(r)
	case p.Force == nil:
		d := r * physics.SinDeg(theta)
		if err := physics.NonZero(d, "r·sin θ"); err != nil {
			return 0, err
		}
		return physics.Finish(tau / d)
	case p.Theta == nil:
		if err := physics.NonZero(r*f, "r·F"); err != nil {
			return 0, err
		}
		theta, err := physics.AsinDeg(tau/(r*f), "angle of the applied force")
		if err != nil {
			return 0, err
		}
		return physics.Finish(theta)
	}
	return 0, physics.NoUnknown()
}

// SecondLawRotationParams relates ∑τ = Iα.
type SecondLawRotationParams struct {
	Torque       *float64 `param:"torque"`
	Inertia      *float64 `param:"inertia"`
	AngularAccel *float64 `param:"angular_accel"`
}

func NewtonsSecondLawRotation(p SecondLawRotationParams) (float64, error) {
	if err := physics.Positive(p.Inertia, "moment of inertia"); err != nil {
		return 0, err
	}
	tau, i, a := physics.Value(p.Torque), physics.Value(p.Inertia), physics.Value(p.AngularAccel)

	switch {
	case p.Torque == nil:
		return physics.Finish(i * a)
	case p.Inertia == nil:
		if err := physics.NonZero(a, "angular acceleration"); err != nil {
			return 0, err
		}
		i = tau / a
		if err := physics.MustBePositive(i, "moment of inertia"); err != nil {
			return 0, err
		}
		return physics.Finish(i)
	case p.AngularAccel == nil:
		return physics.Finish(tau / i)
	}
	return 0, physics.NoUnknown()
}

// RotationalPowerParams relates P = τω.
type RotationalPowerParams struct {
	Power  *float64 `param:"power"`
	Torque *float64 `param:"torque"`
	Omega  *float64 `param:"omega"`
}

func RotationalPower(p RotationalPowerParams) (float64, error) {
	pw, tau, w := physics.Value(p.Power), physics.Value(p.Torque), physics.Value(p.Omega)

	switch {
	case p.Power == nil:
		return physics.Finish(tau * w)
	case p.Torque == nil:
		if err := physics.NonZero(w, "angular velocity"); err != nil {
			return 0, err
		}
		return physics.Finish(pw / w)
	case p.Omega == nil:
		if err := physics.NonZero(tau, "torque"); err != nil {
			return 0, err
		}
		return physics.Finish(pw / tau)
	}
	return 0, physics.NoUnknown()
}

// ParallelAxisParams relates I = I(cm) + md².
type ParallelAxisParams struct {
	Inertia   *float64 `param:"inertia"`
	InertiaCM *float64 `param:"inertia_cm"`
	Mass      *float64 `param:"mass"`
	Distance  *float64 `param:"distance"`
}

func ParallelAxis(p ParallelAxisParams) (float64, error) {
	if err := physics.Check(
		physics.NonNegative(p.Inertia, "moment of inertia"),
		physics.NonNegative(p.InertiaCM, "moment of inertia about the center of mass"),
		physics.Positive(p.Mass, "mass"),
		physics.NonNegative(p.Distance, "distance between the axes"),
	); err != nil {
		return 0, err
	}
	i, icm, m, d := physics.Value(p.Inertia), physics.Value(p.InertiaCM), physics.Value(p.Mass), physics.Value(p.Distance)

	switch {
	case p.Inertia == nil:
		return physics.Finish(icm + m*d*d)
	case p.InertiaCM == nil:
		icm = i - m*d*d
		if err := physics.MustNotBeNegative(icm, "moment of inertia about the center of mass"); err != nil {
			return 0, err
		}
		return physics.Finish(icm)
	case p.Mass == nil:
		if err := physics.NonZero(d, "distance between the axes"); err != nil {
			return 0, err
		}
		m = (i - icm) / (d * d)
		if err := physics.MustBePositive(m, "mass"); err != nil {
			return 0, err
		}
		return physics.Finish(m)
	case p.Distance == nil:
		d, err := physics.Sqrt((i-icm)/m, "(I − I(cm))/m")
		if err != nil {
			return 0, err
		}
		return physics.Finish(d)
	}
	return 0, physics.NoUnknown()
}
