package motion

import (
	"github.com/san-kum/physcalc/internal/physics"
)

// DisplacementParams relates Δx = x - x₀.
type DisplacementParams struct {
	Displacement *float64 `param:"displacement"`
	XF           *float64 `param:"x_f"`
	X0           *float64 `param:"x_0"`
}

func Displacement(p DisplacementParams) (float64, error) {
	dx, x, x0 := physics.Value(p.Displacement), physics.Value(p.XF), physics.Value(p.X0)

	switch {
	case p.Displacement == nil:
		return physics.Finish(x - x0)
	case p.XF == nil:
		return physics.Finish(x0 + dx)
	case p.X0 == nil:
		return physics.Finish(x - dx)
	}
	return 0, physics.NoUnknown()
}

// AverageVelocityParams relates v̄ = Δx/Δt.
type AverageVelocityParams struct {
	AvgVel       *float64 `param:"avg_vel"`
	Displacement *float64 `param:"displacement"`
	ElapsedTime  *float64 `param:"elapsed_time"`
}

func AverageVelocity(p AverageVelocityParams) (float64, error) {
	if err := physics.Positive(p.ElapsedTime, "elapsed time"); err != nil {
		return 0, err
	}
	v, dx, dt := physics.Value(p.AvgVel), physics.Value(p.Displacement), physics.Value(p.ElapsedTime)

	switch {
	case p.AvgVel == nil:
		return physics.Finish(dx / dt)
	case p.Displacement == nil:
		return physics.Finish(v * dt)
	case p.ElapsedTime == nil:
		if err := physics.NonZero(v, "average velocity"); err != nil {
			return 0, err
		}
		dt = dx / v
		if err := physics.MustBePositive(dt, "elapsed time"); err != nil {
			return 0, err
		}
		return physics.Finish(dt)
	}
	return 0, physics.NoUnknown()
}

// AverageAccelerationParams relates ā = Δv/Δt.
type AverageAccelerationParams struct {
	AvgAccel    *float64 `param:"avg_accel"`
	DeltaVel    *float64 `param:"delta_vel"`
	ElapsedTime *float64 `param:"elapsed_time"`
}

func AverageAcceleration(p AverageAccelerationParams) (float64, error) {
	if err := physics.Positive(p.ElapsedTime, "elapsed time"); err != nil {
		return 0, err
	}
	a, dv, dt := physics.Value(p.AvgAccel), physics.Value(p.DeltaVel), physics.Value(p.ElapsedTime)

	switch {
	case p.AvgAccel == nil:
		return physics.Finish(dv / dt)
	case p.DeltaVel == nil:
		return physics.Finish(a * dt)
	case p.ElapsedTime == nil:
		if err := physics.NonZero(a, "average acceleration"); err != nil {
			return 0, err
		}
		dt = dv / a
		if err := physics.MustBePositive(dt, "elapsed time"); err != nil {
			return 0, err
		}
		return physics.Finish(dt)
	}
	return 0, physics.NoUnknown()
}

// AvgPositionParams relates x = x₀ + v̄t.
type AvgPositionParams struct {
	XF     *float64 `param:"x_f"`
	X0     *float64 `param:"x_0"`
	AvgVel *float64 `param:"avg_vel"`
	T      *float64 `param:"t"`
}

func PositionFromAvgVelocity(p AvgPositionParams) (float64, error) {
	if err := physics.NonNegative(p.T, "time"); err != nil {
		return 0, err
	}
	x, x0, v, t := physics.Value(p.XF), physics.Value(p.X0), physics.Value(p.AvgVel), physics.Value(p.T)

	switch {
	case p.XF == nil:
		return physics.Finish(x0 + v*t)
	case p.X0 == nil:
		return physics.Finish(x - v*t)
	case p.AvgVel == nil:
		if err := physics.NonZero(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish((x - x0) / t)
	case p.T == nil:
		if err := physics.NonZero(v, "average velocity"); err != nil {
			return 0, err
		}
		t = (x - x0) / v
		if err := physics.MustNotBeNegative(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish(t)
	}
	return 0, physics.NoUnknown()
}

// VelocityParams relates v = v₀ + at.
type VelocityParams struct {
	VF    *float64 `param:"v_f"`
	V0    *float64 `param:"v_0"`
	Accel *float64 `param:"accel"`
	T     *float64 `param:"t"`
}

func VelocityFromAcceleration(p VelocityParams) (float64, error) {
	if err := physics.NonNegative(p.T, "time"); err != nil {
		return 0, err
	}
	v, v0, a, t := physics.Value(p.VF), physics.Value(p.V0), physics.Value(p.Accel), physics.Value(p.T)

	switch {
	case p.VF == nil:
		return physics.Finish(v0 + a*t)
	case p.V0 == nil:
		return physics.Finish(v - a*t)
	case p.Accel == nil:
		if err := physics.NonZero(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish((v - v0) / t)
	case p.T == nil:
		if err := physics.NonZero(a, "acceleration"); err != nil {
			return 0, err
		}
		t = (v - v0) / a
		if err := physics.MustNotBeNegative(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish(t)
	}
	return 0, physics.NoUnknown()
}

// PositionParams relates x = x₀ + v₀t + ½at².
type PositionParams struct {
	XF    *float64 `param:"x_f"`
	X0    *float64 `param:"x_0"`
	V0    *float64 `param:"v_0"`
	T     *float64 `param:"t"`
	Accel *float64 `param:"accel"`
}

// PositionFromVelAndAccel solves the constant-acceleration position
// equation. Solving for t picks the earliest non-negative root.
func PositionFromVelAndAccel(p PositionParams) (float64, error) {
	if err := physics.NonNegative(p.T, "time"); err != nil {
		return 0, err
	}
	x, x0, v0, t, a := physics.Value(p.XF), physics.Value(p.X0), physics.Value(p.V0), physics.Value(p.T), physics.Value(p.Accel)

	switch {
	case p.XF == nil:
		return physics.Finish(x0 + v0*t + 0.5*a*t*t)
	case p.X0 == nil:
		return physics.Finish(x - v0*t - 0.5*a*t*t)
	case p.V0 == nil:
		if err := physics.NonZero(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish((x - x0 - 0.5*a*t*t) / t)
	case p.T == nil:
		if v0 == 0 && a == 0 {
			return 0, physics.Undefined("v₀ and a cannot both be equal to zero")
		}
		t, err := physics.EarliestTime(0.5*a, v0, x0-x, "reaches the final position")
		if err != nil {
			return 0, err
		}
		return physics.Finish(t)
	case p.Accel == nil:
		if err := physics.NonZero(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish(2 * (x - x0 - v0*t) / (t * t))
	}
	return 0, physics.NoUnknown()
}

// VelocityDistanceParams relates v² = v₀² + 2a(x - x₀).
type VelocityDistanceParams struct {
	VF    *float64 `param:"v_f"`
	V0    *float64 `param:"v_0"`
	Accel *float64 `param:"accel"`
	XF    *float64 `param:"x_f"`
	X0    *float64 `param:"x_0"`
}

// VelocityFromDistance solves the time-free kinematic equation. Speeds
// are returned as magnitudes.
func VelocityFromDistance(p VelocityDistanceParams) (float64, error) {
	v, v0, a, x, x0 := physics.Value(p.VF), physics.Value(p.V0), physics.Value(p.Accel), physics.Value(p.XF), physics.Value(p.X0)

	switch {
	case p.VF == nil:
		v, err := physics.Sqrt(v0*v0+2*a*(x-x0), "v₀² + 2a(x − x₀)")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v)
	case p.V0 == nil:
		v0, err := physics.Sqrt(v*v-2*a*(x-x0), "v² − 2a(x − x₀)")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v0)
	case p.Accel == nil:
		if err := physics.NonZero(x-x0, "displacement (x − x₀)"); err != nil {
			return 0, err
		}
		return physics.Finish((v*v - v0*v0) / (2 * (x - x0)))
	case p.XF == nil:
		if a == 0 {
			return 0, physics.Undefined("acceleration cannot be equal to zero")
		}
		return physics.Finish(x0 + (v*v-v0*v0)/(2*a))
	case p.X0 == nil:
		if a == 0 {
			return 0, physics.Undefined("acceleration cannot be equal to zero")
		}
		return physics.Finish(x - (v*v-v0*v0)/(2*a))
	}
	return 0, physics.NoUnknown()
}

// FreeFallVelocityParams relates v = v₀ - gt.
type FreeFallVelocityParams struct {
	VF *float64 `param:"v_f"`
	V0 *float64 `param:"v_0"`
	T  *float64 `param:"t"`
}

func VelocityOfFreeFall(p FreeFallVelocityParams) (float64, error) {
	if err := physics.NonNegative(p.T, "time"); err != nil {
		return 0, err
	}
	v, v0, t := physics.Value(p.VF), physics.Value(p.V0), physics.Value(p.T)

	switch {
	case p.VF == nil:
		return physics.Finish(v0 - physics.Gravity*t)
	case p.V0 == nil:
		return physics.Finish(v + physics.Gravity*t)
	case p.T == nil:
		t = (v0 - v) / physics.Gravity
		if err := physics.MustNotBeNegative(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish(t)
	}
	return 0, physics.NoUnknown()
}

// FreeFallHeightParams relates y = y₀ + v₀t - ½gt².
type FreeFallHeightParams struct {
	YF *float64 `param:"y_f"`
	Y0 *float64 `param:"y_0"`
	V0 *float64 `param:"v_0"`
	T  *float64 `param:"t"`
}

// HeightOfFreeFall solves the free-fall height equation. Solving for t
// picks the earliest non-negative root.
func HeightOfFreeFall(p FreeFallHeightParams) (float64, error) {
	if err := physics.NonNegative(p.T, "time"); err != nil {
		return 0, err
	}
	y, y0, v0, t := physics.Value(p.YF), physics.Value(p.Y0), physics.Value(p.V0), physics.Value(p.T)
	const g = physics.Gravity

	switch {
	case p.YF == nil:
		return physics.Finish(y0 + v0*t - 0.5*g*t*t)
	case p.Y0 == nil:
		return physics.Finish(y - v0*t + 0.5*g*t*t)
	case p.V0 == nil:
		if err := physics.NonZero(t, "time"); err != nil {
			return 0, err
		}
		return physics.Finish((y - y0 + 0.5*g*t*t) / t)
	case p.T == nil:
		t, err := physics.EarliestTime(-0.5*g, v0, y0-y, "reaches the final height")
		if err != nil {
			return 0, err
		}
		return physics.Finish(t)
	}
	return 0, physics.NoUnknown()
}

// FreeFallHeightVelocityParams relates v² = v₀² - 2g(y - y₀).
type FreeFallHeightVelocityParams struct {
	VF *float64 `param:"v_f"`
	V0 *float64 `param:"v_0"`
	YF *float64 `param:"y_f"`
	Y0 *float64 `param:"y_0"`
}

func VelFreeFallFromHeight(p FreeFallHeightVelocityParams) (float64, error) {
	v, v0, y, y0 := physics.Value(p.VF), physics.Value(p.V0), physics.Value(p.YF), physics.Value(p.Y0)
	const g = physics.Gravity

	switch {
	case p.VF == nil:
		v, err := physics.Sqrt(v0*v0-2*g*(y-y0), "v₀² − 2g(y − y₀)")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v)
	case p.V0 == nil:
		v0, err := physics.Sqrt(v*v+2*g*(y-y0), "v² + 2g(y − y₀)")
		if err != nil {
			return 0, err
		}
		return physics.Finish(v0)
	case p.YF == nil:
		return physics.Finish(y0 - (v*v-v0*v0)/(2*g))
	case p.Y0 == nil:
		return physics.Finish(y + (v*v-v0*v0)/(2*g))
	}
	return 0, physics.NoUnknown()
}
