package angular

import "github.com/san-kum/physcalc/internal/physics"

// MomentumParams relates L = Iω.
type MomentumParams struct {
	AngularMomentum *float64 `param:"angular_momentum"`
	Inertia         *float64 `param:"inertia"`
	Omega           *float64 `param:"omega"`
}

func AngularMomentum(p MomentumParams) (float64, error) {
	if err := physics.Positive(p.Inertia, "moment of inertia"); err != nil {
		return 0, err
	}
	l, i, w := physics.Value(p.AngularMomentum), physics.Value(p.Inertia), physics.Value(p.Omega)

	switch {
	case p.AngularMomentum == nil:
		return physics.Finish(i * w)
	case p.Inertia == nil:
		if err := physics.NonZero(w, "angular velocity"); err != nil {
			return 0, err
		}
		i = l / w
		if err := physics.MustBePositive(i, "moment of inertia"); err != nil {
			return 0, err
		}
		return physics.Finish(i)
	case p.Omega == nil:
		return physics.Finish(l / i)
	}
	return 0, physics.NoUnknown()
}

// ConservationParams relates I₂ω₂ = I₁ω₁ for a system with no net
// external torque.
type ConservationParams struct {
	Inertia2 *float64 `param:"inertia_2"`
	Omega2   *float64 `param:"omega_2"`
	Inertia1 *float64 `param:"inertia_1"`
	Omega1   *float64 `param:"omega_1"`
}

func ConservationAngularMomentum(p ConservationParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Inertia2, "final moment of inertia"),
		physics.Positive(p.Inertia1, "initial moment of inertia"),
	); err != nil {
		return 0, err
	}
	i2, w2, i1, w1 := physics.Value(p.Inertia2), physics.Value(p.Omega2), physics.Value(p.Inertia1), physics.Value(p.Omega1)

	switch {
	case p.Inertia2 == nil:
		if err := physics.NonZero(w2, "final angular velocity"); err != nil {
			return 0, err
		}
		i2 = i1 * w1 / w2
		if err := physics.MustBePositive(i2, "final moment of inertia"); err != nil {
			return 0, err
		}
		return physics.Finish(i2)
	case p.Omega2 == nil:
		return physics.Finish(i1 * w1 / i2)
	case p.Inertia1 == nil:
		if err := physics.NonZero(w1, "initial angular velocity"); err != nil {
			return 0, err
		}
		i1 = i2 * w2 / w1
		if err := physics.MustBePositive(i1, "initial moment of inertia"); err != nil {
			return 0, err
		}
		return physics.Finish(i1)
	case p.Omega1 == nil:
		return physics.Finish(i2 * w2 / i1)
	}
	return 0, physics.NoUnknown()
}

// PrecessionParams relates ω(P) = mgr/(Iω) for a gyroscope spinning at ω
// with its centre of mass r from the pivot.
type PrecessionParams struct {
	PrecessionVel *float64 `param:"precession_vel"`
	Mass          *float64 `param:"mass"`
	LeverArm      *float64 `param:"lever_arm"`
	Inertia       *float64 `param:"inertia"`
	Omega         *float64 `param:"omega"`
}

func GyroscopePrecession(p PrecessionParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.Mass, "mass"),
		physics.Positive(p.LeverArm, "distance from the pivot"),
		physics.Positive(p.Inertia, "moment of inertia"),
	); err != nil {
		return 0, err
	}
	wp, m, r, i, w := physics.Value(p.PrecessionVel), physics.Value(p.Mass), physics.Value(p.LeverArm), physics.Value(p.Inertia), physics.Value(p.Omega)
	const g = physics.Gravity

	positive := func(x float64, name string) (float64, error) {
		if err := physics.MustBePositive(x, name); err != nil {
			return 0, err
		}
		return physics.Finish(x)
	}

	switch {
	case p.PrecessionVel == nil:
		if err := physics.NonZero(w, "spin angular velocity"); err != nil {
			return 0, err
		}
		return physics.Finish(m * g * r / (i * w))
	case p.Mass == nil:
		return positive(wp*i*w/(g*r), "mass")
	case p.LeverArm == nil:
		return positive(wp*i*w/(m*g), "distance from the pivot")
	case p.Inertia == nil:
		if err := physics.NonZero(wp*w, "ω(P)·ω"); err != nil {
			return 0, err
		}
		return positive(m*g*r/(wp*w), "moment of inertia")
	case p.Omega == nil:
		if err := physics.NonZero(wp, "precession angular velocity"); err != nil {
			return 0, err
		}
		return physics.Finish(m * g * r / (i * wp))
	}
	return 0, physics.NoUnknown()
}
