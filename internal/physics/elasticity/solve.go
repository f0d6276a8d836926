package elasticity

import "github.com/san-kum/physcalc/internal/physics"

// YoungParams relates Y = (F/A)(L₀/ΔL).
type YoungParams struct {
	YoungMod     *float64 `param:"young_mod"`
	Force        *float64 `param:"force"`
	CrossSection *float64 `param:"cross_section"`
	InitLength   *float64 `param:"init_length"`
	DeltaLength  *float64 `param:"delta_length"`
}

func YoungModulus(p YoungParams) (float64, error) {
	return modulus(p.YoungMod, p.Force, p.CrossSection, p.InitLength, p.DeltaLength, "Young's modulus", "change in length")
}

// ShearParams relates S = (F/A)(L₀/Δx).
type ShearParams struct {
	ShearMod     *float64 `param:"shear_mod"`
	Force        *float64 `param:"force"`
	CrossSection *float64 `param:"cross_section"`
	InitLength   *float64 `param:"init_length"`
	DeltaLayers  *float64 `param:"delta_layers"`
}

func ShearModulus(p ShearParams) (float64, error) {
	return modulus(p.ShearMod, p.Force, p.CrossSection, p.InitLength, p.DeltaLayers, "shear modulus", "shift of layers")
}

// modulus solves M = (F/A)(L₀/δ), the stress over strain form shared by
// tensile and shear deformation.
func modulus(mp, fp, ap, lp, dp *float64, name, delta string) (float64, error) {
	if err := physics.Check(
		physics.Positive(mp, name),
		physics.Positive(ap, "cross-sectional area"),
		physics.Positive(lp, "initial length"),
		physics.NonNegative(dp, delta),
	); err != nil {
		return 0, err
	}
	m, f, a, l0, d := physics.Value(mp), physics.Value(fp), physics.Value(ap), physics.Value(lp), physics.Value(dp)

	positive := func(x float64, what string) (float64, error) {
		if err := physics.MustBePositive(x, what); err != nil {
			return 0, err
		}
		return physics.Finish(x)
	}

	switch {
	case mp == nil:
		if err := physics.NonZero(d, delta); err != nil {
			return 0, err
		}
		return positive(f*l0/(a*d), name)
	case fp == nil:
		return physics.Finish(m * a * d / l0)
	case ap == nil:
		if err := physics.NonZero(d, delta); err != nil {
			return 0, err
		}
		return positive(f*l0/(m*d), "cross-sectional area")
	case lp == nil:
		if err := physics.NonZero(f, "force"); err != nil {
			return 0, err
		}
		return positive(m*d*a/f, "initial length")
	case dp == nil:
		d = f * l0 / (m * a)
		if err := physics.MustNotBeNegative(d, delta); err != nil {
			return 0, err
		}
		return physics.Finish(d)
	}
	return 0, physics.NoUnknown()
}

// BulkParams relates B = -Δp(V₀/ΔV).
type BulkParams struct {
	BulkMod       *float64 `param:"bulk_mod"`
	DeltaPressure *float64 `param:"delta_pressure"`
	InitVolume    *float64 `param:"init_volume"`
	DeltaVolume   *float64 `param:"delta_volume"`
}

// BulkModulus solves the bulk modulus relation. A rise in pressure must
// shrink the volume, so Δp and ΔV have opposite signs.
func BulkModulus(p BulkParams) (float64, error) {
	if err := physics.Check(
		physics.Positive(p.BulkMod, "bulk modulus"),
		physics.Positive(p.InitVolume, "initial volume"),
	); err != nil {
		return 0, err
	}
	b, dp, v0, dv := physics.Value(p.BulkMod), physics.Value(p.DeltaPressure), physics.Value(p.InitVolume), physics.Value(p.DeltaVolume)

	switch {
	case p.BulkMod == nil:
		if err := physics.NonZero(dv, "change in volume"); err != nil {
			return 0, err
		}
		b = -dp * v0 / dv
		if err := physics.MustBePositive(b, "bulk modulus"); err != nil {
			return 0, err
		}
		return physics.Finish(b)
	case p.DeltaPressure == nil:
		return physics.Finish(-b * dv / v0)
	case p.InitVolume == nil:
		if err := physics.NonZero(dp, "change in pressure"); err != nil {
			return 0, err
		}
		v0 = -b * dv / dp
		if err := physics.MustBePositive(v0, "initial volume"); err != nil {
			return 0, err
		}
		return physics.Finish(v0)
	case p.DeltaVolume == nil:
		return physics.Finish(-dp * v0 / b)
	}
	return 0, physics.NoUnknown()
}
