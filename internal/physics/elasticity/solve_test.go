package elasticity

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/physcalc/internal/physics"
)

var given = physics.Given

func TestYoungModulus(t *testing.T) {
	// A 2 m steel rod, 1 cm² in section, stretched 0.5 mm by 5 kN: Y = 200 GPa.
	tests := []struct {
		name string
		p    YoungParams
		want float64
	}{
		{"modulus", YoungParams{Force: given(5000), CrossSection: given(1e-4), InitLength: given(2), DeltaLength: given(5e-4)}, 2e11},
		{"force", YoungParams{YoungMod: given(2e11), CrossSection: given(1e-4), InitLength: given(2), DeltaLength: given(5e-4)}, 5000},
		{"area", YoungParams{YoungMod: given(2e11), Force: given(5000), InitLength: given(2), DeltaLength: given(5e-4)}, 1e-4},
		{"length", YoungParams{YoungMod: given(2e11), Force: given(5000), CrossSection: given(1e-4), DeltaLength: given(5e-4)}, 2},
		{"elongation", YoungParams{YoungMod: given(2e11), Force: given(5000), CrossSection: given(1e-4), InitLength: given(2)}, 5e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YoungModulus(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-6*math.Abs(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShearModulus(t *testing.T) {
	got, err := ShearModulus(ShearParams{Force: given(1000), CrossSection: given(0.01), InitLength: given(0.1), DeltaLayers: given(1e-6)})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-1e10) > 1 {
		t.Errorf("got %v, want 1e10", got)
	}
	got, err = ShearModulus(ShearParams{ShearMod: given(1e10), Force: given(1000), CrossSection: given(0.01), InitLength: given(0.1)})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-1e-6) > 1e-12 {
		t.Errorf("got %v, want 1e-6", got)
	}
}

func TestBulkModulus(t *testing.T) {
	// Water: raising the pressure by 2.2 MPa shrinks 1 m³ by 1 litre.
	tests := []struct {
		name string
		p    BulkParams
		want float64
	}{
		{"modulus", BulkParams{DeltaPressure: given(2.2e6), InitVolume: given(1), DeltaVolume: given(-1e-3)}, 2.2e9},
		{"pressure", BulkParams{BulkMod: given(2.2e9), InitVolume: given(1), DeltaVolume: given(-1e-3)}, 2.2e6},
		{"volume", BulkParams{BulkMod: given(2.2e9), DeltaPressure: given(2.2e6), DeltaVolume: given(-1e-3)}, 1},
		{"volume change", BulkParams{BulkMod: given(2.2e9), DeltaPressure: given(2.2e6), InitVolume: given(1)}, -1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BulkModulus(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-6*math.Abs(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSolverErrors(t *testing.T) {
	tests := []struct {
		name  string
		solve func() (float64, error)
		want  error
	}{
		{"no elongation", func() (float64, error) {
			return YoungModulus(YoungParams{Force: given(5000), CrossSection: given(1e-4), InitLength: given(2), DeltaLength: given(0)})
		}, physics.ErrDivisionByZero},
		{"zero length", func() (float64, error) {
			return YoungModulus(YoungParams{Force: given(5000), CrossSection: given(1e-4), InitLength: given(0), DeltaLength: given(1)})
		}, physics.ErrInvalidInput},
		{"negative elongation", func() (float64, error) {
			return YoungModulus(YoungParams{Force: given(5000), CrossSection: given(1e-4), InitLength: given(2), DeltaLength: given(-1)})
		}, physics.ErrInvalidInput},
		{"length without force", func() (float64, error) {
			return ShearModulus(ShearParams{ShearMod: given(1e10), Force: given(0), CrossSection: given(0.01), DeltaLayers: given(1e-6)})
		}, physics.ErrDivisionByZero},
		{"volume grows under pressure", func() (float64, error) {
			return BulkModulus(BulkParams{DeltaPressure: given(2.2e6), InitVolume: given(1), DeltaVolume: given(1e-3)})
		}, physics.ErrImplausible},
		{"no volume change", func() (float64, error) {
			return BulkModulus(BulkParams{DeltaPressure: given(2.2e6), InitVolume: given(1), DeltaVolume: given(0)})
		}, physics.ErrDivisionByZero},
		{"no pressure change", func() (float64, error) {
			return BulkModulus(BulkParams{BulkMod: given(2.2e9), DeltaPressure: given(0), DeltaVolume: given(-1e-3)})
		}, physics.ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.solve()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestChapterIsConsistent(t *testing.T) {
	if err := Chapter().Validate(); err != nil {
		t.Fatal(err)
	}
}
