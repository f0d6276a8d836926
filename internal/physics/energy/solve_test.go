package energy

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/physcalc/internal/physics"
)

var given = physics.Given

func TestGravitationalPotentialEnergy(t *testing.T) {
	tests := []struct {
		name string
		p    GravitationalParams
		want float64
	}{
		{"energy", GravitationalParams{Mass: given(10), Height: given(5)}, 491},
		{"below reference", GravitationalParams{Mass: given(10), Height: given(-5)}, -491},
		{"mass", GravitationalParams{PotentialE: given(491), Height: given(5)}, 10},
		{"height", GravitationalParams{PotentialE: given(491), Mass: given(10)}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GravitationalPotentialEnergy(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := GravitationalPotentialEnergy(GravitationalParams{PotentialE: given(491), Height: given(0)}); !errors.Is(err, physics.ErrDivisionByZero) {
		t.Errorf("zero height: expected ErrDivisionByZero, got %v", err)
	}
	if _, err := GravitationalPotentialEnergy(GravitationalParams{PotentialE: given(491), Height: given(-5)}); !errors.Is(err, physics.ErrImplausible) {
		t.Errorf("sign mismatch: expected ErrImplausible, got %v", err)
	}
}

func TestElasticPotentialEnergy(t *testing.T) {
	tests := []struct {
		name string
		p    ElasticParams
		want float64
	}{
		{"energy", ElasticParams{SpringConst: given(200), Displacement: given(-0.1)}, 1},
		{"spring constant", ElasticParams{PotentialE: given(1), Displacement: given(0.1)}, 200},
		{"displacement", ElasticParams{PotentialE: given(1), SpringConst: given(200)}, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ElasticPotentialEnergy(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	_, err := ElasticPotentialEnergy(ElasticParams{SpringConst: given(-2), Displacement: given(1)})
	if err == nil || err.Error() != "spring constant (k) cannot be a negative value" {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := ElasticPotentialEnergy(ElasticParams{PotentialE: given(1), SpringConst: given(0)}); !errors.Is(err, physics.ErrDivisionByZero) {
		t.Errorf("zero spring constant: expected ErrDivisionByZero, got %v", err)
	}
}

func TestConservationOfEnergy(t *testing.T) {
	tests := []struct {
		name string
		p    ConservationParams
		want float64
	}{
		{"final kinetic", ConservationParams{Potential2: given(0), Kinetic1: given(0), Potential1: given(491)}, 491},
		{"final potential", ConservationParams{Kinetic2: given(100), Kinetic1: given(50), Potential1: given(200)}, 150},
		{"initial kinetic", ConservationParams{Kinetic2: given(100), Potential2: given(150), Potential1: given(200)}, 50},
		{"initial potential", ConservationParams{Kinetic2: given(100), Potential2: given(150), Kinetic1: given(50)}, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConservationOfEnergy(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ConservationOfEnergy(ConservationParams{Potential2: given(500), Kinetic1: given(10), Potential1: given(100)}); !errors.Is(err, physics.ErrImplausible) {
		t.Errorf("climbing beyond the energy budget: expected ErrImplausible, got %v", err)
	}
	if _, err := ConservationOfEnergy(ConservationParams{Kinetic2: given(-1), Potential2: given(0), Kinetic1: given(1)}); !errors.Is(err, physics.ErrInvalidInput) {
		t.Errorf("negative kinetic energy: expected ErrInvalidInput, got %v", err)
	}
}

func TestChapterIsConsistent(t *testing.T) {
	if err := Chapter().Validate(); err != nil {
		t.Fatal(err)
	}
}
