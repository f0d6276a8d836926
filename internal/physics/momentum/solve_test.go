package momentum

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/physcalc/internal/physics"
)

var given = physics.Given

func TestSolvers(t *testing.T) {
	tests := []struct {
		name  string
		solve func() (float64, error)
		want  float64
	}{
		{"momentum", func() (float64, error) { return Momentum(MomentumParams{Mass: given(2), Velocity: given(3)}) }, 6},
		{"momentum mass", func() (float64, error) { return Momentum(MomentumParams{Momentum: given(6), Velocity: given(3)}) }, 2},
		{"momentum velocity", func() (float64, error) { return Momentum(MomentumParams{Momentum: given(-6), Mass: given(2)}) }, -3},
		{"impulse", func() (float64, error) { return Impulse(ImpulseParams{AvgForce: given(10), ElapsedTime: given(0.5)}) }, 5},
		{"impulse force", func() (float64, error) { return Impulse(ImpulseParams{Impulse: given(5), ElapsedTime: given(0.5)}) }, 10},
		{"impulse time", func() (float64, error) { return Impulse(ImpulseParams{Impulse: given(5), AvgForce: given(10)}) }, 0.5},
		{"impulse from momentum", func() (float64, error) {
			return ImpulseMomentum(ImpulseMomentumParams{Mass: given(2), FinalVel: given(5), InitialVel: given(3)})
		}, 4},
		{"impulse mass", func() (float64, error) {
			return ImpulseMomentum(ImpulseMomentumParams{Impulse: given(4), FinalVel: given(5), InitialVel: given(3)})
		}, 2},
		{"impulse final velocity", func() (float64, error) {
			return ImpulseMomentum(ImpulseMomentumParams{Impulse: given(4), Mass: given(2), InitialVel: given(3)})
		}, 5},
		{"impulse initial velocity", func() (float64, error) {
			return ImpulseMomentum(ImpulseMomentumParams{Impulse: given(4), Mass: given(2), FinalVel: given(5)})
		}, 3},
		{"rocket delta v", func() (float64, error) {
			return RocketEquation(RocketParams{ExhaustVel: given(3000), InitMass: given(100), FinalMass: given(50)})
		}, 2079.4415},
		{"rocket initial mass", func() (float64, error) {
			return RocketEquation(RocketParams{DeltaV: given(3000 * math.Ln2), ExhaustVel: given(3000), FinalMass: given(50)})
		}, 100},
		{"rocket final mass", func() (float64, error) {
			return RocketEquation(RocketParams{DeltaV: given(3000 * math.Ln2), ExhaustVel: given(3000), InitMass: given(100)})
		}, 50},
		{"rocket exhaust", func() (float64, error) {
			return RocketEquation(RocketParams{DeltaV: given(3000 * math.Ln2), InitMass: given(100), FinalMass: given(50)})
		}, 3000},
		{"center of mass", func() (float64, error) {
			return CenterOfMass(CenterOfMassParams{Mass1: given(1), X1: given(0), Mass2: given(3), X2: given(4)})
		}, 3},
		{"center first mass", func() (float64, error) {
			return CenterOfMass(CenterOfMassParams{XCM: given(3), X1: given(0), Mass2: given(3), X2: given(4)})
		}, 1},
		{"center first position", func() (float64, error) {
			return CenterOfMass(CenterOfMassParams{XCM: given(3), Mass1: given(1), Mass2: given(3), X2: given(4)})
		}, 0},
		{"center second mass", func() (float64, error) {
			return CenterOfMass(CenterOfMassParams{XCM: given(3), Mass1: given(1), X1: given(0), X2: given(4)})
		}, 3},
		{"center second position", func() (float64, error) {
			return CenterOfMass(CenterOfMassParams{XCM: given(3), Mass1: given(1), X1: given(0), Mass2: given(3)})
		}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.solve()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInelasticCollision(t *testing.T) {
	tests := []struct {
		name string
		p    InelasticParams
		want float64
	}{
		{"final velocity", InelasticParams{MassF: given(3), Mass1: given(2), Velocity1: given(3), Mass2: given(1), Velocity2: given(0)}, 2},
		{"final mass", InelasticParams{VelocityF: given(2), Mass1: given(2), Velocity1: given(3), Mass2: given(1), Velocity2: given(0)}, 3},
		{"first mass", InelasticParams{VelocityF: given(2), MassF: given(3), Velocity1: given(3), Mass2: given(1), Velocity2: given(0)}, 2},
		{"first velocity", InelasticParams{VelocityF: given(2), MassF: given(3), Mass1: given(2), Mass2: given(1), Velocity2: given(0)}, 3},
		{"second mass", InelasticParams{VelocityF: given(1), MassF: given(3), Mass1: given(2), Velocity1: given(3), Velocity2: given(-3)}, 1},
		{"second velocity", InelasticParams{VelocityF: given(1), MassF: given(3), Mass1: given(2), Velocity1: given(3), Mass2: given(1)}, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InelasticCollisionMomentum(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	_, err := InelasticCollisionMomentum(InelasticParams{MassF: given(0), Mass1: given(2), Velocity1: given(3), Mass2: given(1), Velocity2: given(0)})
	if err == nil || err.Error() != "all objects must have a mass greater than zero" {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := InelasticCollisionMomentum(InelasticParams{VelocityF: given(2), MassF: given(3), Mass1: given(2), Velocity1: given(3), Velocity2: given(0)}); !errors.Is(err, physics.ErrDivisionByZero) {
		t.Errorf("second body at rest: expected ErrDivisionByZero, got %v", err)
	}
}

func TestElasticCollision(t *testing.T) {
	// m₁ = 2 at 3 m/s strikes m₂ = 1 at rest: v₁′ = 1, v₂′ = 4.
	first := []struct {
		name string
		p    ElasticParams
		want float64
	}{
		{"final velocity", ElasticParams{Mass1: given(2), Mass2: given(1), InitVel1: given(3), InitVel2: given(0)}, 1},
		{"first mass", ElasticParams{FinalVel1: given(1), Mass2: given(1), InitVel1: given(3), InitVel2: given(0)}, 2},
		{"second mass", ElasticParams{FinalVel1: given(1), Mass1: given(2), InitVel1: given(3), InitVel2: given(0)}, 1},
		{"first initial velocity", ElasticParams{FinalVel1: given(1), Mass1: given(2), Mass2: given(1), InitVel2: given(0)}, 3},
		{"second initial velocity", ElasticParams{FinalVel1: given(1), Mass1: given(2), Mass2: given(1), InitVel1: given(3)}, 0},
	}
	for _, tt := range first {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ElasticCollision(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	second := []struct {
		name string
		p    ElasticSecondParams
		want float64
	}{
		{"second final velocity", ElasticSecondParams{Mass1: given(2), Mass2: given(1), InitVel1: given(3), InitVel2: given(0)}, 4},
		{"second view first mass", ElasticSecondParams{FinalVel2: given(4), Mass2: given(1), InitVel1: given(3), InitVel2: given(0)}, 2},
		{"second view second mass", ElasticSecondParams{FinalVel2: given(4), Mass1: given(2), InitVel1: given(3), InitVel2: given(0)}, 1},
		{"second view first velocity", ElasticSecondParams{FinalVel2: given(4), Mass1: given(2), Mass2: given(1), InitVel2: given(0)}, 3},
		{"second view second velocity", ElasticSecondParams{FinalVel2: given(4), Mass1: given(2), Mass2: given(1), InitVel1: given(3)}, 0},
	}
	for _, tt := range second {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ElasticCollisionSecond(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ElasticCollision(ElasticParams{FinalVel1: given(0), Mass1: given(1), Mass2: given(1), InitVel2: given(5)}); !errors.Is(err, physics.ErrDivisionByZero) {
		t.Errorf("equal masses: expected ErrDivisionByZero, got %v", err)
	}
	if _, err := ElasticCollision(ElasticParams{Mass1: given(-2), Mass2: given(1), InitVel1: given(3), InitVel2: given(0)}); !errors.Is(err, physics.ErrInvalidInput) {
		t.Errorf("negative mass: expected ErrInvalidInput, got %v", err)
	}
}

func TestSolverErrors(t *testing.T) {
	tests := []struct {
		name  string
		solve func() (float64, error)
		want  error
	}{
		{"mass at rest", func() (float64, error) { return Momentum(MomentumParams{Momentum: given(6), Velocity: given(0)}) }, physics.ErrDivisionByZero},
		{"zero force", func() (float64, error) { return Impulse(ImpulseParams{Impulse: given(6), AvgForce: given(0)}) }, physics.ErrDivisionByZero},
		{"no velocity change", func() (float64, error) {
			return ImpulseMomentum(ImpulseMomentumParams{Impulse: given(4), FinalVel: given(3), InitialVel: given(3)})
		}, physics.ErrDivisionByZero},
		{"no fuel burnt", func() (float64, error) {
			return RocketEquation(RocketParams{DeltaV: given(10), InitMass: given(50), FinalMass: given(50)})
		}, physics.ErrDivisionByZero},
		{"rocket gains mass", func() (float64, error) {
			return RocketEquation(RocketParams{ExhaustVel: given(3000), InitMass: given(50), FinalMass: given(100)})
		}, physics.ErrInvalidInput},
		{"center outside the bodies", func() (float64, error) {
			return CenterOfMass(CenterOfMassParams{XCM: given(5), X1: given(0), Mass2: given(3), X2: given(4)})
		}, physics.ErrImplausible},
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
