package forces

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/physcalc/internal/physics"
)

var given = physics.Given

func TestFriction(t *testing.T) {
	tests := []struct {
		name  string
		solve func() (float64, error)
		want  float64
	}{
		{"kinetic force", func() (float64, error) {
			return KineticFriction(KineticFrictionParams{MuK: given(0.3), NormalF: given(100)})
		}, 30},
		{"kinetic coefficient", func() (float64, error) {
			return KineticFriction(KineticFrictionParams{FrictionK: given(30), NormalF: given(100)})
		}, 0.3},
		{"kinetic normal force", func() (float64, error) {
			return KineticFriction(KineticFrictionParams{FrictionK: given(30), MuK: given(0.3)})
		}, 100},
		{"static force", func() (float64, error) {
			return StaticFrictionMax(StaticFrictionParams{MuS: given(0.5), NormalF: given(98.2)})
		}, 49.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.solve()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := KineticFriction(KineticFrictionParams{FrictionK: given(30), NormalF: given(0)}); !errors.Is(err, physics.ErrDivisionByZero) {
		t.Errorf("zero normal force: expected ErrDivisionByZero, got %v", err)
	}
	if _, err := StaticFrictionMax(StaticFrictionParams{MuS: given(-0.5), NormalF: given(10)}); !errors.Is(err, physics.ErrInvalidInput) {
		t.Errorf("negative coefficient: expected ErrInvalidInput, got %v", err)
	}
}

func TestCentripetalForce(t *testing.T) {
	tests := []struct {
		name  string
		solve func() (float64, error)
		want  float64
	}{
		{"force", func() (float64, error) {
			return CentripetalForceTangVel(CentripetalTangentialParams{Mass: given(50), Velocity: given(75), Radius: given(100)})
		}, 2812.5},
		{"mass", func() (float64, error) {
			return CentripetalForceTangVel(CentripetalTangentialParams{CentripetalF: given(200), Velocity: given(25), Radius: given(3)})
		}, 0.96},
		{"velocity", func() (float64, error) {
			return CentripetalForceTangVel(CentripetalTangentialParams{CentripetalF: given(2812.5), Mass: given(50), Radius: given(100)})
		}, 75},
		{"radius", func() (float64, error) {
			return CentripetalForceTangVel(CentripetalTangentialParams{CentripetalF: given(2812.5), Mass: given(50), Velocity: given(75)})
		}, 100},
		{"angular force", func() (float64, error) {
			return CentripetalForceAngVel(CentripetalAngularParams{Mass: given(2), AngularVel: given(3), Radius: given(0.5)})
		}, 9},
		{"angular velocity", func() (float64, error) {
			return CentripetalForceAngVel(CentripetalAngularParams{CentripetalF: given(9), Mass: given(2), Radius: given(0.5)})
		}, 3},
		{"angular mass", func() (float64, error) {
			return CentripetalForceAngVel(CentripetalAngularParams{CentripetalF: given(9), AngularVel: given(3), Radius: given(0.5)})
		}, 2},
		{"angular radius", func() (float64, error) {
			return CentripetalForceAngVel(CentripetalAngularParams{CentripetalF: given(9), Mass: given(2), AngularVel: given(3)})
		}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.solve()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := CentripetalForceTangVel(CentripetalTangentialParams{CentripetalF: given(-10), Mass: given(1), Radius: given(1)}); !errors.Is(err, physics.ErrNonReal) {
		t.Errorf("negative force: expected ErrNonReal, got %v", err)
	}
	if _, err := CentripetalForceTangVel(CentripetalTangentialParams{CentripetalF: given(10), Velocity: given(0), Radius: given(1)}); !errors.Is(err, physics.ErrDivisionByZero) {
		t.Errorf("stationary: expected ErrDivisionByZero, got %v", err)
	}
	if _, err := CentripetalForceAngVel(CentripetalAngularParams{Mass: given(1), AngularVel: given(2), Radius: given(0)}); !errors.Is(err, physics.ErrInvalidInput) {
		t.Errorf("zero radius: expected ErrInvalidInput, got %v", err)
	}
}

func TestIdealAngBankedCurve(t *testing.T) {
	tests := []struct {
		name string
		p    BankedCurveParams
		want float64
	}{
		{"angle", BankedCurveParams{Velocity: given(20), Radius: given(100)}, 22.1628},
		{"speed", BankedCurveParams{Theta: given(45), Radius: given(100)}, 31.3369},
		{"radius", BankedCurveParams{Theta: given(45), Velocity: given(10)}, 10.1833},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IdealAngBankedCurve(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-2 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	errTests := []struct {
		name string
		p    BankedCurveParams
		want error
	}{
		{"vertical bank", BankedCurveParams{Theta: given(90), Radius: given(100)}, physics.ErrInvalidInput},
		{"negative bank", BankedCurveParams{Theta: given(-5), Radius: given(100)}, physics.ErrInvalidInput},
		{"flat road", BankedCurveParams{Theta: given(0), Velocity: given(10)}, physics.ErrDivisionByZero},
		{"standing still", BankedCurveParams{Theta: given(30), Velocity: given(0)}, physics.ErrImplausible},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := IdealAngBankedCurve(tt.p); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDrag(t *testing.T) {
	tests := []struct {
		name  string
		solve func() (float64, error)
		want  float64
		tol   float64
	}{
		{"drag force", func() (float64, error) {
			return DragForce(DragForceParams{DragCoeff: given(0.5), FluidDens: given(1.2), Area: given(2), Velocity: given(10)})
		}, 60, 1e-9},
		{"drag speed", func() (float64, error) {
			return DragForce(DragForceParams{DragF: given(60), DragCoeff: given(0.5), FluidDens: given(1.2), Area: given(2)})
		}, 10, 1e-9},
		{"drag coefficient", func() (float64, error) {
			return DragForce(DragForceParams{DragF: given(60), FluidDens: given(1.2), Area: given(2), Velocity: given(10)})
		}, 0.5, 1e-9},
		{"drag area", func() (float64, error) {
			return DragForce(DragForceParams{DragF: given(60), DragCoeff: given(0.5), FluidDens: given(1.2), Velocity: given(-10)})
		}, 2, 1e-9},
		{"stokes force", func() (float64, error) {
			return StokesLaw(StokesLawParams{Radius: given(1), Viscosity: given(1), Velocity: given(1)})
		}, 18.8496, 1e-3},
		{"stokes speed", func() (float64, error) {
			return StokesLaw(StokesLawParams{DragFs: given(6 * math.Pi), Radius: given(1), Viscosity: given(1)})
		}, 1, 1e-9},
		{"stokes viscosity", func() (float64, error) {
			return StokesLaw(StokesLawParams{DragFs: given(12 * math.Pi), Radius: given(1), Velocity: given(2)})
		}, 1, 1e-9},
		{"terminal velocity", func() (float64, error) {
			return TerminalVelocity(TerminalVelocityParams{Mass: given(80), DragCoeff: given(1), FluidDens: given(1.2), Area: given(0.7)})
		}, 43.249, 1e-2},
		{"terminal mass", func() (float64, error) {
			return TerminalVelocity(TerminalVelocityParams{TerminalVel: given(10), DragCoeff: given(1), FluidDens: given(1), Area: given(1)})
		}, 5.0916, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.solve()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := DragForce(DragForceParams{DragF: given(60), FluidDens: given(1.2), Area: given(2), Velocity: given(0)}); !errors.Is(err, physics.ErrDivisionByZero) {
		t.Errorf("at rest: expected ErrDivisionByZero, got %v", err)
	}
	if _, err := DragForce(DragForceParams{DragF: given(-1), DragCoeff: given(0.5), FluidDens: given(1.2), Area: given(2)}); !errors.Is(err, physics.ErrInvalidInput) {
		t.Errorf("negative drag: expected ErrInvalidInput, got %v", err)
	}
	if _, err := TerminalVelocity(TerminalVelocityParams{Mass: given(80), DragCoeff: given(0), FluidDens: given(1.2), Area: given(0.7)}); !errors.Is(err, physics.ErrInvalidInput) {
		t.Errorf("zero drag coefficient: expected ErrInvalidInput, got %v", err)
	}
}

func TestChapterIsConsistent(t *testing.T) {
	if err := Chapter().Validate(); err != nil {
		t.Fatal(err)
	}
}
