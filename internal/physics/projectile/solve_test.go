package projectile

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/physcalc/internal/physics"
)

var given = physics.Given

func TestTimeOfFlight(t *testing.T) {
	tests := []struct {
		name string
		p    TimeOfFlightParams
		want float64
		tol  float64
	}{
		{"time", TimeOfFlightParams{V0: given(25), Theta: given(25.7)}, 2.208, 1e-3},
		{"time steep", TimeOfFlightParams{V0: given(100), Theta: given(75.8)}, 19.744, 1e-3},
		{"speed", TimeOfFlightParams{T: given(5), Theta: given(25.8)}, 56.41, 1e-2},
		{"speed 45", TimeOfFlightParams{T: given(20), Theta: given(45)}, 138.88, 1e-2},
		{"zero speed", TimeOfFlightParams{T: given(0), Theta: given(10)}, 0, 1e-9},
		{"angle", TimeOfFlightParams{T: given(2.2080), V0: given(25)}, 25.7, 1e-2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeOfFlight(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeOfFlightErrors(t *testing.T) {
	tests := []struct {
		name string
		p    TimeOfFlightParams
		want error
	}{
		{"zero speed for angle", TimeOfFlightParams{T: given(0), V0: given(0)}, physics.ErrDivisionByZero},
		{"negative time", TimeOfFlightParams{T: given(-10), V0: given(10)}, physics.ErrInvalidInput},
		{"angle out of range", TimeOfFlightParams{T: given(45), V0: given(10)}, physics.ErrNonReal},
		{"flat launch", TimeOfFlightParams{T: given(3), Theta: given(0)}, physics.ErrDivisionByZero},
		{"negative speed", TimeOfFlightParams{V0: given(-1), Theta: given(30)}, physics.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TimeOfFlight(tt.p)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestTrajectory(t *testing.T) {
	tests := []struct {
		name string
		p    TrajectoryParams
		want float64
	}{
		{"height", TrajectoryParams{X: given(50), Theta: given(40), V0: given(30)}, 18.7131},
		{"landing distance", TrajectoryParams{Y: given(0), Theta: given(45), V0: given(25)}, 63.6456},
		{"speed", TrajectoryParams{Y: given(50), X: given(100), Theta: given(67)}, 41.6285},
		{"low angle", TrajectoryParams{Y: given(18.713112), X: given(50), V0: given(30)}, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Trajectory(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrajectoryErrors(t *testing.T) {
	tests := []struct {
		name string
		p    TrajectoryParams
		want error
	}{
		{"flat and at origin", TrajectoryParams{Y: given(0), X: given(0), Theta: given(0)}, physics.ErrDivisionByZero},
		{"below the line of sight", TrajectoryParams{Y: given(20), X: given(-10), Theta: given(45)}, physics.ErrNonReal},
		{"zero speed", TrajectoryParams{Y: given(0), Theta: given(45), V0: given(0)}, physics.ErrDivisionByZero},
		{"vertical launch", TrajectoryParams{X: given(10), Theta: given(90), V0: given(20)}, physics.ErrDivisionByZero},
		{"too slow for target", TrajectoryParams{Y: given(100), X: given(100), V0: given(10)}, physics.ErrNonReal},
		{"never that high", TrajectoryParams{Y: given(500), Theta: given(45), V0: given(25)}, physics.ErrNonReal},
		{"negative speed", TrajectoryParams{Y: given(10), X: given(10), V0: given(-10)}, physics.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Trajectory(tt.p)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestProjectileRange(t *testing.T) {
	tests := []struct {
		name string
		p    RangeParams
		want float64
	}{
		{"range", RangeParams{V0: given(10), Theta: given(25)}, 7.8009},
		{"range 45", RangeParams{V0: given(40), Theta: given(45)}, 162.9328},
		{"angle", RangeParams{Range: given(150), V0: given(40)}, 33.5088},
		{"speed", RangeParams{Range: given(150), Theta: given(30)}, 41.2417},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProjectileRange(tt.p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ProjectileRange(RangeParams{Range: given(500), V0: given(40)}); !errors.Is(err, physics.ErrNonReal) {
		t.Errorf("range beyond maximum: expected ErrNonReal, got %v", err)
	}
	if _, err := ProjectileRange(RangeParams{Range: given(10), Theta: given(90)}); !errors.Is(err, physics.ErrDivisionByZero) {
		t.Errorf("vertical launch: expected ErrDivisionByZero, got %v", err)
	}
}

func TestCentripetalAcceleration(t *testing.T) {
	got, err := CentripetalAcceleration(CentripetalAccelerationParams{Velocity: given(20), Radius: given(4)})
	if err != nil || got != 100 {
		t.Errorf("got %v, %v; want 100", got, err)
	}
	got, err = CentripetalAcceleration(CentripetalAccelerationParams{AccelC: given(100), Radius: given(4)})
	if err != nil || got != 20 {
		t.Errorf("got %v, %v; want 20", got, err)
	}
	if _, err := CentripetalAcceleration(CentripetalAccelerationParams{Velocity: given(20), Radius: given(0)}); !errors.Is(err, physics.ErrInvalidInput) {
		t.Errorf("zero radius: expected ErrInvalidInput, got %v", err)
	}
	if _, err := CentripetalAcceleration(CentripetalAccelerationParams{AccelC: given(0), Velocity: given(3)}); !errors.Is(err, physics.ErrDivisionByZero) {
		t.Errorf("zero acceleration: expected ErrDivisionByZero, got %v", err)
	}
}

func TestChapterIsConsistent(t *testing.T) {
	if err := Chapter().Validate(); err != nil {
		t.Fatal(err)
	}
}
