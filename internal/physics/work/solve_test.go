package work

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
		{"constant force work", func() (float64, error) {
			return WorkConstantForce(ConstantForceParams{ConstF: given(10), Distance: given(5), Theta: given(60)})
		}, 25},
		{"constant force", func() (float64, error) {
			return WorkConstantForce(ConstantForceParams{Work: given(25), Distance: given(5), Theta: given(60)})
		}, 10},
		{"constant force distance", func() (float64, error) {
			return WorkConstantForce(ConstantForceParams{Work: given(25), ConstF: given(10), Theta: given(60)})
		}, 5},
		{"constant force angle", func() (float64, error) {
			return WorkConstantForce(ConstantForceParams{Work: given(25), ConstF: given(10), Distance: given(5)})
		}, 60},
		{"gravity work", func() (float64, error) {
			return WorkByGravity(GravityParams{Mass: given(2), InitialHeight: given(10), FinalHeight: given(0)})
		}, 196.4},
		{"gravity mass", func() (float64, error) {
			return WorkByGravity(GravityParams{Work: given(196.4), InitialHeight: given(10), FinalHeight: given(0)})
		}, 2},
		{"gravity initial height", func() (float64, error) {
			return WorkByGravity(GravityParams{Work: given(196.4), Mass: given(2), FinalHeight: given(0)})
		}, 10},
		{"gravity final height", func() (float64, error) {
			return WorkByGravity(GravityParams{Work: given(196.4), Mass: given(2), InitialHeight: given(10)})
		}, 0},
		{"spring work", func() (float64, error) {
			return WorkBySpring(SpringParams{SpringConst: given(100), InitialXPos: given(0.1), FinalXPos: given(0.05)})
		}, 0.375},
		{"spring constant", func() (float64, error) {
			return WorkBySpring(SpringParams{Work: given(0.375), InitialXPos: given(0.1), FinalXPos: given(0.05)})
		}, 100},
		{"spring initial position", func() (float64, error) {
			return WorkBySpring(SpringParams{Work: given(0.375), SpringConst: given(100), FinalXPos: given(0.05)})
		}, 0.1},
		{"spring final position", func() (float64, error) {
			return WorkBySpring(SpringParams{Work: given(0.375), SpringConst: given(100), InitialXPos: given(-0.1)})
		}, 0.05},
		{"kinetic energy", func() (float64, error) {
			return KineticEnergy(KineticEnergyParams{Mass: given(2), Velocity: given(-3)})
		}, 9},
		{"kinetic mass", func() (float64, error) {
			return KineticEnergy(KineticEnergyParams{KineticE: given(9), Velocity: given(3)})
		}, 2},
		{"kinetic speed", func() (float64, error) {
			return KineticEnergy(KineticEnergyParams{KineticE: given(9), Mass: given(2)})
		}, 3},
		{"momentum form energy", func() (float64, error) {
			return KineticEnergyMomentum(MomentumFormParams{Mass: given(2), Momentum: given(6)})
		}, 9},
		{"momentum form mass", func() (float64, error) {
			return KineticEnergyMomentum(MomentumFormParams{KineticE: given(9), Momentum: given(6)})
		}, 2},
		{"momentum form momentum", func() (float64, error) {
			return KineticEnergyMomentum(MomentumFormParams{KineticE: given(9), Mass: given(2)})
		}, 6},
		{"net work", func() (float64, error) {
			return WorkEnergyTheorem(WorkEnergyParams{Mass: given(2), FinalVel: given(5), InitialVel: given(3)})
		}, 16},
		{"net work mass", func() (float64, error) {
			return WorkEnergyTheorem(WorkEnergyParams{NetWork: given(16), FinalVel: given(5), InitialVel: given(3)})
		}, 2},
		{"net work final velocity", func() (float64, error) {
			return WorkEnergyTheorem(WorkEnergyParams{NetWork: given(16), Mass: given(2), InitialVel: given(3)})
		}, 5},
		{"net work initial velocity", func() (float64, error) {
			return WorkEnergyTheorem(WorkEnergyParams{NetWork: given(16), Mass: given(2), FinalVel: given(5)})
		}, 3},
		{"power", func() (float64, error) {
			return AveragePower(AveragePowerParams{Work: given(100), ElapsedTime: given(4)})
		}, 25},
		{"power work", func() (float64, error) {
			return AveragePower(AveragePowerParams{Power: given(25), ElapsedTime: given(4)})
		}, 100},
		{"power time", func() (float64, error) {
			return AveragePower(AveragePowerParams{Power: given(25), Work: given(100)})
		}, 4},
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
}

func TestSolverErrors(t *testing.T) {
	tests := []struct {
		name  string
		solve func() (float64, error)
		want  error
	}{
		{"force perpendicular to motion", func() (float64, error) {
			return WorkConstantForce(ConstantForceParams{Work: given(25), Distance: given(5), Theta: given(90)})
		}, physics.ErrDivisionByZero},
		{"more work than force allows", func() (float64, error) {
			return WorkConstantForce(ConstantForceParams{Work: given(100), ConstF: given(10), Distance: given(5)})
		}, physics.ErrNonReal},
		{"negative distance", func() (float64, error) {
			return WorkConstantForce(ConstantForceParams{ConstF: given(10), Distance: given(-5), Theta: given(0)})
		}, physics.ErrInvalidInput},
		{"gravity does work while climbing", func() (float64, error) {
			return WorkByGravity(GravityParams{Work: given(196.4), InitialHeight: given(0), FinalHeight: given(10)})
		}, physics.ErrImplausible},
		{"no height change", func() (float64, error) {
			return WorkByGravity(GravityParams{Work: given(10), InitialHeight: given(3), FinalHeight: given(3)})
		}, physics.ErrDivisionByZero},
		{"negative spring constant", func() (float64, error) {
			return WorkBySpring(SpringParams{SpringConst: given(-1), InitialXPos: given(0), FinalXPos: given(1)})
		}, physics.ErrInvalidInput},
		{"slack spring", func() (float64, error) {
			return WorkBySpring(SpringParams{Work: given(1), SpringConst: given(0), FinalXPos: given(1)})
		}, physics.ErrDivisionByZero},
		{"spring cannot release that much", func() (float64, error) {
			return WorkBySpring(SpringParams{Work: given(1), SpringConst: given(100), InitialXPos: given(0.1)})
		}, physics.ErrNonReal},
		{"negative kinetic energy", func() (float64, error) {
			return KineticEnergy(KineticEnergyParams{KineticE: given(-1), Mass: given(2)})
		}, physics.ErrInvalidInput},
		{"kinetic mass at rest", func() (float64, error) {
			return KineticEnergy(KineticEnergyParams{KineticE: given(9), Velocity: given(0)})
		}, physics.ErrDivisionByZero},
		{"massless with zero energy", func() (float64, error) {
			return KineticEnergy(KineticEnergyParams{KineticE: given(0), Velocity: given(3)})
		}, physics.ErrImplausible},
		{"more work than energy", func() (float64, error) {
			return WorkEnergyTheorem(WorkEnergyParams{NetWork: given(100), Mass: given(2), FinalVel: given(5)})
		}, physics.ErrNonReal},
		{"no change in speed", func() (float64, error) {
			return WorkEnergyTheorem(WorkEnergyParams{NetWork: given(1), FinalVel: given(5), InitialVel: given(-5)})
		}, physics.ErrDivisionByZero},
		{"zero elapsed time", func() (float64, error) {
			return AveragePower(AveragePowerParams{Work: given(100), ElapsedTime: given(0)})
		}, physics.ErrInvalidInput},
		{"zero power", func() (float64, error) {
			return AveragePower(AveragePowerParams{Power: given(0), Work: given(100)})
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
