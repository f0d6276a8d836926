// Package sweep solves an equation repeatedly while one given value moves
// across a range.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/physcalc/internal/catalog"
)

var (
	ErrNoPoints = errors.New("sweep: no valid points in range")
	ErrBadSweep = errors.New("sweep: invalid sweep")
)

const (
	MinSteps     = 2
	DefaultSteps = 50
)

// Sweep varies Param from Min to Max in Steps evenly spaced values. Fixed
// holds every other given parameter; the one parameter in neither is
// solved for at each step.
type Sweep struct {
	Solver *catalog.Solver
	Fixed  map[string]float64
	Param  string
	Min    float64
	Max    float64
	Steps  int
}

// Series is the solved quantity as a function of the swept parameter.
// Points where the solver failed are left out and counted in Skipped.
type Series struct {
	Param   string
	Target  string
	X       []float64
	Y       []float64
	Skipped int
	// LastErr is the error of the last skipped point.
	LastErr error
}

func (sw Sweep) target() (string, error) {
	if sw.Solver == nil {
		return "", fmt.Errorf("%w: no solver", ErrBadSweep)
	}
	if !slices.Contains(sw.Solver.Params, sw.Param) {
		return "", fmt.Errorf("%w: %s does not take %q", ErrBadSweep, sw.Solver.ID, sw.Param)
	}
	if _, ok := sw.Fixed[sw.Param]; ok {
		return "", fmt.Errorf("%w: %q is both fixed and varied", ErrBadSweep, sw.Param)
	}

	var missing []string
	for _, p := range sw.Solver.Params {
		if p == sw.Param {
			continue
		}
		if _, ok := sw.Fixed[p]; !ok {
			missing = append(missing, p)
		}
	}
	if len(missing) != 1 {
		return "", fmt.Errorf("%w: exactly one parameter must be left to solve for, got %v", ErrBadSweep, missing)
	}
	return missing[0], nil
}

// Run executes the sweep.
func Run(ctx context.Context, sw Sweep) (*Series, error) {
	target, err := sw.target()
	if err != nil {
		return nil, err
	}
	if sw.Steps < MinSteps {
		return nil, fmt.Errorf("%w: need at least %d steps", ErrBadSweep, MinSteps)
	}

	series := &Series{
		Param:  sw.Param,
		Target: target,
		X:      make([]float64, 0, sw.Steps),
		Y:      make([]float64, 0, sw.Steps),
	}

	args := make(map[string]float64, len(sw.Fixed)+1)
	for k, v := range sw.Fixed {
		args[k] = v
	}

	step := (sw.Max - sw.Min) / float64(sw.Steps-1)
	for i := 0; i < sw.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		x := sw.Min + float64(i)*step
		args[sw.Param] = x
		y, err := sw.Solver.Solve(args)
		if err != nil {
			series.Skipped++
			series.LastErr = err
			continue
		}
		series.X = append(series.X, x)
		series.Y = append(series.Y, y)
	}

	if len(series.Y) == 0 {
		if series.LastErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoPoints, series.LastErr)
		}
		return nil, ErrNoPoints
	}
	return series, nil
}

// Plot renders the series as an ASCII line chart.
func (s *Series) Plot(width, height int) string {
	return asciigraph.Plot(s.Y,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("%s vs %s [%g, %g]", s.Target, s.Param, s.X[0], s.X[len(s.X)-1])),
	)
}
