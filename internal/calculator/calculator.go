// Package calculator turns form input into a solved equation and records
// the result.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/physcalc/internal/catalog"
	"github.com/san-kum/physcalc/internal/history"
	"github.com/san-kum/physcalc/internal/library"
)

var ErrInvalidNumber = errors.New("invalid number")

// Recorder receives every successful calculation.
type Recorder interface {
	Save(r *history.Record) error
}

// Request is a filled-in form. Inputs are keyed by display symbol; an
// empty value or "?" marks the symbol to solve for.
type Request struct {
	Chapter  string
	Equation string
	Inputs   map[string]string
}

type Result struct {
	Chapter  *catalog.Chapter
	Equation *catalog.Equation
	catalog.Solution
	// Inputs holds the given values keyed by parameter name.
	Inputs map[string]float64
}

type Calculator struct {
	lib    *library.Library
	rec    Recorder
	logger *slog.Logger
}

// New returns a calculator over lib. rec may be nil to skip history.
func New(lib *library.Library, rec Recorder, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{lib: lib, rec: rec, logger: logger}
}

func (c *Calculator) Library() *library.Library {
	return c.lib
}

// Parse converts the text inputs of req to values, nil for blanks.
func Parse(inputs map[string]string) (map[string]*float64, error) {
	out := make(map[string]*float64, len(inputs))
	for sym, text := range inputs {
		text = strings.TrimSpace(text)
		if text == "" || text == "?" {
			out[sym] = nil
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w for %s: %q", ErrInvalidNumber, sym, text)
		}
		out[sym] = &v
	}
	return out, nil
}

// Calculate parses req and solves it.
func (c *Calculator) Calculate(ctx context.Context, req Request) (Result, error) {
	values, err := Parse(req.Inputs)
	if err != nil {
		return Result{}, err
	}
	return c.Solve(ctx, req.Chapter, req.Equation, values)
}

// Solve solves an equation for the one symbol whose value is nil or
// absent from inputs.
func (c *Calculator) Solve(ctx context.Context, chapter, equation string, inputs map[string]*float64) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	ch, eq, err := c.lib.Lookup(chapter, equation)
	if err != nil {
		return Result{}, err
	}
	sol, err := ch.Solve(eq, inputs)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Chapter:  ch,
		Equation: eq,
		Solution: sol,
		Inputs:   make(map[string]float64, len(inputs)),
	}
	for sym, v := range inputs {
		if v == nil {
			continue
		}
		p, err := ch.Param(eq, sym)
		if err != nil {
			return Result{}, err
		}
		res.Inputs[p] = *v
	}

	c.record(res)
	return res, nil
}

func (c *Calculator) record(res Result) {
	if c.rec == nil {
		return
	}
	r := &history.Record{
		Chapter:  res.Chapter.Key(),
		Equation: res.Equation.Name,
		Solver:   res.Equation.Solver.ID,
		Symbol:   res.Symbol,
		Param:    res.Param,
		Value:    res.Value,
		Inputs:   res.Inputs,
	}
	if err := c.rec.Save(r); err != nil {
		c.logger.Warn("failed to record history",
			"chapter", r.Chapter, "equation", r.Equation, "error", err)
	}
}
