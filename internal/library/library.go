// Package library registers every chapter catalog and looks them up by
// number or slug.
package library

import (
	"errors"
	"fmt"

	"github.com/san-kum/physcalc/internal/catalog"
	"github.com/san-kum/physcalc/internal/physics/angular"
	"github.com/san-kum/physcalc/internal/physics/elasticity"
	"github.com/san-kum/physcalc/internal/physics/energy"
	"github.com/san-kum/physcalc/internal/physics/fluids"
	"github.com/san-kum/physcalc/internal/physics/forces"
	"github.com/san-kum/physcalc/internal/physics/gravitation"
	"github.com/san-kum/physcalc/internal/physics/momentum"
	"github.com/san-kum/physcalc/internal/physics/motion"
	"github.com/san-kum/physcalc/internal/physics/newton"
	"github.com/san-kum/physcalc/internal/physics/projectile"
	"github.com/san-kum/physcalc/internal/physics/rotation"
	"github.com/san-kum/physcalc/internal/physics/work"
)

var ErrUnknownChapter = errors.New("unknown chapter")

// Library holds the chapters in textbook order.
type Library struct {
	chapters []*catalog.Chapter
	byKey    map[string]*catalog.Chapter
	solvers  map[string]Entry
}

// Entry pairs a solvable equation with the chapter it belongs to.
type Entry struct {
	Chapter  *catalog.Chapter
	Equation *catalog.Equation
}

func New() *Library {
	l := &Library{
		byKey:   make(map[string]*catalog.Chapter),
		solvers: make(map[string]Entry),
	}

	l.register(motion.Chapter())
	l.register(projectile.Chapter())
	l.register(newton.Chapter())
	l.register(forces.Chapter())
	l.register(work.Chapter())
	l.register(energy.Chapter())
	l.register(momentum.Chapter())
	l.register(rotation.Chapter())
	l.register(angular.Chapter())
	l.register(elasticity.Chapter())
	l.register(gravitation.Chapter())
	l.register(fluids.Chapter())

	return l
}

func (l *Library) register(c *catalog.Chapter) {
	l.chapters = append(l.chapters, c)
	l.byKey[c.Key()] = c
	l.byKey[c.Slug] = c
	for _, eq := range c.Solvable() {
		l.solvers[eq.Solver.ID] = Entry{Chapter: c, Equation: eq}
	}
}

// Chapters returns every chapter in order. The slice is shared; do not
// modify it.
func (l *Library) Chapters() []*catalog.Chapter {
	return l.chapters
}

// Chapter resolves a chapter number ("3") or slug ("motion").
func (l *Library) Chapter(key string) (*catalog.Chapter, error) {
	c, ok := l.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChapter, key)
	}
	return c, nil
}

// Lookup resolves a chapter and one of its equations by name or solver ID.
func (l *Library) Lookup(chapter, equation string) (*catalog.Chapter, *catalog.Equation, error) {
	c, err := l.Chapter(chapter)
	if err != nil {
		return nil, nil, err
	}
	eq, err := c.Equation(equation)
	if err != nil {
		return nil, nil, err
	}
	return c, eq, nil
}

// Solver finds a solvable equation by its solver ID across all chapters.
func (l *Library) Solver(id string) (Entry, error) {
	e, ok := l.solvers[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: no solver %q", catalog.ErrUnknownEquation, id)
	}
	return e, nil
}

// Solvers lists every solvable equation in chapter order.
func (l *Library) Solvers() []Entry {
	var out []Entry
	for _, c := range l.chapters {
		for _, eq := range c.Solvable() {
			out = append(out, Entry{Chapter: c, Equation: eq})
		}
	}
	return out
}

// Validate checks every chapter catalog against its solvers.
func (l *Library) Validate() error {
	for _, c := range l.chapters {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
