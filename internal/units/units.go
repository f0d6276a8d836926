// Package units converts between units of the same quantity by scaling
// through a base unit.
package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownUnit = errors.New("unknown unit")

// Unit is one named unit and its size in the quantity's base unit.
type Unit struct {
	Name  string
	Scale float64
}

// Quantity is a family of interconvertible units.
type Quantity struct {
	Name  string
	Base  string
	units []Unit
}

// Units lists the unit names from smallest to largest.
func (q *Quantity) Units() []string {
	out := make([]string, len(q.units))
	for i, u := range q.units {
		out[i] = u.Name
	}
	return out
}

func (q *Quantity) scale(name string) (float64, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, u := range q.units {
		if u.Name == name {
			return u.Scale, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownUnit, name)
}

// Convert rescales value from one unit to another.
func (q *Quantity) Convert(value float64, from, to string) (float64, error) {
	f, err := q.scale(from)
	if err != nil {
		return 0, err
	}
	t, err := q.scale(to)
	if err != nil {
		return 0, err
	}
	return value * f / t, nil
}

var quantities = []*Quantity{
	{
		Name: "length",
		Base: "meter",
		units: []Unit{
			{"nanometer", 1e-9},
			{"micrometer", 1e-6},
			{"millimeter", 1e-3},
			{"centimeter", 1e-2},
			{"inch", 0.0254},
			{"decimeter", 1e-1},
			{"foot", 0.3048},
			{"yard", 0.9144},
			{"meter", 1},
			{"kilometer", 1e3},
			{"mile", 1609.34},
		},
	},
	{
		Name: "mass",
		Base: "kilogram",
		units: []Unit{
			{"milligram", 1e-6},
			{"gram", 1e-3},
			{"ounce", 0.028349523125},
			{"pound", 0.45359237},
			{"kilogram", 1},
			{"tonne", 1e3},
		},
	},
	{
		Name: "time",
		Base: "second",
		units: []Unit{
			{"nanosecond", 1e-9},
			{"microsecond", 1e-6},
			{"millisecond", 1e-3},
			{"second", 1},
			{"minute", 60},
			{"hour", 3600},
			{"day", 86400},
			{"year", 365.25 * 86400},
		},
	},
	{
		Name: "angle",
		Base: "radian",
		units: []Unit{
			{"arcsecond", math.Pi / 648000},
			{"arcminute", math.Pi / 10800},
			{"degree", math.Pi / 180},
			{"radian", 1},
			{"revolution", 2 * math.Pi},
		},
	},
	{
		Name: "pressure",
		Base: "pascal",
		units: []Unit{
			{"pascal", 1},
			{"torr", 101325.0 / 760},
			{"kilopascal", 1e3},
			{"psi", 6894.757293168},
			{"bar", 1e5},
			{"atmosphere", 101325},
			{"megapascal", 1e6},
		},
	},
	{
		Name: "energy",
		Base: "joule",
		units: []Unit{
			{"electronvolt", 1.602176634e-19},
			{"joule", 1},
			{"calorie", 4.184},
			{"kilojoule", 1e3},
			{"watt_hour", 3600},
			{"kilocalorie", 4184},
			{"kilowatt_hour", 3.6e6},
		},
	},
}

// Quantities returns every quantity in a fixed order. The values are
// copies; changing them does not affect conversions.
func Quantities() []*Quantity {
	out := make([]*Quantity, len(quantities))
	for i, q := range quantities {
		c := *q
		out[i] = &c
	}
	return out
}

// Lookup finds a quantity by name.
func Lookup(name string) (*Quantity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, q := range quantities {
		if q.Name == name {
			c := *q
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownUnit, name)
}

// Convert converts value of the named quantity between two units.
func Convert(quantity string, value float64, from, to string) (float64, error) {
	q, err := Lookup(quantity)
	if err != nil {
		return 0, err
	}
	return q.Convert(value, from, to)
}
