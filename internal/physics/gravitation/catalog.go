// Package gravitation covers Newton's law of universal gravitation,
// orbits and escape from a gravitating body.
package gravitation

import "github.com/san-kum/physcalc/internal/catalog"

const constants = "G = 6.674×10⁻¹¹ N⋅m²/kg², c = 299 792 458 m/s"

// Chapter returns the catalog for chapter 13.
func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      13,
		Slug:        "gravitation",
		Title:       "Gravitation",
		Description: "Universal gravitation, orbits, escape velocity and Kepler's laws.",
		Equations: []catalog.Equation{
			{
				Name:    "Newton's law of gravitation",
				Formula: "F = Gm₁m₂/r²",
				Variables: []catalog.Variable{
					catalog.Var("F", "Magnitude of the gravitational force (N)"),
					catalog.Var("m₁", "Mass of the first object (kg)"),
					catalog.Var("m₂", "Mass of the second object (kg)"),
					catalog.Var("r", "Distance between the centers of mass (m)"),
				},
				Notes:  constants,
				Solver: catalog.NewSolver("newtons_law_of_gravitation", NewtonsLawOfGravitation),
			},
			{
				Name:    "Acceleration due to gravity at the surface",
				Formula: "g = GM/R²",
				Variables: []catalog.Variable{
					catalog.Var("g", "Gravitational acceleration at the surface (m/s²)"),
					catalog.Var("M", "Mass of the body (kg)"),
					catalog.Var("R", "Radius of the body (m)"),
				},
				Solver: catalog.NewSolver("gravitational_acceleration", GravitationalAcceleration),
			},
			{
				Name:    "Gravitational potential energy beyond Earth",
				Formula: "U = −Gm₁m₂/r",
				Variables: []catalog.Variable{
					catalog.Var("U", "Gravitational potential energy, zero at infinity (J)"),
					catalog.Var("m₁", "Mass of the first object (kg)"),
					catalog.Var("m₂", "Mass of the second object (kg)"),
					catalog.Var("r", "Distance between the centers of mass (m)"),
				},
				Solver: catalog.NewSolver("universal_gravitational_potential_energy", GravitationalPotentialEnergy),
			},
			{Name: "Conservation of energy", Formula: "½mv₁² − GMm/r₁ = ½mv₂² − GMm/r₂"},
			{
				Name:    "Escape velocity",
				Formula: "v(esc) = √(2GM/R)",
				Variables: []catalog.Variable{
					catalog.Var("v(esc)", "Escape velocity (m/s)"),
					catalog.Var("M", "Mass of the body (kg)"),
					catalog.Var("R", "Radius of the body (m)"),
				},
				Solver: catalog.NewSolver("escape_velocity", EscapeVelocity),
			},
			{
				Name:    "Orbital speed",
				Formula: "v(orbit) = √(GM/r)",
				Variables: []catalog.Variable{
					catalog.Var("v(orbit)", "Speed of a circular orbit (m/s)"),
					catalog.Var("M", "Mass of the central body (kg)"),
					catalog.Var("r", "Orbital radius (m)"),
				},
				Solver: catalog.NewSolver("orbital_velocity", OrbitalVelocity),
			},
			{
				Name:    "Orbital period",
				Formula: "T = 2π√(r³/(GM))",
				Variables: []catalog.Variable{
					catalog.Var("T", "Period of a circular orbit (s)"),
					catalog.Var("r", "Orbital radius (m)"),
					catalog.Var("M", "Mass of the central body (kg)"),
				},
				Solver: catalog.NewSolver("orbital_period", OrbitalPeriod),
			},
			{Name: "Energy in circular orbit", Formula: "E = K + U = −GMm/(2r)"},
			{
				Name:    "Kepler's third law",
				Formula: "T₁²/T₂² = r₁³/r₂³",
				Variables: []catalog.Variable{
					catalog.Var("T₁", "Period of the first orbit (s)"),
					catalog.Var("T₂", "Period of the second orbit (s)"),
					catalog.Var("r₁", "Semi-major axis of the first orbit (m)"),
					catalog.Var("r₂", "Semi-major axis of the second orbit (m)"),
				},
				Solver: catalog.NewSolver("keplers_third_law", KeplersThirdLaw),
			},
			{
				Name:    "Schwarzschild radius",
				Formula: "R(S) = 2GM/c²",
				Variables: []catalog.Variable{
					catalog.Var("R(S)", "Schwarzschild radius (m)"),
					catalog.Var("M", "Mass of the body (kg)"),
				},
				Notes:  constants,
				Solver: catalog.NewSolver("schwarzschild_radius", SchwarzschildRadius),
			},
		},
		Definitions: []catalog.Definition{
			catalog.Def("black hole", "mass that becomes so dense that it collapses in on itself, creating a singularity at the center surrounded by an event horizon"),
			catalog.Def("escape velocity", "initial velocity an object needs to escape the gravitational pull of another; it is more accurately defined as the velocity of an object with zero total mechanical energy"),
			catalog.Def("event horizon", "location of the Schwarzschild radius and is the location near a black hole from within which no object, even light, can escape"),
			catalog.Def("gravitational field", "vector field that surrounds the mass creating the field; the field is represented by field lines, in which the field strength is indicated by the spacing of the lines"),
			catalog.Def("Kepler's first law", "every planet moves along an ellipse, with the Sun located at a focus of the ellipse"),
			catalog.Def("Kepler's second law", "a planet sweeps out equal areas in equal times, meaning it has a constant areal velocity"),
			catalog.Def("Kepler's third law", "the square of the period is proportional to the cube of the semi-major axis of the orbit"),
			catalog.Def("Newton's law of gravitation", "every mass attracts every other mass with a force proportional to the product of their masses, inversely proportional to the square of the distance between their centers, and directed along a line connecting their centers"),
			catalog.Def("orbital period", "time required for a satellite to complete one orbit"),
			catalog.Def("orbital speed", "speed of a satellite in a circular orbit; it can be also be used for the instantaneous speed for noncircular orbits in which the speed is not constant"),
			catalog.Def("Schwarzschild radius", "critical radius (Rs) such that if a mass were compressed to the extent that its radius becomes less than this value, it would collapse into a singularity"),
			catalog.Def("tidal force", "difference between the gravitational force at the center of a body and that at any other location on the body"),
			catalog.Def("universal gravitational constant", "constant representing the strength of the gravitational force, that is believed to be the same throughout the universe"),
		},
		Mapper: catalog.Mapper{
			"F":        "force",
			"m₁":       "mass_1",
			"m₂":       "mass_2",
			"r":        "radius",
			"g":        "surface_gravity",
			"M":        "mass",
			"R":        "radius",
			"U":        "potential_E",
			"v(esc)":   "escape_vel",
			"v(orbit)": "orbital_vel",
			"T":        "period",
			"T₁":       "period_1",
			"T₂":       "period_2",
			"r₁":       "radius_1",
			"r₂":       "radius_2",
			"R(S)":     "schwarzschild_radius",
		},
	}
}
