// Package fluids covers fluid statics and dynamics: pressure, continuity,
// Bernoulli's equation and viscous flow.
package fluids

import "github.com/san-kum/physcalc/internal/catalog"

// Chapter returns the catalog for chapter 14.
func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      14,
		Slug:        "fluids",
		Title:       "Fluid Mechanics",
		Description: "Pressure in fluids at rest and the flow of ideal and viscous fluids.",
		Equations: []catalog.Equation{
			{
				Name:    "Density of a sample at constant density",
				Formula: "ρ = m/V",
				Variables: []catalog.Variable{
					catalog.Var("ρ", "Density (kg/m³)"),
					catalog.Var("m", "Mass (kg)"),
					catalog.Var("V", "Volume (m³)"),
				},
				Solver: catalog.NewSolver("density", Density),
			},
			{
				Name:    "Pressure",
				Formula: "p = F/A",
				Variables: []catalog.Variable{
					catalog.Var("p", "Pressure (N/m²)"),
					catalog.Var("F", "Force (N)"),
					catalog.Var("A", "Area (m²)"),
				},
				Solver: catalog.NewSolver("pressure", Pressure),
			},
			{
				Name:    "Hydrostatic pressure",
				Formula: "p = p₀ + ρgh",
				Variables: []catalog.Variable{
					catalog.Var("p", "Pressure at depth (Pa)"),
					catalog.Var("p₀", "Pressure at atmosphere (Pa)"),
					catalog.Var("ρ", "Density of the fluid (kg/m³)"),
					catalog.Var("h", "Depth (m)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("hydrostatic_pressure", HydrostaticPressure),
			},
			{Name: "Pressure gradient in a fluid of constant density", Formula: "dp/dy = −ρg"},
			{Name: "Absolute pressure", Formula: "p(abs) = p(g) + p(atm)"},
			{
				Name:    "Pascal's principle",
				Formula: "F(1)/A(1) = F(2)/A(2)",
				Variables: []catalog.Variable{
					catalog.Var("F(1)", "Force applied by piston 1 (N)"),
					catalog.Var("A(1)", "Area of piston 1 (m²)"),
					catalog.Var("F(2)", "Force applied by piston 2 (N)"),
					catalog.Var("A(2)", "Area of piston 2 (m²)"),
				},
				Solver: catalog.NewSolver("pascals_principle", PascalsPrinciple),
			},
			{Name: "Volume flow rate", Formula: "Q = dV/dt"},
			{
				Name:    "Flow rate and velocity",
				Formula: "Q = Av",
				Variables: []catalog.Variable{
					catalog.Var("Q", "Flow rate (m³/s)"),
					catalog.Var("A", "Cross-sectional area (m²)"),
					catalog.Var("v", "Average velocity of the fluid (m/s)"),
				},
				Solver: catalog.NewSolver("flow_rate", FlowRate),
			},
			{
				Name:    "Continuity equation (constant density)",
				Formula: "A(1)v(1) = A(2)v(2)",
				Variables: []catalog.Variable{
					catalog.Var("A(1)", "Area of nozzle 1 (m²)"),
					catalog.Var("v(1)", "Velocity of fluid in nozzle 1 (m/s)"),
					catalog.Var("A(2)", "Area of nozzle 2 (m²)"),
					catalog.Var("v(2)", "Velocity of fluid in nozzle 2 (m/s)"),
				},
				Solver: catalog.NewSolver("continuity_const_density", ContinuityConstDensity),
			},
			{
				Name:    "Continuity equation (general form)",
				Formula: "ρ(1)A(1)v(1) = ρ(2)A(2)v(2)",
				Variables: []catalog.Variable{
					catalog.Var("ρ(1)", "Density of the fluid in nozzle 1 (kg/m³)"),
					catalog.Var("A(1)", "Area of nozzle 1 (m²)"),
					catalog.Var("v(1)", "Velocity of fluid in nozzle 1 (m/s)"),
					catalog.Var("ρ(2)", "Density of the fluid in nozzle 2 (kg/m³)"),
					catalog.Var("A(2)", "Area of nozzle 2 (m²)"),
					catalog.Var("v(2)", "Velocity of fluid in nozzle 2 (m/s)"),
				},
				Solver: catalog.NewSolver("continuity_general", ContinuityGeneral),
			},
			{
				Name:    "Bernoulli's equation",
				Formula: "p(1) + ½ρv(1)² + ρgy(1) = p(2) + ½ρv(2)² + ρgy(2)",
				Variables: []catalog.Variable{
					catalog.Var("p(1)", "Pressure of the fluid at point 1 (Pa)"),
					catalog.Var("ρ", "Density of the fluid (kg/m³)"),
					catalog.Var("v(1)", "Velocity of the fluid at point 1 (m/s)"),
					catalog.Var("y(1)", "Height of the fluid at point 1 (m)"),
					catalog.Var("p(2)", "Pressure of the fluid at point 2 (Pa)"),
					catalog.Var("v(2)", "Velocity of the fluid at point 2 (m/s)"),
					catalog.Var("y(2)", "Height of the fluid at point 2 (m)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("bernoullis_equation", BernoullisEquation),
			},
			{
				Name:    "Viscosity",
				Formula: "η = FL/(vA)",
				Variables: []catalog.Variable{
					catalog.Var("η", "Viscosity (Pa⋅s)"),
					catalog.Var("F", "Force (N)"),
					catalog.Var("L", "Distance between plates (m)"),
					catalog.Var("A", "Area of the plates (m²)"),
					catalog.Var("v", "Velocity of the moving plate (m/s)"),
				},
				Solver: catalog.NewSolver("viscosity", Viscosity),
			},
			{
				Name:    "Poiseuille's law for resistance",
				Formula: "R = 8ηl/(πr⁴)",
				Variables: []catalog.Variable{
					catalog.Var("R", "Resistance to laminar flow (Pa⋅s/m³)"),
					catalog.Var("η", "Viscosity (Pa⋅s)"),
					catalog.Var("l", "Length of the tube (m)"),
					catalog.Var("r", "Radius of the tube (m)"),
				},
				Solver: catalog.NewSolver("poiseuilles_law_resistance", PoiseuillesLawResistance),
			},
			{
				Name:    "Poiseuille's law",
				Formula: "Q = (p(1) − p(2))πr⁴/(8ηl)",
				Variables: []catalog.Variable{
					catalog.Var("Q", "Flow rate (m³/s)"),
					catalog.Var("η", "Viscosity (Pa⋅s)"),
					catalog.Var("l", "Length of the tube (m)"),
					catalog.Var("r", "Radius of the tube (m)"),
					catalog.Var("p(1)", "Pressure at point 1 (Pa)"),
					catalog.Var("p(2)", "Pressure at point 2 (Pa)"),
				},
				Solver: catalog.NewSolver("poiseuilles_law", PoiseuillesLaw),
			},
		},
		Definitions: []catalog.Definition{
			catalog.Def("absolute pressure", "sum of gauge pressure and atmospheric pressure"),
			catalog.Def("Archimedes' principle", "buoyant force on an object equals the weight of the fluid it displaces"),
			catalog.Def("Bernoulli's equation", "equation resulting from applying conservation of energy to an incompressible frictionless fluid: p + ½ρv² + ρgh = constant, throughout the fluid"),
			catalog.Def("Bernoulli's principle", "Bernoulli's equation applied at constant depth: p₁ + ½ρv₁² = p₂ + ½ρv₂²"),
			catalog.Def("buoyant force", "net upward force on any object in any fluid due to the pressure difference at different depths"),
			catalog.Def("density", "mass per unit volume of a substance or object"),
			catalog.Def("flow rate", "abbreviated Q, it is the volume V that flows past a particular point during a time t, or Q = dV/dt"),
			catalog.Def("fluids", "liquids and gases; a fluid is a state of matter that yields to shearing forces"),
			catalog.Def("gauge pressure", "pressure relative to atmospheric pressure"),
			catalog.Def("hydraulic jack", "simple machine that uses cylinders of different diameters to distribute force"),
			catalog.Def("hydrostatic equilibrium", "state at which water is not flowing, or is static"),
			catalog.Def("ideal fluid", "fluid with negligible viscosity"),
			catalog.Def("laminar flow", "type of fluid flow in which layers do not mix"),
			catalog.Def("Pascal's principle", "change in pressure applied to an enclosed fluid is transmitted undiminished to all portions of the fluid walls of its container"),
			catalog.Def("Poiseuille's law", "rate of laminar flow of an incompressible fluid in a tube: Q = (p₁ − p₂)πr⁴/8ηl"),
			catalog.Def("Poiseuille's law for resistance", "resistance to laminar flow of an incompressible fluid in a tube: R = 8ηl/πr⁴"),
			catalog.Def("pressure", "force per unit area exerted perpendicular to the area over which the force acts"),
			catalog.Def("Reynolds number", "dimensionless parameter that can reveal whether a particular flow is laminar or turbulent"),
			catalog.Def("specific gravity", "ratio of the density of an object to a fluid (usually water)"),
			catalog.Def("turbulence", "fluid flow in which layers mix together via eddies and swirls"),
			catalog.Def("turbulent flow", "type of fluid flow in which layers mix together via eddies and swirls"),
			catalog.Def("viscosity", "measure of the internal friction in a fluid"),
		},
		Mapper: catalog.Mapper{
			"ρ":    "density",
			"m":    "mass",
			"V":    "volume",
			"p":    "pressure",
			"p₀":   "pressure_atm",
			"h":    "depth",
			"F(1)": "force_1",
			"A(1)": "area_1",
			"F(2)": "force_2",
			"A(2)": "area_2",
			"v(1)": "velocity_1",
			"v(2)": "velocity_2",
			"ρ(1)": "density_1",
			"ρ(2)": "density_2",
			"p(1)": "pressure_1",
			"p(2)": "pressure_2",
			"y(1)": "height_1",
			"y(2)": "height_2",
			"η":    "viscosity",
			"F":    "force",
			"L":    "distance",
			"A":    "area",
			"v":    "velocity",
			"R":    "resistance",
			"l":    "length",
			"r":    "radius",
			"Q":    "flow",
		},
	}
}
