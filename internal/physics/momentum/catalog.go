// Package momentum covers linear momentum, impulse, collisions and the
// centre of mass.
package momentum

import "github.com/san-kum/physcalc/internal/catalog"

// Chapter returns the catalog for chapter 9.
func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      9,
		Slug:        "momentum",
		Title:       "Linear Momentum and Collisions",
		Description: "Momentum, impulse and what is conserved when bodies collide.",
		Equations: []catalog.Equation{
			{
				Name:    "Definition of momentum",
				Formula: "p = mv",
				Variables: []catalog.Variable{
					catalog.Var("p", "Momentum (N⋅s)"),
					catalog.Var("m", "Mass of the object (kg)"),
					catalog.Var("v", "Velocity (m/s)"),
				},
				Solver: catalog.NewSolver("momentum", Momentum),
			},
			{
				Name:    "Impulse",
				Formula: "J = ∫(t₁ to t₂) F(t)dt  or  J = F(ave)Δt",
				Variables: []catalog.Variable{
					catalog.Var("J", "Impulse (N⋅s)"),
					catalog.Var("F(ave)", "Average force (N)"),
					catalog.Var("Δt", "Elapsed time (s)"),
				},
				Solver: catalog.NewSolver("impulse", Impulse),
			},
			{
				Name:    "Impulse-momentum theorem",
				Formula: "J = Δp = m(v₂ - v₁)",
				Variables: []catalog.Variable{
					catalog.Var("J", "Impulse (N⋅s)"),
					catalog.Var("m", "Mass (kg)"),
					catalog.Var("v₂", "Final velocity (m/s)"),
					catalog.Var("v₁", "Initial velocity (m/s)"),
				},
				Solver: catalog.NewSolver("impulse_momentum", ImpulseMomentum),
			},
			{Name: "Average force from momentum", Formula: "F = Δp/Δt"},
			{Name: "Instantaneous force from momentum", Formula: "F(t) = dp/dt"},
			{Name: "Conservation of momentum", Formula: "dp₁/dt + dp₂/dt = 0  or  p₁ + p₂ = constant"},
			{Name: "Generalized conservation of momentum", Formula: "∑(j=1 to N) pⱼ = constant"},
			{
				Name:    "Perfectly inelastic collision",
				Formula: "m₁v₁ + m₂v₂ = m(f)v(f)",
				Variables: []catalog.Variable{
					catalog.Var("v(f)", "Velocity of the combined object (m/s)"),
					catalog.Var("m(f)", "Mass of the combined object (kg)"),
					catalog.Var("m₁", "Mass of the first object (kg)"),
					catalog.Var("v₁", "Velocity of the first object (m/s)"),
					catalog.Var("m₂", "Mass of the second object (kg)"),
					catalog.Var("v₂", "Velocity of the second object (m/s)"),
				},
				Mapping: catalog.Mapper{"v₁": "velocity_1", "v₂": "velocity_2"},
				Solver:  catalog.NewSolver("inelastic_collision_momentum", InelasticCollisionMomentum),
			},
			{
				Name:    "Elastic collision, first object",
				Formula: "v₁′ = ((m₁ - m₂)u₁ + 2m₂u₂)/(m₁ + m₂)",
				Variables: []catalog.Variable{
					catalog.Var("v₁′", "Final velocity of the first object (m/s)"),
					catalog.Var("m₁", "Mass of the first object (kg)"),
					catalog.Var("m₂", "Mass of the second object (kg)"),
					catalog.Var("u₁", "Initial velocity of the first object (m/s)"),
					catalog.Var("u₂", "Initial velocity of the second object (m/s)"),
				},
				Solver: catalog.NewSolver("elastic_collision", ElasticCollision),
			},
			{
				Name:    "Elastic collision, second object",
				Formula: "v₂′ = ((m₂ - m₁)u₂ + 2m₁u₁)/(m₁ + m₂)",
				Variables: []catalog.Variable{
					catalog.Var("v₂′", "Final velocity of the second object (m/s)"),
					catalog.Var("m₁", "Mass of the first object (kg)"),
					catalog.Var("m₂", "Mass of the second object (kg)"),
					catalog.Var("u₁", "Initial velocity of the first object (m/s)"),
					catalog.Var("u₂", "Initial velocity of the second object (m/s)"),
				},
				Solver: catalog.NewSolver("elastic_collision_second", ElasticCollisionSecond),
			},
			{Name: "Conservation of momentum in two dimensions", Formula: "p₁,ₓ = p₁,ᵢ,ₓ + p₂,ᵢ,ₓ, p₁,ᵧ = p₁,ᵢ,ᵧ + p₂,ᵢ,ᵧ"},
			{Name: "External forces", Formula: "F(ext) = ∑(j=1 to N) dp(j)/dt"},
			{Name: "Newton's second law for an extended object", Formula: "F = dp(CM)/dt"},
			{Name: "Acceleration of the center of mass", Formula: "a(CM) = 1/M ∑(j=1 to N) m(j) a(j)"},
			{Name: "Position of the center of mass for a system of particles", Formula: "r(CM) = 1/M ∑(j=1 to N) m(j) r(j)"},
			{
				Name:    "Center of mass of two particles",
				Formula: "x(CM) = (m₁x₁ + m₂x₂)/(m₁ + m₂)",
				Variables: []catalog.Variable{
					catalog.Var("x(CM)", "Position of the center of mass (m)"),
					catalog.Var("m₁", "Mass of the first particle (kg)"),
					catalog.Var("x₁", "Position of the first particle (m)"),
					catalog.Var("m₂", "Mass of the second particle (kg)"),
					catalog.Var("x₂", "Position of the second particle (m)"),
				},
				Solver: catalog.NewSolver("center_of_mass", CenterOfMass),
			},
			{Name: "Velocity of the center of mass", Formula: "v(CM) = 1/M ∑(j=1 to N) m(j) v(j)"},
			{Name: "Position of the center of mass of a continuous object", Formula: "r(CM) = 1/M ∫ r dm"},
			{
				Name:    "Rocket equation",
				Formula: "Δv = u ln(m(i)/m)",
				Variables: []catalog.Variable{
					catalog.Var("Δv", "Change of velocity obtained from loss of mass (m/s)"),
					catalog.Var("u", "Velocity of the gas exhausted from the rocket (m/s)"),
					catalog.Var("m(i)", "Initial mass of the rocket with fuel (kg)"),
					catalog.Var("m", "Mass of the rocket after the fuel has been exhausted (kg)"),
				},
				Mapping: catalog.Mapper{"m": "final_mass"},
				Solver:  catalog.NewSolver("rocket_equation", RocketEquation),
			},
		},
		Definitions: []catalog.Definition{
			catalog.Def("center of mass", "weighted average position of the mass of a system"),
			catalog.Def("closed system", "system for which the mass is constant and the net external force on the system is zero"),
			catalog.Def("elastic collision", "collision that conserves kinetic energy"),
			catalog.Def("impulse", "effect of applying a force on a system for a time interval; the product of the average force and the time interval"),
			catalog.Def("impulse-momentum theorem", "change of momentum of a system is equal to the impulse applied to the system"),
			catalog.Def("inelastic collision", "collision that does not conserve kinetic energy"),
			catalog.Def("law of conservation of momentum", "total momentum of a closed system cannot change"),
			catalog.Def("momentum", "measure of the quantity of motion that an object has; it takes into account both how fast the object is moving, and its mass; it is the product of mass and velocity"),
			catalog.Def("perfectly inelastic", "collision after which all objects are motionless relative to each other, or move together with a shared velocity"),
			catalog.Def("rocket equation", "derived by the Russian physicist Konstantin Tsiolkovsky in 1903, it gives the change of velocity a rocket gains from burning fuel, given the exhaust speed and the ratio of initial to final mass"),
		},
		Mapper: catalog.Mapper{
			"p":      "momentum",
			"m":      "mass",
			"v":      "velocity",
			"J":      "impulse",
			"F(ave)": "avg_force",
			"Δt":     "elapsed_time",
			"v₁":     "initial_vel",
			"v₂":     "final_vel",
			"v(f)":   "velocity_f",
			"m(f)":   "mass_f",
			"m₁":     "mass_1",
			"m₂":     "mass_2",
			"v₁′":    "final_vel_1",
			"v₂′":    "final_vel_2",
			"u₁":     "init_vel_1",
			"u₂":     "init_vel_2",
			"x(CM)":  "x_cm",
			"x₁":     "x_1",
			"x₂":     "x_2",
			"Δv":     "delta_v",
			"u":      "exhaust_vel",
			"m(i)":   "init_mass",
		},
	}
}
