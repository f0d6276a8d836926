// Package work covers work done by forces, kinetic energy and power.
package work

import "github.com/san-kum/physcalc/internal/catalog"

// Chapter returns the catalog for chapter 7.
func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      7,
		Slug:        "work",
		Title:       "Work and Kinetic Energy",
		Description: "Work done by forces and the energy of motion.",
		Equations: []catalog.Equation{
			{
				Name:    "Work done by constant force",
				Formula: "W = Fdcos(θ)",
				Variables: []catalog.Variable{
					catalog.Var("W", "Work (J)"),
					catalog.Var("F", "Constant force (N)"),
					catalog.Var("d", "Distance travelled (m)"),
					catalog.Var("θ", "Angle between the direction of motion and the force (°)"),
				},
				Solver: catalog.NewSolver("work_constant_force", WorkConstantForce),
			},
			{
				Name:    "Work done by gravity",
				Formula: "W = -mg(y₂ - y₁)",
				Variables: []catalog.Variable{
					catalog.Var("W", "Work (J)"),
					catalog.Var("m", "Mass (kg)"),
					catalog.Var("y₁", "Initial height (m)"),
					catalog.Var("y₂", "Final height (m)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("work_by_gravity", WorkByGravity),
			},
			{
				Name:    "Work done by a spring",
				Formula: "W = -½k(x₂² - x₁²)",
				Variables: []catalog.Variable{
					catalog.Var("W", "Work (J)"),
					catalog.Var("k", "Spring constant (kg/s²)"),
					catalog.Var("x₁", "Initial position (m)"),
					catalog.Var("x₂", "Final position (m)"),
				},
				Notes:  "Solved positions are distances from equilibrium.",
				Solver: catalog.NewSolver("work_by_spring", WorkBySpring),
			},
			{
				Name:    "Kinetic energy",
				Formula: "K = ½mv²",
				Variables: []catalog.Variable{
					catalog.Var("K", "Kinetic energy (J)"),
					catalog.Var("m", "Mass (kg)"),
					catalog.Var("v", "Velocity (m/s)"),
				},
				Solver: catalog.NewSolver("kinetic_energy", KineticEnergy),
			},
			{
				Name:    "Kinetic energy (momentum representation)",
				Formula: "K = ½(p²/m)",
				Variables: []catalog.Variable{
					catalog.Var("K", "Kinetic energy (J)"),
					catalog.Var("m", "Mass (kg)"),
					catalog.Var("p", "Momentum (kg⋅m/s)"),
				},
				Solver: catalog.NewSolver("kinetic_energy_momentum", KineticEnergyMomentum),
			},
			{
				Name:    "Work-Energy theorem",
				Formula: "W(net) = ½mv₂² - ½mv₁²",
				Variables: []catalog.Variable{
					catalog.Var("W(net)", "Net work (J)"),
					catalog.Var("m", "Mass (kg)"),
					catalog.Var("v₂", "Final velocity (m/s)"),
					catalog.Var("v₁", "Initial velocity (m/s)"),
				},
				Solver: catalog.NewSolver("work_energy_theorem", WorkEnergyTheorem),
			},
			{
				Name:    "Average power",
				Formula: "P(ave) = ΔW/Δt",
				Variables: []catalog.Variable{
					catalog.Var("P(ave)", "Average power (W)"),
					catalog.Var("ΔW", "Work done (J)"),
					catalog.Var("Δt", "Elapsed time (s)"),
				},
				Solver: catalog.NewSolver("average_power", AveragePower),
			},
			{Name: "Power", Formula: "P = dW/dt"},
			{Name: "Power from force and velocity", Formula: "P = F⋅v"},
		},
		Definitions: []catalog.Definition{
			catalog.Def("average power", "work done in a time interval divided by the time interval"),
			catalog.Def("kinetic energy", "energy of motion, one-half an object's mass times the square of its speed"),
			catalog.Def("net work", "work done by all the forces acting on an object"),
			catalog.Def("power", "(or instantaneous power) rate of doing work"),
			catalog.Def("work", "done when a force acts on something that undergoes a displacement from one position to another"),
			catalog.Def("work-energy theorem", "net work done on a particle is equal to the change in its kinetic energy"),
		},
		Mapper: catalog.Mapper{
			"W":      "work",
			"F":      "const_F",
			"d":      "distance",
			"θ":      "theta",
			"m":      "mass",
			"y₁":     "initial_height",
			"y₂":     "final_height",
			"k":      "spring_const",
			"x₁":     "initial_xpos",
			"x₂":     "final_xpos",
			"K":      "kinetic_E",
			"v":      "velocity",
			"v₁":     "initial_vel",
			"v₂":     "final_vel",
			"p":      "momentum",
			"W(net)": "net_work",
			"P(ave)": "power",
			"ΔW":     "work",
			"Δt":     "elapsed_time",
		},
	}
}
