// Package angular covers angular momentum, its conservation and the
// precession of a gyroscope.
package angular

import "github.com/san-kum/physcalc/internal/catalog"

// Chapter returns the catalog for chapter 11.
func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      11,
		Slug:        "angular",
		Title:       "Angular Momentum",
		Description: "Rolling motion, angular momentum and precession.",
		Equations: []catalog.Equation{
			{Name: "Rolling without slipping", Formula: "v(CM) = Rω, a(CM) = Rα"},
			{Name: "Angular momentum of a particle", Formula: "l = r × p"},
			{Name: "Rate of change of angular momentum", Formula: "dL/dt = ∑τ"},
			{
				Name:    "Angular momentum of a rigid body",
				Formula: "L = Iω",
				Variables: []catalog.Variable{
					catalog.Var("L", "Angular momentum (kg⋅m²/s)"),
					catalog.Var("I", "Moment of inertia (kg⋅m²)"),
					catalog.Var("ω", "Angular velocity (rad/s)"),
				},
				Solver: catalog.NewSolver("angular_momentum", AngularMomentum),
			},
			{
				Name:    "Conservation of angular momentum",
				Formula: "I₁ω₁ = I₂ω₂",
				Variables: []catalog.Variable{
					catalog.Var("I₂", "Final moment of inertia (kg⋅m²)"),
					catalog.Var("ω₂", "Final angular velocity (rad/s)"),
					catalog.Var("I₁", "Initial moment of inertia (kg⋅m²)"),
					catalog.Var("ω₁", "Initial angular velocity (rad/s)"),
				},
				Solver: catalog.NewSolver("conservation_angular_momentum", ConservationAngularMomentum),
			},
			{
				Name:    "Precession angular velocity",
				Formula: "ω(P) = mgr/(Iω)",
				Variables: []catalog.Variable{
					catalog.Var("ω(P)", "Precession angular velocity (rad/s)"),
					catalog.Var("m", "Mass of the gyroscope (kg)"),
					catalog.Var("r", "Distance from the pivot to the center of mass (m)"),
					catalog.Var("I", "Moment of inertia about the spin axis (kg⋅m²)"),
					catalog.Var("ω", "Spin angular velocity (rad/s)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("gyroscope_precession", GyroscopePrecession),
			},
		},
		Definitions: []catalog.Definition{
			catalog.Def("angular momentum", "rotational analog of linear momentum, found by taking the product of moment of inertia and angular velocity"),
			catalog.Def("law of conservation of angular momentum", "angular momentum is conserved, that is, the initial angular momentum is equal to the final angular momentum when no external torque is applied to the system"),
			catalog.Def("precession", "circular motion of the pole of the axis of a spinning object around another axis due to a torque"),
			catalog.Def("rolling motion", "combination of rotational and translational motion with or without slipping"),
		},
		Mapper: catalog.Mapper{
			"L":    "angular_momentum",
			"I":    "inertia",
			"ω":    "omega",
			"I₁":   "inertia_1",
			"ω₁":   "omega_1",
			"I₂":   "inertia_2",
			"ω₂":   "omega_2",
			"ω(P)": "precession_vel",
			"m":    "mass",
			"r":    "lever_arm",
		},
	}
}
