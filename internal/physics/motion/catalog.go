// Package motion covers motion along a straight line: displacement,
// velocity and acceleration, constant-acceleration kinematics and free fall.
package motion

import "github.com/san-kum/physcalc/internal/catalog"

// Chapter returns the catalog for chapter 3.
func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      3,
		Slug:        "motion",
		Title:       "Motion Along a Straight Line",
		Description: "Study of motion along one dimension.",
		Equations: []catalog.Equation{
			{
				Name:    "Displacement",
				Formula: "Δx = x - x₀",
				Variables: []catalog.Variable{
					catalog.Var("Δx", "Displacement (m)"),
					catalog.Var("x", "Final position (m)"),
					catalog.Var("x₀", "Initial position (m)"),
				},
				Solver: catalog.NewSolver("displacement", Displacement),
			},
			{
				Name:    "Total displacement",
				Formula: "Δx = ∑Δxᵢ",
				Variables: []catalog.Variable{
					catalog.Var("Δxᵢ", "All steps taken"),
				},
			},
			{
				Name:    "Average velocity",
				Formula: "v̄ = Δx/Δt",
				Variables: []catalog.Variable{
					catalog.Var("v̄", "Average velocity (m/s)"),
					catalog.Var("Δx", "Displacement (m)"),
					catalog.Var("Δt", "Elapsed time (s)"),
				},
				Solver: catalog.NewSolver("average_velocity", AverageVelocity),
			},
			{
				Name:    "Instantaneous velocity",
				Formula: "v(t) = dx(t)/dt",
			},
			{
				Name:    "Average speed",
				Formula: "s = (total distance)/(elapsed time)",
			},
			{
				Name:    "Instantaneous speed",
				Formula: "|v(t)|",
			},
			{
				Name:    "Average acceleration",
				Formula: "ā = Δv/Δt",
				Variables: []catalog.Variable{
					catalog.Var("ā", "Average acceleration (m/s²)"),
					catalog.Var("Δv", "Change in velocity (m/s)"),
					catalog.Var("Δt", "Elapsed time (s)"),
				},
				Solver: catalog.NewSolver("average_acceleration", AverageAcceleration),
			},
			{
				Name:    "Instantaneous acceleration",
				Formula: "a(t) = dv(t)/dt",
			},
			{
				Name:    "Position from avg. velocity",
				Formula: "x(t) = x₀ + v̄t",
				Variables: []catalog.Variable{
					catalog.Var("x", "Final position (m)"),
					catalog.Var("x₀", "Initial position (m)"),
					catalog.Var("v̄", "Average velocity (m/s)"),
					catalog.Var("t", "Time (s)"),
				},
				Solver: catalog.NewSolver("position_from_avg_velocity", PositionFromAvgVelocity),
			},
			{
				Name:    "Velocity from acceleration",
				Formula: "v(t) = v₀ + at",
				Variables: []catalog.Variable{
					catalog.Var("v", "Final velocity (m/s)"),
					catalog.Var("v₀", "Initial velocity (m/s)"),
					catalog.Var("a", "Constant acceleration (m/s²)"),
					catalog.Var("t", "Time (s)"),
				},
				Solver: catalog.NewSolver("velocity_from_acceleration", VelocityFromAcceleration),
			},
			{
				Name:    "Position from velocity and acceleration",
				Formula: "x(t) = x₀ + v₀t + (1/2)at²",
				Variables: []catalog.Variable{
					catalog.Var("x", "Final position (m)"),
					catalog.Var("x₀", "Initial position (m)"),
					catalog.Var("v₀", "Initial velocity (m/s)"),
					catalog.Var("t", "Time (s)"),
					catalog.Var("a", "Constant acceleration (m/s²)"),
				},
				Solver: catalog.NewSolver("position_from_vel_and_accel", PositionFromVelAndAccel),
			},
			{
				Name:    "Velocity from distance",
				Formula: "v² = v₀² + 2a(x - x₀)",
				Variables: []catalog.Variable{
					catalog.Var("v", "Final velocity (m/s)"),
					catalog.Var("v₀", "Initial velocity (m/s)"),
					catalog.Var("a", "Constant acceleration (m/s²)"),
					catalog.Var("x", "Final position (m)"),
					catalog.Var("x₀", "Initial position (m)"),
				},
				Solver: catalog.NewSolver("velocity_from_distance", VelocityFromDistance),
			},
			{
				Name:    "Velocity of free fall",
				Formula: "v = v₀ - gt",
				Variables: []catalog.Variable{
					catalog.Var("v", "Final velocity (m/s)"),
					catalog.Var("v₀", "Initial velocity (m/s)"),
					catalog.Var("t", "Time (s)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("velocity_of_free_fall", VelocityOfFreeFall),
			},
			{
				Name:    "Height of free fall",
				Formula: "y(t) = y₀ + v₀t - (1/2)gt²",
				Variables: []catalog.Variable{
					catalog.Var("y", "Final height (m)"),
					catalog.Var("y₀", "Initial height (m)"),
					catalog.Var("v₀", "Initial velocity (m/s)"),
					catalog.Var("t", "Time (s)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("height_of_free_fall", HeightOfFreeFall),
			},
			{
				Name:    "Velocity of free fall from height",
				Formula: "v² = v₀² - 2g(y - y₀)",
				Variables: []catalog.Variable{
					catalog.Var("v", "Final velocity (m/s)"),
					catalog.Var("v₀", "Initial velocity (m/s)"),
					catalog.Var("y", "Final height (m)"),
					catalog.Var("y₀", "Initial height (m)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("vel_free_fall_from_height", VelFreeFallFromHeight),
			},
			{
				Name:    "Velocity from acceleration (integral)",
				Formula: "v(t) = ∫ a(t)dt + C₁",
			},
			{
				Name:    "Position from velocity (integral)",
				Formula: "x(t) = ∫ v(t)dt + C₂",
			},
		},
		Definitions: []catalog.Definition{
			catalog.Def("acceleration due to gravity", "acceleration of an object as a result of gravity"),
			catalog.Def("average acceleration", "the rate of change in velocity; the change in velocity over time"),
			catalog.Def("average speed", "the total distance traveled divided by elapsed time"),
			catalog.Def("average velocity", "the displacement divided by the time over which displacement occurs under constant acceleration"),
			catalog.Def("displacement", "the change in position of an object"),
			catalog.Def("distance traveled", "the total length of the path traveled between two positions"),
			catalog.Def("elapsed time", "the difference between the ending time and the beginning time"),
			catalog.Def("free fall", "the state of movement that results from gravitational force only"),
			catalog.Def("instantaneous acceleration", "acceleration at a specific point in time"),
			catalog.Def("instantaneous speed", "the absolute value of the instantaneous velocity"),
			catalog.Def("instantaneous velocity", "the velocity at a specific instant or time point"),
			catalog.Def("kinematics", "the description of motion through properties such as position, time, velocity, and acceleration"),
			catalog.Def("position", "the location of an object at a particular time"),
			catalog.Def("total displacement", "the sum of individual displacements over a given time period"),
			catalog.Def("two-body pursuit problem", "a kinematics problem in which the unknowns are calculated by solving the kinematic equations simultaneously for two moving objects"),
		},
		Mapper: catalog.Mapper{
			"Δx": "displacement",
			"x":  "x_f",
			"x₀": "x_0",
			"v̄": "avg_vel",
			"Δt": "elapsed_time",
			"ā":  "avg_accel",
			"Δv": "delta_vel",
			"v":  "v_f",
			"v₀": "v_0",
			"a":  "accel",
			"t":  "t",
			"y":  "y_f",
			"y₀": "y_0",
		},
	}
}
