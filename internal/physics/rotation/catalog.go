// Package rotation covers rotation about a fixed axis: angular
// kinematics, moment of inertia, torque and rotational energy.
//
// Angular positions are in radians and angular rates in rad/s and rad/s².
// The angle in the torque equation is between the force and the lever
// arm and is given in degrees.
package rotation

import "github.com/san-kum/physcalc/internal/catalog"

// Chapter returns the catalog for chapter 10.
func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      10,
		Slug:        "rotation",
		Title:       "Fixed-Axis Rotation",
		Description: "Angular kinematics, torque and rotational energy.",
		Equations: []catalog.Equation{
			{
				Name:    "Angular position",
				Formula: "θ = s/r",
				Variables: []catalog.Variable{
					catalog.Var("θ", "Angular position (rad)"),
					catalog.Var("s", "Arc length (m)"),
					catalog.Var("r", "Radius (m)"),
				},
				Solver: catalog.NewSolver("angular_position", AngularPosition),
			},
			{Name: "Angular velocity", Formula: "ω = lim(Δt→0) Δθ/Δt = dθ/dt"},
			{
				Name:    "Tangential speed",
				Formula: "v(t) = rω",
				Variables: []catalog.Variable{
					catalog.Var("v(t)", "Tangential speed (m/s)"),
					catalog.Var("r", "Radius (m)"),
					catalog.Var("ω", "Angular velocity (rad/s)"),
				},
				Solver: catalog.NewSolver("tangential_speed", TangentialSpeed),
			},
			{Name: "Angular acceleration", Formula: "α = lim(Δt→0) Δω/Δt = dω/dt = d²θ/dt²"},
			{
				Name:    "Tangential acceleration",
				Formula: "a(t) = rα",
				Variables: []catalog.Variable{
					catalog.Var("a(t)", "Tangential acceleration (m/s²)"),
					catalog.Var("r", "Radius (m)"),
					catalog.Var("α", "Angular acceleration (rad/s²)"),
				},
				Solver: catalog.NewSolver("tangential_accel", TangentialAccel),
			},
			{
				Name:    "Average angular velocity",
				Formula: "ω(ave) = (ω₀ + ω(f))/2",
				Variables: []catalog.Variable{
					catalog.Var("ω(ave)", "Average angular velocity (rad/s)"),
					catalog.Var("ω₀", "Initial angular velocity (rad/s)"),
					catalog.Var("ω(f)", "Final angular velocity (rad/s)"),
				},
				Solver: catalog.NewSolver("average_angular_vel", AverageAngularVel),
			},
			{
				Name:    "Angular displacement",
				Formula: "θ(f) = θ₀ + ω(ave)t",
				Variables: []catalog.Variable{
					catalog.Var("θ(f)", "Final angular position (rad)"),
					catalog.Var("θ₀", "Initial angular position (rad)"),
					catalog.Var("ω(ave)", "Average angular velocity (rad/s)"),
					catalog.Var("t", "Time (s)"),
				},
				Solver: catalog.NewSolver("angular_displacement", AngularDisplacement),
			},
			{
				Name:    "Angular velocity from constant angular acceleration",
				Formula: "ω(f) = ω₀ + αt",
				Variables: []catalog.Variable{
					catalog.Var("ω(f)", "Final angular velocity (rad/s)"),
					catalog.Var("ω₀", "Initial angular velocity (rad/s)"),
					catalog.Var("α", "Constant angular acceleration (rad/s²)"),
					catalog.Var("t", "Time (s)"),
				},
				Solver: catalog.NewSolver("angular_vel_const_accel", AngularVelConstAccel),
			},
			{
				Name:    "Angular displacement from angular velocity and angular acceleration",
				Formula: "θ(f) = θ₀ + ω₀t + ½αt²",
				Variables: []catalog.Variable{
					catalog.Var("θ(f)", "Final angular position (rad)"),
					catalog.Var("θ₀", "Initial angular position (rad)"),
					catalog.Var("ω₀", "Initial angular velocity (rad/s)"),
					catalog.Var("t", "Time (s)"),
					catalog.Var("α", "Angular acceleration (rad/s²)"),
				},
				Solver: catalog.NewSolver("angular_displacement_const_accel", AngularDisplacementConstAccel),
			},
			{
				Name:    "Change in angular velocity",
				Formula: "ω(f)² = ω₀² + 2α(Δθ)",
				Variables: []catalog.Variable{
					catalog.Var("ω(f)", "Final angular velocity (rad/s)"),
					catalog.Var("ω₀", "Initial angular velocity (rad/s)"),
					catalog.Var("α", "Angular acceleration (rad/s²)"),
					catalog.Var("Δθ", "Change in angular position (rad)"),
				},
				Solver: catalog.NewSolver("change_angular_velocity", ChangeAngularVelocity),
			},
			{Name: "Total Acceleration", Formula: "a = a(c) + a(t)"},
			{Name: "Rotational kinetic energy", Formula: "K = ½(∑ⱼ mⱼrⱼ²)ω²"},
			{Name: "Moment of inertia", Formula: "I = ∑ⱼ mⱼrⱼ²"},
			{
				Name:    "Rotational kinetic energy in terms of the moment of inertia",
				Formula: "K = ½Iω²",
				Variables: []catalog.Variable{
					catalog.Var("K", "Kinetic energy (J)"),
					catalog.Var("I", "Moment of inertia of a rigid body (kg⋅m²)"),
					catalog.Var("ω", "Angular velocity (rad/s)"),
				},
				Solver: catalog.NewSolver("rotational_ke", RotationalKE),
			},
			{Name: "Moment of inertia of a continuous object", Formula: "I = ∫r²dm"},
			{
				Name:    "Parallel-axis theorem",
				Formula: "I(parallel-axis) = I(center of mass) + md²",
				Variables: []catalog.Variable{
					catalog.Var("I(parallel-axis)", "Moment of inertia about the parallel axis (kg⋅m²)"),
					catalog.Var("I(center of mass)", "Moment of inertia about the center of mass (kg⋅m²)"),
					catalog.Var("m", "Mass of the object (kg)"),
					catalog.Var("d", "Distance from an axis through the object's center of mass to the new axis (m)"),
				},
				Solver: catalog.NewSolver("parallel_axis", ParallelAxis),
			},
			{Name: "Moment of inertia of a compound object", Formula: "I(total) = ∑ᵢ Iᵢ"},
			{Name: "Torque vector", Formula: "τ = r × F"},
			{
				Name:    "Magnitude of torque",
				Formula: "|τ| = r⊥F = rFsinθ",
				Variables: []catalog.Variable{
					catalog.Var("|τ|", "Magnitude of the applied torque (N⋅m)"),
					catalog.Var("r", "Distance from the axis to where the force is applied (m)"),
					catalog.Var("F", "The applied force (N)"),
					catalog.Var("θ", "The angle of the applied force relative to r (°)"),
				},
				Solver: catalog.NewSolver("magnitude_of_torque", MagnitudeOfTorque),
			},
			{Name: "Total torque", Formula: "τ(net) = ∑ᵢ|τᵢ|"},
			{
				Name:    "Newton's second law for rotation",
				Formula: "∑ᵢτᵢ = Iα",
				Variables: []catalog.Variable{
					catalog.Var("∑ᵢτᵢ", "The sum of all torques (N⋅m)"),
					catalog.Var("I", "Moment of inertia (kg⋅m²)"),
					catalog.Var("α", "Angular acceleration (rad/s²)"),
				},
				Solver: catalog.NewSolver("newtons_second_law_rotation", NewtonsSecondLawRotation),
			},
			{Name: "Incremental work done by a torque", Formula: "dW = (∑ᵢ τᵢ) dθ"},
			{Name: "Work-energy theorem", Formula: "W(AB) = K(B) - K(A)"},
			{Name: "Rotational work done by a net force", Formula: "W(AB) = ∫[θ(A) to θ(B)] (∑ᵢ τᵢ) dθ"},
			{
				Name:    "Rotational power",
				Formula: "P = τω",
				Variables: []catalog.Variable{
					catalog.Var("P", "Power (W)"),
					catalog.Var("τ", "Applied torque (N⋅m)"),
					catalog.Var("ω", "Angular velocity (rad/s)"),
				},
				Solver: catalog.NewSolver("rotational_power", RotationalPower),
			},
		},
		Definitions: []catalog.Definition{
			catalog.Def("angular acceleration", "time rate of change of angular velocity"),
			catalog.Def("angular position", "angle a body has rotated through in a fixed coordinate system"),
			catalog.Def("angular velocity", "time rate of change of angular position"),
			catalog.Def("instantaneous angular acceleration", "derivative of angular velocity with respect to time"),
			catalog.Def("instantaneous angular velocity", "derivative of angular position with respect to time"),
			catalog.Def("kinematics of rotational motion", "describes the relationships among rotation angle, angular velocity, angular acceleration, and time"),
			catalog.Def("lever arm", "perpendicular distance from the line that the force vector lies on to a given axis"),
			catalog.Def("linear mass density", "the mass per unit length λ of a one dimensional object"),
			catalog.Def("moment of inertia", "rotational mass of rigid bodies that relates to how easy or hard it will be to change the angular velocity of the rotating rigid body"),
			catalog.Def("Newton's second law for rotation", "sum of the torques on a rotating system equals its moment of inertia times its angular acceleration"),
			catalog.Def("parallel axis", "axis of rotation that is parallel to an axis about which the moment of inertia of an object is known"),
			catalog.Def("parallel-axis theorem", "if the moment of inertia is known for a given axis, it can be found for any axis parallel to it"),
			catalog.Def("rotational dynamics", "analysis of rotational motion using the net torque and moment of inertia to find the angular acceleration"),
			catalog.Def("rotational kinetic energy", "kinetic energy due to the rotation of an object; this is part of its total kinetic energy"),
			catalog.Def("rotational work", "work done on a rigid body due to the sum of the torques integrated over the angle through which the body rotates"),
			catalog.Def("surface mass density", "mass per unit area σ of a two dimensional object"),
			catalog.Def("torque", "cross product of a force and a lever arm to a given axis"),
			catalog.Def("total linear acceleration", "vector sum of the centripetal acceleration vector and the tangential acceleration vector"),
		},
		Mapper: catalog.Mapper{
			"θ":                 "theta",
			"s":                 "arc_length",
			"r":                 "radius",
			"v(t)":              "tang_speed",
			"ω":                 "omega",
			"a(t)":              "tang_accel",
			"α":                 "angular_accel",
			"ω(ave)":            "ave_angular_vel",
			"ω₀":                "init_angular_vel",
			"ω(f)":              "final_angular_vel",
			"θ(f)":              "final_theta",
			"θ₀":                "init_theta",
			"t":                 "t",
			"Δθ":                "delta_theta",
			"K":                 "kinetic_E",
			"I":                 "inertia",
			"I(parallel-axis)":  "inertia",
			"I(center of mass)": "inertia_cm",
			"m":                 "mass",
			"d":                 "distance",
			"|τ|":               "torque",
			"∑ᵢτᵢ":              "torque",
			"τ":                 "torque",
			"F":                 "force",
			"P":                 "power",
		},
	}
}
