// Package forces applies Newton's laws to friction, circular motion and
// motion through fluids.
package forces

import "github.com/san-kum/physcalc/internal/catalog"

func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      6,
		Slug:        "forces",
		Title:       "Applications of Newton's Laws",
		Description: "Friction, circular motion and drag.",
		Equations: []catalog.Equation{
			{
				Name:    "Magnitude of static friction",
				Formula: "fₛ ≤ μₛN",
				Variables: []catalog.Variable{
					catalog.Var("fₛ", "Maximum static friction (N)"),
					catalog.Var("μₛ", "Coefficient of static friction (dimensionless)"),
					catalog.Var("N", "Normal force (N)"),
				},
				Notes:  "Solves the equality, the largest friction before slipping.",
				Solver: catalog.NewSolver("static_friction_max", StaticFrictionMax),
			},
			{
				Name:    "Magnitude of kinetic friction",
				Formula: "fₖ = μₖN",
				Variables: []catalog.Variable{
					catalog.Var("fₖ", "Kinetic friction (N)"),
					catalog.Var("μₖ", "Coefficient of kinetic friction (dimensionless)"),
					catalog.Var("N", "Normal force (N)"),
				},
				Solver: catalog.NewSolver("kinetic_friction", KineticFriction),
			},
			{
				Name:    "Centripetal force with tangential velocity",
				Formula: "F(c) = mv²/r",
				Variables: []catalog.Variable{
					catalog.Var("F(c)", "Centripetal force (N)"),
					catalog.Var("m", "Mass of the object (kg)"),
					catalog.Var("v", "Tangential velocity (m/s)"),
					catalog.Var("r", "Radius (m)"),
				},
				Solver: catalog.NewSolver("centripetal_force_tang_vel", CentripetalForceTangVel),
			},
			{
				Name:    "Centripetal force with angular velocity",
				Formula: "F(c) = mrω²",
				Variables: []catalog.Variable{
					catalog.Var("F(c)", "Centripetal force (N)"),
					catalog.Var("m", "Mass of the object (kg)"),
					catalog.Var("ω", "Angular velocity (rad/s)"),
					catalog.Var("r", "Radius (m)"),
				},
				Solver: catalog.NewSolver("centripetal_force_ang_vel", CentripetalForceAngVel),
			},
			{
				Name:    "Ideal angle of a banked curve",
				Formula: "tan θ = v²/rg",
				Variables: []catalog.Variable{
					catalog.Var("θ", "Ideal angle (°)"),
					catalog.Var("v", "Velocity (m/s)"),
					catalog.Var("r", "Radius of curvature (m)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("ideal_ang_banked_curve", IdealAngBankedCurve),
			},
			{
				Name:    "Drag force",
				Formula: "F(D) = ½CρAv²",
				Variables: []catalog.Variable{
					catalog.Var("F(D)", "Drag force (N)"),
					catalog.Var("C", "Drag coefficient (dimensionless)"),
					catalog.Var("ρ", "Fluid density (kg/m³)"),
					catalog.Var("A", "Area of the object (m²)"),
					catalog.Var("v", "Velocity of the object (m/s)"),
				},
				Solver: catalog.NewSolver("drag_force", DragForce),
			},
			{
				Name:    "Stokes' law",
				Formula: "Fₛ = 6πrηv",
				Variables: []catalog.Variable{
					catalog.Var("Fₛ", "Drag force (Stokes force) (N)"),
					catalog.Var("r", "Radius of the object (m)"),
					catalog.Var("η", "Dynamic viscosity of the fluid (N⋅s/m²)"),
					catalog.Var("v", "Velocity of the object (m/s)"),
				},
				Solver: catalog.NewSolver("stokes_law", StokesLaw),
			},
			{
				Name:    "Terminal velocity",
				Formula: "vₜ = √(2mg/ρCA)",
				Variables: []catalog.Variable{
					catalog.Var("vₜ", "Terminal velocity (m/s)"),
					catalog.Var("m", "Mass of the object (kg)"),
					catalog.Var("C", "Drag coefficient (dimensionless)"),
					catalog.Var("ρ", "Fluid density (kg/m³)"),
					catalog.Var("A", "Area of the object (m²)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("terminal_velocity", TerminalVelocity),
			},
		},
		Definitions: []catalog.Definition{
			catalog.Def("banked curve", "curve in a road that is sloping in a manner that helps a vehicle negotiate the curve"),
			catalog.Def("centripetal force", "any net force causing uniform circular motion"),
			catalog.Def("Coriolis force", "inertial force causing the apparent deflection of moving objects when viewed in a rotating frame of reference"),
			catalog.Def("drag force", "force that always opposes the motion of an object in a fluid; unlike simple friction, the drag force is proportional to some function of the velocity of the object in that fluid"),
			catalog.Def("friction", "force that opposes relative motion or attempts at motion between systems in contact"),
			catalog.Def("ideal banking", "sloping of a curve in a road, where the angle of the slope allows the vehicle to negotiate the curve at a certain speed without the aid of friction between the tires and the road; the net external force on the vehicle equals the horizontal centripetal force in the absence of friction"),
			catalog.Def("inertial force", "force that has no physical origin"),
			catalog.Def("kinetic friction", "force that opposes the motion of two systems that are in contact and moving relative to each other"),
			catalog.Def("noninertial frame of reference", "accelerated frame of reference"),
			catalog.Def("static friction", "force that opposes the motion of two systems that are in contact and are not moving relative to each other"),
			catalog.Def("terminal velocity", "constant velocity achieved by a falling object, which occurs when the weight of the object is balanced by the upward drag force"),
		},
		Mapper: catalog.Mapper{
			"fₛ":   "friction_s",
			"μₛ":   "mu_s",
			"fₖ":   "friction_k",
			"μₖ":   "mu_k",
			"N":    "normal_F",
			"m":    "mass",
			"r":    "radius",
			"F(c)": "centripetal_F",
			"v":    "velocity",
			"ω":    "angular_vel",
			"θ":    "theta",
			"F(D)": "drag_F",
			"C":    "drag_coeff",
			"ρ":    "fluid_dens",
			"A":    "area",
			"Fₛ":   "drag_Fs",
			"η":    "viscosity",
			"vₜ":   "terminal_vel",
		},
	}
}
