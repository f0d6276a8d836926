// Package projectile covers motion in two and three dimensions: vectors,
// projectile flight and uniform circular motion.
package projectile

import "github.com/san-kum/physcalc/internal/catalog"

// Chapter returns the catalog for chapter 4.
func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      4,
		Slug:        "projectile",
		Title:       "Motion in Two and Three Dimensions",
		Description: "Study of motion in two and three dimensions.",
		Equations: []catalog.Equation{
			{Name: "Position vector", Formula: "r(t) = x(t)𝐢̂ + y(t)𝐣̂ + z(t)𝐤̂"},
			{Name: "Displacement vector", Formula: "Δr = r(t₂) − r(t₁)"},
			{Name: "Velocity vector", Formula: "v(t) = lim(Δt→0) [(r(t + Δt) − r(t)) / Δt] = dr/dt"},
			{Name: "Velocity in terms of components", Formula: "v(t) = vₓ(t)𝐢̂ + vᵧ(t)𝐣̂ + v𝓏(t)𝐤̂"},
			{Name: "Velocity components", Formula: "vₓ = dx/dt, vᵧ = dy/dt, v𝓏 = dz/dt"},
			{Name: "Average velocity", Formula: "v_avg = (r(t₂) − r(t₁)) / (t₂ − t₁)"},
			{Name: "Instantaneous acceleration", Formula: "a(t) = lim(Δt→0) [(v(t + Δt) − v(t)) / Δt] = dv/dt"},
			{Name: "Acceleration components", Formula: "a(t) = (d²x/dt²)𝐢̂ + (d²y/dt²)𝐣̂ + (d²z/dt²)𝐤̂"},
			{
				Name:    "Time of flight",
				Formula: "T(tot) = 2v₀sinθ / g",
				Variables: []catalog.Variable{
					catalog.Var("T(tot)", "Total time of flight (s)"),
					catalog.Var("v₀", "Launch speed (m/s)"),
					catalog.Var("θ", "Launch angle above the horizontal (°)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("time_of_flight", TimeOfFlight),
			},
			{
				Name:    "Trajectory",
				Formula: "y = (tanθ)x − (g / (2(v₀cosθ)²))x²",
				Variables: []catalog.Variable{
					catalog.Var("y", "Height relative to the launch point (m)"),
					catalog.Var("x", "Horizontal distance from the launch point (m)"),
					catalog.Var("θ", "Launch angle above the horizontal (°)"),
					catalog.Var("v₀", "Launch speed (m/s)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("trajectory", Trajectory),
			},
			{
				Name:    "Range",
				Formula: "R = (v₀²sin2θ) / g",
				Variables: []catalog.Variable{
					catalog.Var("R", "Horizontal range on level ground (m)"),
					catalog.Var("v₀", "Launch speed (m/s)"),
					catalog.Var("θ", "Launch angle above the horizontal (°)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("projectile_range", ProjectileRange),
			},
			{
				Name:    "Centripetal acceleration",
				Formula: "a(c) = v² / r",
				Variables: []catalog.Variable{
					catalog.Var("a(c)", "Centripetal acceleration (m/s²)"),
					catalog.Var("v", "Tangential speed (m/s)"),
					catalog.Var("r", "Radius of the circle (m)"),
				},
				Solver: catalog.NewSolver("centripetal_acceleration", CentripetalAcceleration),
			},
		},
		Definitions: []catalog.Definition{
			catalog.Def("acceleration vector", "instantaneous acceleration found by taking the derivative of the velocity function with respect to time in unit vector notation"),
			catalog.Def("centripetal acceleration", "component of acceleration of an object moving in a circle that is directed radially inward toward the center of the circle"),
			catalog.Def("displacement vector", "vector from the initial position to a final position on a trajectory of a particle"),
			catalog.Def("position vector", "vector from the origin of a chosen coordinate system to the position of a particle in two- or three-dimensional space"),
			catalog.Def("projectile motion", "motion of an object subject only to the acceleration of gravity"),
			catalog.Def("range", "maximum horizontal distance a projectile travels"),
			catalog.Def("time of flight", "elapsed time a projectile is in the air"),
			catalog.Def("trajectory", "path of a projectile through the air"),
			catalog.Def("uniform circular motion", "motion in a circle at constant speed"),
			catalog.Def("velocity vector", "vector that gives the instantaneous speed and direction of a particle; tangent to the trajectory"),
		},
		Mapper: catalog.Mapper{
			"T(tot)": "t",
			"v₀":     "v_0",
			"θ":      "theta",
			"y":      "y",
			"x":      "x",
			"R":      "range",
			"a(c)":   "accel_c",
			"v":      "velocity",
			"r":      "radius",
		},
	}
}
