// Package newton covers Newton's laws of motion and the common forces
// built on them.
package newton

import "github.com/san-kum/physcalc/internal/catalog"

// Chapter returns the catalog for chapter 5.
func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      5,
		Slug:        "newton",
		Title:       "Newton's Laws of Motion",
		Description: "Forces and how they change the motion of objects.",
		Equations: []catalog.Equation{
			{Name: "Net external force", Formula: "F(net) = ∑F"},
			{Name: "Newton's first law", Formula: "v = constant ⟺ F(net) = 0"},
			{
				Name:    "Newton's second law",
				Formula: "F(net) = ma",
				Variables: []catalog.Variable{
					catalog.Var("F(net)", "Net external force (N)"),
					catalog.Var("m", "Mass (kg)"),
					catalog.Var("a", "Acceleration (m/s²)"),
				},
				Solver: catalog.NewSolver("newtons_second_law", NewtonsSecondLaw),
			},
			{Name: "Newton's second law, component form", Formula: "∑F(x) = ma(x), ∑F(y) = ma(y), and ∑F(z) = ma(z)"},
			{Name: "Newton's second law, momentum form", Formula: "F(net) = dp/dt = d(mv)/dt"},
			{
				Name:    "Weight",
				Formula: "w = mg",
				Variables: []catalog.Variable{
					catalog.Var("w", "Weight (N)"),
					catalog.Var("m", "Mass (kg)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("weight", Weight),
			},
			{Name: "Newton's third law", Formula: "F(AB) = - F(BA)"},
			{
				Name:    "Normal force (resting)",
				Formula: "N = mgcosθ",
				Variables: []catalog.Variable{
					catalog.Var("N", "Normal force (N)"),
					catalog.Var("m", "Mass (kg)"),
					catalog.Var("θ", "Incline angle (°)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("normal_force", NormalForce),
			},
			{
				Name:    "Hooke's law",
				Formula: "F = -kx",
				Variables: []catalog.Variable{
					catalog.Var("F", "Restoring force (N)"),
					catalog.Var("k", "Spring constant (N/m)"),
					catalog.Var("x", "Displacement from equilibrium (m)"),
				},
				Solver: catalog.NewSolver("hookes_law", HookesLaw),
			},
		},
		Definitions: []catalog.Definition{
			catalog.Def("dynamics", "study of how forces affect the motion of objects and systems"),
			catalog.Def("external force", "force acting on an object or system that originates outside of the object or system"),
			catalog.Def("force", "push or pull on an object with a specific magnitude and direction; can be represented by vectors or expressed as a multiple of a standard force"),
			catalog.Def("free fall", "situation in which the only force acting on an object is gravity"),
			catalog.Def("free-body diagram", "sketch showing all external forces acting on an object or system; the system is represented by a single isolated point, and the forces are represented by vectors extending outward from that point"),
			catalog.Def("Hooke's law", "in a spring, a restoring force proportional to and in the opposite direction of the imposed displacement"),
			catalog.Def("inertia", "ability of an object to resist changes in its motion"),
			catalog.Def("inertial reference frame", "reference frame moving at constant velocity relative to an inertial frame is also inertial; a reference frame accelerating relative to an inertial frame is not inertial"),
			catalog.Def("law of inertia", "see Newton's first law of motion"),
			catalog.Def("net external force", "vector sum of all external forces acting on an object or system; causes a mass to accelerate"),
			catalog.Def("newton", "SI unit of force; 1 N is the force needed to accelerate an object with a mass of 1 kg at a rate of 1 m/s²"),
			catalog.Def("Newton's first law of motion", "body at rest remains at rest or, if in motion, remains in motion at constant velocity unless acted on by a net external force; also known as the law of inertia"),
			catalog.Def("Newton's second law of motion", "acceleration of a system is directly proportional to and in the same direction as the net external force acting on the system and is inversely proportional to its mass"),
			catalog.Def("Newton's third law of motion", "whenever one body exerts a force on a second body, the first body experiences a force that is equal in magnitude and opposite in direction to the force that it exerts"),
			catalog.Def("normal force", "force supporting the weight of an object, or a load, that is perpendicular to the surface of contact between the load and its support"),
			catalog.Def("tension", "pulling force that acts along a stretched flexible connector, such as a rope or cable"),
			catalog.Def("thrust", "reaction force that pushes a body forward in response to a backward force"),
			catalog.Def("weight", "force due to gravity acting on an object of mass m"),
		},
		Mapper: catalog.Mapper{
			"F(net)": "force",
			"F":      "force",
			"m":      "mass",
			"a":      "accel",
			"w":      "weight",
			"N":      "normal_F",
			"θ":      "theta",
			"k":      "spring_const",
			"x":      "displacement",
		},
	}
}
