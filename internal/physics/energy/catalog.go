// Package energy covers potential energy and the conservation of
// mechanical energy.
package energy

import "github.com/san-kum/physcalc/internal/catalog"

// Chapter returns the catalog for chapter 8.
func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      8,
		Slug:        "energy",
		Title:       "Potential Energy and Conservation of Energy",
		Description: "Stored energy and how the total is conserved.",
		Equations: []catalog.Equation{
			{Name: "Difference in gravitational potential energy", Formula: "ΔUαβ = Uβ − Uα = −Wαβ"},
			{
				Name:    "Gravitational potential energy near Earth",
				Formula: "U = mgh",
				Variables: []catalog.Variable{
					catalog.Var("U", "Gravitational potential energy (J)"),
					catalog.Var("m", "Mass (kg)"),
					catalog.Var("h", "Height above the reference point (m)"),
				},
				Notes:  "g = 9.82 m/s²",
				Solver: catalog.NewSolver("gravitational_potential_energy", GravitationalPotentialEnergy),
			},
			{
				Name:    "Elastic potential energy",
				Formula: "U = ½kx²",
				Variables: []catalog.Variable{
					catalog.Var("U", "Elastic potential energy (J)"),
					catalog.Var("k", "Spring constant (N/m)"),
					catalog.Var("x", "Displacement from equilibrium (m)"),
				},
				Solver: catalog.NewSolver("elastic_potential_energy", ElasticPotentialEnergy),
			},
			{Name: "Conservation of Energy", Formula: "Wₙc,αβ = Δ(K + U)αβ = ΔEαβ"},
			{
				Name:    "Conservation of mechanical energy",
				Formula: "K₁ + U₁ = K₂ + U₂",
				Variables: []catalog.Variable{
					catalog.Var("K₂", "Final kinetic energy (J)"),
					catalog.Var("U₂", "Final potential energy (J)"),
					catalog.Var("K₁", "Initial kinetic energy (J)"),
					catalog.Var("U₁", "Initial potential energy (J)"),
				},
				Notes:  "Assumes no non-conservative work.",
				Solver: catalog.NewSolver("conservation_of_energy", ConservationOfEnergy),
			},
			{Name: "Work done by a conservative force along a closed path", Formula: "W(closed path) = ∫ F(cons) · dr = 0"},
			{Name: "Condition for conservative forces in two dimensions", Formula: "(∂F(y)/∂x) = (∂F(x)/∂y)"},
			{Name: "Conservative force is the negative derivative of the potential energy", Formula: "F(l) = -∂U/∂x(l)"},
		},
		Definitions: []catalog.Definition{
			catalog.Def("conservative force", "force that does work independent of path"),
			catalog.Def("conserved quantity", "one that cannot be created or destroyed, but may be transformed between different forms of itself"),
			catalog.Def("energy conservation", "total energy of an isolated system is constant"),
			catalog.Def("equilibrium point", "position where the assumed conservative, net force on a particle, given by the slope of its potential energy curve, is zero"),
			catalog.Def("exact differential", "is the total differential of a function and requires the use of partial derivatives if the function involves more than one dimension"),
			catalog.Def("mechanical energy", "sum of the kinetic and potential energies"),
			catalog.Def("non-conservative force", "force that does work that depends on path"),
			catalog.Def("non-renewable", "energy source that is not renewable, but is depleted by human consumption"),
			catalog.Def("potential energy", "function of position, energy possessed by an object relative to the system considered"),
			catalog.Def("potential energy diagram", "graph of a particle's potential energy as a function of position"),
			catalog.Def("potential energy difference", "negative of the work done acting between two points in space"),
			catalog.Def("renewable", "energy source that is replenished by natural processes, over human time scales"),
			catalog.Def("turning point", "position where the velocity of a particle, in one-dimensional motion, changes sign"),
		},
		Mapper: catalog.Mapper{
			"U":  "potential_E",
			"m":  "mass",
			"h":  "height",
			"k":  "spring_const",
			"x":  "displacement",
			"K₁": "kinetic_1",
			"U₁": "potential_1",
			"K₂": "kinetic_2",
			"U₂": "potential_2",
		},
	}
}
