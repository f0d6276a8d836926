// Package elasticity covers static equilibrium and the elastic moduli
// relating stress to strain.
package elasticity

import "github.com/san-kum/physcalc/internal/catalog"

// Chapter returns the catalog for chapter 12.
func Chapter() *catalog.Chapter {
	return &catalog.Chapter{
		Number:      12,
		Slug:        "elasticity",
		Title:       "Static Equilibrium and Elasticity",
		Description: "Conditions for equilibrium and how materials deform under stress.",
		Equations: []catalog.Equation{
			{Name: "First Equilibrium Condition", Formula: "∑Fₖ = 0"},
			{Name: "Second Equilibrium Condition", Formula: "∑τₖ = 0"},
			{Name: "Linear relation between stress and strain", Formula: "stress = (elastic modulus) × strain"},
			{
				Name:    "Young's modulus",
				Formula: "Y = (tensile stress)/(tensile strain) = (F/A) × (L₀/ΔL)",
				Variables: []catalog.Variable{
					catalog.Var("Y", "Elastic modulus for tensile stress (Pa)"),
					catalog.Var("F", "Force (N)"),
					catalog.Var("A", "Cross sectional area (m²)"),
					catalog.Var("L₀", "Initial length of the object (m)"),
					catalog.Var("ΔL", "Change of length after deformation (m)"),
				},
				Solver: catalog.NewSolver("young_modulus", YoungModulus),
			},
			{
				Name:    "Bulk modulus",
				Formula: "B = (bulk stress)/(bulk strain) = −Δp × (V₀/ΔV)",
				Variables: []catalog.Variable{
					catalog.Var("B", "Elastic modulus for bulk stress (Pa)"),
					catalog.Var("Δp", "Change in pressure (Pa)"),
					catalog.Var("V₀", "Initial volume (m³)"),
					catalog.Var("ΔV", "Change in volume (m³)"),
				},
				Solver: catalog.NewSolver("bulk_modulus", BulkModulus),
			},
			{
				Name:    "Shear modulus",
				Formula: "S = (shear stress)/(shear strain) = (F/A) × (L₀/Δx)",
				Variables: []catalog.Variable{
					catalog.Var("S", "Elastic modulus for shear stress (Pa)"),
					catalog.Var("F", "Force (N)"),
					catalog.Var("A", "Cross sectional area (m²)"),
					catalog.Var("L₀", "Initial length of the object (m)"),
					catalog.Var("Δx", "Shift of layers in the direction tangent to the acting forces (m)"),
				},
				Solver: catalog.NewSolver("shear_modulus", ShearModulus),
			},
		},
		Definitions: []catalog.Definition{
			catalog.Def("bulk modulus", "elastic modulus for the bulk stress"),
			catalog.Def("bulk strain", "(or volume strain) strain under the bulk stress, given as fractional change in volume"),
			catalog.Def("bulk stress", "(or volume stress) stress caused by compressive forces, in all directions"),
			catalog.Def("compressibility", "reciprocal of the bulk modulus"),
			catalog.Def("elastic", "object that comes back to its original size and shape when the load is no longer present"),
			catalog.Def("elastic limit", "stress value beyond which material no longer behaves elastically and becomes permanently deformed"),
			catalog.Def("elastic modulus", "proportionality constant in linear relation between stress and strain, in SI pascals"),
			catalog.Def("equilibrium", "body is in equilibrium when its linear and angular accelerations are both zero relative to an inertial frame of reference"),
			catalog.Def("plastic behavior", "material deforms irreversibly, does not go back to its original shape and size when load is removed and stress vanishes"),
			catalog.Def("shear modulus", "elastic modulus for shear stress"),
			catalog.Def("shear strain", "strain caused by shear stress"),
			catalog.Def("shear stress", "stress caused by shearing forces"),
			catalog.Def("static equilibrium", "body is in static equilibrium when it is at rest in our selected inertial frame of reference"),
			catalog.Def("strain", "dimensionless quantity that gives the amount of deformation of an object or medium under stress"),
			catalog.Def("stress", "quantity that contains information about the magnitude of force causing deformation, defined as force per unit area"),
			catalog.Def("tensile strain", "strain under tensile stress, given as fractional change in length, which is the ratio of change in length to original length"),
			catalog.Def("tensile stress", "stress caused by tensile forces, perpendicular to the surface onto which they act"),
			catalog.Def("Young's modulus", "elastic modulus for tensile or compressive stress"),
		},
		Mapper: catalog.Mapper{
			"Y":  "young_mod",
			"F":  "force",
			"A":  "cross_section",
			"L₀": "init_length",
			"ΔL": "delta_length",
			"B":  "bulk_mod",
			"Δp": "delta_pressure",
			"V₀": "init_volume",
			"ΔV": "delta_volume",
			"S":  "shear_mod",
			"Δx": "delta_layers",
		},
	}
}
