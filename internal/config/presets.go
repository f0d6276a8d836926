package config

import (
	"maps"
	"slices"
)

// Preset is a complete, consistent set of parameter values for one
// solver, keyed by parameter name.
type Preset map[string]float64

// Presets maps solver ID to preset name to parameter values. Leave any one
// value out and the solver recovers it.
var Presets = map[string]map[string]Preset{
	"displacement": {
		"walk": {"displacement": 20, "x_f": 25, "x_0": 5},
	},
	"average_velocity": {
		"sprint": {"avg_vel": 8, "displacement": 100, "elapsed_time": 12.5},
	},
	"average_acceleration": {
		"car": {"avg_accel": 3, "delta_vel": 27, "elapsed_time": 9},
	},
	"position_from_avg_velocity": {
		"cyclist": {"x_f": 34, "x_0": 10, "avg_vel": 4, "t": 6},
	},
	"velocity_from_acceleration": {
		"car": {"v_f": 13, "v_0": 5, "accel": 2, "t": 4},
	},
	"position_from_vel_and_accel": {
		"car": {"x_f": 46, "x_0": 10, "v_0": 5, "t": 4, "accel": 2},
	},
	"velocity_from_distance": {
		"runway": {"v_f": 8.544003745, "v_0": 3, "accel": 2, "x_f": 20, "x_0": 4},
	},
	"velocity_of_free_fall": {
		"ball_toss": {"v_f": 5.27, "v_0": 20, "t": 1.5},
	},
	"height_of_free_fall": {
		"ball_toss": {"y_f": 12.09, "y_0": 2, "v_0": 15, "t": 1},
	},
	"vel_free_fall_from_height": {
		"ball_toss": {"v_f": 11.26055061, "v_0": 15, "y_f": 5, "y_0": 0},
	},
	"time_of_flight": {
		"kick": {"t": 2.036659878, "v_0": 20, "theta": 30},
	},
	"trajectory": {
		"kick": {"y": 7.545, "x": 10, "theta": 45, "v_0": 20},
	},
	"projectile_range": {
		"kick": {"range": 35.27598386, "v_0": 20, "theta": 30},
	},
	"centripetal_acceleration": {
		"curve": {"accel_c": 3, "velocity": 12, "radius": 48},
	},
	"newtons_second_law": {
		"cart": {"force": 15, "mass": 5, "accel": 3},
	},
	"weight": {
		"person": {"weight": 687.4, "mass": 70},
	},
	"normal_force": {
		"incline": {"normal_F": 85.04369465, "mass": 10, "theta": 30},
	},
	"hookes_law": {
		"spring": {"force": -30, "spring_const": 200, "displacement": 0.15},
	},
	"static_friction_max": {
		"crate": {"friction_s": 49.1, "mu_s": 0.5, "normal_F": 98.2},
	},
	"kinetic_friction": {
		"crate": {"friction_k": 29.46, "mu_k": 0.3, "normal_F": 98.2},
	},
	"centripetal_force_tang_vel": {
		"car_on_curve": {"centripetal_F": 6000, "mass": 1200, "velocity": 20, "radius": 80},
	},
	"centripetal_force_ang_vel": {
		"sling": {"centripetal_F": 27, "mass": 2, "angular_vel": 3, "radius": 1.5},
	},
	"ideal_ang_banked_curve": {
		"highway": {"theta": 32.47496746, "velocity": 25, "radius": 100},
	},
	"drag_force": {
		"cyclist": {"drag_F": 121.5, "drag_coeff": 0.45, "fluid_dens": 1.2, "area": 0.5, "velocity": 30},
	},
	"stokes_law": {
		"droplet": {"drag_Fs": 9.424777961e-07, "radius": 0.001, "viscosity": 0.001, "velocity": 0.05},
	},
	"terminal_velocity": {
		"skydiver": {"terminal_vel": 43.24900219, "mass": 80, "drag_coeff": 1, "fluid_dens": 1.2, "area": 0.7},
	},
	"work_constant_force": {
		"sled": {"work": 433.0127019, "const_F": 50, "distance": 10, "theta": 30},
	},
	"work_by_gravity": {
		"drop": {"work": 137.48, "mass": 2, "initial_height": 10, "final_height": 3},
	},
	"work_by_spring": {
		"release": {"work": 4, "spring_const": 100, "initial_xpos": 0.3, "final_xpos": 0.1},
	},
	"kinetic_energy": {
		"ball": {"kinetic_E": 50, "mass": 4, "velocity": 5},
	},
	"kinetic_energy_momentum": {
		"ball": {"kinetic_E": 50, "mass": 4, "momentum": 20},
	},
	"work_energy_theorem": {
		"push": {"net_work": 32, "mass": 2, "final_vel": 6, "initial_vel": 2},
	},
	"average_power": {
		"lift": {"power": 20, "work": 1200, "elapsed_time": 60},
	},
	"gravitational_potential_energy": {
		"shelf": {"potential_E": 353.52, "mass": 3, "height": 12},
	},
	"elastic_potential_energy": {
		"spring": {"potential_E": 8, "spring_const": 400, "displacement": 0.2},
	},
	"conservation_of_energy": {
		"roller_coaster": {"kinetic_2": 60, "potential_2": 20, "kinetic_1": 30, "potential_1": 50},
	},
	"momentum": {
		"ball": {"momentum": 12, "mass": 3, "velocity": 4},
	},
	"impulse": {
		"kick": {"impulse": 10, "avg_force": 50, "elapsed_time": 0.2},
	},
	"impulse_momentum": {
		"bounce": {"impulse": 10, "mass": 0.5, "final_vel": 12, "initial_vel": -8},
	},
	"inelastic_collision_momentum": {
		"coupling": {"velocity_f": 3, "mass_f": 5, "mass_1": 2, "velocity_1": 6, "mass_2": 3, "velocity_2": 1},
	},
	"elastic_collision": {
		"billiards": {"final_vel_1": 0.3333333333, "mass_1": 2, "mass_2": 1, "init_vel_1": 3, "init_vel_2": -1},
	},
	"elastic_collision_second": {
		"billiards": {"final_vel_2": 4.333333333, "mass_1": 2, "mass_2": 1, "init_vel_1": 3, "init_vel_2": -1},
	},
	"rocket_equation": {
		"stage": {"delta_v": 2290.72683, "exhaust_vel": 2500, "init_mass": 1000, "final_mass": 400},
	},
	"center_of_mass": {
		"dumbbell": {"x_cm": 4, "mass_1": 2, "x_1": 1, "mass_2": 3, "x_2": 6},
	},
	"angular_position": {
		"wheel": {"theta": 1.5, "arc_length": 3, "radius": 2},
	},
	"tangential_speed": {
		"wheel": {"tang_speed": 4, "radius": 0.5, "omega": 8},
	},
	"tangential_accel": {
		"wheel": {"tang_accel": 1.5, "radius": 0.5, "angular_accel": 3},
	},
	"average_angular_vel": {
		"flywheel": {"ave_angular_vel": 4, "init_angular_vel": 2, "final_angular_vel": 6},
	},
	"angular_displacement": {
		"flywheel": {"final_theta": 7, "init_theta": 1, "ave_angular_vel": 3, "t": 2},
	},
	"angular_vel_const_accel": {
		"flywheel": {"final_angular_vel": 8, "init_angular_vel": 2, "angular_accel": 1.5, "t": 4},
	},
	"angular_displacement_const_accel": {
		"flywheel": {"final_theta": 11, "init_theta": 0.5, "init_angular_vel": 2, "t": 3, "angular_accel": 1},
	},
	"change_angular_velocity": {
		"flywheel": {"final_angular_vel": 5.830951895, "init_angular_vel": 2, "angular_accel": 1.5, "delta_theta": 10},
	},
	"rotational_ke": {
		"flywheel": {"kinetic_E": 9, "inertia": 0.5, "omega": 6},
	},
	"magnitude_of_torque": {
		"wrench": {"torque": 10.39230485, "radius": 0.3, "force": 40, "theta": 60},
	},
	"newtons_second_law_rotation": {
		"flywheel": {"torque": 6, "inertia": 2, "angular_accel": 3},
	},
	"rotational_power": {
		"motor": {"power": 300, "torque": 15, "omega": 20},
	},
	"parallel_axis": {
		"rod": {"inertia": 0.6, "inertia_cm": 0.1, "mass": 2, "distance": 0.5},
	},
	"angular_momentum": {
		"flywheel": {"angular_momentum": 6, "inertia": 2, "omega": 3},
	},
	"conservation_angular_momentum": {
		"skater": {"inertia_2": 1, "omega_2": 8, "inertia_1": 4, "omega_1": 2},
	},
	"gyroscope_precession": {
		"toy_gyroscope": {"precession_vel": 4, "mass": 0.5, "lever_arm": 0.04, "inertia": 0.000491, "omega": 100},
	},
	"young_modulus": {
		"steel_rod": {"young_mod": 2e+11, "force": 5000, "cross_section": 0.0001, "init_length": 2, "delta_length": 0.0005},
	},
	"bulk_modulus": {
		"water": {"bulk_mod": 2200000000, "delta_pressure": 2200000, "init_volume": 1, "delta_volume": -0.001},
	},
	"shear_modulus": {
		"block": {"shear_mod": 10000000000, "force": 1000, "cross_section": 0.01, "init_length": 0.1, "delta_layers": 1e-06},
	},
	"newtons_law_of_gravitation": {
		"person_on_earth": {"force": 687.3672423, "mass_1": 70, "mass_2": 5.972e+24, "radius": 6371000},
	},
	"gravitational_acceleration": {
		"earth": {"surface_gravity": 9.819532033, "mass": 5.972e+24, "radius": 6371000},
	},
	"universal_gravitational_potential_energy": {
		"satellite": {"potential_E": -6.256023858e+10, "mass_1": 1000, "mass_2": 5.972e+24, "radius": 6371000},
	},
	"escape_velocity": {
		"earth": {"escape_vel": 11185.72649, "mass": 5.972e+24, "radius": 6371000},
	},
	"orbital_velocity": {
		"low_earth_orbit": {"orbital_vel": 7672.317978, "mass": 5.972e+24, "radius": 6771000},
	},
	"orbital_period": {
		"low_earth_orbit": {"period": 5545.057939, "radius": 6771000, "mass": 5.972e+24},
	},
	"keplers_third_law": {
		"mars": {"period_1": 1.881384018, "period_2": 1, "radius_1": 1.524, "radius_2": 1},
	},
	"schwarzschild_radius": {
		"sun": {"schwarzschild_radius": 2953.993771, "mass": 1.989e+30},
	},
	"density": {
		"water": {"density": 1000, "mass": 10, "volume": 0.01},
	},
	"pressure": {
		"piston": {"pressure": 2000, "force": 500, "area": 0.25},
	},
	"hydrostatic_pressure": {
		"pool": {"pressure": 199525, "pressure_atm": 101325, "density": 1000, "depth": 10},
	},
	"pascals_principle": {
		"hydraulic_jack": {"force_1": 100, "area_1": 0.01, "force_2": 5000, "area_2": 0.5},
	},
	"flow_rate": {
		"hose": {"flow": 0.006, "area": 0.002, "velocity": 3},
	},
	"continuity_const_density": {
		"nozzle": {"area_1": 0.02, "velocity_1": 3, "area_2": 0.01, "velocity_2": 6},
	},
	"continuity_general": {
		"duct": {"density_1": 1.2, "area_1": 0.5, "velocity_1": 10, "density_2": 1, "area_2": 0.5, "velocity_2": 12},
	},
	"bernoullis_equation": {
		"rising_pipe": {"pressure_1": 200000, "density": 1000, "velocity_1": 2, "height_1": 0, "pressure_2": 184180, "velocity_2": 4, "height_2": 1},
	},
	"viscosity": {
		"oil_film": {"viscosity": 0.1, "force": 0.5, "distance": 0.001, "area": 0.05, "velocity": 0.1},
	},
	"poiseuilles_law_resistance": {
		"capillary": {"resistance": 254647.9089, "viscosity": 0.001, "length": 1, "radius": 0.01},
	},
	"poiseuilles_law": {
		"pipe": {"flow": 0.003926990817, "viscosity": 0.001, "length": 1, "radius": 0.01, "pressure_1": 2000, "pressure_2": 1000},
	},
}

func GetPreset(solver, preset string) Preset {
	solverPresets, ok := Presets[solver]
	if !ok {
		return nil
	}
	p, ok := solverPresets[preset]
	if !ok {
		return nil
	}
	return p
}

// ListPresets returns the preset names for a solver in sorted order.
func ListPresets(solver string) []string {
	solverPresets, ok := Presets[solver]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(solverPresets))
}

// Without returns a copy of the preset with one parameter left out, ready
// to be solved for it.
func (p Preset) Without(param string) map[string]float64 {
	out := make(map[string]float64, len(p))
	for k, v := range p {
		if k != param {
			out[k] = v
		}
	}
	return out
}
