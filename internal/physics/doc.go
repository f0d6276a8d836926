// Package physics holds what every chapter solver shares: the physical
// constants, the error kinds, optional parameters and the rounding rule.
//
// The solvers themselves live in one subpackage per chapter:
//
//   - motion: one-dimensional kinematics and free fall (chapter 3)
//   - projectile: time of flight, trajectory, range (chapter 4)
//   - newton: second law, weight, normal force, Hooke's law (chapter 5)
//   - forces: friction, circular motion, drag (chapter 6)
//   - work: work, kinetic energy, power (chapter 7)
//   - energy: potential energy and conservation (chapter 8)
//   - momentum: impulse, collisions, rockets (chapter 9)
//   - rotation: angular kinematics, torque, inertia (chapter 10)
//   - angular: angular momentum and precession (chapter 11)
//   - elasticity: Young's, bulk and shear moduli (chapter 12)
//   - gravitation: Newton's law, orbits, escape velocity (chapter 13)
//   - fluids: pressure, continuity, Bernoulli, Poiseuille (chapter 14)
//
// # Solver Shape
//
// A solver takes a params struct whose fields are *float64. Exactly one
// field is nil: that is the value returned. A nil field is distinct from a
// known zero, built with [Given]:
//
//	t, err := motion.PositionFromVelAndAccel(motion.PositionParams{
//	    X0:    physics.Given(5),
//	    V0:    physics.Given(25),
//	    Accel: physics.Given(5),
//	    XF:    physics.Given(942.5),
//	})
//	// t == 15
//
// Domain checks run before the unknown is inspected, so a negative mass is
// rejected whichever value is being solved for. Failures are *[Error]
// values whose message is meant for the end user; match the category with
// errors.Is against [ErrInvalidInput], [ErrDivisionByZero], [ErrNonReal],
// [ErrNoSolution] or [ErrImplausible].
//
// Angles that pass through sine, cosine or tangent are in degrees.
// Angular positions, velocities and accelerations in the rotation
// chapters are in radians.
//
// [Wrap] exposes a typed solver as a [Func] taking a name-to-value map,
// which is how the catalog and the calculator call them.
package physics
