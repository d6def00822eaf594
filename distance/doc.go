// SPDX-License-Identifier: MIT

// Package distance defines the angular distance from a grain boundary to the
// nearest boundary of an ideal geometric type.
//
// Every ideal type is described by an Ideal: the sign tying the ideal normal
// to the rotation axis, whether the rotation angle is fixed at π, and
// whether the normal is instead constrained perpendicular to the axis. One
// Objective type evaluates all of them:
//
//	d²(x) = ω² + ½(θ1² + θ2²)
//
// where ω is the angle between the actual misorientation M and the trial
// rotation M′(x), and θ1, θ2 are the angles between the actual normals and
// the ideal normals m1′(x), m2′ = −M′ᵗ·m1′.
//
// Parameter vectors:
//
//	Twist±      (zenith, azimuth, angle)            m1′ = ±axis
//	Symmetric±  (zenith, azimuth)          angle=π  m1′ = ±axis
//	Tilt        (zenith, azimuth, angle, m1 azimuth) m1′ ⟂ axis
//	Tilt180     (zenith, azimuth, m1 azimuth) angle=π m1′ ⟂ axis
//
// The value is zero exactly when the boundary is an instance of the type.
// Minimization is left to the caller (see package simplex).
package distance
