// SPDX-License-Identifier: MIT

// Package gbcd works with boundaries of one fixed misorientation, where only
// the plane normal varies over the upper hemisphere.
//
// It provides:
//
//   - Hemisphere: a deterministic spiral grid of polar coordinates with
//     nearly uniform spacing, covering the upper hemisphere plus a small
//     margin below the equator.
//   - Sweep: evaluation of every grid normal through an evaluate.Evaluator,
//     returning values in grid order together with stereographic positions.
//   - Characteristic: the unique twist and 180° symmetric axes of the
//     misorientation (positions of pure twist and symmetric boundaries) and
//     the great circles of their tilt zones.
//   - Symmetries: the stabilizer axes of the misorientation and the mirror
//     lines induced by its diads.
//
// All positions are stereographic: r = tan(θ/2) for polar angle θ, so the
// equator maps onto the unit circle. Results are numbers only; drawing is
// left to the caller.
package gbcd
