// SPDX-License-Identifier: MIT

// Package characterize classifies a grain boundary against the ideal twist,
// tilt, symmetric and 180°-tilt families, decomposes it into twist and tilt
// components, and checks it against a CSL table.
//
// Characterize is a pure function of an immutable Config and a Boundary. It
// walks every crystallographically equivalent description of the boundary,
//
//	transpose ∈ {false, true} × invert ∈ {false, true} × C1 ∈ G × C2 ∈ G
//
// (the first two only when grain exchange and inversion are enabled) and
// keeps, for every requested Kind, the minimum over all of them:
//
//   - exact distances: the Nelder–Mead minimum of each distance.Objective,
//     seeded from the equivalent's own axis-angle pair; for Twist and
//     Symmetric both axis signs are tried;
//   - approximate distances: closed-form proxies from the angle α between
//     the rotation axis and the normal (and from π − ω for the half-turn
//     families);
//   - twist and tilt components of the rotation;
//   - the lowest Σ whose Brandon-type tolerance ω0/Σᵖ contains the
//     equivalent misorientation;
//   - the disorientation angle.
//
// Multiplicity counts the equivalents that reproduce the input boundary
// within 1e-3 on every component; it is the order of the boundary's own
// symmetry inside the enumeration.
//
// Distances are accumulated squared and reported as square roots.
//
// Characterize panics when the operator table is empty. A Config is safe to
// share between goroutines.
package characterize
