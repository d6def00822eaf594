// SPDX-License-Identifier: MIT

// Package boundary models a grain boundary by its five macroscopic
// parameters: the misorientation M between the two grains and the boundary
// normal m1 expressed in the frame of the first grain.
//
// The normal seen from the second grain, m2 = −Mᵗ·m1, is always derived and
// never stored, so the pair can not drift out of agreement.
//
// A Boundary is an immutable value. The equivalence transforms (Transpose,
// Invert, ApplySymmetry) return new values and describe the same physical
// interface under a different but crystallographically equivalent labelling.
package boundary
