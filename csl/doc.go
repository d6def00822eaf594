// SPDX-License-Identifier: MIT

// Package csl generates tables of coincidence-site-lattice (CSL)
// misorientations and matches arbitrary misorientations against them.
//
// A CSL misorientation is labelled by Σ, the reciprocal density of lattice
// sites shared by both grains. Tables are built from the integer quadruple
// (m, U, V, W) parameterization:
//
//   - Cubic(maxSigma) enumerates all Σ ≤ maxSigma for cubic lattices.
//   - Hexagonal(maxSigma, mu, nu) does the same for hexagonal lattices whose
//     axial ratio satisfies (c/a)² = mu/nu.
//
// Each table contains the identity (Σ1) and is sorted by Σ, stably, so entries
// sharing a Σ (Σ13a/Σ13b) keep their generation order.
//
// Matching uses the Brandon-type criterion: a misorientation M belongs to an
// entry E when the angle of M·Eᵗ is below ω0/Σᵖ. Table.Match returns the first
// such entry, i.e. the lowest Σ.
//
// Reference returns the conventional named cubic list (Σ3 … Σ39b) as
// axis-angle pairs for lookups and plotting.
//
// Tables are immutable after construction and safe for concurrent use.
package csl
