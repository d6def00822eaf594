// SPDX-License-Identifier: MIT

// Package symmetry holds the proper-rotation tables of the supported crystal
// point groups and the group-closure routine that finds the symmetry of a
// given misorientation.
//
// Tables are literal constants built once at package initialization and
// never mutated; Operators hands out copies, so callers may keep and share
// the returned slices freely.
//
// Supported groups (Laue class label → number of proper rotations):
//
//	m3m   24   cubic
//	6/mmm 12   hexagonal
//	4/mmm  8   tetragonal
//	-3m    6   trigonal
//	mmm    4   orthorhombic
//	2/m    2   monoclinic
//	1      1   triclinic
package symmetry
