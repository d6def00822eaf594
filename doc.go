// Package gbparams classifies grain boundaries in polycrystals: how close a
// boundary is to the ideal twist, tilt, symmetric and 180°-tilt geometries,
// how its misorientation splits into twist and tilt components, and whether
// it matches a coincidence site lattice (CSL) misorientation.
//
// 🚀 What is inside?
//
//	A small, dependency-light toolkit that brings together:
//		• Rotation algebra: matrices, axis-angle, Euler, quaternions, Rodrigues
//		• Crystal symmetry: Laue-class operator tables, stabilizers, disorientation
//		• CSL tables: generated cubic and hexagonal misorientations, named references
//		• Distances: exact angular distances to ideal boundaries (Nelder–Mead)
//		• Classification: one pass over every symmetry-equivalent description
//		• Batch evaluation: bounded worker pool, ordered records, cancellation
//		• GBCD helpers: hemisphere grids, characteristic axes, zone circles
//
// ✨ Design
//
//   - Value types everywhere: boundaries and rotations copy freely across goroutines.
//   - Math packages never log and never share mutable state.
//   - Functional options with documented defaults; panics only for programmer errors.
//   - Sentinel errors wrapped with context, matched with errors.Is.
//
// Packages, bottom-up:
//
//	rotation/     - rotation parameterizations and guarded trigonometry
//	symmetry/     - point groups, stabilizers, disorientation
//	csl/          - coincidence tables and Brandon-type matching
//	simplex/      - derivative-free Nelder–Mead minimizer
//	boundary/     - the (M, m1) boundary and its equivalence transforms
//	distance/     - objectives for the four ideal boundary types
//	characterize/ - the classifier
//	evaluate/     - parallel batch evaluation into tabular records
//	gbcd/         - fixed-misorientation plane distributions
//	config/       - YAML job files
//	cmd/gbparams  - command-line front end
//
// Quick example (a 30° twist on a cubic (001) plane):
//
//	z := rotation.Vector{0, 0, 1}
//	b := boundary.MustNew(rotation.NewAxisAngle(z, math.Pi/6).Matrix(), z)
//	r := characterize.Characterize(characterize.NewConfig(), b)
//	// r.Approx[distance.Twist] == 0, r.DisorientationAngle ≈ 0.5236
//
//	go install github.com/katalvlaran/gbparams/cmd/gbparams@latest
package gbparams
