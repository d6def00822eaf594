// SPDX-License-Identifier: MIT

// Package rotation provides the rotation algebra used across gbparams.
//
// The package offers small value types and pure conversions between the
// common parameterizations of a proper rotation in 3D:
//
//   - Matrix: proper orthogonal 3×3 matrix (det = +1).
//   - Vector: 3-vector; unit directions are built with NewUnitVector or FromPolar.
//   - AxisAngle: (axis, angle) with angle canonicalized into [0, π].
//   - Euler: Bunge (ZXZ) triple (φ1, Φ, φ2), passive sample→crystal convention.
//   - Quaternion: gonum quat.Number, scalar first.
//   - Rodrigues: axis·tan(ω/2); undefined for a half turn (ErrHalfTurn).
//
// Guarded trigonometry (Acos, Atan, Atan2, Sqrt) never produces NaN for
// arguments that leave their domain only through floating round-off: the
// rotation angle of a valid matrix is always finite, even when the trace
// drifts slightly outside [-1, 3].
//
// All values are copied freely; nothing in this package holds shared mutable
// state, so values can be passed across goroutines without synchronization.
//
// Matrix conventions:
//
//	AxisAngle.Matrix() = cos ω·I + (1 − cos ω)·n·nᵗ + sin ω·[n]×
//
// which is the active rotation of a vector about n by ω.
package rotation
