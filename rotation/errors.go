// SPDX-License-Identifier: MIT

package rotation

import "errors"

// Every message is prefixed with "rotation: ..." so that wrapped errors remain
// easy to grep. Callers match with errors.Is.
var (
	// ErrZeroVector is returned when a direction is requested from a vector of zero length.
	ErrZeroVector = errors.New("rotation: zero-length vector")

	// ErrHalfTurn is returned when a Rodrigues vector is requested for a rotation by π,
	// where tan(ω/2) is unbounded.
	ErrHalfTurn = errors.New("rotation: Rodrigues vector undefined for a half turn")

	// ErrNotRotation signals a matrix that is not proper orthogonal within tolerance.
	ErrNotRotation = errors.New("rotation: matrix is not a proper rotation")

	// ErrNaNInf signals NaN or ±Inf in an input that must be finite.
	ErrNaNInf = errors.New("rotation: NaN or Inf encountered")
)
