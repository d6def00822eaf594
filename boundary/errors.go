// SPDX-License-Identifier: MIT

package boundary

import "errors"

var (
	// ErrInvalidMisorientation wraps a misorientation that is not a proper rotation.
	ErrInvalidMisorientation = errors.New("boundary: misorientation is not a proper rotation")

	// ErrInvalidNormal is returned for a zero-length or non-finite normal.
	ErrInvalidNormal = errors.New("boundary: normal must be a finite non-zero vector")
)
