// SPDX-License-Identifier: MIT

package csl

import "errors"

var (
	// ErrInvalidSigma is returned when maxSigma < 1.
	ErrInvalidSigma = errors.New("csl: maxSigma must be at least 1")

	// ErrInvalidRatio is returned when a hexagonal axial-ratio term is < 1.
	ErrInvalidRatio = errors.New("csl: mu and nu must be positive integers")
)
