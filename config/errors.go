// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidJob wraps decoding and validation failures.
	ErrInvalidJob = errors.New("config: invalid job")

	// ErrSigmaWithoutCSL is returned when the Sigma field is requested from a
	// job without a csl section.
	ErrSigmaWithoutCSL = errors.New("config: field Sigma requires a csl section")

	// ErrNoSweep is returned when a sweep is requested from a job without one.
	ErrNoSweep = errors.New("config: job has no sweep section")
)
