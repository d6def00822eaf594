// SPDX-License-Identifier: MIT

package symmetry

import "errors"

var (
	// ErrUnknownPointGroup is returned for a label outside the supported set.
	ErrUnknownPointGroup = errors.New("symmetry: unknown point group")

	// ErrClosureOverflow is returned when the closure of a stabilizer grows past
	// any finite rotation group the tables can generate.
	ErrClosureOverflow = errors.New("symmetry: group closure did not terminate")
)
