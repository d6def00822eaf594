// SPDX-License-Identifier: MIT

package gbcd

import "errors"

// ErrGridSize is returned by Hemisphere for fewer than two requested points.
var ErrGridSize = errors.New("gbcd: grid size must be at least 2")
