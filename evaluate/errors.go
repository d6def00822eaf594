// SPDX-License-Identifier: MIT

package evaluate

import "errors"

// Panic message for a Sigma column without a coincidence table.
const panicSigmaWithoutCSL = "evaluate: New: Sigma field requires a CSL table in the template"

var (
	// ErrPanic is recorded when characterization of one request panicked.
	ErrPanic = errors.New("evaluate: characterization panicked")

	// ErrUnknownField is returned by ParseField for an unrecognized header.
	ErrUnknownField = errors.New("evaluate: unknown field")
)
