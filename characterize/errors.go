// SPDX-License-Identifier: MIT

package characterize

// Panic messages for precondition failures.
const (
	panicNoOperators = "characterize: symmetry operator table is empty"
	panicNilTable    = "characterize: WithCSL: table is nil"
	panicBadBrandon  = "characterize: WithCSL: p must be finite and omega0 positive"
	panicPointGroup  = "characterize: WithPointGroup: unknown point group"
)
