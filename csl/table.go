// SPDX-License-Identifier: MIT

package csl

import (
	"math"
	"sort"

	"github.com/katalvlaran/gbparams/rotation"
)

// Brandon-type criterion defaults.
const (
	// DefaultP is the exponent in ω0/Σᵖ.
	DefaultP = 0.5

	// DefaultOmega0 is the Σ1 tolerance, 15° in radians.
	DefaultOmega0 = 15 * math.Pi / 180
)

// Entry is one CSL misorientation.
type Entry struct {
	M     rotation.Matrix
	Sigma int
}

// Table is an immutable, Σ-ordered list of entries.
type Table struct {
	entries []Entry
}

// newTable sorts entries stably by Σ and seals them.
func newTable(entries []Entry) *Table {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Sigma < entries[j].Sigma })

	return &Table{entries: entries}
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// At returns entry i; it panics when i is out of range.
func (t *Table) At(i int) Entry { return t.entries[i] }

// Entries returns a copy of all entries.
func (t *Table) Entries() []Entry { return append([]Entry(nil), t.entries...) }

// Sigmas returns Σ of every entry in table order.
func (t *Table) Sigmas() []int {
	out := make([]int, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Sigma
	}

	return out
}

// Match returns the first entry E whose deviation angle(m·Eᵗ) is below
// omega0/Σᵖ. No symmetry is applied; callers pass each equivalent of m.
func (t *Table) Match(m rotation.Matrix, p, omega0 float64) (Entry, bool) {
	for _, e := range t.entries {
		if m.AngleTo(e.M) < omega0/math.Pow(float64(e.Sigma), p) {
			return e, true
		}
	}

	return Entry{}, false
}
