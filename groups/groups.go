// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package groups

import "github.com/vsyn/birch/pattern"

// Match is one pattern group's current occurrence: which variant matched,
// the file it matched in, and the absolute bit offset of the match's first
// payload bit. The zero value (Variant == nil) means "no match yet".
type Match struct {
	Variant *pattern.Variant
	Path    string
	BitOffset uint64
}

// Exists reports whether m represents a real match.
func (m Match) Exists() bool {
	return m.Variant != nil
}

// State is the scan-time state of one user-facing pattern group: its
// compiled variants plus its current match. Variants is flattened from
// every pattern.Group compiled for this state — normally one, but more
// than one when the CLI's "g" (group-with-last) flag joins several
// alternative pattern specs into a single group sharing one match slot.
type State struct {
	Variants []*pattern.Variant
	Match    Match
}

// AddCompiled appends every variant of a freshly compiled pattern.Group to
// s, making them alternatives that all feed into s's single Match slot.
func (s *State) AddCompiled(g *pattern.Group) {
	for i := range g.Variants {
		s.Variants = append(s.Variants, &g.Variants[i])
	}
}

// Groups is the state of every pattern group in a scan, plus the
// aggregate four-component distance vector across their current matches.
type Groups struct {
	States []State
	Dist   [4]uint64
}

// Snapshot returns a deep-enough copy of g suitable for storing in a
// ranked result set: the match values are copied, but States share the
// same underlying *pattern.Variant pointers (compiled patterns are
// immutable after compilation except for Cursor, which a stored snapshot
// never consults again).
func (g *Groups) Snapshot() Groups {
	out := Groups{
		States: make([]State, len(g.States)),
		Dist:   g.Dist,
	}
	for i, s := range g.States {
		out.States[i] = State{Variants: s.Variants, Match: s.Match}
	}
	return out
}
