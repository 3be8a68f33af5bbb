// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package resultset

import (
	"github.com/vsyn/birch/distance"
	"github.com/vsyn/birch/groups"
)

// Set holds a fixed number of ranked candidate tuples, kept sorted
// ascending by distance (Items[0] is the best tuple seen so far).
type Set struct {
	Items []groups.Groups
}

// Combinations2 is size choose 2: the number of unordered group pairs, used
// as the "nexist" component of a tuple where every group is absent. Sizes
// below 2 return 1, matching the original's combinations2, which is never
// meant to be taken literally below 2 groups (distance is always the zero
// vector with fewer than 2 groups).
func Combinations2(size int) int {
	if size < 2 {
		return 1
	}
	return size * (size - 1) / 2
}

// New builds a Set of k sentinel tuples templated on template (whose
// States carry the compiled pattern groups but no matches). Every sentinel
// starts with nexist one greater than the worst possible real tuple's
// nexist, so any real candidate eventually displaces it.
func New(k int, template groups.Groups) *Set {
	items := make([]groups.Groups, k)
	sentinelNExist := uint64(Combinations2(len(template.States))) + 1
	for i := range items {
		snap := template.Snapshot()
		for j := range snap.States {
			snap.States[j].Match = groups.Match{}
		}
		snap.Dist = [4]uint64{sentinelNExist, 0, 0, 0}
		items[i] = snap
	}
	return &Set{Items: items}
}

// sharesMatch reports whether a and b have the same non-nil match in any
// group position, mirroring groups_cmp.
func sharesMatch(a, b *groups.Groups) bool {
	for i := range a.States {
		ma := a.States[i].Match
		if ma.Exists() && ma == b.States[i].Match {
			return true
		}
	}
	return false
}

// Offer considers candidate for inclusion in s. It scans from the back for
// an existing tuple sharing a match with candidate; if found, candidate
// replaces it only when strictly closer, and the scan stops (a shared
// tuple that is not an improvement means no other slot is touched either).
// Failing a share, it replaces the current worst tuple (the last slot)
// when candidate is closer. Either replacement is then bubbled toward the
// front until the set is sorted again.
func (s *Set) Offer(candidate *groups.Groups) {
	items := s.Items
	replaced := -1
	sharedFound := false
	for i := len(items) - 1; i >= 0; i-- {
		if sharesMatch(&items[i], candidate) {
			sharedFound = true
			if distance.Compare(candidate.Dist, items[i].Dist) < 0 {
				items[i] = candidate.Snapshot()
				replaced = i
			}
			break
		}
	}

	if sharedFound {
		if replaced == -1 {
			// A shared tuple exists but candidate is not an improvement
			// over it; nothing else in the set is touched.
			return
		}
	} else {
		worst := len(items) - 1
		if distance.Compare(candidate.Dist, items[worst].Dist) < 0 {
			items[worst] = candidate.Snapshot()
			replaced = worst
		} else {
			return
		}
	}

	for i, j := replaced, replaced-1; i > 0 && distance.Compare(items[i].Dist, items[j].Dist) < 0; i, j = i-1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
