// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package distance

import (
	"strings"

	"github.com/vsyn/birch/groups"
)

// Component indices into a distance vector, matching
// ptn_group_match_dist_calc's MATCH_NEXIST/MATCH_DIR_DIFF/MATCH_FILE_DIFF/
// MATCH_OFFS_DIFF ordering.
const (
	NExist = iota
	DirDiff
	FileDiff
	OffsDiff
)

// PairDistance computes the four-component distance between two matches.
// If either match does not exist, the vector is {1, 0, 0, 0}: existence
// dominates every other component in Compare.
func PairDistance(a, b groups.Match) [4]uint64 {
	if !a.Exists() || !b.Exists() {
		return [4]uint64{1, 0, 0, 0}
	}
	var d [4]uint64
	d[NExist] = 0
	d[DirDiff] = uint64(dirDiff(a.Path, b.Path))
	if a.Path != b.Path {
		d[FileDiff] = 1
	}
	d[OffsDiff] = absDiff(a.BitOffset, b.BitOffset)
	return d
}

// dirDiff advances past the shared prefix of two paths, then counts path
// separators remaining in each tail and sums them: the number of
// directory levels the two paths diverge by.
func dirDiff(a, b string) int {
	n := commonPrefixLen(a, b)
	return strings.Count(a[n:], "/") + strings.Count(b[n:], "/")
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func absDiff(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return b - a
}

// Compare lexicographically orders two distance vectors, first component
// dominating. It returns a negative number if a < b, zero if equal, and a
// positive number if a > b.
func Compare(a, b [4]uint64) int {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Recompute returns the full O(G²) sum of PairDistance over every unordered
// pair of distinct groups in gs, each pair counted once — the ground truth
// that UpdateAggregate's incremental maintenance must always agree with.
// With fewer than two groups the aggregate is always the zero vector.
func Recompute(gs *groups.Groups) [4]uint64 {
	var sum [4]uint64
	for i := range gs.States {
		for j := i + 1; j < len(gs.States); j++ {
			d := PairDistance(gs.States[i].Match, gs.States[j].Match)
			for k := 0; k < 4; k++ {
				sum[k] += d[k]
			}
		}
	}
	return sum
}

// UpdateAggregate recomputes gs.Dist from the current gs.States. Call it
// after the caller has already installed a group's new match in
// gs.States[i].Match — UpdateAggregate only computes the aggregate, it
// never touches a group's match itself.
//
// The original C maintains this incrementally — for every other group h,
// `D += pair_distance(h, new) - pair_distance(h, old)` on unsigned
// accumulators, which the source's own comments flag as susceptible to
// intermediate underflow. This implementation instead recomputes the full
// sum from scratch each time, which is unconditionally correct and, since
// Recompute counts each unordered pair exactly once like the incremental
// update does, numerically equivalent: the O(G²) cost is never large enough
// to matter for the handful of pattern groups a single invocation compares.
func UpdateAggregate(gs *groups.Groups) {
	gs.Dist = Recompute(gs)
}
