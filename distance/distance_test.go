// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package distance

import (
	"testing"

	"github.com/vsyn/birch/groups"
	"github.com/vsyn/birch/pattern"
)

func TestPairDistance_NonexistentDominates(t *testing.T) {
	a := groups.Match{}
	b := groups.Match{Variant: &pattern.Variant{}, Path: "a/b", BitOffset: 10}
	got := PairDistance(a, b)
	want := [4]uint64{1, 0, 0, 0}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPairDistance_SameFileSameOffset(t *testing.T) {
	m := groups.Match{Variant: &pattern.Variant{}, Path: "x/y", BitOffset: 40}
	got := PairDistance(m, m)
	want := [4]uint64{0, 0, 0, 0}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPairDistance_DirDiffCountsDivergentSeparators(t *testing.T) {
	a := groups.Match{Variant: &pattern.Variant{}, Path: "a/b/c.bin", BitOffset: 0}
	b := groups.Match{Variant: &pattern.Variant{}, Path: "a/d/e/f.bin", BitOffset: 8}
	got := PairDistance(a, b)
	// common prefix "a/"; tails "b/c.bin" (1 sep) and "d/e/f.bin" (2 sep).
	if got[DirDiff] != 3 {
		t.Fatalf("DirDiff = %d, want 3", got[DirDiff])
	}
	if got[FileDiff] != 1 {
		t.Fatalf("FileDiff = %d, want 1", got[FileDiff])
	}
	if got[OffsDiff] != 8 {
		t.Fatalf("OffsDiff = %d, want 8", got[OffsDiff])
	}
}

func TestPairDistance_OffsDiffIsSymmetric(t *testing.T) {
	a := groups.Match{Variant: &pattern.Variant{}, Path: "p", BitOffset: 3}
	b := groups.Match{Variant: &pattern.Variant{}, Path: "p", BitOffset: 99}
	if PairDistance(a, b) != PairDistance(b, a) {
		t.Fatalf("PairDistance should be symmetric in offset difference")
	}
}

func TestCompare_LexicographicFirstComponentDominates(t *testing.T) {
	lo := [4]uint64{0, 5, 5, 5}
	hi := [4]uint64{1, 0, 0, 0}
	if Compare(lo, hi) >= 0 {
		t.Fatalf("expected lo < hi purely on the first component")
	}
	if Compare(hi, lo) <= 0 {
		t.Fatalf("expected hi > lo")
	}
	if Compare(lo, lo) != 0 {
		t.Fatalf("expected equal vectors to compare 0")
	}
}

func TestUpdateAggregate_MatchesBruteForceRecompute(t *testing.T) {
	mk := func(path string, offs uint64) groups.Match {
		return groups.Match{Variant: &pattern.Variant{}, Path: path, BitOffset: offs}
	}

	gs := &groups.Groups{States: []groups.State{
		{Match: groups.Match{}},
		{Match: groups.Match{}},
		{Match: groups.Match{}},
	}}

	steps := []struct {
		idx int
		m   groups.Match
	}{
		{0, mk("a/x.bin", 10)},
		{1, mk("a/y.bin", 40)},
		{2, mk("b/z.bin", 12)},
		{0, mk("a/y.bin", 41)},
		{1, mk("a/y.bin", 41)},
	}

	for i, step := range steps {
		gs.States[step.idx].Match = step.m
		UpdateAggregate(gs)
		want := Recompute(gs)
		if gs.Dist != want {
			t.Fatalf("step %d: aggregate = %v, want brute-force %v", i, gs.Dist, want)
		}
	}
}

func TestUpdateAggregate_SingleGroupIsAlwaysZero(t *testing.T) {
	gs := &groups.Groups{States: []groups.State{{Match: groups.Match{}}}}
	gs.States[0].Match = groups.Match{Variant: &pattern.Variant{}, Path: "p", BitOffset: 5}
	UpdateAggregate(gs)
	if gs.Dist != ([4]uint64{}) {
		t.Fatalf("expected zero vector with a single group, got %v", gs.Dist)
	}
}
