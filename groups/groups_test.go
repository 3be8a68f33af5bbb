// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package groups

import (
	"testing"

	"github.com/vsyn/birch/pattern"
)

func compileOrFatal(t *testing.T, s pattern.Spec) *pattern.Group {
	t.Helper()
	g, err := pattern.Compile(s, pattern.Little)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return g
}

func TestMatch_ExistsIsFalseForZeroValue(t *testing.T) {
	var m Match
	if m.Exists() {
		t.Fatalf("zero-value Match.Exists() = true, want false")
	}
}

func TestState_AddCompiledAppendsVariants(t *testing.T) {
	var s State
	g1 := compileOrFatal(t, pattern.Spec{ArgText: "0x12", Type: pattern.Integer, Alignment: pattern.Aligned, Endian: pattern.Little, SizeBits: 8})
	s.AddCompiled(g1)
	if len(s.Variants) != 1 {
		t.Fatalf("len(Variants) = %d, want 1", len(s.Variants))
	}

	g2 := compileOrFatal(t, pattern.Spec{ArgText: "AB", Type: pattern.String, Alignment: pattern.Unaligned, Endian: pattern.Little, SizeBits: 16})
	s.AddCompiled(g2)
	if len(s.Variants) != 1+len(g2.Variants) {
		t.Fatalf("len(Variants) = %d, want %d", len(s.Variants), 1+len(g2.Variants))
	}
}

func TestGroups_SnapshotIsIndependentOfLaterMatchChanges(t *testing.T) {
	var s State
	s.AddCompiled(compileOrFatal(t, pattern.Spec{ArgText: "0x12", Type: pattern.Integer, Alignment: pattern.Aligned, Endian: pattern.Little, SizeBits: 8}))

	gs := &Groups{States: []State{s}, Dist: [4]uint64{1, 2, 3, 4}}
	snap := gs.Snapshot()

	gs.States[0].Match = Match{Variant: gs.States[0].Variants[0], Path: "f.bin", BitOffset: 8}
	gs.Dist = [4]uint64{9, 9, 9, 9}

	if snap.States[0].Match.Exists() {
		t.Fatalf("snapshot's match should not see the later mutation")
	}
	if snap.Dist != [4]uint64{1, 2, 3, 4} {
		t.Fatalf("snapshot's Dist = %v, want unchanged", snap.Dist)
	}
}
