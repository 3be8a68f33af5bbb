// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package matcher

import (
	"testing"

	"github.com/vsyn/birch/pattern"
)

func newVariant(bytesv, mask []byte) *pattern.Variant {
	return &pattern.Variant{
		Bytes:     bytesv,
		Mask:      mask,
		SizeBits:  uint64(len(bytesv) * 8),
		SizeBytes: len(bytesv),
	}
}

func feedAll(v *pattern.Variant, data []byte) []bool {
	out := make([]bool, len(data))
	for i, c := range data {
		out[i] = Feed(v, c)
	}
	return out
}

func TestFeed_AlignedExactMatch(t *testing.T) {
	v := newVariant([]byte{0x41, 0x42}, []byte{0xff, 0xff})
	got := feedAll(v, []byte{0x41, 0x42})
	want := []bool{false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %v, want %v", i, got, want)
		}
	}
}

func TestFeed_MismatchRestartsAtZero(t *testing.T) {
	v := newVariant([]byte{0x41, 0x42}, []byte{0xff, 0xff})
	got := feedAll(v, []byte{0x00, 0x41, 0x42})
	want := []bool{false, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %v, want %v", i, got, want)
		}
	}
}

// TestFeed_MissesImmediatelyOverlappingRepeat is a regression test for the
// behavior documented in doc.go: because backtrack recovers the next cursor
// by replaying the pattern's own bytes rather than re-examining the bytes
// already consumed from the input, an overlapping repeat starting one byte
// after a completed match can be missed.
//
// Pattern bytes {1, 0} with mask {1, 0} (byte 0 requires an odd value, byte
// 1 accepts anything). Fed the stream {1, 1, 0}:
//   - byte 0 (1) satisfies byte-0's criterion: cursor 0 -> 1.
//   - byte 1 (1) satisfies byte-1's criterion (wildcard): cursor completes
//     at 2, reporting a match covering input[0:2] = {1, 1}; backtrack then
//     replays bytes[1] (0) through byte-0's criterion (0&1 != 1), finding no
//     border, so cursor resets to 0.
//   - byte 2 (0) is tested against byte-0's criterion from a cold cursor
//     and fails, even though input[1:3] = {1, 0} independently satisfies
//     the whole pattern. A brute-force scan would report a second match
//     here; the streaming matcher does not, because it has no memory of
//     input[1] once the cursor moved past it.
func TestFeed_MissesImmediatelyOverlappingRepeat(t *testing.T) {
	v := newVariant([]byte{1, 0}, []byte{1, 0})
	got := feedAll(v, []byte{1, 1, 0})
	want := []bool{false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %v, want %v", i, got, want)
		}
	}

	// Confirm the brute-force window at byte 2 really would satisfy the
	// pattern, so the miss above is the documented quirk and not a bug in
	// the test's pattern/mask choice.
	window := []byte{1, 0}
	for i, b := range window {
		if b&v.Mask[i] != v.Bytes[i] {
			t.Fatalf("test setup invalid: window %v does not satisfy pattern under mask at byte %d", window, i)
		}
	}
}

func TestReset_ZeroesCursor(t *testing.T) {
	v := newVariant([]byte{0x41, 0x42}, []byte{0xff, 0xff})
	Feed(v, 0x41)
	if v.Cursor == 0 {
		t.Fatalf("expected non-zero cursor after partial match")
	}
	Reset(v)
	if v.Cursor != 0 {
		t.Fatalf("Reset left cursor = %d, want 0", v.Cursor)
	}
}
