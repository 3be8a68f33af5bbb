// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

// Package matcher advances pattern.Variant cursors one byte at a time.
//
// Feed implements the same self-border backtrack used by the original
// scanner: after a completed match, and on a mismatch (where it then
// retries the mismatching byte once against the recovered cursor), it does
// not restart the cursor from scratch; it replays the variant's own pattern
// bytes, not the input bytes actually consumed, to find the longest proper
// border. This is cheaper than a generic multi-pattern automaton but it
// has a known blind spot: the pattern bytes are zero wherever the mask is
// zero, so when the consumed input differs from them on unmasked bits the
// recovered border can be shorter than the input's, and an overlapping
// occurrence is missed (see TestFeed_MissesImmediatelyOverlappingRepeat in
// matcher_test.go). Patterns are expected to be short
// and the odds of hitting the blind spot are considered acceptable; no
// substitute algorithm (Aho-Corasick, a KMP failure table) is used here
// because either would silently behave differently on exactly this case.
package matcher
