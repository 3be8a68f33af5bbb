// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

// Package scan orchestrates a search: for every file under a set of root
// paths, every pattern variant is fed one byte at a time; on each
// completion the owning group's current match is replaced, the aggregate
// distance recomputed, and the resulting tuple offered to a ranked result
// set.
//
// Matcher cursors are reset at the start of every file, but group current
// matches are never reset between files — a ranked tuple can, and often
// will, span matches found in different files (see groups.Groups and
// distance.PairDistance's dirDiff/fileDiff components, which exist
// specifically to penalize that).
package scan
