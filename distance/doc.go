// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

// Package distance computes the four-component distance vector between
// pairs of pattern matches, and maintains the aggregate cross-group vector
// as individual group matches are replaced during a scan.
//
// The vector is (nexist, dirDiff, fileDiff, offsDiff), compared
// lexicographically with the first component dominating: a pair where
// either match does not yet exist is considered maximally distant and
// wins no comparison against a pair where both exist.
package distance
