// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

// Package resultset holds a fixed-size, rank-ordered set of candidate
// result tuples (groups.Groups snapshots), sorted by ascending distance.
//
// Offer implements the same three-step protocol as the original's
// result_add: scan from the back looking for a tuple that shares any
// match with the offered one (replace it only if the offered tuple is
// closer), otherwise replace the current worst tuple if the offered one
// is closer, then bubble the replaced slot toward the front until the set
// is sorted again.
package resultset
