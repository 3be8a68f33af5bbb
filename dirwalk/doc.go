// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

// Package dirwalk enumerates the regular files under a set of root paths
// in depth-first order.
//
// Within any one directory, every regular file among its immediate
// children is visited, in byte-wise sorted filename order, before the
// walk recurses into any of that directory's subdirectories (also in
// sorted order). This is deliberately not the order filepath.WalkDir
// produces (which interleaves files and directories in one sorted pass
// per level) — the original scanner processes a level's files first so
// that files in a directory are always closer, rank-wise, to each other
// than to files reached only after descending into a subdirectory.
//
// Options.Ignore lets a caller skip whole files or subtrees by glob
// pattern, an ambient concern the original single-purpose scanner never
// needed but which a config-file-driven CLI does.
package dirwalk
