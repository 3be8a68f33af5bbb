// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package dirwalk

import "errors"

// ErrStat is returned, wrapped, when stat-ing a tree node fails — the
// walk-time equivalent of dir_tree_mfp's stat() failure path.
var ErrStat = errors.New("dirwalk: stat failed")
