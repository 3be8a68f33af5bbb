// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

// Package groups holds the mutable scan-time state layered on top of
// compiled pattern groups: each group's current match (if any) and the
// aggregate cross-group distance vector, which together make up one
// candidate result tuple.
package groups
