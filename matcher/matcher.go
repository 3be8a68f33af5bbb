// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package matcher

import "github.com/vsyn/birch/pattern"

// Reset zeroes v's cursor, ready to match from the start of a new file.
func Reset(v *pattern.Variant) {
	v.Cursor = 0
}

// Feed advances v's cursor with one input byte c and reports whether the
// variant completed a match on this call.
func Feed(v *pattern.Variant, c byte) bool {
	if c&v.Mask[v.Cursor] == v.Bytes[v.Cursor] {
		v.Cursor++
		if v.Cursor == v.SizeBytes {
			backtrack(v, v.Cursor)
			return true
		}
	} else if v.Cursor != 0 {
		backtrack(v, v.Cursor)
		Feed(v, c)
	}
	return false
}

// backtrack recovers the longest proper border of v's own pattern bytes
// v.Bytes[:count] by replaying v.Bytes[1:count] through Feed, then discards
// whatever that replay reports (it feeds fewer than SizeBytes bytes from a
// zero cursor, so it cannot complete). Replaying the pattern's bytes in
// place of the consumed input is the inherited blind spot documented in
// doc.go.
func backtrack(v *pattern.Variant, count int) {
	v.Cursor = 0
	for i := 1; i < count; i++ {
		Feed(v, v.Bytes[i])
	}
}
