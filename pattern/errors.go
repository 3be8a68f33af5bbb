// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package pattern

import "errors"

var (
	// ErrFloatWidth is returned when a float pattern's SizeBits is not 32
	// (float32) or 64 (float64).
	ErrFloatWidth = errors.New("pattern: float patterns must be 32 or 64 bits wide")
	// ErrStringTooShort is returned when a string pattern's literal text is
	// shorter than its declared SizeBits.
	ErrStringTooShort = errors.New("pattern: string literal shorter than declared size")
)
