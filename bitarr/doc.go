// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

/*
Package bitarr implements the integer-literal codec birch's pattern
compiler uses to turn hex/octal/decimal argument text into fixed-width
little-endian byte buffers, and back into hex for diagnostics.

	b, err := bitarr.ParseInteger("0x78563412", 4)
	// b == []byte{0x12, 0x34, 0x56, 0x78}

	bitarr.RenderHex(b) // "0x78563412"
*/
package bitarr
