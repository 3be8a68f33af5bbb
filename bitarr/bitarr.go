// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package bitarr

import (
	"fmt"
	"strings"
)

// ParseInteger decodes text into a little-endian byte buffer of exactly
// sizeBytes bytes. A "0x"/"0X" prefix selects hex (4 bits per digit), a
// leading "0" selects octal (3 bits per digit), anything else is decimal.
// Each digit is folded into the buffer by shifting the whole buffer left
// by the prefix's bit width and adding the digit's value, truncating at
// the high end exactly as a fixed-width register would. ErrBadDigit is
// returned for any character outside the selected alphabet.
func ParseInteger(text string, sizeBytes int) ([]byte, error) {
	if sizeBytes < 0 {
		return nil, ErrBadDigit
	}
	if len(text) > 0 && text[0] == '0' {
		if len(text) > 1 && (text[1] == 'x' || text[1] == 'X') {
			return fromDigits(text[2:], sizeBytes, 4, 0xf)
		}
		return fromDigits(text[1:], sizeBytes, 3, 7)
	}
	return fromDecimal(text, sizeBytes)
}

// RenderHex renders b as "0x" followed by big-endian hex, two characters
// per byte, for diagnostics (e.g. printing a parsed pattern back to the
// user).
func RenderHex(b []byte) string {
	var sb strings.Builder
	sb.WriteString("0x")
	for i := len(b) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%02X", b[i])
	}
	return sb.String()
}

// fromDigits decodes s one digit at a time under a fixed shift-per-digit
// (4 for hex, 3 for octal), rejecting digits above maxDigit.
func fromDigits(s string, sizeBytes int, shift uint, maxDigit byte) ([]byte, error) {
	arr := make([]byte, sizeBytes)
	for i := 0; i < len(s); i++ {
		lshift(arr, shift)
		v, ok := hexNibble(s[i])
		if !ok || v > maxDigit {
			return nil, ErrBadDigit
		}
		addByte(arr, v)
	}
	return arr, nil
}

// fromDecimal decodes a decimal literal by repeated multiply-by-10-and-add,
// truncating overflow beyond sizeBytes.
func fromDecimal(s string, sizeBytes int) ([]byte, error) {
	arr := make([]byte, sizeBytes)
	for i := 0; i < len(s); i++ {
		v, ok := hexNibble(s[i])
		if !ok || v > 9 {
			return nil, ErrBadDigit
		}
		mul10(arr)
		addByte(arr, v)
	}
	return arr, nil
}

// lshift shifts arr (little-endian, arr[0] least significant) left by
// shift bits, shift must be < 8. Bits shifted out of the top byte are
// discarded (fixed-width truncation).
func lshift(arr []byte, shift uint) {
	if shift == 0 || len(arr) == 0 {
		return
	}
	rshift := 8 - shift
	var prev byte
	for i := range arr {
		cur := arr[i]
		arr[i] = (cur << shift) | (prev >> rshift)
		prev = cur
	}
}

// addByte adds c to arr[0], propagating carry into higher bytes. Carry
// that would propagate past the end of arr is dropped, matching the
// buffer's fixed-width contract.
func addByte(arr []byte, c byte) {
	if len(arr) == 0 {
		return
	}
	arr[0] += c
	if len(arr) == 1 || arr[0] >= c {
		return
	}
	for i := 1; i < len(arr); i++ {
		arr[i]++
		if arr[i] != 0 {
			break
		}
	}
}

// mul10 multiplies arr (little-endian) by 10 in place, truncating overflow
// beyond len(arr).
func mul10(arr []byte) {
	var carry uint16
	for i := range arr {
		v := uint16(arr[i])*10 + carry
		arr[i] = byte(v)
		carry = v >> 8
	}
}

// hexNibble maps a single digit character to its numeric value.
func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return 0xa + (c - 'a'), true
	case c >= 'A' && c <= 'F':
		return 0xa + (c - 'A'), true
	}
	return 0, false
}
