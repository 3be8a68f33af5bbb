// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package bitarr

import "errors"

// ErrBadDigit is returned when ParseInteger encounters a character outside
// the alphabet implied by its prefix (hex digit for "0x", octal digit for
// a leading "0", decimal digit otherwise).
var ErrBadDigit = errors.New("bitarr: invalid digit in pattern literal")
