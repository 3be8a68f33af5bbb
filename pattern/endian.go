// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package pattern

import "encoding/binary"

// HostEndian reports the running process's native byte order, using the
// stdlib's encoding/binary.NativeEndian rather than a hand-rolled runtime
// probe over a known-value byte.
func HostEndian() Endian {
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 1)
	if buf[0] == 1 {
		return Little
	}
	return Big
}
