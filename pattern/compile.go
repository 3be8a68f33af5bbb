// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package pattern

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/vsyn/birch/bitarr"
)

// Compile expands spec into a Group: the cartesian product of shift
// variants (alignment == Unaligned produces CharBit of them) and
// endianness variants (endian == Both doubles whatever came before).
// nativeEndian is the host's byte order, used as the default for float
// patterns (integers always default to Little).
func Compile(spec Spec, nativeEndian Endian) (*Group, error) {
	sizeBytes := sizeBytesFor(spec.SizeBits)

	base, typeEndian, err := buildBase(spec, sizeBytes, nativeEndian)
	if err != nil {
		return nil, err
	}

	variants := []Variant{base}
	if spec.Alignment == Unaligned {
		variants = unalignVariants(base)
	}

	if spec.Type != String {
		if spec.Endian == Both {
			doubled := make([]Variant, len(variants), len(variants)*2)
			copy(doubled, variants)
			for _, v := range variants {
				doubled = append(doubled, reversedVariant(v))
			}
			variants = doubled
		} else if spec.Endian != typeEndian {
			for i := range variants {
				reverseBytes(variants[i].Bytes)
				reverseBytes(variants[i].Mask)
			}
		}
	}

	g := &Group{Spec: spec, Variants: variants}
	for i := range g.Variants {
		g.Variants[i].Spec = &g.Spec
	}
	return g, nil
}

func sizeBytesFor(sizeBits uint64) int {
	return int((sizeBits + CharBit - 1) / CharBit)
}

// buildBase constructs the aligned, offs==0 variant for spec, and reports
// the data type's default endianness (used to decide whether the compiler
// needs to byte-reverse to honor spec.Endian).
func buildBase(spec Spec, sizeBytes int, nativeEndian Endian) (Variant, Endian, error) {
	mask := genMask(spec.SizeBits, sizeBytes)

	switch spec.Type {
	case Integer:
		b, err := bitarr.ParseInteger(spec.ArgText, sizeBytes)
		if err != nil {
			return Variant{}, Little, fmt.Errorf("pattern: integer literal %q: %w", spec.ArgText, err)
		}
		return Variant{Bytes: b, Mask: mask, SizeBits: spec.SizeBits, SizeBytes: sizeBytes}, Little, nil

	case Float:
		b, err := floatBytes(spec.ArgText, spec.SizeBits)
		if err != nil {
			return Variant{}, nativeEndian, err
		}
		return Variant{Bytes: b, Mask: mask, SizeBits: spec.SizeBits, SizeBytes: sizeBytes}, nativeEndian, nil

	case String:
		if len(spec.ArgText) < sizeBytes {
			return Variant{}, Little, ErrStringTooShort
		}
		b := append([]byte(nil), spec.ArgText[:sizeBytes]...)
		return Variant{Bytes: b, Mask: mask, SizeBits: spec.SizeBits, SizeBytes: sizeBytes}, Little, nil
	}

	return Variant{}, Little, fmt.Errorf("pattern: unknown data type %v", spec.Type)
}

// floatBytes parses text as a float32 or float64 (SizeBits must be 32 or
// 64) and returns its raw host-native byte representation.
func floatBytes(text string, sizeBits uint64) ([]byte, error) {
	switch sizeBits {
	case 32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, fmt.Errorf("pattern: float32 literal %q: %w", text, err)
		}
		b := make([]byte, 4)
		binary.NativeEndian.PutUint32(b, math.Float32bits(float32(f)))
		return b, nil
	case 64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("pattern: float64 literal %q: %w", text, err)
		}
		b := make([]byte, 8)
		binary.NativeEndian.PutUint64(b, math.Float64bits(f))
		return b, nil
	}
	return nil, ErrFloatWidth
}

// genMask builds an all-ones mask except the last byte, whose low
// sizeBits%CharBit bits are set (or all ones when that remainder is zero).
func genMask(sizeBits uint64, sizeBytes int) []byte {
	mask := make([]byte, sizeBytes)
	for i := 0; i < sizeBytes-1; i++ {
		mask[i] = 0xff
	}
	last := byte((1 << (sizeBits % CharBit)) - 1)
	if last == 0 {
		last = 0xff
	}
	mask[sizeBytes-1] = last
	return mask
}

// unalignVariants produces the CharBit shift variants (offs 0..CharBit-1)
// of base, each the previous variant's bytes/mask shifted left by one more
// bit, growing the buffer by a byte whenever the extra bit no longer fits.
func unalignVariants(base Variant) []Variant {
	out := make([]Variant, CharBit)
	out[0] = base
	for shift := 1; shift < CharBit; shift++ {
		prev := out[shift-1]
		offs := prev.OffsBits + 1
		totalBits := base.SizeBits + uint64(offs)
		sizeBytes := int((totalBits-1)/CharBit) + 1

		out[shift] = Variant{
			Bytes:     lshiftCopy(prev.Bytes, sizeBytes),
			Mask:      lshiftCopy(prev.Mask, sizeBytes),
			OffsBits:  offs,
			SizeBits:  base.SizeBits,
			SizeBytes: sizeBytes,
		}
	}
	return out
}

// lshiftCopy returns arr shifted left by one bit, in a buffer of newLen
// bytes (newLen is len(arr) or len(arr)+1; the extra byte, if any, picks
// up the bit shifted out of the top).
func lshiftCopy(arr []byte, newLen int) []byte {
	out := make([]byte, newLen)
	var prev byte
	for i := 0; i < len(arr); i++ {
		out[i] = (arr[i] << 1) | (prev >> 7)
		prev = arr[i]
	}
	if newLen > len(arr) {
		out[len(arr)] = prev >> 7
	}
	return out
}

// reverseBytes reverses b in place.
func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// reversedVariant returns a copy of v with Bytes and Mask byte-order
// reversed (used to produce the opposite-endian half of an Endian == Both
// group).
func reversedVariant(v Variant) Variant {
	b := append([]byte(nil), v.Bytes...)
	m := append([]byte(nil), v.Mask...)
	reverseBytes(b)
	reverseBytes(m)
	return Variant{
		Bytes:     b,
		Mask:      m,
		OffsBits:  v.OffsBits,
		SizeBits:  v.SizeBits,
		SizeBytes: v.SizeBytes,
	}
}
