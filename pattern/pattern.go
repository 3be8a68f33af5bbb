// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package pattern

// CharBit is the number of bits in a byte; kept as a named constant, as
// the original C used CHAR_BIT throughout, so the shift/offset arithmetic
// below reads the same way.
const CharBit = 8

// DataType is the kind of literal a pattern spec decodes.
type DataType int

const (
	Integer DataType = iota
	Float
	String
)

// Tag renders the short one-letter type code used in result output
// ("i"/"f"/"s").
func (t DataType) Tag() string {
	switch t {
	case Integer:
		return "i"
	case Float:
		return "f"
	case String:
		return "s"
	}
	return ""
}

// Alignment constrains a pattern to byte-aligned occurrences, or allows it
// to start at any bit offset.
type Alignment int

const (
	Aligned Alignment = iota
	Unaligned
)

// Tag renders the short one-letter alignment code ("a"/"u").
func (a Alignment) Tag() string {
	switch a {
	case Aligned:
		return "a"
	case Unaligned:
		return "u"
	}
	return ""
}

// Endian constrains a pattern to little-endian, big-endian, or both byte
// orders.
type Endian int

const (
	Little Endian = iota
	Big
	Both
)

// Tag renders the short endian code ("l"/"b"/"lb").
func (e Endian) Tag() string {
	switch e {
	case Little:
		return "l"
	case Big:
		return "b"
	case Both:
		return "lb"
	}
	return ""
}

// Spec is the user-facing description of one pattern: a literal plus the
// constraints (type, alignment, endianness, bit width) the compiler uses
// to expand it into a Group.
type Spec struct {
	ArgText   string
	Type      DataType
	Alignment Alignment
	Endian    Endian
	SizeBits  uint64
}

// Variant is one compiled expansion of a Spec for a specific bit shift and
// byte order. Bytes and Mask are immutable after Compile returns; Cursor
// is the only mutable field, reset to 0 at the start of every file by the
// scanner.
type Variant struct {
	Spec *Spec

	Bytes []byte
	Mask  []byte

	// OffsBits is the count of low bits in Bytes[0] that precede the
	// pattern's first payload bit (0 for aligned variants).
	OffsBits uint
	// SizeBits is the pattern's payload width; it does not include OffsBits.
	SizeBits uint64
	// SizeBytes is len(Bytes) == len(Mask).
	SizeBytes int

	Cursor int
}

// Group is every Variant derived from one Spec.
type Group struct {
	Spec     Spec
	Variants []Variant
}
