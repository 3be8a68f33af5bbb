// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

/*
Package pattern compiles a user-facing pattern spec (an integer, float or
string literal with an alignment and endianness constraint) into a pattern
group: the cartesian product of shift variants (for unaligned matching)
and endianness variants (when both endiannesses are requested), each
carrying the masked byte pattern the streaming matcher feeds bytes into.
*/
package pattern
