// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package main

import (
	"fmt"
	"strconv"

	"github.com/vsyn/birch/groups"
	"github.com/vsyn/birch/pattern"
)

const helpText = `birch: bit-level multi-pattern byte scanner

Usage: birch ROOTS... PATTERNS... [OPTIONS...]

ROOTS: one or more files or directories to search (directories are
searched recursively). Roots and patterns may be interleaved: any
argument that is not a flag cluster and is not taken as a size, literal
or option value is a root.

PATTERNS: a flag cluster followed by a bit size and a literal, e.g.:

	-ial 32 0x2a

Flag letters (combine freely; later patterns inherit the last-set type,
alignment, and endian until changed):

	i  integer            a  aligned
	f  float               u  unaligned
	s  string              l  little endian
	g  group with last     b  big endian
	                        n  native endian

OPTIONS:
	-r N   number of ranked results to print (default 1)
	-c F   load defaults from a YAML config file (default .birch.yaml)
	-v     info-level logging; -vv for debug
	-h     print this help and exit
`

// argState tracks what kind of token parseArgs expects next, mirroring
// parse_args's single "state" byte.
type argState int

const (
	stateFree   argState = iota // expect a root path or a flag cluster
	stateSize                   // expect a bit-size literal
	statePtn                    // expect a pattern literal
	stateResult                 // expect a result-count literal
)

// ErrHelpRequested is returned by parseArgs when -h appears anywhere in
// the argument list; callers should print helpText and exit 0.
var ErrHelpRequested = fmt.Errorf("birch: help requested")

// parsedArgs is everything parseArgs extracts from the command line.
type parsedArgs struct {
	Roots       []string
	States      []*groups.State
	ResultCount int
	ConfigPath  string
	Verbosity   int
}

// cliDefaults seeds the values parseArgs starts from before any flag
// cluster changes them — normally birch's built-ins, but overridable by a
// loaded config file so that config supplies defaults and flags always
// win.
type cliDefaults struct {
	Alignment   pattern.Alignment
	Endian      pattern.Endian
	ResultCount int
}

// parseArgs walks args (os.Args[1:]) reproducing parse_args's token state
// machine: roots and flag-clustered pattern specs are interleaved
// positionally, a flag cluster's letters stick across subsequent patterns
// until changed, and "-r N" / "-c FILE" pull in one extra token each.
// nativeEndian resolves the "n" (native) endian flag and is passed to
// pattern.Compile as the default byte order of float patterns.
func parseArgs(args []string, nativeEndian pattern.Endian, defaults cliDefaults) (*parsedArgs, error) {
	out := &parsedArgs{ResultCount: defaults.ResultCount}

	state := stateFree
	alignment := defaults.Alignment
	endian := defaults.Endian
	dataType := pattern.String
	dataSize := uint64(8)
	groupLink := false
	endianSet := false

	var pendingConfig bool

	i := 0
	for i < len(args) {
		arg := args[i]
		if len(arg) > 0 && arg[0] == '-' {
			endianSet = false
			for _, f := range arg[1:] {
				switch f {
				case 'h':
					return nil, ErrHelpRequested
				case 'u':
					alignment = pattern.Unaligned
					state = stateSize
				case 'a':
					alignment = pattern.Aligned
					state = stateSize
				case 'l':
					endian = setEndian(endian, pattern.Little, endianSet)
					endianSet = true
					state = stateSize
				case 'b':
					endian = setEndian(endian, pattern.Big, endianSet)
					endianSet = true
					state = stateSize
				case 'n':
					endian = setEndian(endian, nativeEndian, endianSet)
					endianSet = true
					state = stateSize
				case 'i':
					dataType = pattern.Integer
					state = stateSize
				case 's':
					dataType = pattern.String
					state = stateSize
				case 'f':
					dataType = pattern.Float
					state = stateSize
				case 'g':
					groupLink = true
				case 'r':
					state = stateResult
				case 'c':
					pendingConfig = true
				case 'v':
					out.Verbosity++
				default:
					return nil, fmt.Errorf("birch: unrecognised flag %q", string(f))
				}
			}
		} else if pendingConfig {
			out.ConfigPath = arg
			pendingConfig = false
		} else {
			switch state {
			case stateFree:
				out.Roots = append(out.Roots, arg)
			case stateSize:
				n, err := strconv.ParseUint(arg, 0, 64)
				if err != nil {
					return nil, fmt.Errorf("birch: bad size %q: %w", arg, err)
				}
				dataSize = n
				state = statePtn
			case stateResult:
				n, err := strconv.Atoi(arg)
				if err != nil {
					return nil, fmt.Errorf("birch: bad result count %q: %w", arg, err)
				}
				out.ResultCount = n
				state = stateFree
			default: // statePtn
				spec := pattern.Spec{ArgText: arg, Type: dataType, Alignment: alignment, Endian: endian, SizeBits: dataSize}
				g, err := pattern.Compile(spec, nativeEndian)
				if err != nil {
					return nil, fmt.Errorf("birch: pattern %q: %w", arg, err)
				}
				if groupLink && len(out.States) > 0 {
					groupLink = false
				} else {
					out.States = append(out.States, &groups.State{})
				}
				out.States[len(out.States)-1].AddCompiled(g)
				state = stateFree
			}
		}
		i++
	}

	return out, nil
}

// setEndian reproduces the endian-flag combination rule: the first
// endian-related letter in a cluster sets endian outright; a second,
// different one promotes it to Both.
func setEndian(current, next pattern.Endian, alreadySet bool) pattern.Endian {
	if !alreadySet {
		return next
	}
	if current != next {
		return pattern.Both
	}
	return current
}
