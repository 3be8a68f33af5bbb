// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package scan

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vsyn/birch/distance"
	"github.com/vsyn/birch/dirwalk"
	"github.com/vsyn/birch/groups"
	"github.com/vsyn/birch/matcher"
	"github.com/vsyn/birch/resultset"
)

// FileBufSize is the read block size used by ScanFile, matching the
// original's FILE_BUF_SIZE.
const FileBufSize = 16 * 1024

// ResetCursors zeroes every variant's matcher cursor across every group in
// gs, without touching any group's current match. Call this before
// scanning each new file.
func ResetCursors(gs *groups.Groups) {
	for i := range gs.States {
		for _, v := range gs.States[i].Variants {
			matcher.Reset(v)
		}
	}
}

// ScanFile streams r (the contents of path) through every pattern
// variant in gs, offering every completed match's resulting tuple to
// results. Bit offsets are counted from r's first byte, which is bit 0.
func ScanFile(gs *groups.Groups, path string, r io.Reader, results *resultset.Set) error {
	ResetCursors(gs)

	buf := make([]byte, FileBufSize)
	var fileByteIndex uint64

	for {
		n, err := r.Read(buf)
		for bufIndex := 0; bufIndex < n; bufIndex++ {
			c := buf[bufIndex]
			for groupIdx := range gs.States {
				state := &gs.States[groupIdx]
				for _, v := range state.Variants {
					if !matcher.Feed(v, c) {
						continue
					}
					bitIndex := (fileByteIndex + uint64(bufIndex))
					bitOffset := (bitIndex+1-uint64(v.SizeBytes))*8 + uint64(v.OffsBits)
					state.Match = groups.Match{Variant: v, Path: path, BitOffset: bitOffset}
					distance.UpdateAggregate(gs)
					slog.Debug("pattern matched", "path", path, "group", groupIdx, "bit_offset", bitOffset)
					if results != nil {
						results.Offer(gs)
					}
				}
			}
		}
		fileByteIndex += uint64(n)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("scan: read %s: %w (%v)", path, ErrRead, err)
		}
		if n == 0 {
			return nil
		}
	}
}

// ScanRoot walks every root via dirwalk and scans each regular file found
// through gs, offering tuples to results. Any I/O failure aborts the
// whole run, matching the original's fail-fast birch_file contract.
func ScanRoot(gs *groups.Groups, roots []string, results *resultset.Set) error {
	return ScanRootOptions(gs, roots, dirwalk.Options{}, results)
}

// ScanRootOptions is ScanRoot with dirwalk Ignore-glob filtering applied.
func ScanRootOptions(gs *groups.Groups, roots []string, opts dirwalk.Options, results *resultset.Set) error {
	return dirwalk.WalkOptions(roots, opts, func(path string) error {
		slog.Debug("opening file", "path", path)
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("scan: open %s: %w", path, err)
		}
		defer f.Close()
		return ScanFile(gs, path, f, results)
	})
}
