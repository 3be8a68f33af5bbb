// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package main

import (
	"fmt"
	"io"

	"github.com/vsyn/birch/distance"
	"github.com/vsyn/birch/groups"
	"github.com/vsyn/birch/resultset"
)

// renderResults writes one block per ranked tuple in rs, stopping at the
// first tuple whose nexist exceeds combinations2(G). A real tuple's nexist
// is at most combinations2(G), so only the set's unfilled sentinel slots
// (combinations2(G)+1) stop the output.
// Each block is a header line of the four distance components in hex,
// followed by one indented line per group that has a match.
func renderResults(w io.Writer, rs *resultset.Set) error {
	nexistMax := uint64(resultset.Combinations2(len(rs.Items[0].States)))

	for i := range rs.Items {
		tuple := &rs.Items[i]
		if tuple.Dist[distance.NExist] > nexistMax {
			break
		}
		if err := renderTuple(w, i, tuple); err != nil {
			return err
		}
	}
	return nil
}

func renderTuple(w io.Writer, index int, tuple *groups.Groups) error {
	if _, err := fmt.Fprintf(w, "%d: %x %x %x %x\n", index,
		tuple.Dist[distance.NExist], tuple.Dist[distance.DirDiff],
		tuple.Dist[distance.FileDiff], tuple.Dist[distance.OffsDiff]); err != nil {
		return err
	}

	for _, state := range tuple.States {
		if !state.Match.Exists() {
			continue
		}
		spec := state.Match.Variant.Spec
		if _, err := fmt.Fprintf(w, "\t%s %s%s%s %s 0x%x\n",
			spec.ArgText, spec.Type.Tag(), spec.Alignment.Tag(), spec.Endian.Tag(),
			state.Match.Path, state.Match.BitOffset); err != nil {
			return err
		}
	}
	return nil
}
