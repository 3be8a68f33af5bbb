// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package dirwalk

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// VisitFunc is called once per regular file found by Walk, with its full
// path. Returning a non-nil error aborts the remainder of the walk.
type VisitFunc func(path string) error

// Options configures a walk: a plain struct of knobs rather than
// functional options.
type Options struct {
	// Ignore is a set of glob patterns (as understood by path/filepath's
	// Match) tested against both the full path and the bare entry name;
	// any match skips that file or, for a directory, its entire subtree.
	Ignore []string
}

// Walk visits every regular file reachable from roots, in order: each
// root is processed in the order given, and within a root, files before
// subdirectories, siblings sorted by name (see the package doc comment).
//
// A root that is itself a regular file is visited directly. Entries that
// are neither a directory nor a regular file once symlinks are resolved
// (sockets, devices) are silently skipped, matching the original scanner's
// stat-based classification. An entry whose stat fails (a broken link,
// for one) aborts the walk with an error wrapping ErrStat.
func Walk(roots []string, visit VisitFunc) error {
	return WalkOptions(roots, Options{}, visit)
}

// WalkOptions is Walk with Ignore-glob filtering applied.
func WalkOptions(roots []string, opts Options, visit VisitFunc) error {
	for _, root := range roots {
		if err := walkPath(root, opts, visit); err != nil {
			return err
		}
	}
	return nil
}

func ignored(opts Options, full, name string) bool {
	for _, pat := range opts.Ignore {
		if ok, _ := filepath.Match(pat, name); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, full); ok {
			return true
		}
	}
	return false
}

func walkPath(path string, opts Options, visit VisitFunc) error {
	if ignored(opts, path, filepath.Base(path)) {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("dirwalk: stat %s: %w (%v)", path, ErrStat, err)
	}
	switch {
	case info.IsDir():
		return walkDir(path, opts, visit)
	case info.Mode().IsRegular():
		return visit(path)
	default:
		return nil
	}
}

func walkDir(dir string, opts Options, visit VisitFunc) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("dirwalk: read %s: %w", dir, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	sort.Strings(names)

	var subdirs []string
	for _, name := range names {
		if ignored(opts, filepath.Join(dir, name), name) {
			continue
		}
		full := filepath.Join(dir, name)
		info, err := os.Stat(full)
		if err != nil {
			return fmt.Errorf("dirwalk: stat %s: %w (%v)", full, ErrStat, err)
		}
		switch {
		case info.IsDir():
			subdirs = append(subdirs, full)
		case info.Mode().IsRegular():
			if err := visit(full); err != nil {
				return err
			}
		}
	}
	for _, sub := range subdirs {
		if err := walkDir(sub, opts, visit); err != nil {
			return err
		}
	}
	return nil
}
