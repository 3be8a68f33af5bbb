// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

// Command birch scans one or more files or directory trees for several
// bit-level byte patterns at once and reports the closest-together
// occurrences across all of them.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/vsyn/birch/cmd/birch/config"
	"github.com/vsyn/birch/dirwalk"
	"github.com/vsyn/birch/groups"
	"github.com/vsyn/birch/pattern"
	"github.com/vsyn/birch/resultset"
	"github.com/vsyn/birch/scan"
)

// cliError wraps a fatal error with the process exit code it should
// produce. Every fatal condition birch can hit — bad arguments, an
// unparseable pattern, an unsupported float width, a walk or read
// failure — folds to exit code 1; there is currently no condition that
// warrants a different code, but the type exists so that could change
// without touching every call site that returns a plain error.
type cliError struct {
	err  error
	code int
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}
	if errors.Is(err, ErrHelpRequested) {
		fmt.Fprint(os.Stdout, helpText)
		os.Exit(0)
	}

	var ce *cliError
	if !errors.As(err, &ce) {
		ce = &cliError{err: err, code: 1}
	}
	slog.Error(ce.Error())
	os.Exit(ce.code)
}

func run(args []string, stdout io.Writer) error {
	nativeEndian := pattern.HostEndian()

	// A first, permissive pass just to find -c before we know where to
	// load defaults from; parseArgs itself resolves -c precisely once
	// the real defaults are known.
	cfgPath := config.DefaultPath
	for i, a := range args {
		if a == "-c" && i+1 < len(args) {
			cfgPath = args[i+1]
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	defaults := cliDefaults{
		Alignment:   pattern.Aligned,
		Endian:      nativeEndian,
		ResultCount: 1,
	}
	if cfg.DefaultAlignment == "unaligned" {
		defaults.Alignment = pattern.Unaligned
	}
	switch cfg.DefaultEndian {
	case "little":
		defaults.Endian = pattern.Little
	case "big":
		defaults.Endian = pattern.Big
	case "both":
		defaults.Endian = pattern.Both
	}
	if cfg.ResultCount > 0 {
		defaults.ResultCount = cfg.ResultCount
	}

	parsed, err := parseArgs(args, nativeEndian, defaults)
	if err != nil {
		return err
	}

	configureLogging(parsed.Verbosity)

	if len(parsed.Roots) == 0 {
		return fmt.Errorf("no root paths given")
	}
	if len(parsed.States) < 2 {
		return fmt.Errorf("at least two pattern groups are required")
	}

	roots := make([]string, len(parsed.Roots))
	for i, r := range parsed.Roots {
		expanded, err := homedir.Expand(r)
		if err != nil {
			return fmt.Errorf("expanding root %q: %w", r, err)
		}
		roots[i] = expanded
	}

	gs := &groups.Groups{States: make([]groups.State, len(parsed.States))}
	for i, s := range parsed.States {
		gs.States[i] = *s
	}

	rs := resultset.New(parsed.ResultCount, gs.Snapshot())

	slog.Info("scanning", "roots", roots, "groups", len(gs.States), "results", parsed.ResultCount)
	if err := scan.ScanRootOptions(gs, roots, dirwalk.Options{Ignore: cfg.Ignore}, rs); err != nil {
		return err
	}

	return renderResults(stdout, rs)
}

func configureLogging(verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
