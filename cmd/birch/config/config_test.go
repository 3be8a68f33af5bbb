// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingDefaultPathIsZeroValue(t *testing.T) {
	c, err := Load(DefaultPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ResultCount != 0 || c.DefaultAlignment != "" || c.DefaultEndian != "" || c.Ignore != nil {
		t.Fatalf("expected zero Config, got %+v", c)
	}
}

func TestLoad_MissingExplicitPathIsError(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	if err == nil {
		t.Fatalf("expected an error for a missing explicit path")
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "birch.yaml")
	contents := "result_count: 5\ndefault_alignment: unaligned\ndefault_endian: both\nignore:\n  - \"*.git*\"\n  - \"*.o\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ResultCount != 5 {
		t.Fatalf("ResultCount = %d, want 5", c.ResultCount)
	}
	if c.DefaultAlignment != "unaligned" {
		t.Fatalf("DefaultAlignment = %q, want unaligned", c.DefaultAlignment)
	}
	if c.DefaultEndian != "both" {
		t.Fatalf("DefaultEndian = %q, want both", c.DefaultEndian)
	}
	if len(c.Ignore) != 2 || c.Ignore[0] != "*.git*" || c.Ignore[1] != "*.o" {
		t.Fatalf("Ignore = %v, want [*.git* *.o]", c.Ignore)
	}
}

func TestLoad_MalformedYAMLIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("result_count: [this is not an int\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}
