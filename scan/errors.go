// SPDX-License-Identifier: MIT
// Copyright (c) 2026 vsyn
// Source: github.com/vsyn/birch

package scan

import "errors"

// ErrRead is returned, wrapped, when reading a scanned file fails partway
// through — the Go equivalent of birch_file's fread() failure path.
var ErrRead = errors.New("scan: read failed")
