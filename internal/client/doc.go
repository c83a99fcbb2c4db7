// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the field editor process lifecycle.
//
// It loads the field document, optionally merges an imported one, and then
// either answers a one-shot lookup or runs the terminal UI and saves the
// edits on exit.
package client
