// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package terminal probes the controlling terminal for the width and
// colour capability that the help formatter takes as inputs.
package terminal

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const defaultWidth = 80

// Width returns the terminal width of f, or a default when f is not a
// terminal.
func Width(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Colours reports how many colours output to f supports, based on TERM
// and COLORTERM. Non-terminals report 1 (no colour).
func Colours(f *os.File) int {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return 1
	}
	return coloursFromEnv(os.Getenv("TERM"), os.Getenv("COLORTERM"))
}

func coloursFromEnv(termEnv, colorTermEnv string) int {
	if termEnv == "" || termEnv == "dumb" {
		return 1
	}
	switch colorTermEnv {
	case "truecolor", "24bit":
		return 1 << 24
	}
	if strings.Contains(termEnv, "256color") {
		return 256
	}
	return 8
}
