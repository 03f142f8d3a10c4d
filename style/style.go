// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package style composes SGR escape sequences for terminal text and
// measures the visible width of strings that contain them.
package style

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Reset clears all active SGR attributes.
const Reset = "\x1b[0m"

// The individual attribute codes. Resolve always emits these in a fixed
// order (colour, then bold, then underline) so that later code can strip
// an attribute by matching on its raw bytes.
const (
	bold      = "\x1b[1m"
	dim       = "\x1b[2m"
	underline = "\x1b[4m"
	red       = "\x1b[31m"
	green     = "\x1b[32m"
	magenta   = "\x1b[35m"
	yellow    = "\x1b[93m"
)

// Resolve maps a free-form style name to a single composed escape
// sequence. The name may contain the tokens "bold" and "underline" plus
// at most one colour keyword (red, green, yellow or dim); case, spaces
// and underscores are ignored. Unrecognized names resolve to the empty
// string.
func Resolve(name string) string {
	name = strings.ToLower(name)
	withBold := strings.Contains(name, "bold")
	name = strings.ReplaceAll(name, "bold", "")
	withUnderline := strings.Contains(name, "underline")
	name = strings.ReplaceAll(name, "underline", "")
	name = strings.ReplaceAll(name, "_", "")
	name = strings.ReplaceAll(name, " ", "")

	var seq string
	switch {
	case strings.Contains(name, "red"):
		seq = red
	case strings.Contains(name, "green"):
		seq = green
	case strings.Contains(name, "yellow"):
		seq = yellow
	case strings.Contains(name, "dim"):
		seq = dim
	}
	if withBold {
		seq += bold
	}
	if withUnderline {
		seq += underline
	}
	return seq
}

// Apply wraps text in the sequence resolved from name, followed by a
// reset. Text is returned unchanged when the name resolves to nothing,
// so an unknown style never corrupts its input.
func Apply(text, name string) string {
	seq := Resolve(name)
	if seq == "" {
		return text
	}
	return seq + text + Reset
}

// Strip removes every escape sequence from s.
func Strip(s string) string {
	return ansi.Strip(s)
}

// Len returns the visible width of s, i.e. the display width of what
// remains after removing escape sequences. Malformed sequences are
// handled by the underlying parser rather than aborting, so Len is safe
// to call on arbitrary input.
func Len(s string) int {
	if !strings.ContainsRune(s, '\x1b') {
		return runewidth.StringWidth(s)
	}
	return runewidth.StringWidth(ansi.Strip(s))
}

// StripUnderline removes underline codes from s while leaving all other
// styling in place. Table rendering uses this to stop an underline from
// bleeding past the end of a wrapped physical line.
func StripUnderline(s string) string {
	return strings.ReplaceAll(s, underline, "")
}

func wrap(seq, text string) string {
	return seq + text + Reset
}

// Green styles text in green.
func Green(text string) string { return wrap(green, text) }

// BoldGreen styles text in bold green.
func BoldGreen(text string) string { return wrap(green+bold, text) }

// Red styles text in red.
func Red(text string) string { return wrap(red, text) }

// Magenta styles text in magenta.
func Magenta(text string) string { return wrap(magenta, text) }

// BoldRed styles text in bold red.
func BoldRed(text string) string { return wrap(red+bold, text) }

// Bold styles text in bold.
func Bold(text string) string { return wrap(bold, text) }

// BoldUnderline styles text in bold with underlining.
func BoldUnderline(text string) string { return wrap(bold+underline, text) }

// Underline underlines text.
func Underline(text string) string { return wrap(underline, text) }

// Dim styles text with reduced intensity.
func Dim(text string) string { return wrap(dim, text) }

// DimUnderline styles text dim with underlining.
func DimUnderline(text string) string { return wrap(dim+underline, text) }

// BoldYellow styles text in bold yellow.
func BoldYellow(text string) string { return wrap(yellow+bold, text) }

// BoldYellowUnderline styles text in bold yellow with underlining.
func BoldYellowUnderline(text string) string { return wrap(yellow+bold+underline, text) }

// BoldRedUnderline styles text in bold red with underlining.
func BoldRedUnderline(text string) string { return wrap(red+bold+underline, text) }
