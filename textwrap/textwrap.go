// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package textwrap splits over-width logical lines into physical lines
// without breaking or miscounting embedded escape sequences. Widths are
// always visible widths as reported by the style package.
package textwrap

import (
	"strings"

	"github.com/jonathanbader/unicycler/style"
)

// Mode selects the policy used to wrap a single over-width line.
type Mode int

const (
	// Plain is standard word wrap. Continuation lines are prefixed
	// with the caller's indent, which counts toward the width.
	Plain Mode = iota

	// ColumnAligned wraps "key = value, value, ..." style text.
	// Continuation lines are padded to two columns past the first "="
	// so the values stay visually aligned.
	ColumnAligned

	// ListPerLine wraps comma-separated lists. A line that overflows
	// ends with a trailing comma and the next item starts a new line
	// at column zero.
	ListPerLine
)

// Lines wraps text to the given visible width. Input containing line
// breaks is split into logical lines which are wrapped independently,
// in order. A logical line that already fits is returned unchanged. A
// width of zero or less disables wrapping.
func Lines(text string, width int, mode Mode, indent string) []string {
	logical := strings.Split(text, "\n")
	out := make([]string, 0, len(logical))
	for _, line := range logical {
		out = append(out, wrapLine(line, width, mode, indent)...)
	}
	return out
}

func wrapLine(line string, width int, mode Mode, indent string) []string {
	if width <= 0 || style.Len(line) <= width {
		return []string{line}
	}
	switch mode {
	case ColumnAligned:
		return wrapAligned(line, width)
	case ListPerLine:
		return wrapList(line, width)
	default:
		return wrapPlain(line, width, indent)
	}
}

func wrapPlain(line string, width int, indent string) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	curWidth := style.Len(cur)
	indentWidth := style.Len(indent)
	for _, word := range words[1:] {
		w := style.Len(word)
		if curWidth+1+w <= width {
			cur += " " + word
			curWidth += 1 + w
			continue
		}
		// A word wider than the remaining space starts a new line; a
		// word wider than the whole width sits alone on its line.
		lines = append(lines, cur)
		cur = indent + word
		curWidth = indentWidth + w
	}
	return append(lines, cur)
}

func wrapAligned(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	// The wrap column sits two visible positions past the first "=".
	wrapColumn := strings.Index(style.Strip(line), "=") + 2
	pad := strings.Repeat(" ", wrapColumn)

	var lines []string
	cur := words[0]
	for _, word := range words[1:] {
		if style.Len(cur)+1+style.Len(word) <= width {
			cur += " " + word
			continue
		}
		lines = append(lines, cur)
		cur = pad + word
	}
	return append(lines, cur)
}

func wrapList(line string, width int) []string {
	items := strings.Split(line, ", ")
	var lines []string
	cur := items[0]
	for _, item := range items[1:] {
		// Reserve one column for the trailing comma a later break
		// would add, so no emitted line ever exceeds the width.
		if style.Len(cur)+2+style.Len(item)+1 <= width {
			cur += ", " + item
			continue
		}
		lines = append(lines, cur+",")
		cur = item
	}
	return append(lines, cur)
}
