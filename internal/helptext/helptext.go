// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package helptext renders command-line help. It lays a flag set out in
// two columns, appends default values, and wraps help text with the
// mode selected by the text's sentinel prefix: "B|" aligns continuation
// lines to the first "=" sign, "R|" puts list items one per line.
package helptext

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/jonathanbader/unicycler/style"
	"github.com/jonathanbader/unicycler/textwrap"
)

// NoDefault is the flag annotation key that suppresses the automatic
// "(default: ...)" suffix.
const NoDefault = "helptext_no_default"

const minHelpWidth = 11

// Formatter renders help text for a fixed terminal width and colour
// capability. Both are inputs; the formatter never probes the terminal
// itself.
type Formatter struct {
	Width   int
	Colours int

	// MaxHelpPosition caps the column where help text starts.
	MaxHelpPosition int
}

// New returns a Formatter for the given terminal width and colour
// count. The help column sits at a third of the width, clamped to
// [24, 40].
func New(width, colours int) *Formatter {
	if width <= 0 {
		width = 80
	}
	if colours <= 0 {
		colours = 1
	}
	pos := width / 3
	if pos < 24 {
		pos = 24
	}
	if pos > 40 {
		pos = 40
	}
	return &Formatter{Width: width, Colours: colours, MaxHelpPosition: pos}
}

// Section styles a section heading, bold on any colour terminal.
func (f *Formatter) Section(heading string) string {
	if f.Colours > 1 {
		return style.Bold(heading)
	}
	return heading
}

// FormatFlags renders every visible flag in fs, one entry per flag:
// the invocation label padded to the help column, then the wrapped
// (and, on capable terminals, dimmed) help text.
func (f *Formatter) FormatFlags(fs *pflag.FlagSet) string {
	maxLabel := 0
	fs.VisitAll(func(fl *pflag.Flag) {
		if fl.Hidden {
			return
		}
		if n := 2 + len(label(fl)); n > maxLabel {
			maxLabel = n
		}
	})
	helpPos := maxLabel + 2
	if helpPos > f.MaxHelpPosition {
		helpPos = f.MaxHelpPosition
	}
	helpWidth := f.Width - helpPos
	if helpWidth < minHelpWidth {
		helpWidth = minHelpWidth
	}
	pad := strings.Repeat(" ", helpPos)

	var b strings.Builder
	fs.VisitAll(func(fl *pflag.Flag) {
		if fl.Hidden {
			return
		}
		lab := "  " + label(fl)
		help := helpString(fl)
		if help == "" {
			b.WriteString(lab)
			b.WriteByte('\n')
			return
		}
		if len(lab)+2 <= helpPos {
			lab += strings.Repeat(" ", helpPos-len(lab))
		} else {
			// Long invocation: help starts on the next line.
			b.WriteString(lab)
			b.WriteByte('\n')
			lab = pad
		}

		mode := textwrap.Plain
		switch {
		case strings.HasPrefix(help, "B|"):
			mode = textwrap.ColumnAligned
			help = help[2:]
		case strings.HasPrefix(help, "R|"):
			mode = textwrap.ListPerLine
			help = help[2:]
		}

		for k, line := range textwrap.Lines(help, helpWidth, mode, "") {
			if f.Colours > 8 {
				line = style.Dim(line)
			}
			if k == 0 {
				b.WriteString(lab)
			} else {
				b.WriteString(pad)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	})
	return b.String()
}

// label renders a flag's invocation, e.g. "-t, --threads int".
func label(fl *pflag.Flag) string {
	varname, _ := pflag.UnquoteUsage(fl)
	l := "--" + fl.Name
	if fl.Shorthand != "" {
		l = "-" + fl.Shorthand + ", " + l
	}
	if varname != "" {
		l += " " + varname
	}
	return l
}

// helpString returns a flag's usage with the default value appended,
// unless the usage already mentions a default, the flag has no
// meaningful default, or the suffix is suppressed via the NoDefault
// annotation.
func helpString(fl *pflag.Flag) string {
	_, usage := pflag.UnquoteUsage(fl)
	if len(fl.Annotations[NoDefault]) > 0 {
		return usage
	}
	if fl.DefValue == "" || fl.DefValue == "false" {
		return usage
	}
	if strings.Contains(strings.ToLower(usage), "default") {
		return usage
	}
	return usage + " (default: " + fl.DefValue + ")"
}
