// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package table renders rectangular grids of strings as aligned,
// wrapped, optionally styled terminal output. Cells may contain escape
// sequences; all width computations use visible widths.
package table

import (
	"errors"
	"sort"
	"strings"

	"github.com/jonathanbader/unicycler/logging"
	"github.com/jonathanbader/unicycler/style"
	"github.com/jonathanbader/unicycler/textwrap"
)

// ErrNoColumns is returned when the first row defines zero columns.
var ErrNoColumns = errors.New("table has no columns")

// Alignment positions a cell's content within its column.
type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

// Options configures rendering. Build one with DefaultOptions and
// adjust fields; a zero MaxColWidth or ColSeparation falls back to its
// default during rendering.
type Options struct {
	// Alignments holds one of L, C or R per column. Shorter strings
	// are padded with L; longer strings are truncated.
	Alignments string

	// MaxColWidth caps automatically computed column widths; cells
	// wider than this wrap. Default 30.
	MaxColWidth int

	// ColSeparation is the number of spaces between columns. Default 3.
	ColSeparation int

	// Indent is the number of spaces before each line. Default 2.
	Indent int

	// RowColour styles whole rows: row index to style name.
	RowColour map[int]string

	// SubColour styles literal substrings wherever they appear in the
	// assembled output: substring to style name.
	SubColour map[string]string

	// RowExtraText is appended verbatim to the last physical line of
	// the given row.
	RowExtraText map[int]string

	// LeadingNewline emits one blank line before the table.
	LeadingNewline bool

	// SubsequentIndent prefixes wrapped continuation lines inside a
	// cell.
	SubsequentIndent string

	// HeaderFormat is the style applied to row 0. Default "underline".
	HeaderFormat string

	// HideHeader drops row 0 from the output.
	HideHeader bool

	// FixedColWidths overrides the automatic width of the columns it
	// covers; entries of zero or less keep the automatic width.
	FixedColWidths []int

	// LeftAlignHeader left-aligns the header regardless of the column
	// alignments. Default true.
	LeftAlignHeader bool

	// BottomAlignHeader pads wrapped header cells with leading blank
	// lines so they hang from the bottom of the header block. Default
	// true.
	BottomAlignHeader bool

	// Verbosity is the level every emitted line is logged at. Default
	// logging.Normal.
	Verbosity int
}

// DefaultOptions returns the Options used when callers do not override
// anything.
func DefaultOptions() Options {
	return Options{
		MaxColWidth:       30,
		ColSeparation:     3,
		Indent:            2,
		HeaderFormat:      "underline",
		LeftAlignHeader:   true,
		BottomAlignHeader: true,
		Verbosity:         logging.Normal,
	}
}

// Render returns the table as a single string, one trailing newline per
// physical line.
func Render(rows [][]string, opts Options) (string, error) {
	lines, err := layout(rows, opts)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Fprint emits the table line by line through the logger at the
// verbosity from opts.
func Fprint(logger logging.Logger, rows [][]string, opts Options) error {
	lines, err := layout(rows, opts)
	if err != nil {
		return err
	}
	verbosity := opts.Verbosity
	for _, line := range lines {
		logger.Log(line, verbosity)
	}
	return nil
}

func layout(rows [][]string, opts Options) ([]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	columns := len(rows[0])
	if columns == 0 {
		return nil, ErrNoColumns
	}
	if opts.MaxColWidth <= 0 {
		opts.MaxColWidth = 30
	}
	if opts.ColSeparation <= 0 {
		opts.ColSeparation = 3
	}
	if opts.Indent < 0 {
		opts.Indent = 0
	}

	// Row 0 defines the column count; every other row is padded with
	// empty cells or truncated to match.
	grid := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, columns)
		copy(cells, row)
		grid[i] = cells
	}

	aligns := parseAlignments(opts.Alignments, columns)
	widths := resolveWidths(grid, opts)

	separator := strings.Repeat(" ", opts.ColSeparation)
	indenter := strings.Repeat(" ", opts.Indent)

	var out []string
	if opts.LeadingNewline {
		out = append(out, "")
	}
	for i, row := range grid {
		if opts.HideHeader && i == 0 {
			continue
		}

		wrapped := make([][]string, columns)
		height := 0
		for c, cell := range row {
			wrapped[c] = textwrap.Lines(cell, widths[c], textwrap.Plain, opts.SubsequentIndent)
			if len(wrapped[c]) > height {
				height = len(wrapped[c])
			}
		}
		if i == 0 && opts.BottomAlignHeader {
			for c, lines := range wrapped {
				if pad := height - len(lines); pad > 0 {
					wrapped[c] = append(make([]string, pad), lines...)
				}
			}
		}

		for j := 0; j < height; j++ {
			fields := make([]string, columns)
			for c := range wrapped {
				value := ""
				if j < len(wrapped[c]) {
					value = wrapped[c][j]
				}
				headerLeft := i == 0 && opts.LeftAlignHeader
				fields[c] = alignCell(value, widths[c], aligns[c], headerLeft)
			}
			line := strings.Join(fields, separator)
			if extra, ok := opts.RowExtraText[i]; ok && j == height-1 {
				line += extra
			}
			if i == 0 && opts.HeaderFormat != "" {
				line = style.Apply(line, opts.HeaderFormat)
			}
			if name, ok := opts.RowColour[i]; ok {
				line = style.Apply(line, name)
			}
			line = applySubColour(line, opts.SubColour)
			if j < height-1 {
				// Underlines must end at each physical line, not
				// bleed into the next.
				line = style.StripUnderline(line)
			}
			out = append(out, indenter+line)
		}
	}
	return out, nil
}

func resolveWidths(grid [][]string, opts Options) []int {
	widths := make([]int, len(grid[0]))
	for _, row := range grid {
		for c, cell := range row {
			w := style.Len(cell)
			if w > opts.MaxColWidth {
				w = opts.MaxColWidth
			}
			if w > widths[c] {
				widths[c] = w
			}
		}
	}
	for c, fixed := range opts.FixedColWidths {
		if c >= len(widths) {
			break
		}
		if fixed > 0 {
			widths[c] = fixed
		}
	}
	return widths
}

func parseAlignments(s string, columns int) []Alignment {
	aligns := make([]Alignment, columns)
	for c := 0; c < columns && c < len(s); c++ {
		switch s[c] {
		case 'C', 'c':
			aligns[c] = Center
		case 'R', 'r':
			aligns[c] = Right
		}
	}
	return aligns
}

func alignCell(value string, width int, align Alignment, headerLeft bool) string {
	pad := width - style.Len(value)
	if pad <= 0 {
		return value
	}
	if headerLeft || align == Left {
		return value + strings.Repeat(" ", pad)
	}
	if align == Right {
		return strings.Repeat(" ", pad) + value
	}
	left := pad / 2
	return strings.Repeat(" ", left) + value + strings.Repeat(" ", pad-left)
}

// applySubColour replaces each configured substring with its styled
// form. Substrings are applied in sorted order so output is
// deterministic; a later replacement can restyle text introduced by an
// earlier one when it still matches textually.
func applySubColour(line string, subColour map[string]string) string {
	if len(subColour) == 0 {
		return line
	}
	subs := make([]string, 0, len(subColour))
	for sub := range subColour {
		subs = append(subs, sub)
	}
	sort.Strings(subs)
	for _, sub := range subs {
		line = strings.ReplaceAll(line, sub, style.Apply(sub, subColour[sub]))
	}
	return line
}
