// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package helptext

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/jonathanbader/unicycler/style"
)

func TestFormatFlags(t *testing.T) {
	fs := pflag.NewFlagSet("unicycler", pflag.ContinueOnError)
	fs.String("kmers", "auto", "exact k-mers")
	fs.String("mode", "normal", "bridging mode (default: normal)")
	fs.Bool("no_rotate", false, "do not rotate completed replicons")
	fs.StringP("out", "o", "", "output directory")
	fs.IntP("threads", "t", 4, "number of threads")
	if err := fs.SetAnnotation("kmers", NoDefault, []string{"true"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := New(80, 1).FormatFlags(fs)
	exp := strings.Join([]string{
		"  --kmers string     exact k-mers",
		"  --mode string      bridging mode (default: normal)",
		"  --no_rotate        do not rotate completed replicons",
		"  -o, --out string   output directory",
		"  -t, --threads int  number of threads (default: 4)",
		"",
	}, "\n")
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("unexpected output (-want, +got):\n%s", diff)
	}
}

func TestFormatFlagsLongLabel(t *testing.T) {
	fs := pflag.NewFlagSet("unicycler", pflag.ContinueOnError)
	fs.String("existing_long_read_assembly", "", "a long-read assembly to use")
	fs.String("long", "", "long reads")

	got := New(80, 1).FormatFlags(fs)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected the long label on its own line, got %q", got)
	}
	if lines[0] != "  --existing_long_read_assembly string" {
		t.Fatalf("unexpected label line %q", lines[0])
	}
	if strings.TrimLeft(lines[1], " ") != "a long-read assembly to use" {
		t.Fatalf("expected help text on its own line, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[1], "  ") || lines[1][2] == '-' {
		t.Fatalf("expected indented help text, got %q", lines[1])
	}
}

func TestFormatFlagsColumnAlignedSentinel(t *testing.T) {
	fs := pflag.NewFlagSet("unicycler", pflag.ContinueOnError)
	fs.String("mode", "normal", "B|bridging mode (default: normal):\n"+
		"  conservative = smaller contigs, lowest misassembly rate\n"+
		"  normal = moderate contig size and misassembly rate\n"+
		"  bold = longest contigs, higher misassembly rate")

	got := New(60, 1).FormatFlags(fs)
	if strings.Contains(got, "B|") {
		t.Fatalf("sentinel leaked into output:\n%s", got)
	}

	// helpPos for the single flag is 17, and the first "=" of the
	// conservative line sits at visible column 15, so continuations of
	// that logical line start at output column 17+17.
	lines := strings.Split(got, "\n")
	var contLine string
	for i, line := range lines {
		if strings.Contains(line, "conservative = ") && i+1 < len(lines) {
			contLine = lines[i+1]
			break
		}
	}
	if contLine == "" {
		t.Fatalf("expected wrapped continuation line, got:\n%s", got)
	}
	trimmed := strings.TrimLeft(contLine, " ")
	if len(contLine)-len(trimmed) != 17+17 {
		t.Fatalf("continuation %q not aligned to the = column", contLine)
	}
}

func TestFormatFlagsListPerLineSentinel(t *testing.T) {
	fs := pflag.NewFlagSet("unicycler", pflag.ContinueOnError)
	fs.Int("verbosity", 1, "R|level of stdout information (default: 1):\n"+
		"0 = no output, 1 = basic output, 2 = verbose output")

	got := New(60, 1).FormatFlags(fs)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	exp := []string{
		"  --verbosity int  level of stdout information (default: 1):",
		"                   0 = no output, 1 = basic output,",
		"                   2 = verbose output",
	}
	if diff := cmp.Diff(exp, lines); diff != "" {
		t.Fatalf("unexpected output (-want, +got):\n%s", diff)
	}
}

func TestFormatFlagsDimsOnCapableTerminals(t *testing.T) {
	fs := pflag.NewFlagSet("unicycler", pflag.ContinueOnError)
	fs.String("out", "", "output directory")

	got := New(80, 256).FormatFlags(fs)
	if !strings.Contains(got, style.Dim("output directory")) {
		t.Fatalf("expected dimmed help text, got %q", got)
	}

	// An 8-colour terminal is below the dimming threshold.
	got = New(80, 8).FormatFlags(fs)
	if strings.Contains(got, "\x1b[2m") {
		t.Fatalf("expected plain help text, got %q", got)
	}
}

func TestSection(t *testing.T) {
	if got := New(80, 8).Section("Input options"); got != style.Bold("Input options") {
		t.Fatalf("expected bold heading, got %q", got)
	}
	if got := New(80, 1).Section("Input options"); got != "Input options" {
		t.Fatalf("expected plain heading, got %q", got)
	}
}

func TestNewClampsHelpPosition(t *testing.T) {
	tests := []struct {
		width int
		exp   int
	}{
		{40, 24},
		{80, 26},
		{200, 40},
		{0, 26},
	}
	for _, tc := range tests {
		if got := New(tc.width, 1).MaxHelpPosition; got != tc.exp {
			t.Fatalf("New(%d): expected help position %d but got %d", tc.width, tc.exp, got)
		}
	}
}
