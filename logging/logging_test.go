// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathanbader/unicycler/style"
)

func TestVerbosityGating(t *testing.T) {
	tests := []struct {
		note      string
		active    int
		verbosity int
		displayed bool
	}{
		{"normal shows normal", Normal, Normal, true},
		{"normal hides verbose", Normal, Verbose, false},
		{"normal hides debug", Normal, Debug, false},
		{"verbose shows normal", Verbose, Normal, true},
		{"verbose shows verbose", Verbose, Verbose, true},
		{"quiet shows quiet", Quiet, Quiet, true},
		{"quiet hides normal", Quiet, Normal, false},
		{"debug shows everything", Debug, Debug, true},
	}
	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			var buf bytes.Buffer
			l := New()
			l.SetOutput(&buf)
			l.SetVerbosity(tc.active)
			l.Log("message", tc.verbosity)
			if got := buf.Len() > 0; got != tc.displayed {
				t.Fatalf("expected displayed=%v but got output %q", tc.displayed, buf.String())
			}
		})
	}
}

func TestPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.Log("just the line", Normal)
	if got := buf.String(); got != "just the line\n" {
		t.Fatalf("expected bare message but got %q", got)
	}
}

func TestLogToFileStripsFormatting(t *testing.T) {
	var out, file bytes.Buffer
	l := New()
	l.SetOutput(&out)
	l.LogToFile(&file)

	l.Log(style.BoldRed("coloured line"), Normal)

	if !strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("expected escape sequences on the display stream, got %q", out.String())
	}
	if got := file.String(); got != "coloured line\n" {
		t.Fatalf("expected stripped line in file, got %q", got)
	}
}

func TestLogToFileRespectsVerbosity(t *testing.T) {
	var out, file bytes.Buffer
	l := New()
	l.SetOutput(&out)
	l.SetVerbosity(Normal)
	l.LogToFile(&file)

	l.Log("hidden", Verbose)
	if file.Len() != 0 {
		t.Fatalf("expected nothing in file, got %q", file.String())
	}
}

func TestSectionHeader(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SectionHeader("Assembly", Normal)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected blank line plus heading, got %q", buf.String())
	}
	if lines[0] != "" {
		t.Fatalf("expected leading blank line, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], style.BoldUnderline("Assembly")) {
		t.Fatalf("expected bold underlined heading, got %q", lines[1])
	}
	if style.Strip(lines[1]) == "Assembly" {
		t.Fatal("expected a timestamp after the heading")
	}
}
