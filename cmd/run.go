// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jonathanbader/unicycler/internal/terminal"
	"github.com/jonathanbader/unicycler/logging"
	"github.com/jonathanbader/unicycler/style"
	"github.com/jonathanbader/unicycler/table"
)

func runAssembly(p rootCommandParams) error {
	if p.out == "" {
		return errors.New("no output directory provided (use --out)")
	}

	logger := logging.New()
	logger.SetVerbosity(p.verbosity)
	if p.logPath != "" {
		f, err := os.Create(p.logPath)
		if err != nil {
			return fmt.Errorf("cannot create log file: %w", err)
		}
		defer f.Close()
		logger.LogToFile(f)
	}

	art := asciiArt()
	if p.noColours || terminal.Colours(os.Stdout) <= 1 {
		art = style.Strip(art)
	}
	logger.Log(art, logging.Normal)

	logger.SectionHeader("Starting Unicycler", logging.Normal)
	if err := printSettings(logger, p); err != nil {
		return err
	}

	// TODO: invoke the assembly stages (read QC, bridging, rotation,
	// polishing) as they are ported.
	return nil
}

// printSettings logs the effective options as a table, with unset
// inputs dimmed.
func printSettings(logger logging.Logger, p rootCommandParams) error {
	orNotUsed := func(s string) string {
		if s == "" {
			return "not used"
		}
		return s
	}

	rows := [][]string{
		{"Option", "Setting"},
		{"--short1", orNotUsed(p.short1)},
		{"--short2", orNotUsed(p.short2)},
		{"--unpaired", orNotUsed(p.unpaired)},
		{"--long", orNotUsed(p.long)},
		{"--out", p.out},
		{"--mode", p.mode},
		{"--threads", strconv.Itoa(p.threads)},
		{"--keep", strconv.Itoa(p.keep)},
	}

	opts := table.DefaultOptions()
	opts.LeadingNewline = true
	opts.MaxColWidth = 50
	opts.Verbosity = logging.Verbose
	if !p.noColours {
		opts.SubColour = map[string]string{"not used": "dim"}
	}
	return table.Fprint(logger, rows, opts)
}
