// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"runtime"
)

type rootCommandParams struct {
	short1    string
	short2    string
	unpaired  string
	long      string
	out       string
	mode      string
	verbosity int
	threads   int
	keep      int
	logPath   string
	noColours bool
}

var rootParams rootCommandParams

// maxAutoThreads caps the automatic thread count on large machines.
const maxAutoThreads = 16

func defaultThreadCount() int {
	if n := runtime.NumCPU(); n < maxAutoThreads {
		return n
	}
	return maxAutoThreads
}

func init() {
	fs := RootCommand.Flags()
	fs.SortFlags = false

	fs.StringVarP(&rootParams.short1, "short1", "1", "", "FASTQ file of first short reads in each pair")
	fs.StringVarP(&rootParams.short2, "short2", "2", "", "FASTQ file of second short reads in each pair")
	fs.StringVarP(&rootParams.unpaired, "unpaired", "s", "", "FASTQ file of unpaired short reads")
	fs.StringVarP(&rootParams.long, "long", "l", "", "FASTQ or FASTA file of long reads")
	fs.StringVarP(&rootParams.out, "out", "o", "", "output directory")

	fs.StringVar(&rootParams.mode, "mode", "normal",
		"B|bridging mode (default: normal):\n"+
			"  conservative = smaller contigs, lowest misassembly rate\n"+
			"  normal = moderate contig size and misassembly rate\n"+
			"  bold = longest contigs, higher misassembly rate")
	fs.IntVar(&rootParams.verbosity, "verbosity", 1,
		"R|level of stdout and log file information (default: 1):\n"+
			"0 = no stdout, 1 = basic progress indicators, "+
			"2 = extra info, 3 = debugging info")
	fs.IntVarP(&rootParams.threads, "threads", "t", defaultThreadCount(), "number of threads")
	fs.IntVar(&rootParams.keep, "keep", 1,
		"R|level of file retention (default: 1):\n"+
			"0 = only keep final files, 1 = also save graphs at main checkpoints, "+
			"2 = also keep SAM, 3 = keep all files")
	fs.StringVar(&rootParams.logPath, "log", "", "log file (formatting stripped)")
	fs.BoolVar(&rootParams.noColours, "no_colours", false, "do not use colours in the output")
}
