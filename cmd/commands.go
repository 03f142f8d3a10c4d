// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/jonathanbader/unicycler/internal/helptext"
	"github.com/jonathanbader/unicycler/internal/terminal"
)

// RootCommand is the base CLI command that all subcommands are added to.
var RootCommand = &cobra.Command{
	Use:   path.Base(os.Args[0]),
	Short: "Unicycler: an assembly pipeline for bacterial genomes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssembly(rootParams)
	},
	SilenceUsage: true,
}

func init() {
	cobra.EnableCommandSorting = false
	RootCommand.SetUsageFunc(usageFunc)
	RootCommand.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		_ = usageFunc(cmd)
	})
}

func newFormatter() *helptext.Formatter {
	return helptext.New(terminal.Width(os.Stdout), terminal.Colours(os.Stdout))
}
