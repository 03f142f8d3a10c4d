// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathanbader/unicycler/table"
	"github.com/jonathanbader/unicycler/version"
)

func init() {
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Print the version of Unicycler",
		Run: func(cmd *cobra.Command, args []string) {
			if err := printVersion(os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	RootCommand.AddCommand(versionCommand)
}

func printVersion(w io.Writer) error {
	rows := [][]string{
		{"Component", "Version"},
		{"Unicycler", version.Version},
		{"Go", version.GoVersion},
		{"Platform", version.Platform},
	}
	if version.Vcs != "" {
		rows = append(rows, []string{"Commit", version.Vcs})
	}
	if version.Timestamp != "" {
		rows = append(rows, []string{"Built", version.Timestamp})
	}

	opts := table.DefaultOptions()
	opts.Indent = 0
	s, err := table.Render(rows, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
