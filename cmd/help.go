// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// usageFunc renders the command's help through the helptext formatter
// so flag help gets the two-column layout, sentinel-driven wrapping and
// colour treatment instead of cobra's default template.
func usageFunc(c *cobra.Command) error {
	f := newFormatter()
	w := c.OutOrStdout()

	fmt.Fprintln(w, f.Section("Usage:"))
	fmt.Fprintln(w, "  "+c.UseLine())

	if c.HasAvailableSubCommands() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, f.Section("Commands:"))
		for _, sub := range c.Commands() {
			if sub.IsAvailableCommand() {
				fmt.Fprintf(w, "  %-12s %s\n", sub.Name(), sub.Short)
			}
		}
	}

	if c.HasAvailableFlags() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, f.Section("Options:"))
		fmt.Fprint(w, f.FormatFlags(c.Flags()))
	}
	return nil
}
