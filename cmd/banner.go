// Copyright 2026 The Unicycler Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"strings"

	"github.com/jonathanbader/unicycler/style"
)

// asciiArt returns the startup banner: a unicycle in bold red beside
// the program name in bold yellow.
func asciiArt() string {
	parts := []struct {
		red    string
		yellow string
	}{
		{red: `       __`},
		{red: `       \ \___`},
		{red: `        \ ___\`},
		{red: `        //`},
		{red: `   ____//      `, yellow: `_    _         _                     _`},
		{red: ` //_  //\\    `, yellow: `| |  | |       |_|                   | |`},
		{red: `//  \//  \\   `, yellow: `| |  | | _ __   _   ___  _   _   ___ | |  ___  _ __`},
		{red: `||  (O)  ||   `, yellow: `| |  | || '_ \ | | / __|| | | | / __|| | / _ \| '__|`},
		{red: `\\    \_ //   `, yellow: `| |__| || | | || || (__ | |_| || (__ | ||  __/| |`},
		{red: ` \\_____//     `, yellow: `\____/ |_| |_||_| \___| \__, | \___||_| \___||_|`},
		{yellow: `                                        __/ |`},
		{yellow: `                                       |___/`},
	}

	lines := make([]string, len(parts))
	for i, p := range parts {
		var line string
		if p.red != "" {
			line = style.BoldRed(p.red)
		}
		if p.yellow != "" {
			line += style.BoldYellow(p.yellow)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
