// Package cmd wires build metadata into the jukebox-backup command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/tsijukebox/jukebox-backup/internal/adapters/in/cli"
)

// ExecuteCLI runs the root command and exits non-zero on failure.
func ExecuteCLI(build, commit, date string) {
	if build != "" {
		cli.SetVersionInfo(build, commit, date)
	}

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
