// Package main is the entry point for the pole-setup CLI.
//
// It scaffolds the pole extractor project layout and prints the manual
// deployment checklist. All behavior lives in internal/cli; this file only
// injects build information and hands over control.
package main

import (
	"github.com/tinashe-code/pole-setup/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand())
}
