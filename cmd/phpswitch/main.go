// Package main is the entry point for the phpswitch CLI.
//
// It delegates all functionality to the internal/cli package, which defines
// the cobra command. Build-time variables (version, commit, date) are
// injected via ldflags during the release process.
package main

import (
	"github.com/mmr-tortoise/devkit/internal/cli"
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

	cli.Execute(cli.NewPHPSwitchCommand())
}
