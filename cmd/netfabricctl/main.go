// Package main is the entry point for the netfabricctl CLI.
//
// netfabricctl is a small operational companion to the netfabric-operator:
// it validates operator configuration and probes backend connectivity
// without needing a running cluster.
//
// For detailed usage information, run:
//
//	netfabricctl --help
package main

import (
	"fmt"
	"os"

	"github.com/netfabric-io/netfabric-operator/cmd/netfabricctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
