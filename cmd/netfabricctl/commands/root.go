// Package commands defines the CLI command structure and flag bindings.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the netfabricctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "netfabricctl",
		Short: "Operational tooling for the netfabric operator",
	}

	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())

	return cmd
}
