package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/netfabric-io/netfabric-operator/internal/config"
	"github.com/netfabric-io/netfabric-operator/internal/platform/ipam"
)

// Doctor returns the command for diagnosing operator configuration.
//
// It validates the configuration the operator would start with and probes
// the backend API for connectivity, so misconfiguration surfaces before a
// deploy rather than as a reconcile retry storm.
//
// Optional flags:
//
//	--config, -c: Path to an operator configuration YAML file
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate configuration and probe backend connectivity",
		Long: `Validate the netfabric-operator configuration and backend connectivity.

Checks performed:
  - Configuration loads and validates (environment plus optional file)
  - The IPAM/DCIM backend answers an authenticated status request

Examples:
  # Diagnose using environment variables only
  netfabricctl doctor

  # Diagnose with a configuration file
  netfabricctl doctor --config netfabric.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd.Context(), cmd.OutOrStdout(), configPath, newBackendClient)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")

	return cmd
}

func newBackendClient(cfg *config.Config) ipam.Client {
	return ipam.NewRealClient(cfg.BackendURL, cfg.BackendToken,
		ipam.WithCallTimeout(cfg.BackendCallTimeout))
}

func runDoctor(ctx context.Context, out io.Writer, configPath string, newClient func(*config.Config) ipam.Client) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(out, "✗ configuration invalid")
		return err
	}
	fmt.Fprintln(out, "✓ configuration valid")
	fmt.Fprintf(out, "  backend:   %s\n", cfg.BackendURL)
	if cfg.WatchNamespace != "" {
		fmt.Fprintf(out, "  namespace: %s\n", cfg.WatchNamespace)
	} else {
		fmt.Fprintln(out, "  namespace: (all)")
	}

	if err := newClient(cfg).Ping(ctx); err != nil {
		fmt.Fprintln(out, "✗ backend unreachable")
		return fmt.Errorf("backend connectivity check failed: %w", err)
	}
	fmt.Fprintln(out, "✓ backend reachable")
	return nil
}
