package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootFlags struct {
	configPath string
	logLevel   string
	namespace  string
	apiAddr    string
	healthAddr string
}

func buildRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "dialoggate",
		Short: "Dialog custom action gateway",
		Long: `dialoggate hosts the dialog manager behind an internal HTTP API. Peers are
created over the API, custom click actions are injected for them and routed to
registered handlers, and clear dialog packets are queued in each peer's outbox.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &flags)
		},
	}
	for _, c := range []*cobra.Command{root, serve} {
		c.Flags().StringVar(&flags.namespace, "namespace", "", "default action namespace")
		c.Flags().StringVar(&flags.apiAddr, "api-addr", "", "internal API listen address")
		c.Flags().StringVar(&flags.healthAddr, "health-addr", "", "gRPC health listen address")
	}

	root.AddCommand(serve)
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dialoggate %s\n", version)
		},
	})
	return root
}
