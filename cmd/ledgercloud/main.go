package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgercloud/ledgercloud/internal/interfaces/cli/migrate"
	"github.com/ledgercloud/ledgercloud/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgercloud",
		Short: "LedgerCloud - tenant subscription provisioning service",
		Long:  `LedgerCloud provisions tenant subscriptions against a plan catalog, with billing profile checks backed by an external payment provider.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
