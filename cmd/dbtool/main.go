package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dbtool",
		Short:        "Database maintenance for the school locator service",
		SilenceUsage: true,
	}
	cmd.AddCommand(newMigrateCmd(), newSeedCmd())
	return cmd
}
