package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vistream-io/vistream/internal/interfaces/cli/migrate"
	"github.com/vistream-io/vistream/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vistream",
		Short: "Vistream - playback entitlement and admission control",
		Long:  `Vistream decides whether a playback session may begin, enforcing subscriptions, device slots, stream ceilings, parental controls, and content rights.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
