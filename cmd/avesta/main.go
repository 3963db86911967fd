package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/avestaexchange/avesta/internal/interfaces/cli/migrate"
	"github.com/avestaexchange/avesta/internal/interfaces/cli/seed"
	"github.com/avestaexchange/avesta/internal/interfaces/cli/server"
	"github.com/avestaexchange/avesta/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "avesta",
		Short:   "Avesta - currency exchange back-office",
		Long:    `Avesta serves live and historical Rial exchange rates with operator markups, and the back-office API that manages them.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
