package main

import (
	"fmt"

	"github.com/deppfellow/devmatch/internal/config"
	"github.com/spf13/cobra"
)

// cfg is loaded once in PersistentPreRunE.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "devmatch",
	Short: "DevMatch API server",
	Long: `devmatch - matches developers with business projects

Serves the REST API for developers, businesses, their projects and the
applications between them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
