package main

import (
	"context"
	"os"

	"scanvault/cmd/scanvault/seed"
	"scanvault/cmd/scanvault/server"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "scanvault",
		Short: "Security-assessment management backend",
		Long:  `Scanvault manages scan targets, normalized findings with scanner-specific detail records, and AI-assisted fix recommendations`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(server.NewServerCommand())
	rootCmd.AddCommand(seed.NewSeedCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
