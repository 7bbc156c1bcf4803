package seed

import (
	"scanvault/internal/config"
	"scanvault/internal/dao"
	"scanvault/internal/database"
	"scanvault/internal/services"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewSeedCommand() *cobra.Command {
	var seedPath string

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Sync scanner type definitions into the database",
		Long:  `Read the scanner definitions YAML file and upsert the scanner types without starting the server`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg := config.LoadConfig()
			if seedPath != "" {
				cfg.ScannerSeedPath = seedPath
			}
			database.InitDB(cfg)

			seedService := services.NewScannerSeedService(dao.NewScannerTypeDAO(database.DB), cfg.ScannerSeedPath)
			if err := seedService.Sync(); err != nil {
				log.Errorf("Seed failed: %v", err)
				return err
			}
			return nil
		},
	}

	seedCmd.Flags().StringVarP(&seedPath, "file", "f", "", "Scanner definitions file (overrides config)")

	return seedCmd
}
