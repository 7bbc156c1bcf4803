package server

import (
	"context"
	"fmt"

	"scanvault/api/routes"
	"scanvault/internal/config"
	"scanvault/internal/dao"
	"scanvault/internal/database"
	"scanvault/internal/notification"
	"scanvault/internal/recommend"
	"scanvault/internal/services"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ServerOpts struct {
	Port int
}

func NewServerCommand() *cobra.Command {
	serverConfig := &ServerOpts{}

	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Start the scanvault server",
		Long:  `Start the scanvault server exposing the findings and fix recommendation APIs`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
			ctx := cmd.Context()

			cfg := config.LoadConfig()
			if serverConfig.Port != 0 {
				cfg.ServerPort = serverConfig.Port
			}
			database.InitDB(cfg)

			var generator recommend.Generator
			if cfg.GeminiAPIKey != "" {
				gemini, err := recommend.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GenerationTimeout)
				if err != nil {
					log.Warnf("Failed to initialize Gemini client: %v", err)
				} else {
					defer gemini.Close()
					generator = gemini
					log.Info("Fix recommendation generation enabled")
				}
			} else {
				log.Info("SCANVAULT_GEMINI_API_KEY not set - fix recommendation generation disabled")
			}

			var notifier notification.Notifier
			if cfg.DiscordToken != "" {
				client, err := notification.NewNotificationClient(cfg.DiscordToken, cfg.DiscordChannelID)
				if err != nil {
					log.Warnf("Failed to initialize Discord client: %v", err)
				} else {
					defer client.Close()
					notifier = client
					log.Info("Discord notifications enabled")
				}
			}

			seedService := services.NewScannerSeedService(dao.NewScannerTypeDAO(database.DB), cfg.ScannerSeedPath)
			if err := seedService.Sync(); err != nil {
				log.Warnf("Scanner type seed failed: %v", err)
			} else {
				watchCtx, cancel := context.WithCancel(ctx)
				defer cancel()
				go seedService.Watch(watchCtx)
			}

			router := routes.InitRouter(database.DB, generator, notifier, cfg.GeminiModel)
			router.Run(fmt.Sprintf(":%d", cfg.ServerPort))
		},
	}

	serverCmd.Flags().IntVarP(&serverConfig.Port, "port", "p", 0, "Port to run the server on (overrides config)")

	return serverCmd
}
