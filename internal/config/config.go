package config

import (
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	ServerPort int

	GeminiAPIKey      string
	GeminiModel       string
	GenerationTimeout time.Duration

	ScannerSeedPath string

	DiscordToken     string
	DiscordChannelID string
}

// LoadConfig reads configuration from an optional scanvault.yaml and from
// SCANVAULT_-prefixed environment variables, env taking precedence.
func LoadConfig() *Config {
	v := viper.New()

	v.SetConfigName("scanvault")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/scanvault")

	v.SetEnvPrefix("SCANVAULT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "scanvault")
	v.SetDefault("db.password", "scanvault")
	v.SetDefault("db.name", "scanvault")
	v.SetDefault("server.port", 8080)
	v.SetDefault("gemini.model", "gemini-pro")
	v.SetDefault("gemini.timeout_seconds", 60)
	v.SetDefault("scanners.seed_path", "./config/scanners.yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Info("No config file found, using defaults and environment")
		} else {
			log.Warnf("Failed to read config file: %v", err)
		}
	} else {
		log.Infof("Loaded config file: %s", v.ConfigFileUsed())
	}

	return &Config{
		DBHost:            v.GetString("db.host"),
		DBPort:            v.GetInt("db.port"),
		DBUser:            v.GetString("db.user"),
		DBPassword:        v.GetString("db.password"),
		DBName:            v.GetString("db.name"),
		ServerPort:        v.GetInt("server.port"),
		GeminiAPIKey:      v.GetString("gemini.api_key"),
		GeminiModel:       v.GetString("gemini.model"),
		GenerationTimeout: time.Duration(v.GetInt("gemini.timeout_seconds")) * time.Second,
		ScannerSeedPath:   v.GetString("scanners.seed_path"),
		DiscordToken:      v.GetString("discord.token"),
		DiscordChannelID:  v.GetString("discord.channel_id"),
	}
}
