package database

import (
	"fmt"

	"scanvault/internal/config"
	"scanvault/internal/models"
	"scanvault/internal/registry"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(cfg *config.Config) {
	if err := registry.Validate(); err != nil {
		logrus.Fatalf("Type registry is inconsistent: %v", err)
	}

	dns := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	var err error
	DB, err = gorm.Open(postgres.Open(dns), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.Domain{},
		&models.Repository{},
		&models.Contract{},
		&models.CloudAccount{},
		&models.ScannerType{},
		&models.Finding{},
		&models.ZapDetail{},
		&models.WapitiDetail{},
		&models.TrivyDetail{},
		&models.SecretDetail{},
		&models.SlitherDetail{},
		&models.CloudAzureDetail{},
		&models.CloudGoogleDetail{},
		&models.FixRecommendation{},
	); err != nil {
		logrus.Fatalf("Failed to auto-migrate database: %v", err)
	}

	logrus.Info("Database connection established and migrated")
}
