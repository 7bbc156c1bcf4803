package dao

import (
	"errors"
	"time"

	"scanvault/internal/models"
	apperrors "scanvault/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScannerTypeDAO interface {
	GetScannerTypeByID(id string) (*models.ScannerType, error)
	GetScannerTypeByName(name string) (*models.ScannerType, error)
	ListScannerTypes() ([]models.ScannerType, error)
	UpsertScannerType(scanner *models.ScannerType) error
}

type scannerTypeDAO struct {
	db *gorm.DB
}

func NewScannerTypeDAO(db *gorm.DB) ScannerTypeDAO {
	return &scannerTypeDAO{db: db}
}

func (dao *scannerTypeDAO) GetScannerTypeByID(id string) (*models.ScannerType, error) {
	var scanner models.ScannerType
	if err := dao.db.Where("scanner_type_id = ?", id).First(&scanner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScannerNotFound
		}
		return nil, apperrors.NewStorageError("get scanner type", err)
	}
	return &scanner, nil
}

func (dao *scannerTypeDAO) GetScannerTypeByName(name string) (*models.ScannerType, error) {
	var scanner models.ScannerType
	if err := dao.db.Where("name = ?", name).First(&scanner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScannerNotFound
		}
		return nil, apperrors.NewStorageError("get scanner type by name", err)
	}
	return &scanner, nil
}

func (dao *scannerTypeDAO) ListScannerTypes() ([]models.ScannerType, error) {
	var scanners []models.ScannerType
	if err := dao.db.Order("name asc").Find(&scanners).Error; err != nil {
		return nil, apperrors.NewStorageError("list scanner types", err)
	}
	return scanners, nil
}

// UpsertScannerType inserts or updates by name, so re-running the seed is
// safe.
func (dao *scannerTypeDAO) UpsertScannerType(scanner *models.ScannerType) error {
	scanner.UpdatedAt = time.Now().Unix()
	err := dao.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"scan_target_type", "description", "updated_at"}),
	}).Create(scanner).Error
	if err != nil {
		return apperrors.NewStorageError("upsert scanner type", err)
	}
	return nil
}
