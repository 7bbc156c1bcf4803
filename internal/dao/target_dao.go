package dao

import (
	"errors"
	"time"

	"scanvault/internal/models"
	"scanvault/internal/registry"
	apperrors "scanvault/pkg/errors"

	"gorm.io/gorm"
)

type TargetDAO interface {
	SaveTarget(target models.Target) error
	GetTarget(kind registry.ScanTargetType, id string) (models.Target, error)
	GetTargetAnyState(kind registry.ScanTargetType, id string) (models.Target, error)
	MarkTargetDeleted(kind registry.ScanTargetType, id string) error
}

type targetDAO struct {
	db *gorm.DB
}

func NewTargetDAO(db *gorm.DB) TargetDAO {
	return &targetDAO{db: db}
}

func (dao *targetDAO) SaveTarget(target models.Target) error {
	if err := dao.db.Create(target).Error; err != nil {
		return apperrors.NewStorageError("save target", err)
	}
	return nil
}

func (dao *targetDAO) GetTarget(kind registry.ScanTargetType, id string) (models.Target, error) {
	return dao.getTarget(kind, id, false)
}

func (dao *targetDAO) GetTargetAnyState(kind registry.ScanTargetType, id string) (models.Target, error) {
	return dao.getTarget(kind, id, true)
}

func (dao *targetDAO) getTarget(kind registry.ScanTargetType, id string, includeDeleted bool) (models.Target, error) {
	desc, err := registry.ResolveTargetKind(kind)
	if err != nil {
		return nil, err
	}

	query := dao.db.Where(desc.IDColumn+" = ?", id)
	if !includeDeleted {
		query = query.Where("isdeleted = ?", false)
	}

	var target models.Target
	switch kind {
	case registry.ScanTargetDomain:
		var row models.Domain
		err = query.First(&row).Error
		target = &row
	case registry.ScanTargetRepo:
		var row models.Repository
		err = query.First(&row).Error
		target = &row
	case registry.ScanTargetWeb3:
		var row models.Contract
		err = query.First(&row).Error
		target = &row
	case registry.ScanTargetCloud:
		var row models.CloudAccount
		err = query.First(&row).Error
		target = &row
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTargetNotFound
		}
		return nil, apperrors.NewStorageError("get target", err)
	}
	return target, nil
}

// MarkTargetDeleted soft-deletes the target row. Marking an already-deleted
// target is a no-op; only a missing row is an error.
func (dao *targetDAO) MarkTargetDeleted(kind registry.ScanTargetType, id string) error {
	desc, err := registry.ResolveTargetKind(kind)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	result := dao.db.Table(desc.Table).
		Where(desc.IDColumn+" = ?", id).
		Updates(map[string]interface{}{
			"isdeleted":  true,
			"deleted_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return apperrors.NewStorageError("mark target deleted", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTargetNotFound
	}
	return nil
}
