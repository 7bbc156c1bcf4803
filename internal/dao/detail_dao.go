package dao

import (
	"errors"
	"time"

	"scanvault/internal/registry"
	apperrors "scanvault/pkg/errors"

	"gorm.io/gorm"
)

// DetailDAO accesses the scanner detail tables generically through registry
// descriptors, so a new detail kind only touches the registry and the models.
type DetailDAO interface {
	SaveDetail(detail interface{}) error
	GetDetail(desc registry.DetailDescriptor, id string) (map[string]interface{}, error)
	MarkDetailDeleted(desc registry.DetailDescriptor, id string) (bool, error)
}

type detailDAO struct {
	db *gorm.DB
}

func NewDetailDAO(db *gorm.DB) DetailDAO {
	return &detailDAO{db: db}
}

func (dao *detailDAO) SaveDetail(detail interface{}) error {
	if err := dao.db.Create(detail).Error; err != nil {
		return apperrors.NewStorageError("save detail", err)
	}
	return nil
}

func (dao *detailDAO) GetDetail(desc registry.DetailDescriptor, id string) (map[string]interface{}, error) {
	row := map[string]interface{}{}
	err := dao.db.Table(desc.Table).
		Where(desc.IDColumn+" = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("get detail", err)
	}
	return row, nil
}

// MarkDetailDeleted soft-deletes the detail row. A missing row is reported as
// false, not an error: the cascade tolerates drifted data.
func (dao *detailDAO) MarkDetailDeleted(desc registry.DetailDescriptor, id string) (bool, error) {
	result := dao.db.Table(desc.Table).
		Where(desc.IDColumn+" = ?", id).
		Updates(map[string]interface{}{
			"isdeleted":  true,
			"deleted_at": time.Now().Unix(),
		})
	if result.Error != nil {
		return false, apperrors.NewStorageError("mark detail deleted", result.Error)
	}
	return result.RowsAffected > 0, nil
}
