package dao

import (
	"errors"

	"scanvault/internal/models"
	apperrors "scanvault/pkg/errors"

	"gorm.io/gorm"
)

type FixRecommendationDAO interface {
	SaveFixRecommendation(rec *models.FixRecommendation) error
	GetFixRecommendationByID(id string) (*models.FixRecommendation, error)
	DeleteFixRecommendation(id string) error
}

type fixRecommendationDAO struct {
	db *gorm.DB
}

func NewFixRecommendationDAO(db *gorm.DB) FixRecommendationDAO {
	return &fixRecommendationDAO{db: db}
}

func (dao *fixRecommendationDAO) SaveFixRecommendation(rec *models.FixRecommendation) error {
	if err := dao.db.Create(rec).Error; err != nil {
		return apperrors.NewStorageError("save fix recommendation", err)
	}
	return nil
}

func (dao *fixRecommendationDAO) GetFixRecommendationByID(id string) (*models.FixRecommendation, error) {
	var rec models.FixRecommendation
	if err := dao.db.Where("fix_recommendation_id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("get fix recommendation", err)
	}
	return &rec, nil
}

// DeleteFixRecommendation hard-deletes a row. Only used to discard the loser
// of a concurrent generation race; cached recommendations are never removed.
func (dao *fixRecommendationDAO) DeleteFixRecommendation(id string) error {
	result := dao.db.Where("fix_recommendation_id = ?", id).Delete(&models.FixRecommendation{})
	if result.Error != nil {
		return apperrors.NewStorageError("delete fix recommendation", result.Error)
	}
	return nil
}
