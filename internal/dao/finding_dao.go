package dao

import (
	"errors"
	"time"

	"scanvault/internal/models"
	apperrors "scanvault/pkg/errors"

	"gorm.io/gorm"
)

type FindingDAO interface {
	SaveFinding(finding *models.Finding) error
	GetFindingByID(id string) (*models.Finding, error)
	ListFindingsByTarget(targetID string, includeDeleted bool) ([]models.Finding, error)
	UpdateFindingStatus(id, status string) error
	MarkFindingDeleted(id string) error
	SetFixRecommendation(findingID, recommendationID string) (bool, error)
}

type findingDAO struct {
	db *gorm.DB
}

func NewFindingDAO(db *gorm.DB) FindingDAO {
	return &findingDAO{db: db}
}

func (dao *findingDAO) SaveFinding(finding *models.Finding) error {
	if err := dao.db.Create(finding).Error; err != nil {
		return apperrors.NewStorageError("save finding", err)
	}
	return nil
}

func (dao *findingDAO) GetFindingByID(id string) (*models.Finding, error) {
	var finding models.Finding
	if err := dao.db.Where("finding_id = ?", id).First(&finding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFindingNotFound
		}
		return nil, apperrors.NewStorageError("get finding", err)
	}
	return &finding, nil
}

// ListFindingsByTarget returns every finding referencing the target. The
// cascade re-processes already-deleted findings, so it asks for all states;
// API listings exclude them.
func (dao *findingDAO) ListFindingsByTarget(targetID string, includeDeleted bool) ([]models.Finding, error) {
	var findings []models.Finding
	query := dao.db.Where("target_id = ?", targetID)
	if !includeDeleted {
		query = query.Where("isdeleted = ?", false)
	}
	if err := query.Order("created_at desc").Find(&findings).Error; err != nil {
		return nil, apperrors.NewStorageError("list findings by target", err)
	}
	return findings, nil
}

func (dao *findingDAO) UpdateFindingStatus(id, status string) error {
	result := dao.db.Model(&models.Finding{}).
		Where("finding_id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().Unix(),
		})
	if result.Error != nil {
		return apperrors.NewStorageError("update finding status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrFindingNotFound
	}
	return nil
}

// MarkFindingDeleted is idempotent: re-marking a deleted finding succeeds.
func (dao *findingDAO) MarkFindingDeleted(id string) error {
	now := time.Now().Unix()
	result := dao.db.Model(&models.Finding{}).
		Where("finding_id = ?", id).
		Updates(map[string]interface{}{
			"isdeleted":  true,
			"deleted_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return apperrors.NewStorageError("mark finding deleted", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrFindingNotFound
	}
	return nil
}

// SetFixRecommendation stores the recommendation reference only if the
// finding does not have one yet. Returns false when another writer already
// set it, which is how concurrent generation races converge on one value.
func (dao *findingDAO) SetFixRecommendation(findingID, recommendationID string) (bool, error) {
	result := dao.db.Model(&models.Finding{}).
		Where("finding_id = ?", findingID).
		Where("fix_recommendation_id IS NULL OR fix_recommendation_id = ''").
		Updates(map[string]interface{}{
			"fix_recommendation_id": recommendationID,
			"updated_at":            time.Now().Unix(),
		})
	if result.Error != nil {
		return false, apperrors.NewStorageError("set fix recommendation", result.Error)
	}
	return result.RowsAffected > 0, nil
}
