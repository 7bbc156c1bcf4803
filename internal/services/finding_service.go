package services

import (
	"scanvault/internal/dao"
	"scanvault/internal/models"
	apperrors "scanvault/pkg/errors"
)

type FindingServiceMethods interface {
	GetFinding(id string) (*models.Finding, error)
	ListFindingsByTarget(targetID string) ([]models.Finding, error)
	UpdateFindingStatus(id, status string) error
	DeleteFinding(id string) error
}

type findingService struct {
	findingDao dao.FindingDAO
}

func NewFindingService(findingDao dao.FindingDAO) FindingServiceMethods {
	return &findingService{findingDao: findingDao}
}

func (s *findingService) GetFinding(id string) (*models.Finding, error) {
	return s.findingDao.GetFindingByID(id)
}

// ListFindingsByTarget only surfaces live findings; deleted ones stay in
// storage but never in listings.
func (s *findingService) ListFindingsByTarget(targetID string) ([]models.Finding, error) {
	return s.findingDao.ListFindingsByTarget(targetID, false)
}

func (s *findingService) UpdateFindingStatus(id, status string) error {
	switch status {
	case models.FindingStatusOpen, models.FindingStatusTriaged, models.FindingStatusResolved, models.FindingStatusIgnored:
	default:
		return apperrors.NewValidationError("status", status, "unknown finding status")
	}
	return s.findingDao.UpdateFindingStatus(id, status)
}

func (s *findingService) DeleteFinding(id string) error {
	return s.findingDao.MarkFindingDeleted(id)
}
