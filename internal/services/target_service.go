package services

import (
	"time"

	"scanvault/internal/dao"
	"scanvault/internal/models"
	"scanvault/internal/registry"
	apperrors "scanvault/pkg/errors"

	"github.com/google/uuid"
)

type TargetServiceMethods interface {
	AddDomain(domain *models.Domain) (string, error)
	AddRepository(repo *models.Repository) (string, error)
	AddContract(contract *models.Contract) (string, error)
	AddCloudAccount(account *models.CloudAccount) (string, error)
	GetTarget(kind registry.ScanTargetType, id string) (models.Target, error)
}

type targetService struct {
	targetDao dao.TargetDAO
}

func NewTargetService(targetDao dao.TargetDAO) TargetServiceMethods {
	return &targetService{targetDao: targetDao}
}

func (s *targetService) AddDomain(domain *models.Domain) (string, error) {
	now := time.Now().Unix()
	domain.TargetDomainID = uuid.New().String()
	domain.CreatedAt = now
	domain.UpdatedAt = now
	if err := s.targetDao.SaveTarget(domain); err != nil {
		return "", err
	}
	return domain.TargetDomainID, nil
}

func (s *targetService) AddRepository(repo *models.Repository) (string, error) {
	now := time.Now().Unix()
	repo.TargetRepositoryID = uuid.New().String()
	repo.CreatedAt = now
	repo.UpdatedAt = now
	if err := s.targetDao.SaveTarget(repo); err != nil {
		return "", err
	}
	return repo.TargetRepositoryID, nil
}

func (s *targetService) AddContract(contract *models.Contract) (string, error) {
	now := time.Now().Unix()
	contract.TargetContractID = uuid.New().String()
	contract.CreatedAt = now
	contract.UpdatedAt = now
	if err := s.targetDao.SaveTarget(contract); err != nil {
		return "", err
	}
	return contract.TargetContractID, nil
}

func (s *targetService) AddCloudAccount(account *models.CloudAccount) (string, error) {
	if account.Provider != models.CloudProviderAzure && account.Provider != models.CloudProviderGoogle {
		return "", apperrors.NewValidationError("provider", account.Provider, "unknown cloud provider")
	}
	now := time.Now().Unix()
	account.TargetCloudAccountID = uuid.New().String()
	account.CreatedAt = now
	account.UpdatedAt = now
	if err := s.targetDao.SaveTarget(account); err != nil {
		return "", err
	}
	return account.TargetCloudAccountID, nil
}

func (s *targetService) GetTarget(kind registry.ScanTargetType, id string) (models.Target, error) {
	return s.targetDao.GetTarget(kind, id)
}
