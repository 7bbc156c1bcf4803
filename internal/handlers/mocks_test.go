package handlers

import (
	"context"

	"scanvault/internal/models"
	"scanvault/internal/registry"
	"scanvault/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockTargetService struct {
	mock.Mock
}

func (m *MockTargetService) AddDomain(domain *models.Domain) (string, error) {
	args := m.Called(domain)
	return args.String(0), args.Error(1)
}

func (m *MockTargetService) AddRepository(repo *models.Repository) (string, error) {
	args := m.Called(repo)
	return args.String(0), args.Error(1)
}

func (m *MockTargetService) AddContract(contract *models.Contract) (string, error) {
	args := m.Called(contract)
	return args.String(0), args.Error(1)
}

func (m *MockTargetService) AddCloudAccount(account *models.CloudAccount) (string, error) {
	args := m.Called(account)
	return args.String(0), args.Error(1)
}

func (m *MockTargetService) GetTarget(kind registry.ScanTargetType, id string) (models.Target, error) {
	args := m.Called(kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Target), args.Error(1)
}

type MockCascadeService struct {
	mock.Mock
}

func (m *MockCascadeService) DeleteTarget(kind registry.ScanTargetType, targetID string) (*services.CascadeResult, error) {
	args := m.Called(kind, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CascadeResult), args.Error(1)
}

type MockFindingService struct {
	mock.Mock
}

func (m *MockFindingService) GetFinding(id string) (*models.Finding, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Finding), args.Error(1)
}

func (m *MockFindingService) ListFindingsByTarget(targetID string) ([]models.Finding, error) {
	args := m.Called(targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Finding), args.Error(1)
}

func (m *MockFindingService) UpdateFindingStatus(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockFindingService) DeleteFinding(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) IngestFinding(req *services.IngestRequest) (*models.Finding, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Finding), args.Error(1)
}

type MockFixService struct {
	mock.Mock
}

func (m *MockFixService) GetOrGenerate(ctx context.Context, findingID string) (string, error) {
	args := m.Called(ctx, findingID)
	return args.String(0), args.Error(1)
}
