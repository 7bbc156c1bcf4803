package services

import (
	"context"

	"scanvault/internal/models"
	"scanvault/internal/notification"
	"scanvault/internal/registry"

	"github.com/stretchr/testify/mock"
)

type MockTargetDAO struct {
	mock.Mock
}

func (m *MockTargetDAO) SaveTarget(target models.Target) error {
	args := m.Called(target)
	return args.Error(0)
}

func (m *MockTargetDAO) GetTarget(kind registry.ScanTargetType, id string) (models.Target, error) {
	args := m.Called(kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Target), args.Error(1)
}

func (m *MockTargetDAO) GetTargetAnyState(kind registry.ScanTargetType, id string) (models.Target, error) {
	args := m.Called(kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Target), args.Error(1)
}

func (m *MockTargetDAO) MarkTargetDeleted(kind registry.ScanTargetType, id string) error {
	args := m.Called(kind, id)
	return args.Error(0)
}

type MockFindingDAO struct {
	mock.Mock
}

func (m *MockFindingDAO) SaveFinding(finding *models.Finding) error {
	args := m.Called(finding)
	return args.Error(0)
}

func (m *MockFindingDAO) GetFindingByID(id string) (*models.Finding, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Finding), args.Error(1)
}

func (m *MockFindingDAO) ListFindingsByTarget(targetID string, includeDeleted bool) ([]models.Finding, error) {
	args := m.Called(targetID, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Finding), args.Error(1)
}

func (m *MockFindingDAO) UpdateFindingStatus(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockFindingDAO) MarkFindingDeleted(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFindingDAO) SetFixRecommendation(findingID, recommendationID string) (bool, error) {
	args := m.Called(findingID, recommendationID)
	return args.Bool(0), args.Error(1)
}

type MockDetailDAO struct {
	mock.Mock
}

func (m *MockDetailDAO) SaveDetail(detail interface{}) error {
	args := m.Called(detail)
	return args.Error(0)
}

func (m *MockDetailDAO) GetDetail(desc registry.DetailDescriptor, id string) (map[string]interface{}, error) {
	args := m.Called(desc, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockDetailDAO) MarkDetailDeleted(desc registry.DetailDescriptor, id string) (bool, error) {
	args := m.Called(desc, id)
	return args.Bool(0), args.Error(1)
}

type MockScannerTypeDAO struct {
	mock.Mock
}

func (m *MockScannerTypeDAO) GetScannerTypeByID(id string) (*models.ScannerType, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScannerType), args.Error(1)
}

func (m *MockScannerTypeDAO) GetScannerTypeByName(name string) (*models.ScannerType, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScannerType), args.Error(1)
}

func (m *MockScannerTypeDAO) ListScannerTypes() ([]models.ScannerType, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScannerType), args.Error(1)
}

func (m *MockScannerTypeDAO) UpsertScannerType(scanner *models.ScannerType) error {
	args := m.Called(scanner)
	return args.Error(0)
}

type MockFixRecommendationDAO struct {
	mock.Mock
}

func (m *MockFixRecommendationDAO) SaveFixRecommendation(rec *models.FixRecommendation) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockFixRecommendationDAO) GetFixRecommendationByID(id string) (*models.FixRecommendation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FixRecommendation), args.Error(1)
}

func (m *MockFixRecommendationDAO) DeleteFixRecommendation(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(msg notification.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}
