package services

import (
	"errors"
	"testing"

	"scanvault/internal/models"
	"scanvault/internal/registry"
	apperrors "scanvault/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func zapDescriptor(t *testing.T) registry.DetailDescriptor {
	t.Helper()
	desc, err := registry.ResolveDetailKind(registry.DetailDomainZap)
	assert.NoError(t, err)
	return desc
}

func trivyDescriptor(t *testing.T) registry.DetailDescriptor {
	t.Helper()
	desc, err := registry.ResolveDetailKind(registry.DetailRepositoryTrivy)
	assert.NoError(t, err)
	return desc
}

func TestDeleteTargetCascadesAllTiers(t *testing.T) {
	targetDao := new(MockTargetDAO)
	findingDao := new(MockFindingDAO)
	detailDao := new(MockDetailDAO)

	finding := models.Finding{
		FindingID:                  "F1",
		TargetID:                   "T1",
		ExtendedFindingDetailsName: string(registry.DetailDomainZap),
		ExtendedFindingDetailsID:   "D1",
	}

	targetDao.On("MarkTargetDeleted", registry.ScanTargetDomain, "T1").Return(nil)
	findingDao.On("ListFindingsByTarget", "T1", true).Return([]models.Finding{finding}, nil)
	detailDao.On("MarkDetailDeleted", zapDescriptor(t), "D1").Return(true, nil)
	findingDao.On("MarkFindingDeleted", "F1").Return(nil)

	service := NewCascadeService(targetDao, findingDao, detailDao, nil)
	result, err := service.DeleteTarget(registry.ScanTargetDomain, "T1")

	assert.NoError(t, err)
	assert.Equal(t, 1, result.FindingsDeleted)
	assert.Equal(t, 1, result.DetailsDeleted)
	assert.Equal(t, 0, result.DetailsMissing)

	targetDao.AssertExpectations(t)
	findingDao.AssertExpectations(t)
	detailDao.AssertExpectations(t)
}

func TestDeleteTargetToleratesMissingDetail(t *testing.T) {
	targetDao := new(MockTargetDAO)
	findingDao := new(MockFindingDAO)
	detailDao := new(MockDetailDAO)

	finding := models.Finding{
		FindingID:                  "F2",
		TargetID:                   "T2",
		ExtendedFindingDetailsName: string(registry.DetailRepositoryTrivy),
		ExtendedFindingDetailsID:   "gone",
	}

	targetDao.On("MarkTargetDeleted", registry.ScanTargetRepo, "T2").Return(nil)
	findingDao.On("ListFindingsByTarget", "T2", true).Return([]models.Finding{finding}, nil)
	detailDao.On("MarkDetailDeleted", trivyDescriptor(t), "gone").Return(false, nil)
	findingDao.On("MarkFindingDeleted", "F2").Return(nil)

	service := NewCascadeService(targetDao, findingDao, detailDao, nil)
	result, err := service.DeleteTarget(registry.ScanTargetRepo, "T2")

	assert.NoError(t, err, "missing detail record must not fail the cascade")
	assert.Equal(t, 1, result.FindingsDeleted)
	assert.Equal(t, 0, result.DetailsDeleted)
	assert.Equal(t, 1, result.DetailsMissing)
	findingDao.AssertCalled(t, "MarkFindingDeleted", "F2")
}

func TestDeleteTargetSkipsUnknownDetailTag(t *testing.T) {
	targetDao := new(MockTargetDAO)
	findingDao := new(MockFindingDAO)
	detailDao := new(MockDetailDAO)

	finding := models.Finding{
		FindingID:                  "F3",
		TargetID:                   "T3",
		ExtendedFindingDetailsName: "LegacyNessus1",
		ExtendedFindingDetailsID:   "D3",
	}

	targetDao.On("MarkTargetDeleted", registry.ScanTargetDomain, "T3").Return(nil)
	findingDao.On("ListFindingsByTarget", "T3", true).Return([]models.Finding{finding}, nil)
	findingDao.On("MarkFindingDeleted", "F3").Return(nil)

	service := NewCascadeService(targetDao, findingDao, detailDao, nil)
	result, err := service.DeleteTarget(registry.ScanTargetDomain, "T3")

	assert.NoError(t, err)
	assert.Equal(t, 1, result.FindingsDeleted)
	assert.Equal(t, 1, result.DetailsMissing)
	detailDao.AssertNotCalled(t, "MarkDetailDeleted", mock.Anything, mock.Anything)
}

func TestDeleteTargetNotFound(t *testing.T) {
	targetDao := new(MockTargetDAO)
	findingDao := new(MockFindingDAO)
	detailDao := new(MockDetailDAO)

	targetDao.On("MarkTargetDeleted", registry.ScanTargetDomain, "missing").Return(apperrors.ErrTargetNotFound)

	service := NewCascadeService(targetDao, findingDao, detailDao, nil)
	result, err := service.DeleteTarget(registry.ScanTargetDomain, "missing")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrTargetNotFound)
	findingDao.AssertNotCalled(t, "ListFindingsByTarget", mock.Anything, mock.Anything)
}

func TestDeleteTargetIsIdempotent(t *testing.T) {
	// A second sweep over an already-deleted target re-processes its deleted
	// findings and converges to the same state without error.
	targetDao := new(MockTargetDAO)
	findingDao := new(MockFindingDAO)
	detailDao := new(MockDetailDAO)

	finding := models.Finding{
		FindingID:                  "F1",
		TargetID:                   "T1",
		ExtendedFindingDetailsName: string(registry.DetailDomainZap),
		ExtendedFindingDetailsID:   "D1",
		IsDeleted:                  true,
	}

	targetDao.On("MarkTargetDeleted", registry.ScanTargetDomain, "T1").Return(nil).Twice()
	findingDao.On("ListFindingsByTarget", "T1", true).Return([]models.Finding{finding}, nil).Twice()
	detailDao.On("MarkDetailDeleted", zapDescriptor(t), "D1").Return(true, nil).Twice()
	findingDao.On("MarkFindingDeleted", "F1").Return(nil).Twice()

	service := NewCascadeService(targetDao, findingDao, detailDao, nil)

	first, err := service.DeleteTarget(registry.ScanTargetDomain, "T1")
	assert.NoError(t, err)
	second, err := service.DeleteTarget(registry.ScanTargetDomain, "T1")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDeleteTargetContinuesAfterFindingFailure(t *testing.T) {
	targetDao := new(MockTargetDAO)
	findingDao := new(MockFindingDAO)
	detailDao := new(MockDetailDAO)

	findings := []models.Finding{
		{FindingID: "F1", TargetID: "T1", ExtendedFindingDetailsName: string(registry.DetailDomainZap), ExtendedFindingDetailsID: "D1"},
		{FindingID: "F2", TargetID: "T1", ExtendedFindingDetailsName: string(registry.DetailDomainZap), ExtendedFindingDetailsID: "D2"},
	}

	targetDao.On("MarkTargetDeleted", registry.ScanTargetDomain, "T1").Return(nil)
	findingDao.On("ListFindingsByTarget", "T1", true).Return(findings, nil)
	detailDao.On("MarkDetailDeleted", zapDescriptor(t), "D1").Return(true, nil)
	detailDao.On("MarkDetailDeleted", zapDescriptor(t), "D2").Return(true, nil)
	findingDao.On("MarkFindingDeleted", "F1").Return(apperrors.NewStorageError("mark finding deleted", errors.New("connection reset")))
	findingDao.On("MarkFindingDeleted", "F2").Return(nil)

	service := NewCascadeService(targetDao, findingDao, detailDao, nil)
	result, err := service.DeleteTarget(registry.ScanTargetDomain, "T1")

	assert.NoError(t, err, "per-finding failures are recovered locally")
	assert.Equal(t, 1, result.FindingsDeleted)
	findingDao.AssertCalled(t, "MarkFindingDeleted", "F2")
}
