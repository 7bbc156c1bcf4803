package services

import (
	"context"
	"strings"
	"testing"

	"scanvault/internal/models"
	"scanvault/internal/registry"
	apperrors "scanvault/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fixServiceFixture struct {
	findingDao *MockFindingDAO
	scannerDao *MockScannerTypeDAO
	detailDao  *MockDetailDAO
	fixDao     *MockFixRecommendationDAO
	targetDao  *MockTargetDAO
	generator  *MockGenerator
	service    FixRecommendationServiceMethods
}

func newFixServiceFixture(withGenerator bool) *fixServiceFixture {
	f := &fixServiceFixture{
		findingDao: new(MockFindingDAO),
		scannerDao: new(MockScannerTypeDAO),
		detailDao:  new(MockDetailDAO),
		fixDao:     new(MockFixRecommendationDAO),
		targetDao:  new(MockTargetDAO),
		generator:  new(MockGenerator),
	}
	var generator *MockGenerator
	if withGenerator {
		generator = f.generator
	}
	resolver := NewTargetResolver(f.targetDao)
	if generator != nil {
		f.service = NewFixRecommendationService(f.findingDao, f.scannerDao, f.detailDao, f.fixDao, resolver, generator, "gemini-pro")
	} else {
		f.service = NewFixRecommendationService(f.findingDao, f.scannerDao, f.detailDao, f.fixDao, resolver, nil, "gemini-pro")
	}
	return f
}

func uncachedFinding() *models.Finding {
	return &models.Finding{
		FindingID:                  "F1",
		TargetID:                   "T1",
		ScannerTypeID:              "S1",
		ExtendedFindingDetailsName: string(registry.DetailDomainZap),
		ExtendedFindingDetailsID:   "D1",
		Title:                      "Reflected XSS on /search",
		Severity:                   models.SeverityHigh,
	}
}

func (f *fixServiceFixture) expectContextAssembly(t *testing.T) {
	f.scannerDao.On("GetScannerTypeByID", "S1").Return(&models.ScannerType{
		ScannerTypeID:  "S1",
		Name:           "zap",
		ScanTargetType: string(registry.ScanTargetDomain),
	}, nil)
	f.targetDao.On("GetTarget", registry.ScanTargetDomain, "T1").Return(&models.Domain{
		TargetDomainID: "T1",
		DomainName:     "example.com",
	}, nil)
	f.detailDao.On("GetDetail", zapDescriptor(t), "D1").Return(map[string]interface{}{
		"zap_detail_id": "D1",
		"alert_name":    "Cross Site Scripting (Reflected)",
	}, nil)
}

func TestGetOrGenerateCacheHit(t *testing.T) {
	f := newFixServiceFixture(true)

	finding := uncachedFinding()
	finding.FixRecommendationID = "R1"
	f.findingDao.On("GetFindingByID", "F1").Return(finding, nil)
	f.fixDao.On("GetFixRecommendationByID", "R1").Return(&models.FixRecommendation{
		FixRecommendationID: "R1",
		FindingID:           "F1",
		AIFix:               "Encode output in the search template",
	}, nil)

	text, err := f.service.GetOrGenerate(context.Background(), "F1")

	assert.NoError(t, err)
	assert.Equal(t, "Encode output in the search template", text)
	f.generator.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestGetOrGenerateMissGeneratesAndPersists(t *testing.T) {
	f := newFixServiceFixture(true)

	f.findingDao.On("GetFindingByID", "F1").Return(uncachedFinding(), nil)
	f.expectContextAssembly(t)
	f.generator.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		// The prompt must carry the full polymorphic context.
		return strings.Contains(prompt, "F1") &&
			strings.Contains(prompt, "zap") &&
			strings.Contains(prompt, "example.com") &&
			strings.Contains(prompt, "Cross Site Scripting")
	})).Return("Sanitize the q parameter before echoing it", nil)
	f.fixDao.On("SaveFixRecommendation", mock.AnythingOfType("*models.FixRecommendation")).Return(nil)
	f.findingDao.On("SetFixRecommendation", "F1", mock.AnythingOfType("string")).Return(true, nil)

	text, err := f.service.GetOrGenerate(context.Background(), "F1")

	assert.NoError(t, err)
	assert.Equal(t, "Sanitize the q parameter before echoing it", text)
	f.generator.AssertNumberOfCalls(t, "Complete", 1)
	f.fixDao.AssertNumberOfCalls(t, "SaveFixRecommendation", 1)
	f.fixDao.AssertNotCalled(t, "DeleteFixRecommendation", mock.Anything)
}

func TestGetOrGenerateLostRaceDiscardsDuplicate(t *testing.T) {
	f := newFixServiceFixture(true)

	f.findingDao.On("GetFindingByID", "F1").Return(uncachedFinding(), nil)
	f.expectContextAssembly(t)
	f.generator.On("Complete", mock.Anything, mock.Anything).Return("my generated text", nil)
	f.fixDao.On("SaveFixRecommendation", mock.AnythingOfType("*models.FixRecommendation")).Return(nil)
	f.findingDao.On("SetFixRecommendation", "F1", mock.AnythingOfType("string")).Return(false, nil)
	f.fixDao.On("DeleteFixRecommendation", mock.AnythingOfType("string")).Return(nil)

	text, err := f.service.GetOrGenerate(context.Background(), "F1")

	// The loser still serves its own text; only the persisted copy is dropped.
	assert.NoError(t, err)
	assert.Equal(t, "my generated text", text)
	f.fixDao.AssertNumberOfCalls(t, "DeleteFixRecommendation", 1)
}

func TestGetOrGenerateGeneratorFailure(t *testing.T) {
	f := newFixServiceFixture(true)

	f.findingDao.On("GetFindingByID", "F1").Return(uncachedFinding(), nil)
	f.expectContextAssembly(t)
	f.generator.On("Complete", mock.Anything, mock.Anything).
		Return("", apperrors.NewGenerationError("api call", assert.AnError))

	text, err := f.service.GetOrGenerate(context.Background(), "F1")

	assert.Empty(t, text)
	var generationErr *apperrors.GenerationError
	assert.ErrorAs(t, err, &generationErr)
	// A failed generation leaves nothing cached, so the next request retries.
	f.fixDao.AssertNotCalled(t, "SaveFixRecommendation", mock.Anything)
	f.findingDao.AssertNotCalled(t, "SetFixRecommendation", mock.Anything, mock.Anything)
}

func TestGetOrGenerateGeneratorDisabled(t *testing.T) {
	f := newFixServiceFixture(false)

	f.findingDao.On("GetFindingByID", "F1").Return(uncachedFinding(), nil)

	_, err := f.service.GetOrGenerate(context.Background(), "F1")
	assert.ErrorIs(t, err, apperrors.ErrGeneratorDisabled)
}

func TestGetOrGenerateDanglingReferenceRegenerates(t *testing.T) {
	f := newFixServiceFixture(true)

	finding := uncachedFinding()
	finding.FixRecommendationID = "R9"
	f.findingDao.On("GetFindingByID", "F1").Return(finding, nil)
	f.fixDao.On("GetFixRecommendationByID", "R9").Return(nil, apperrors.ErrNotFound)
	f.expectContextAssembly(t)
	f.generator.On("Complete", mock.Anything, mock.Anything).Return("regenerated text", nil)
	f.fixDao.On("SaveFixRecommendation", mock.AnythingOfType("*models.FixRecommendation")).Return(nil)
	f.findingDao.On("SetFixRecommendation", "F1", mock.AnythingOfType("string")).Return(true, nil)

	text, err := f.service.GetOrGenerate(context.Background(), "F1")

	assert.NoError(t, err)
	assert.Equal(t, "regenerated text", text)
}

func TestGetOrGenerateFindingNotFound(t *testing.T) {
	f := newFixServiceFixture(true)

	f.findingDao.On("GetFindingByID", "missing").Return(nil, apperrors.ErrFindingNotFound)

	_, err := f.service.GetOrGenerate(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrFindingNotFound)
	f.generator.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestGetOrGenerateSecondCallHitsCache(t *testing.T) {
	// First call generates, second call must serve storage without touching
	// the generator again.
	f := newFixServiceFixture(true)

	finding := uncachedFinding()
	f.findingDao.On("GetFindingByID", "F1").Return(finding, nil).Once()
	f.expectContextAssembly(t)
	f.generator.On("Complete", mock.Anything, mock.Anything).Return("generated once", nil)
	f.fixDao.On("SaveFixRecommendation", mock.AnythingOfType("*models.FixRecommendation")).Return(nil)

	var recID string
	f.findingDao.On("SetFixRecommendation", "F1", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { recID = args.String(1) }).
		Return(true, nil)

	first, err := f.service.GetOrGenerate(context.Background(), "F1")
	assert.NoError(t, err)
	assert.Equal(t, "generated once", first)

	cached := *finding
	cached.FixRecommendationID = recID
	f.findingDao.On("GetFindingByID", "F1").Return(&cached, nil).Once()
	f.fixDao.On("GetFixRecommendationByID", recID).Return(&models.FixRecommendation{
		FixRecommendationID: recID,
		FindingID:           "F1",
		AIFix:               "generated once",
	}, nil)

	second, err := f.service.GetOrGenerate(context.Background(), "F1")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	f.generator.AssertNumberOfCalls(t, "Complete", 1)
}
