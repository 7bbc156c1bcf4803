package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scanvault/internal/dao"
	"scanvault/internal/models"
	"scanvault/internal/recommend"
	"scanvault/internal/registry"
	apperrors "scanvault/pkg/errors"
	"scanvault/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FixRecommendationServiceMethods serves cached AI fix recommendations,
// generating and persisting one on first request.
type FixRecommendationServiceMethods interface {
	GetOrGenerate(ctx context.Context, findingID string) (string, error)
}

type fixRecommendationService struct {
	findingDao dao.FindingDAO
	scannerDao dao.ScannerTypeDAO
	detailDao  dao.DetailDAO
	fixDao     dao.FixRecommendationDAO
	resolver   TargetResolverMethods
	generator  recommend.Generator
	modelName  string
	log        *logger.Logger
}

func NewFixRecommendationService(
	findingDao dao.FindingDAO,
	scannerDao dao.ScannerTypeDAO,
	detailDao dao.DetailDAO,
	fixDao dao.FixRecommendationDAO,
	resolver TargetResolverMethods,
	generator recommend.Generator,
	modelName string,
) FixRecommendationServiceMethods {
	return &fixRecommendationService{
		findingDao: findingDao,
		scannerDao: scannerDao,
		detailDao:  detailDao,
		fixDao:     fixDao,
		resolver:   resolver,
		generator:  generator,
		modelName:  modelName,
		log:        logger.NewLogger(logrus.InfoLevel),
	}
}

// GetOrGenerate returns the cached recommendation when one exists; otherwise
// it reassembles the finding's full polymorphic context, calls the generator
// once, and persists the result with a set-if-absent write. Two concurrent
// callers may both pay for a generation, but exactly one result is kept.
func (s *fixRecommendationService) GetOrGenerate(ctx context.Context, findingID string) (string, error) {
	finding, err := s.findingDao.GetFindingByID(findingID)
	if err != nil {
		return "", err
	}

	if finding.FixRecommendationID != "" {
		rec, err := s.fixDao.GetFixRecommendationByID(finding.FixRecommendationID)
		if err == nil && rec.AIFix != "" {
			return rec.AIFix, nil
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return "", err
		}
		// Reference points at a missing or empty row: fall through and
		// regenerate rather than serving nothing.
		s.log.WithFinding(findingID).Warn("Cached recommendation reference is dangling, regenerating")
	}

	if s.generator == nil {
		return "", apperrors.ErrGeneratorDisabled
	}

	prompt, err := s.buildPrompt(finding)
	if err != nil {
		return "", err
	}

	text, err := s.generator.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	s.persist(finding, text)
	return text, nil
}

// buildPrompt reassembles the finding, its scanner type, its target and its
// raw detail record into one textual prompt.
func (s *fixRecommendationService) buildPrompt(finding *models.Finding) (string, error) {
	scanner, err := s.scannerDao.GetScannerTypeByID(finding.ScannerTypeID)
	if err != nil {
		return "", err
	}

	targetKind, err := registry.ParseScanTargetType(scanner.ScanTargetType)
	if err != nil {
		return "", err
	}

	target, err := s.resolver.ResolveTarget(targetKind, finding.TargetID)
	if err != nil {
		return "", err
	}

	detailKind, err := registry.ParseDetailKind(finding.ExtendedFindingDetailsName)
	if err != nil {
		return "", err
	}
	desc, err := registry.ResolveDetailKind(detailKind)
	if err != nil {
		return "", err
	}
	detail, err := s.detailDao.GetDetail(desc, finding.ExtendedFindingDetailsID)
	if err != nil {
		return "", err
	}

	findingJSON, _ := json.Marshal(finding)
	scannerJSON, _ := json.Marshal(scanner)
	targetJSON, _ := json.Marshal(target)
	detailJSON, _ := json.Marshal(detail)

	return fmt.Sprintf(
		"You are a security engineer. Propose a concrete remediation for the "+
			"following finding. Be specific to the affected asset.\n\n"+
			"Finding:\n%s\n\nScanner:\n%s\n\nTarget:\n%s\n\nScanner detail:\n%s\n",
		findingJSON, scannerJSON, targetJSON, detailJSON), nil
}

// persist stores the generated text and attaches it to the finding only if no
// recommendation got there first. Persistence failures are logged, not
// surfaced: the caller already has its text and the next request regenerates.
func (s *fixRecommendationService) persist(finding *models.Finding, text string) {
	rec := &models.FixRecommendation{
		FixRecommendationID: uuid.New().String(),
		FindingID:           finding.FindingID,
		AIFix:               text,
		Model:               s.modelName,
		CreatedAt:           time.Now().Unix(),
	}
	if err := s.fixDao.SaveFixRecommendation(rec); err != nil {
		s.log.WithFinding(finding.FindingID).WithError(err).Error("Failed to persist recommendation")
		return
	}

	won, err := s.findingDao.SetFixRecommendation(finding.FindingID, rec.FixRecommendationID)
	if err != nil {
		s.log.WithFinding(finding.FindingID).WithError(err).Error("Failed to attach recommendation to finding")
		return
	}
	if !won {
		// A concurrent caller attached its result first; discard ours.
		s.log.WithFinding(finding.FindingID).Info("Lost recommendation race, discarding duplicate")
		if err := s.fixDao.DeleteFixRecommendation(rec.FixRecommendationID); err != nil {
			s.log.WithFinding(finding.FindingID).WithError(err).Warn("Failed to discard duplicate recommendation")
		}
	}
}
