package services

import (
	"encoding/json"
	"fmt"
	"time"

	"scanvault/internal/dao"
	"scanvault/internal/models"
	"scanvault/internal/notification"
	"scanvault/internal/registry"
	apperrors "scanvault/pkg/errors"
	"scanvault/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IngestServiceMethods accepts a normalized finding plus the raw scanner
// detail payload and stores both, validating the tag scheme on the way in.
type IngestServiceMethods interface {
	IngestFinding(req *IngestRequest) (*models.Finding, error)
}

type IngestRequest struct {
	ProjectID     string
	TargetID      string
	ScannerTypeID string
	Title         string
	Severity      string
	DetailsName   string
	Detail        json.RawMessage
}

type ingestService struct {
	findingDao dao.FindingDAO
	scannerDao dao.ScannerTypeDAO
	detailDao  dao.DetailDAO
	resolver   TargetResolverMethods
	notifier   notification.Notifier
	log        *logger.Logger
}

func NewIngestService(findingDao dao.FindingDAO, scannerDao dao.ScannerTypeDAO, detailDao dao.DetailDAO, resolver TargetResolverMethods, notifier notification.Notifier) IngestServiceMethods {
	return &ingestService{
		findingDao: findingDao,
		scannerDao: scannerDao,
		detailDao:  detailDao,
		resolver:   resolver,
		notifier:   notifier,
		log:        logger.NewLogger(logrus.InfoLevel),
	}
}

func (s *ingestService) IngestFinding(req *IngestRequest) (*models.Finding, error) {
	scanner, err := s.scannerDao.GetScannerTypeByID(req.ScannerTypeID)
	if err != nil {
		return nil, err
	}

	targetKind, err := registry.ParseScanTargetType(scanner.ScanTargetType)
	if err != nil {
		return nil, err
	}

	detailKind, err := registry.ParseDetailKind(req.DetailsName)
	if err != nil {
		return nil, err
	}

	// A detail tag only makes sense for findings produced by a scanner of the
	// matching target type; rejecting the mismatch here keeps the cascade and
	// the recommendation context assembly from ever seeing incoherent pairs.
	desc, err := registry.ResolveDetailKind(detailKind)
	if err != nil {
		return nil, err
	}
	if desc.Target != targetKind {
		return nil, apperrors.NewValidationError("extended_finding_details_name", req.DetailsName,
			fmt.Sprintf("detail kind belongs to %s scanners, scanner %q targets %s", desc.Target, scanner.Name, targetKind))
	}

	if _, err := s.resolver.ResolveTarget(targetKind, req.TargetID); err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	detailID := uuid.New().String()
	detail, err := buildDetailModel(detailKind, detailID, req.Detail, now)
	if err != nil {
		return nil, err
	}
	if err := s.detailDao.SaveDetail(detail); err != nil {
		return nil, err
	}

	finding := &models.Finding{
		FindingID:                  uuid.New().String(),
		ProjectID:                  req.ProjectID,
		TargetID:                   req.TargetID,
		ScannerTypeID:              req.ScannerTypeID,
		ExtendedFindingDetailsName: string(detailKind),
		ExtendedFindingDetailsID:   detailID,
		Title:                      req.Title,
		Severity:                   req.Severity,
		Status:                     models.FindingStatusOpen,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if err := s.findingDao.SaveFinding(finding); err != nil {
		return nil, err
	}

	s.log.WithFields(logger.Fields{
		"finding_id":   finding.FindingID,
		"target_id":    finding.TargetID,
		"details_name": finding.ExtendedFindingDetailsName,
		"severity":     finding.Severity,
	}).Info("Finding ingested")

	s.notifyIngested(finding, scanner)
	return finding, nil
}

func (s *ingestService) notifyIngested(finding *models.Finding, scanner *models.ScannerType) {
	if s.notifier == nil {
		return
	}
	if finding.Severity != models.SeverityCritical && finding.Severity != models.SeverityHigh {
		return
	}
	msg := notification.Message{
		Title:       "New " + finding.Severity + " finding",
		Description: finding.Title,
		Severity:    finding.Severity,
		Fields: map[string]string{
			"scanner":   scanner.Name,
			"target_id": finding.TargetID,
		},
	}
	go func() {
		if err := s.notifier.Send(msg); err != nil {
			s.log.WithError(err).Warn("Failed to send ingest notification")
		}
	}()
}

// buildDetailModel decodes the raw payload into the concrete detail model for
// the tag. The switch is exhaustive over the registry's closed detail set.
func buildDetailModel(kind registry.DetailKind, id string, raw json.RawMessage, now int64) (interface{}, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	decode := func(dst interface{}) error {
		if err := json.Unmarshal(raw, dst); err != nil {
			return apperrors.NewValidationError("detail", string(raw), "malformed detail payload")
		}
		return nil
	}

	switch kind {
	case registry.DetailDomainZap:
		var d models.ZapDetail
		if err := decode(&d); err != nil {
			return nil, err
		}
		d.ZapDetailID = id
		d.CreatedAt = now
		return &d, nil
	case registry.DetailDomainWapiti:
		var d models.WapitiDetail
		if err := decode(&d); err != nil {
			return nil, err
		}
		d.WapitiDetailID = id
		d.CreatedAt = now
		return &d, nil
	case registry.DetailRepositoryTrivy:
		var d models.TrivyDetail
		if err := decode(&d); err != nil {
			return nil, err
		}
		d.TrivyDetailID = id
		d.CreatedAt = now
		return &d, nil
	case registry.DetailRepositorySecret:
		var d models.SecretDetail
		if err := decode(&d); err != nil {
			return nil, err
		}
		d.SecretDetailID = id
		d.CreatedAt = now
		return &d, nil
	case registry.DetailContractSlither:
		var d models.SlitherDetail
		if err := decode(&d); err != nil {
			return nil, err
		}
		d.SlitherDetailID = id
		d.CreatedAt = now
		return &d, nil
	case registry.DetailCloudAzure:
		var d models.CloudAzureDetail
		if err := decode(&d); err != nil {
			return nil, err
		}
		d.CloudAzureDetailID = id
		d.CreatedAt = now
		return &d, nil
	case registry.DetailCloudGoogle:
		var d models.CloudGoogleDetail
		if err := decode(&d); err != nil {
			return nil, err
		}
		d.CloudGoogleDetailID = id
		d.CreatedAt = now
		return &d, nil
	default:
		return nil, apperrors.NewValidationError("extended_finding_details_name", string(kind), "unknown detail kind")
	}
}
