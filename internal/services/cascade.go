package services

import (
	"fmt"

	"scanvault/internal/dao"
	"scanvault/internal/notification"
	"scanvault/internal/registry"
	"scanvault/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CascadeServiceMethods propagates a target deletion to every finding
// referencing it and every scanner detail row those findings reference.
type CascadeServiceMethods interface {
	DeleteTarget(kind registry.ScanTargetType, targetID string) (*CascadeResult, error)
}

// CascadeResult summarizes one sweep. DetailsMissing counts dependents whose
// detail row was already gone; that is tolerated data drift, not a failure.
type CascadeResult struct {
	TargetID        string `json:"target_id"`
	FindingsDeleted int    `json:"findings_deleted"`
	DetailsDeleted  int    `json:"details_deleted"`
	DetailsMissing  int    `json:"details_missing"`
}

type cascadeService struct {
	targetDao  dao.TargetDAO
	findingDao dao.FindingDAO
	detailDao  dao.DetailDAO
	notifier   notification.Notifier
	log        *logger.Logger
}

func NewCascadeService(targetDao dao.TargetDAO, findingDao dao.FindingDAO, detailDao dao.DetailDAO, notifier notification.Notifier) CascadeServiceMethods {
	return &cascadeService{
		targetDao:  targetDao,
		findingDao: findingDao,
		detailDao:  detailDao,
		notifier:   notifier,
		log:        logger.NewLogger(logrus.InfoLevel),
	}
}

// DeleteTarget runs the idempotent sweep: mark the target deleted, then every
// finding referencing it, then each finding's detail row. Every step is
// individually idempotent, so re-running the sweep after a partial failure
// converges to the fully-deleted state. The underlying store gives no
// cross-table transaction, so there is deliberately no rollback.
func (s *cascadeService) DeleteTarget(kind registry.ScanTargetType, targetID string) (*CascadeResult, error) {
	if err := s.targetDao.MarkTargetDeleted(kind, targetID); err != nil {
		return nil, err
	}
	s.log.WithTarget(string(kind), targetID).Info("Target marked deleted, sweeping dependents")

	// The target is committed deleted before dependents are queried, so a
	// finding cannot be re-created against a target that still looks alive
	// mid-sweep. Already-deleted findings are re-processed on purpose.
	findings, err := s.findingDao.ListFindingsByTarget(targetID, true)
	if err != nil {
		return nil, err
	}

	result := &CascadeResult{TargetID: targetID}
	for _, finding := range findings {
		s.deleteDetail(finding.ExtendedFindingDetailsName, finding.ExtendedFindingDetailsID, result)

		if err := s.findingDao.MarkFindingDeleted(finding.FindingID); err != nil {
			s.log.WithFinding(finding.FindingID).WithError(err).Error("Failed to mark finding deleted, skipping")
			continue
		}
		result.FindingsDeleted++
	}

	s.log.WithFields(logger.Fields{
		"target_id":        targetID,
		"findings_deleted": result.FindingsDeleted,
		"details_deleted":  result.DetailsDeleted,
		"details_missing":  result.DetailsMissing,
	}).Info("Cascade completed")

	s.notifyDeleted(kind, result)
	return result, nil
}

// deleteDetail soft-deletes one finding's detail row. Every failure here is
// recovered locally: drifted tags and missing rows must not block the sweep.
func (s *cascadeService) deleteDetail(detailsName, detailsID string, result *CascadeResult) {
	detailKind, err := registry.ParseDetailKind(detailsName)
	if err != nil {
		s.log.WithFields(logger.Fields{
			"details_name": detailsName,
			"details_id":   detailsID,
		}).WithError(err).Warn("Finding carries unknown detail tag, skipping detail tier")
		result.DetailsMissing++
		return
	}

	desc, err := registry.ResolveDetailKind(detailKind)
	if err != nil {
		result.DetailsMissing++
		return
	}

	deleted, err := s.detailDao.MarkDetailDeleted(desc, detailsID)
	if err != nil {
		s.log.WithFields(logger.Fields{
			"details_name": detailsName,
			"details_id":   detailsID,
		}).WithError(err).Error("Failed to mark detail deleted, skipping")
		result.DetailsMissing++
		return
	}
	if !deleted {
		s.log.WithFields(logger.Fields{
			"details_name": detailsName,
			"details_id":   detailsID,
		}).Warn("Detail record already removed")
		result.DetailsMissing++
		return
	}
	result.DetailsDeleted++
}

func (s *cascadeService) notifyDeleted(kind registry.ScanTargetType, result *CascadeResult) {
	if s.notifier == nil {
		return
	}
	msg := notification.Message{
		Title:       "Target deleted",
		Description: fmt.Sprintf("Target %s (%s) and its findings were removed", result.TargetID, kind),
		Severity:    "info",
		Fields: map[string]string{
			"findings_deleted": fmt.Sprintf("%d", result.FindingsDeleted),
			"details_deleted":  fmt.Sprintf("%d", result.DetailsDeleted),
		},
	}
	go func() {
		if err := s.notifier.Send(msg); err != nil {
			s.log.WithError(err).Warn("Failed to send deletion notification")
		}
	}()
}
