package services

import (
	"scanvault/internal/dao"
	"scanvault/internal/models"
	"scanvault/internal/registry"
	"scanvault/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TargetResolverMethods resolves a bare target id into a concrete target
// record using the registry's scan-target-type tag. Read only.
type TargetResolverMethods interface {
	ResolveTarget(kind registry.ScanTargetType, targetID string) (models.Target, error)
	ResolveTargetAnyState(kind registry.ScanTargetType, targetID string) (models.Target, error)
}

type targetResolver struct {
	targetDao dao.TargetDAO
	log       *logger.Logger
}

func NewTargetResolver(targetDao dao.TargetDAO) TargetResolverMethods {
	return &targetResolver{
		targetDao: targetDao,
		log:       logger.NewLogger(logrus.InfoLevel),
	}
}

// ResolveTarget excludes soft-deleted records; callers that need them must
// use ResolveTargetAnyState explicitly.
func (r *targetResolver) ResolveTarget(kind registry.ScanTargetType, targetID string) (models.Target, error) {
	return r.targetDao.GetTarget(kind, targetID)
}

func (r *targetResolver) ResolveTargetAnyState(kind registry.ScanTargetType, targetID string) (models.Target, error) {
	return r.targetDao.GetTargetAnyState(kind, targetID)
}
