package services

import (
	"context"
	"os"
	"sync"
	"time"

	"scanvault/internal/dao"
	"scanvault/internal/models"
	"scanvault/internal/registry"
	"scanvault/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ScannerSeedFile is the YAML shape of the scanner integration definitions.
type ScannerSeedFile struct {
	Scanners []ScannerSeedEntry `yaml:"scanners"`
}

type ScannerSeedEntry struct {
	Name           string `yaml:"name"`
	ScanTargetType string `yaml:"scan_target_type"`
	Description    string `yaml:"description"`
}

type ScannerSeedServiceMethods interface {
	Sync() error
	Watch(ctx context.Context)
}

type scannerSeedService struct {
	scannerDao dao.ScannerTypeDAO
	path       string
	log        *logger.Logger
}

func NewScannerSeedService(scannerDao dao.ScannerTypeDAO, path string) ScannerSeedServiceMethods {
	return &scannerSeedService{
		scannerDao: scannerDao,
		path:       path,
		log:        logger.NewLogger(logrus.InfoLevel),
	}
}

// Sync reads the seed file and upserts every valid entry. Entries with an
// unknown scan_target_type are skipped with a log line so one bad entry does
// not block the rest.
func (s *scannerSeedService) Sync() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var seed ScannerSeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return err
	}

	synced := 0
	for _, entry := range seed.Scanners {
		if _, err := registry.ParseScanTargetType(entry.ScanTargetType); err != nil {
			s.log.WithFields(logger.Fields{
				"scanner":          entry.Name,
				"scan_target_type": entry.ScanTargetType,
			}).Warn("Skipping scanner with unknown scan target type")
			continue
		}

		scanner := &models.ScannerType{
			ScannerTypeID:  uuid.New().String(),
			Name:           entry.Name,
			ScanTargetType: entry.ScanTargetType,
			Description:    entry.Description,
			CreatedAt:      time.Now().Unix(),
		}
		if err := s.scannerDao.UpsertScannerType(scanner); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{"scanner": entry.Name}).Error("Failed to upsert scanner type")
			continue
		}
		synced++
	}

	s.log.WithFields(logger.Fields{"file": s.path, "synced": synced}).Info("Scanner types synced")
	return nil
}

// Watch re-syncs scanner definitions when the seed file changes. Writes are
// throttled so editors that fire bursts of events trigger one sync.
func (s *scannerSeedService) Watch(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.log.WithError(err).Error("Failed to create seed file watcher")
		return
	}
	defer watcher.Close()

	if err := watcher.Add(s.path); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"file": s.path}).Error("Failed to watch seed file")
		return
	}

	var mu sync.Mutex
	syncPending := false

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				mu.Lock()
				syncPending = true
				mu.Unlock()
			}

		case <-ticker.C:
			mu.Lock()
			if syncPending {
				if err := s.Sync(); err != nil {
					s.log.WithError(err).Error("Seed re-sync failed")
				}
				syncPending = false
			}
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.WithError(err).Error("Seed file watcher error")

		case <-ctx.Done():
			s.log.Info("Stopping seed file watcher")
			return
		}
	}
}
