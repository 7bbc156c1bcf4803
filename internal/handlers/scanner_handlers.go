package handlers

import (
	"scanvault/internal/dao"
	"scanvault/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ScannerHandler struct {
	scannerDao dao.ScannerTypeDAO
	logger     *logger.Logger
}

func NewScannerHandler(scannerDao dao.ScannerTypeDAO) *ScannerHandler {
	return &ScannerHandler{scannerDao: scannerDao, logger: logger.NewLogger(logrus.InfoLevel)}
}

func (h *ScannerHandler) ListScannerTypes(c *gin.Context) {
	scanners, err := h.scannerDao.ListScannerTypes()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list scanner types")
		respondError(c, err)
		return
	}
	c.JSON(200, scanners)
}

func (h *ScannerHandler) GetScannerType(c *gin.Context) {
	scanner, err := h.scannerDao.GetScannerTypeByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, scanner)
}
