package handlers

import (
	"scanvault/internal/services"
	"scanvault/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type FindingHandler struct {
	findingService services.FindingServiceMethods
	ingestService  services.IngestServiceMethods
	fixService     services.FixRecommendationServiceMethods
	logger         *logger.Logger
}

func NewFindingHandler(findingService services.FindingServiceMethods, ingestService services.IngestServiceMethods, fixService services.FixRecommendationServiceMethods) *FindingHandler {
	return &FindingHandler{
		findingService: findingService,
		ingestService:  ingestService,
		fixService:     fixService,
		logger:         logger.NewLogger(logrus.InfoLevel),
	}
}

func (h *FindingHandler) IngestFinding(c *gin.Context) {
	var req IngestFindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind JSON")
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	finding, err := h.ingestService.IngestFinding(&services.IngestRequest{
		ProjectID:     req.ProjectID,
		TargetID:      req.TargetID,
		ScannerTypeID: req.ScannerTypeID,
		Title:         req.Title,
		Severity:      req.Severity,
		DetailsName:   req.DetailsName,
		Detail:        req.Detail,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to ingest finding")
		respondError(c, err)
		return
	}
	c.JSON(201, finding)
}

func (h *FindingHandler) GetFinding(c *gin.Context) {
	finding, err := h.findingService.GetFinding(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, finding)
}

func (h *FindingHandler) ListFindingsByTarget(c *gin.Context) {
	findings, err := h.findingService.ListFindingsByTarget(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, findings)
}

func (h *FindingHandler) UpdateFindingStatus(c *gin.Context) {
	var req UpdateFindingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.findingService.UpdateFindingStatus(c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(204)
}

// GetFixRecommendation serves the cached AI remediation for a finding,
// generating it on first request.
func (h *FindingHandler) GetFixRecommendation(c *gin.Context) {
	findingID := c.Param("id")

	text, err := h.fixService.GetOrGenerate(c.Request.Context(), findingID)
	if err != nil {
		h.logger.WithFinding(findingID).WithError(err).Error("Failed to get fix recommendation")
		respondError(c, err)
		return
	}
	c.JSON(200, FixRecommendationResponse{FindingID: findingID, AIFix: text})
}
