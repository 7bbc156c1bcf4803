package handlers

import (
	"strings"

	"scanvault/internal/models"
	"scanvault/internal/registry"
	"scanvault/internal/services"
	"scanvault/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TargetHandler struct {
	targetService  services.TargetServiceMethods
	cascadeService services.CascadeServiceMethods
	logger         *logger.Logger
}

func NewTargetHandler(targetService services.TargetServiceMethods, cascadeService services.CascadeServiceMethods) *TargetHandler {
	return &TargetHandler{
		targetService:  targetService,
		cascadeService: cascadeService,
		logger:         logger.NewLogger(logrus.InfoLevel),
	}
}

func parseKindParam(c *gin.Context) (registry.ScanTargetType, bool) {
	kind, err := registry.ParseScanTargetType(strings.ToUpper(c.Param("kind")))
	if err != nil {
		c.JSON(400, gin.H{"error": "Unknown target kind"})
		return "", false
	}
	return kind, true
}

func (h *TargetHandler) AddDomain(c *gin.Context) {
	var req AddDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind JSON")
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	id, err := h.targetService.AddDomain(&models.Domain{
		ProjectID:  req.ProjectID,
		DomainName: req.DomainName,
		Scheme:     req.Scheme,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to add domain")
		respondError(c, err)
		return
	}
	c.JSON(201, AddTargetResponse{TargetID: id})
}

func (h *TargetHandler) AddRepository(c *gin.Context) {
	var req AddRepositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind JSON")
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	id, err := h.targetService.AddRepository(&models.Repository{
		ProjectID: req.ProjectID,
		RepoURL:   req.RepoURL,
		Branch:    req.Branch,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to add repository")
		respondError(c, err)
		return
	}
	c.JSON(201, AddTargetResponse{TargetID: id})
}

func (h *TargetHandler) AddContract(c *gin.Context) {
	var req AddContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind JSON")
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	id, err := h.targetService.AddContract(&models.Contract{
		ProjectID:       req.ProjectID,
		ContractAddress: req.ContractAddress,
		Network:         req.Network,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to add contract")
		respondError(c, err)
		return
	}
	c.JSON(201, AddTargetResponse{TargetID: id})
}

func (h *TargetHandler) AddCloudAccount(c *gin.Context) {
	var req AddCloudAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind JSON")
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	id, err := h.targetService.AddCloudAccount(&models.CloudAccount{
		ProjectID:         req.ProjectID,
		Provider:          req.Provider,
		AccountIdentifier: req.AccountIdentifier,
		Region:            req.Region,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to add cloud account")
		respondError(c, err)
		return
	}
	c.JSON(201, AddTargetResponse{TargetID: id})
}

func (h *TargetHandler) GetTarget(c *gin.Context) {
	kind, ok := parseKindParam(c)
	if !ok {
		return
	}

	target, err := h.targetService.GetTarget(kind, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, target)
}

// DeleteTarget soft-deletes the target and cascades to its findings and
// their detail records.
func (h *TargetHandler) DeleteTarget(c *gin.Context) {
	kind, ok := parseKindParam(c)
	if !ok {
		return
	}

	targetID := c.Param("id")
	h.logger.WithTarget(string(kind), targetID).Info("Deleting target")

	result, err := h.cascadeService.DeleteTarget(kind, targetID)
	if err != nil {
		h.logger.WithTarget(string(kind), targetID).WithError(err).Error("Failed to delete target")
		respondError(c, err)
		return
	}
	c.JSON(200, result)
}
