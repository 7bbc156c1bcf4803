package handlers

import (
	"errors"

	apperrors "scanvault/pkg/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps the core error taxonomy onto HTTP statuses: missing
// records are 404, bad tags and payloads 400, generator failures 502,
// everything else 500.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var generationErr *apperrors.GenerationError

	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrTargetNotFound),
		errors.Is(err, apperrors.ErrFindingNotFound),
		errors.Is(err, apperrors.ErrScannerNotFound):
		c.JSON(404, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(400, gin.H{"error": validationErr.Error()})
	case errors.As(err, &generationErr):
		c.JSON(502, gin.H{"error": "Failed to generate recommendation"})
	case errors.Is(err, apperrors.ErrGeneratorDisabled):
		c.JSON(503, gin.H{"error": "Recommendation generator is not configured"})
	default:
		c.JSON(500, gin.H{"error": "Internal server error"})
	}
}
