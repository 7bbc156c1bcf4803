package routes

import (
	"scanvault/internal/handlers"

	"github.com/gin-gonic/gin"
)

func InitFindingRoutes(router *gin.RouterGroup, findingHandler *handlers.FindingHandler) {
	findingRoutes := router.Group("/findings")
	{
		findingRoutes.POST("", findingHandler.IngestFinding)
		findingRoutes.GET("/:id", findingHandler.GetFinding)
		findingRoutes.PUT("/:id/status", findingHandler.UpdateFindingStatus)
		findingRoutes.GET("/:id/fix-recommendation", findingHandler.GetFixRecommendation)
	}
}
