package routes

import (
	"scanvault/internal/handlers"

	"github.com/gin-gonic/gin"
)

func InitTargetRoutes(router *gin.RouterGroup, targetHandler *handlers.TargetHandler, findingHandler *handlers.FindingHandler) {
	// Creation stays per-kind; resolution and deletion go through the
	// kind-tagged routes so the registry decides which table to hit.
	router.POST("/domains", targetHandler.AddDomain)
	router.POST("/repositories", targetHandler.AddRepository)
	router.POST("/contracts", targetHandler.AddContract)
	router.POST("/cloud-accounts", targetHandler.AddCloudAccount)

	targetRoutes := router.Group("/targets")
	{
		targetRoutes.GET("/:kind/:id", targetHandler.GetTarget)
		targetRoutes.DELETE("/:kind/:id", targetHandler.DeleteTarget)
		targetRoutes.GET("/:kind/:id/findings", findingHandler.ListFindingsByTarget)
	}
}
