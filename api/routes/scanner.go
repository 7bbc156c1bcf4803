package routes

import (
	"scanvault/internal/handlers"

	"github.com/gin-gonic/gin"
)

func InitScannerRoutes(router *gin.RouterGroup, scannerHandler *handlers.ScannerHandler) {
	scannerRoutes := router.Group("/scanner-types")
	{
		scannerRoutes.GET("", scannerHandler.ListScannerTypes)
		scannerRoutes.GET("/:id", scannerHandler.GetScannerType)
	}
}
