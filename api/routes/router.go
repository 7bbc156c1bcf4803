package routes

import (
	"scanvault/internal/dao"
	"scanvault/internal/handlers"
	"scanvault/internal/notification"
	"scanvault/internal/recommend"
	"scanvault/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InitRouter wires DAOs, services and handlers. The generator and notifier
// may be nil when the corresponding integration is not configured.
func InitRouter(db *gorm.DB, generator recommend.Generator, notifier notification.Notifier, generatorModel string) *gin.Engine {
	router := gin.Default()

	targetDao := dao.NewTargetDAO(db)
	findingDao := dao.NewFindingDAO(db)
	detailDao := dao.NewDetailDAO(db)
	scannerDao := dao.NewScannerTypeDAO(db)
	fixDao := dao.NewFixRecommendationDAO(db)

	resolver := services.NewTargetResolver(targetDao)
	targetService := services.NewTargetService(targetDao)
	findingService := services.NewFindingService(findingDao)
	cascadeService := services.NewCascadeService(targetDao, findingDao, detailDao, notifier)
	ingestService := services.NewIngestService(findingDao, scannerDao, detailDao, resolver, notifier)
	fixService := services.NewFixRecommendationService(findingDao, scannerDao, detailDao, fixDao, resolver, generator, generatorModel)

	targetHandler := handlers.NewTargetHandler(targetService, cascadeService)
	findingHandler := handlers.NewFindingHandler(findingService, ingestService, fixService)
	scannerHandler := handlers.NewScannerHandler(scannerDao)

	api := router.Group("/api")
	{
		InitTargetRoutes(api, targetHandler, findingHandler)
		InitFindingRoutes(api, findingHandler)
		InitScannerRoutes(api, scannerHandler)
	}

	return router
}
