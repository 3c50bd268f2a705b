package router

import (
	"investor-commitments/internal/config"
	"investor-commitments/internal/handler"
	"investor-commitments/internal/middleware"
	"investor-commitments/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	svc := service.NewInvestorService(db)

	// ====== API ======
	api := r.Group("/api")

	investorHandler := handler.NewInvestorHandler(svc)
	api.GET("/investors", investorHandler.ListInvestors)
	api.GET("/investors/:id/commitments", investorHandler.ListCommitments)

	assetClassHandler := handler.NewAssetClassHandler(svc)
	api.GET("/asset-classes", assetClassHandler.ListAssetClasses)

	exportHandler := handler.NewExportHandler(svc)
	api.GET("/export/investors/csv", exportHandler.ExportCSV)
	api.GET("/export/investors/xlsx", exportHandler.ExportXLSX)

	return r
}
