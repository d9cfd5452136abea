package router

import (
	"github.com/gin-gonic/gin"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/handler"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(scanH *handler.ScanHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	r.GET("/health", healthH.Health)

	r.POST("/check", scanH.Check)
	r.POST("/receipt", scanH.Receipt)
	r.POST("/process", scanH.Process)

	return r
}
