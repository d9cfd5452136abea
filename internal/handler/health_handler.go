package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is the service version reported by the health endpoint.
const Version = "1.0.0"

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	environment       string
	extractorProvider string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(environment, extractorProvider string) *HealthHandler {
	return &HealthHandler{environment: environment, extractorProvider: extractorProvider}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"version":     Version,
		"environment": h.environment,
		"extractor":   h.extractorProvider,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
