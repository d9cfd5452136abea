package handler

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/extractor"
)

// ConfidenceBreakdown reports each pipeline stage's confidence alongside
// the combined score.
type ConfidenceBreakdown struct {
	OCR        float64 `json:"ocr"`
	Extraction float64 `json:"extraction"`
	Overall    float64 `json:"overall"`
}

// ScanResponse is the success envelope for all scan endpoints.
type ScanResponse struct {
	Data       any                 `json:"data"`
	Confidence ConfidenceBreakdown `json:"confidence"`
}

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondScan sends a 200 response with the scanned entity and its
// confidence breakdown.
func RespondScan(c *gin.Context, result *domain.ScanResult) {
	c.JSON(http.StatusOK, ScanResponse{
		Data: result.Data,
		Confidence: ConfidenceBreakdown{
			OCR:        result.OCRConfidence,
			Extraction: result.ExtractionConfidence,
			Overall:    result.OverallConfidence,
		},
	})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// HandleError translates pipeline errors to HTTP status codes. Upstream
// provider failures surface as 502 so callers can distinguish them from
// bad requests and server bugs.
func HandleError(c *gin.Context, err error) {
	status := mapError(err)
	if status >= http.StatusInternalServerError {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] scan error: %v", requestID, err)
	}
	RespondError(c, status, err.Error())
}

func mapError(err error) int {
	var rateLimited *extractor.RateLimitError
	var provider *extractor.ProviderError
	var invalidJSON *extractor.InvalidJSONError
	var transport *url.Error

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnsupportedScanType),
		errors.Is(err, domain.ErrUnsupportedContent),
		errors.Is(err, domain.ErrEmptyDocument):
		return http.StatusBadRequest
	case errors.As(err, &rateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &provider), errors.As(err, &invalidJSON), errors.As(err, &transport):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrConfiguration):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
