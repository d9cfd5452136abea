package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/scanner"
)

// ScanHandler handles the document scan endpoints. Requests carry raw
// image bytes; nothing is persisted beyond the request.
type ScanHandler struct {
	checkScanner   *scanner.Scanner
	receiptScanner *scanner.Scanner
	maxBodyBytes   int64
}

// NewScanHandler creates a ScanHandler. maxBodyMB of zero or less defaults
// to 10 MB.
func NewScanHandler(check, receipt *scanner.Scanner, maxBodyMB int64) *ScanHandler {
	if maxBodyMB <= 0 {
		maxBodyMB = 10
	}
	return &ScanHandler{
		checkScanner:   check,
		receiptScanner: receipt,
		maxBodyBytes:   maxBodyMB << 20,
	}
}

// Check handles POST /check
func (h *ScanHandler) Check(c *gin.Context) {
	h.scan(c, h.checkScanner, false)
}

// Receipt handles POST /receipt
func (h *ScanHandler) Receipt(c *gin.Context) {
	h.scan(c, h.receiptScanner, false)
}

// Process handles POST /process?type=check|receipt. Unlike the dedicated
// endpoints it also accepts PDFs.
func (h *ScanHandler) Process(c *gin.Context) {
	var s *scanner.Scanner
	switch domain.ScanType(c.Query("type")) {
	case domain.ScanTypeCheck:
		s = h.checkScanner
	case domain.ScanTypeReceipt:
		s = h.receiptScanner
	default:
		HandleError(c, fmt.Errorf("%w: %q", domain.ErrUnsupportedScanType, c.Query("type")))
		return
	}
	h.scan(c, s, true)
}

func (h *ScanHandler) scan(c *gin.Context, s *scanner.Scanner, allowPDF bool) {
	doc, err := h.readDocument(c, allowPDF)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := s.ProcessDocument(c.Request.Context(), doc)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondScan(c, result)
}

func (h *ScanHandler) readDocument(c *gin.Context, allowPDF bool) (domain.Document, error) {
	contentType := c.ContentType()
	format := domain.DocumentFormatImage
	switch {
	case domain.AllowedImageContentTypes[contentType] || strings.HasPrefix(contentType, "image/"):
		// any image subtype is handed straight to the OCR provider
	case allowPDF && contentType == "application/pdf":
		format = domain.DocumentFormatPDF
	default:
		return domain.Document{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedContent, contentType)
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: reading body: %v", domain.ErrValidation, err)
	}
	if len(body) == 0 {
		return domain.Document{}, domain.ErrEmptyDocument
	}

	name := c.GetHeader("X-Document-Name")
	if name == "" {
		name = "upload"
	}
	return domain.Document{
		Content:     body,
		Format:      format,
		ContentType: contentType,
		Name:        name,
	}, nil
}
