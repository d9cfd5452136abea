package domain

// DocumentFormat is the upload format of a document to be scanned.
type DocumentFormat string

const (
	DocumentFormatImage DocumentFormat = "image"
	DocumentFormatPDF   DocumentFormat = "pdf"
)

// ScanType selects which document pipeline processes an upload.
type ScanType string

const (
	ScanTypeCheck   ScanType = "check"
	ScanTypeReceipt ScanType = "receipt"
)

// AllowedImageContentTypes maps image MIME types accepted by the scan endpoints.
var AllowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/heic": true,
}

// Document is a single uploaded file handed to a scanner. Content is the
// raw bytes as received; nothing is persisted beyond the request.
type Document struct {
	Content     []byte
	Format      DocumentFormat
	ContentType string
	Name        string
}

// ScanResult is the outcome of a full image-to-JSON scan. Data holds the
// normalized Check or Receipt entity.
type ScanResult struct {
	Data                 any     `json:"data"`
	OCRConfidence        float64 `json:"ocrConfidence"`
	ExtractionConfidence float64 `json:"extractionConfidence"`
	OverallConfidence    float64 `json:"overallConfidence"`
}
