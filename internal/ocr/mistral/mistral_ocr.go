package mistral

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/config"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/port"
)

const apiURL = "https://api.mistral.ai/v1/ocr"

// Client implements port.OCRProvider using the Mistral OCR API. The client
// is stateless per call and safe for concurrent use.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Mistral OCR client from config. A missing API key
// fails here, not at call time.
func NewClient(cfg *config.OCRConfig) (*Client, error) {
	return newClient(cfg, apiURL)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint
// (for testing).
func NewClientWithEndpoint(cfg *config.OCRConfig, endpoint string) (*Client, error) {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.OCRConfig, endpoint string) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("mistral OCR client: missing API key: %w", domain.ErrConfiguration)
	}
	if cfg.Endpoint != "" {
		endpoint = cfg.Endpoint
	}
	model := cfg.Model
	if model == "" {
		model = "mistral-ocr-latest"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// ocrRequest models the Mistral OCR API request body.
type ocrRequest struct {
	Model    string      `json:"model"`
	Document documentURL `json:"document"`
}

type documentURL struct {
	Type        string `json:"type"`
	ImageURL    string `json:"image_url,omitempty"`
	DocumentURL string `json:"document_url,omitempty"`
}

// ocrResponse models the Mistral OCR API response.
type ocrResponse struct {
	Pages []struct {
		Index      int     `json:"index"`
		Markdown   string  `json:"markdown"`
		Confidence float64 `json:"confidence,omitempty"`
	} `json:"pages"`
}

// ProcessDocuments runs OCR over each document in order. Documents are
// processed sequentially; extraction depends on the full text anyway.
func (c *Client) ProcessDocuments(ctx context.Context, docs []domain.Document) ([][]port.OCRPage, error) {
	results := make([][]port.OCRPage, 0, len(docs))
	for i := range docs {
		pages, err := c.processOne(ctx, &docs[i])
		if err != nil {
			return nil, fmt.Errorf("processing document %q: %w", docs[i].Name, err)
		}
		results = append(results, pages)
	}
	return results, nil
}

func (c *Client) processOne(ctx context.Context, doc *domain.Document) ([]port.OCRPage, error) {
	if len(doc.Content) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType(doc), base64.StdEncoding.EncodeToString(doc.Content))
	reqBody := ocrRequest{Model: c.model}
	if doc.Format == domain.DocumentFormatPDF {
		reqBody.Document = documentURL{Type: "document_url", DocumentURL: dataURI}
	} else {
		reqBody.Document = documentURL{Type: "image_url", ImageURL: dataURI}
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling mistral OCR API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mistral OCR API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var ocrResp ocrResponse
	if err := json.Unmarshal(respBody, &ocrResp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(ocrResp.Pages) == 0 {
		return nil, fmt.Errorf("empty OCR response: no pages")
	}

	pages := make([]port.OCRPage, 0, len(ocrResp.Pages))
	for _, p := range ocrResp.Pages {
		conf := p.Confidence
		if conf == 0 {
			// The API does not report page confidence today; estimate it
			// from receipt-like artifacts in the recognized text.
			conf = heuristicConfidence(p.Markdown)
		}
		pages = append(pages, port.OCRPage{Text: p.Markdown, Confidence: conf})
	}
	return pages, nil
}

func contentType(doc *domain.Document) string {
	if doc.ContentType != "" {
		return doc.ContentType
	}
	if doc.Format == domain.DocumentFormatPDF {
		return "application/pdf"
	}
	return "image/jpeg"
}
