package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/config"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/extractor"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/port"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/scoring"
)

const (
	apiURLTemplate = "https://api.cloudflare.com/client/v4/accounts/%s/ai/run/%s"
	defaultModel   = "@cf/meta/llama-3.3-70b-instruct-fp8-fast"
)

// Extractor implements port.JSONExtractor using Cloudflare Workers AI.
// Workers AI does not report a finish reason, so the clean-completion term
// of the confidence blend scores neutral for this provider.
type Extractor struct {
	apiKey   string
	endpoint string
	client   *http.Client
	pipeline *extractor.Pipeline
}

// NewExtractor creates a Workers AI extractor from a provider config. A
// missing API key or account ID fails here, not at call time.
func NewExtractor(cfg *config.ExtractorConfig, pipeline *extractor.Pipeline) (*Extractor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("cloudflare extractor: missing API key: %w", domain.ErrConfiguration)
	}
	if cfg.AccountID == "" {
		return nil, fmt.Errorf("cloudflare extractor: missing account ID: %w", domain.ErrConfiguration)
	}
	model := cfg.DefaultModel
	if model == "" {
		model = defaultModel
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf(apiURLTemplate, cfg.AccountID, model)
	}
	return newExtractor(cfg, pipeline, endpoint), nil
}

// NewExtractorWithEndpoint creates an extractor pointing at a custom API
// endpoint (for testing).
func NewExtractorWithEndpoint(cfg *config.ExtractorConfig, pipeline *extractor.Pipeline, endpoint string) *Extractor {
	return newExtractor(cfg, pipeline, endpoint)
}

func newExtractor(cfg *config.ExtractorConfig, pipeline *extractor.Pipeline, endpoint string) *Extractor {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Extractor{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		pipeline: pipeline,
	}
}

func (e *Extractor) Extract(ctx context.Context, req port.ExtractionRequest) (*port.ExtractionResult, error) {
	reqBody := map[string]any{
		"messages": []map[string]any{
			{"role": "system", "content": extractor.SystemPrompt},
			{"role": "user", "content": extractor.BuildUserPrompt(req.SchemaName, req.Schema, req.Text)},
		},
	}
	if req.Schema != nil {
		reqBody["response_format"] = map[string]any{
			"type":        "json_schema",
			"json_schema": req.Schema,
		}
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling workers AI: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := extractor.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			baseErr := &extractor.ProviderError{Provider: "cloudflare", StatusCode: resp.StatusCode, Body: extractor.Truncate(string(respBody), 500)}
			return nil, extractor.NewRateLimitError("cloudflare", baseErr, retryAfter)
		}
		return nil, &extractor.ProviderError{Provider: "cloudflare", StatusCode: resp.StatusCode, Body: extractor.Truncate(string(respBody), 500)}
	}

	return e.parseResponse(req, respBody)
}

// apiResponse models the Workers AI run response envelope.
type apiResponse struct {
	Result struct {
		Response string `json:"response"`
	} `json:"result"`
	Success bool `json:"success"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (e *Extractor) parseResponse(req port.ExtractionRequest, body []byte) (*port.ExtractionResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if !resp.Success {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("workers AI request failed: %s", strings.Join(msgs, "; "))
	}

	// Workers AI does not expose a finish reason; leave it empty so the
	// calculator scores the clean-completion term as neutral.
	meta := scoring.ResponseMeta{}
	return e.pipeline.Finalize(req, resp.Result.Response, meta)
}
