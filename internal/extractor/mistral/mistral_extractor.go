package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/config"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/domain"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/extractor"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/port"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/scoring"
)

const apiURL = "https://api.mistral.ai/v1/chat/completions"

// Extractor implements port.JSONExtractor using the Mistral chat
// completions API in schema-constrained JSON mode.
type Extractor struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
	pipeline *extractor.Pipeline
}

// NewExtractor creates a Mistral-based JSON extractor from a provider
// config. A missing API key fails here, not at call time.
func NewExtractor(cfg *config.ExtractorConfig, pipeline *extractor.Pipeline) (*Extractor, error) {
	return newExtractor(cfg, pipeline, apiURL)
}

// NewExtractorWithEndpoint creates an extractor pointing at a custom API
// endpoint (for testing).
func NewExtractorWithEndpoint(cfg *config.ExtractorConfig, pipeline *extractor.Pipeline, endpoint string) (*Extractor, error) {
	return newExtractor(cfg, pipeline, endpoint)
}

func newExtractor(cfg *config.ExtractorConfig, pipeline *extractor.Pipeline, endpoint string) (*Extractor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("mistral extractor: missing API key: %w", domain.ErrConfiguration)
	}
	if cfg.Endpoint != "" {
		endpoint = cfg.Endpoint
	}
	model := cfg.DefaultModel
	if model == "" {
		model = "mistral-small-latest"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Extractor{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		pipeline: pipeline,
	}, nil
}

func (e *Extractor) Extract(ctx context.Context, req port.ExtractionRequest) (*port.ExtractionResult, error) {
	reqBody := map[string]any{
		"model": e.model,
		"messages": []map[string]any{
			{"role": "system", "content": extractor.SystemPrompt},
			{"role": "user", "content": extractor.BuildUserPrompt(req.SchemaName, req.Schema, req.Text)},
		},
		"response_format": responseFormat(req),
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
		return nil, fmt.Errorf("calling mistral API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := extractor.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			baseErr := &extractor.ProviderError{Provider: "mistral", StatusCode: resp.StatusCode, Body: extractor.Truncate(string(respBody), 500)}
			return nil, extractor.NewRateLimitError("mistral", baseErr, retryAfter)
		}
		return nil, &extractor.ProviderError{Provider: "mistral", StatusCode: resp.StatusCode, Body: extractor.Truncate(string(respBody), 500)}
	}

	return e.parseResponse(req, respBody)
}

// responseFormat requests schema-constrained output when a schema is
// attached, plain JSON mode otherwise.
func responseFormat(req port.ExtractionRequest) map[string]any {
	if req.Schema == nil {
		return map[string]any{"type": "json_object"}
	}
	return map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   req.SchemaName,
			"schema": req.Schema,
			"strict": false,
		},
	}
}

// apiResponse models the Mistral chat completions response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (e *Extractor) parseResponse(req port.ExtractionRequest, body []byte) (*port.ExtractionResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}

	choice := resp.Choices[0]
	meta := scoring.ResponseMeta{FinishReason: choice.FinishReason}
	return e.pipeline.Finalize(req, choice.Message.Content, meta)
}
