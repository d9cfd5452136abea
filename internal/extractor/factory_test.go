package extractor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/config"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/extractor"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/port"
)

type noopExtractor struct{}

func (noopExtractor) Extract(context.Context, port.ExtractionRequest) (*port.ExtractionResult, error) {
	return &port.ExtractionResult{}, nil
}

func TestNewExtractor_UsesRegisteredFactory(t *testing.T) {
	var gotCfg *config.ExtractorConfig
	extractor.RegisterProvider("fake", func(cfg *config.ExtractorConfig, _ *extractor.Pipeline) (port.JSONExtractor, error) {
		gotCfg = cfg
		return noopExtractor{}, nil
	})

	cfg := &config.ExtractorConfig{Provider: "fake", APIKey: "k"}
	ex, err := extractor.NewExtractor(cfg, newTestPipeline())
	require.NoError(t, err)
	assert.NotNil(t, ex)
	assert.Same(t, cfg, gotCfg)
}

func TestNewExtractor_UnknownProvider(t *testing.T) {
	cfg := &config.ExtractorConfig{Provider: "openai"}
	_, err := extractor.NewExtractor(cfg, newTestPipeline())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown extraction provider")
}
