package extractor

import (
	"fmt"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/config"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/port"
)

// ProviderFactory creates a JSONExtractor from a provider config and the
// shared scoring pipeline.
type ProviderFactory func(cfg *config.ExtractorConfig, pipeline *Pipeline) (port.JSONExtractor, error)

// registry of extraction provider factories, populated explicitly via
// RegisterProvider during startup wiring.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an extraction provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewExtractor creates a JSONExtractor from a provider config using the
// registered factory.
func NewExtractor(cfg *config.ExtractorConfig, pipeline *Pipeline) (port.JSONExtractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extraction provider: %s", cfg.Provider)
	}
	return factory(cfg, pipeline)
}
