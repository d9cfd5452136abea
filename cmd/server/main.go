package main

import (
	"fmt"
	"log"

	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/config"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/detector"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/document"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/extractor"
	cfextractor "github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/extractor/cloudflare"
	mextractor "github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/extractor/mistral"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/handler"
	mocr "github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/ocr/mistral"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/port"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/router"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/scanner"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/schema"
	"github.com/o2alexanderfedin/OCRChecksServer-demo-sub003/internal/scoring"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Scoring pipeline: calculator plus per-document-type detectors.
	calc := scoring.NewCalculator(scoring.Weights{
		CleanStop:   cfg.Scoring.CleanStopWeight,
		SchemaValid: cfg.Scoring.SchemaValidWeight,
	})
	pipeline := extractor.NewPipeline(calc, cfg.Scoring.ReserveWeight, cfg.Scoring.ConfidenceCap)
	pipeline.RegisterDetector(schema.CheckSchemaName, detector.NewCheckDetector(cfg.Scoring.SuspicionThreshold))
	pipeline.RegisterDetector(schema.ReceiptSchemaName, detector.NewReceiptDetector(cfg.Scoring.SuspicionThreshold))

	// Extraction providers. Misconfiguration fails here, not per request.
	extractor.RegisterProvider("mistral", func(c *config.ExtractorConfig, p *extractor.Pipeline) (port.JSONExtractor, error) {
		return mextractor.NewExtractor(c, p)
	})
	extractor.RegisterProvider("cloudflare", func(c *config.ExtractorConfig, p *extractor.Pipeline) (port.JSONExtractor, error) {
		return cfextractor.NewExtractor(c, p)
	})
	jsonExtractor, err := extractor.NewExtractor(&cfg.Extractor, pipeline)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}

	ocrClient, err := mocr.NewClient(&cfg.OCR)
	if err != nil {
		return fmt.Errorf("failed to initialize OCR client: %w", err)
	}

	weights := scanner.Weights{OCR: cfg.Scoring.OCRWeight, Extraction: cfg.Scoring.ExtractionWeight}
	checkScanner := scanner.New(ocrClient, document.NewCheckExtractor(jsonExtractor), weights)
	receiptScanner := scanner.New(ocrClient, document.NewReceiptExtractor(jsonExtractor), weights)

	scanH := handler.NewScanHandler(checkScanner, receiptScanner, cfg.Server.MaxBodyMB)
	healthH := handler.NewHealthHandler(cfg.Server.Environment, cfg.Extractor.Provider)

	r := router.Setup(scanH, healthH)

	log.Printf("Server starting on %s (extractor=%s)", cfg.Server.Port, cfg.Extractor.Provider)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
