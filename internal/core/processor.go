package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parrot-sketch/Callsheet-extractor/internal/document"
	"github.com/parrot-sketch/Callsheet-extractor/internal/entity"
	"github.com/parrot-sketch/Callsheet-extractor/internal/llm"
	"github.com/parrot-sketch/Callsheet-extractor/internal/normalize"
)

// Processor coordinates routing (document -> text/images), extraction
// (model call), and normalization (cleanup + dedup).
type Processor struct {
	logger    *slog.Logger
	router    *document.Router
	extractor llm.CallsheetExtractor
	engine    *normalize.Engine
}

func NewProcessor(
	logger *slog.Logger,
	router *document.Router,
	extractor llm.CallsheetExtractor,
	engine *normalize.Engine,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if engine == nil {
		engine = normalize.NewEngine(normalize.DefaultConfig(), logger)
	}
	return &Processor{
		logger:    logger,
		router:    router,
		extractor: extractor,
		engine:    engine,
	}
}

// ProcessCallsheet runs the full pipeline for one submitted document and
// returns both the raw extraction and the normalized result, so callers
// can diff what the cleanup changed.
func (p *Processor) ProcessCallsheet(ctx context.Context, content, filename, mimeHint string) (entity.ExtractionResult, entity.NormalizationResult, error) {
	// 1) Routing stage: pick an adapter, produce text or page images.
	doc, err := p.router.Process(ctx, content, filename, mimeHint)
	if err != nil {
		p.logger.Error("processor.route.failed", "filename", filename, "error", err)
		return entity.ExtractionResult{}, entity.NormalizationResult{}, fmt.Errorf("route document: %w", err)
	}
	p.logger.Debug("processor route success",
		"filename", filename,
		"strategy", doc.Strategy,
		"requires_vision", doc.RequiresVision,
		"pages", doc.Metadata.PageCount,
	)

	// 2) Extraction stage: the model is a black box returning a structured
	// but unreliable result.
	raw, _, err := p.extractor.ExtractContacts(ctx, llm.ExtractRequest{
		Text:         doc.TextContent,
		Images:       doc.Images,
		FilenameHint: doc.Metadata.OriginalFilename,
	})
	if err != nil {
		p.logger.Error("processor.extract.failed", "filename", filename, "error", err)
		return entity.ExtractionResult{}, entity.NormalizationResult{}, fmt.Errorf("extract contacts: %w", err)
	}

	// 3) Normalization stage: best-effort, never fails.
	normalized := p.engine.Normalize(raw)
	p.logger.Info("processor normalize success",
		"filename", filename,
		"contacts", normalized.Stats.TotalContacts,
		"duplicates_removed", normalized.Stats.DuplicatesRemoved,
		"issues", len(normalized.Issues),
	)
	return raw, normalized, nil
}
