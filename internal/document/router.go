package document

import (
	"context"
	"errors"
	"log/slog"

	"github.com/parrot-sketch/Callsheet-extractor/internal/common"
)

// adapter is the capability set every format adapter implements. The set is
// closed: the router owns a fixed, ordered list, not an open registry.
type adapter interface {
	// Name identifies the adapter in logs and error messages.
	Name() string
	// CanProcess reports whether this adapter claims the content.
	CanProcess(content, mimeHint string) bool
	// Process produces a ProcessedDocument or a typed failure.
	Process(ctx context.Context, content, filename, mimeHint string) (*ProcessedDocument, error)
}

// Router dispatches a submitted document to the first adapter that claims
// it. Order is fixed and significant: PDF, Word, Excel, Image, then Text as
// the catch-all. A claiming adapter's failure surfaces verbatim; the router
// never falls through to a less specific adapter.
type Router struct {
	adapters []adapter
	logger   *slog.Logger
}

// Config tunes the external tools the PDF adapter shells out to.
type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	DPI       int    // rasterization DPI for scanned PDFs, default 150
	MaxPages  int    // rasterization page cap, default 5
}

func NewRouter(cfg Config, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	runner := execRunner{}
	return &Router{
		adapters: []adapter{
			newPDFAdapter(cfg, runner, logger),
			&wordAdapter{},
			&excelAdapter{},
			&imageAdapter{},
			&textAdapter{},
		},
		logger: logger,
	}
}

// Process routes content through the adapter chain.
func (r *Router) Process(ctx context.Context, content, filename, mimeHint string) (*ProcessedDocument, error) {
	for _, a := range r.adapters {
		if !a.CanProcess(content, mimeHint) {
			continue
		}
		r.logger.Debug("router.dispatch", "adapter", a.Name(), "filename", filename, "mime_hint", mimeHint)
		doc, err := a.Process(ctx, content, filename, mimeHint)
		if err != nil {
			r.logger.Error("router.process.failed", "adapter", a.Name(), "filename", filename, "error", err)
			return nil, err
		}
		r.logger.Info("router.process.ok",
			"adapter", a.Name(),
			"filename", filename,
			"strategy", doc.Strategy,
			"requires_vision", doc.RequiresVision,
			"pages", doc.Metadata.PageCount,
		)
		return doc, nil
	}
	r.logger.Error("router.no_processor", "filename", filename, "mime_hint", mimeHint)
	return nil, noProcessorFoundError(filename)
}

// ErrorCode extracts the routing taxonomy code from a Process failure, or
// empty when the error did not come from an adapter.
func ErrorCode(err error) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
