package document

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/parrot-sketch/Callsheet-extractor/constants"
)

// pdfAdapter handles encoded PDFs. Call sheets are usually digital exports
// with an embedded text layer; those go out as text. Scans with no usable
// text layer are rasterized for the vision path instead.
type pdfAdapter struct {
	pdftotext string
	pdftoppm  string
	dpi       int
	maxPages  int
	runner    Runner
	logger    *slog.Logger
}

func newPDFAdapter(cfg Config, runner Runner, logger *slog.Logger) *pdfAdapter {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = constants.PDFRasterDPI
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = constants.PDFMaxPages
	}
	return &pdfAdapter{
		pdftotext: cfg.Pdftotext,
		pdftoppm:  cfg.Pdftoppm,
		dpi:       cfg.DPI,
		maxPages:  cfg.MaxPages,
		runner:    runner,
		logger:    logger,
	}
}

func (a *pdfAdapter) Name() string { return "pdf" }

func (a *pdfAdapter) CanProcess(content, mimeHint string) bool {
	return strings.HasPrefix(content, constants.PDFMarker) || mimeHint == constants.MIMEPDF
}

func (a *pdfAdapter) Process(ctx context.Context, content, filename, mimeHint string) (*ProcessedDocument, error) {
	_, data, err := decodeDataURL(content)
	if err != nil {
		return nil, err
	}

	// One temp dir per job, exclusively owned, removed on every exit path.
	tmpDir, err := os.MkdirTemp("", "cse-pdf-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			a.logger.Warn("pdf.cleanup_failed", "dir", tmpDir, "error", rmErr)
		}
	}()

	pdfPath := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(pdfPath, data, 0o600); err != nil {
		return nil, fmt.Errorf("write temp pdf: %w", err)
	}

	text, pages, err := a.extractText(ctx, pdfPath)
	if err != nil {
		if isToolMissing(err) {
			return nil, toolUnavailableError(a.pdftotext+" is not installed or not on PATH", err)
		}
		return nil, corruptDocumentError("could not read PDF text layer", err)
	}

	meta := Metadata{
		OriginalFilename: filename,
		MIMEType:         constants.MIMEPDF,
		Size:             len(data),
		PageCount:        pages,
	}

	if len(strings.TrimSpace(text)) >= constants.PDFTextMinChars {
		return &ProcessedDocument{
			Type:           TypePDF,
			TextContent:    text,
			Metadata:       meta,
			Strategy:       StrategyTextExtraction,
			RequiresVision: false,
		}, nil
	}

	// Scanned PDF: no usable text layer, rasterize for the vision path.
	a.logger.Debug("pdf.rasterizing", "filename", filename, "text_chars", len(text), "dpi", a.dpi)
	images, rendered, err := a.rasterize(ctx, pdfPath, tmpDir)
	if err != nil {
		if isToolMissing(err) {
			return nil, toolUnavailableError(a.pdftoppm+" is not installed or not on PATH", err)
		}
		return nil, corruptDocumentError("PDF rasterization failed", err)
	}
	if len(images) == 0 {
		return nil, corruptDocumentError("PDF rasterization produced no pages", nil)
	}

	meta.PageCount = rendered
	return &ProcessedDocument{
		Type:           TypePDF,
		Images:         images,
		Metadata:       meta,
		Strategy:       StrategyVision,
		RequiresVision: true,
	}, nil
}

func (a *pdfAdapter) extractText(ctx context.Context, path string) (string, int, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := a.runner.Run(ctx, a.pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, fmt.Errorf("pdftotext: %s: %w", strings.TrimSpace(string(errb)), err)
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return text, pages, nil
}

func (a *pdfAdapter) rasterize(ctx context.Context, path, tmpDir string) ([]string, int, error) {
	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 150 -png -l 5 <in.pdf> <tmp/page>
	_, errb, err := a.runner.Run(ctx, a.pdftoppm,
		"-r", fmt.Sprintf("%d", a.dpi),
		"-png",
		"-l", fmt.Sprintf("%d", a.maxPages),
		path, prefix)
	if err != nil {
		return nil, 0, fmt.Errorf("pdftoppm: %s: %w", strings.TrimSpace(string(errb)), err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) > a.maxPages {
		matches = matches[:a.maxPages]
	}

	images := make([]string, 0, len(matches))
	for _, img := range matches {
		b, readErr := os.ReadFile(img)
		if readErr != nil {
			a.logger.Warn("pdf.page_read_failed", "page", img, "error", readErr)
			continue
		}
		images = append(images, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(b))
	}
	return images, len(images), nil
}
