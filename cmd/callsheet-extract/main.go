package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parrot-sketch/Callsheet-extractor/internal/common"
	"github.com/parrot-sketch/Callsheet-extractor/internal/core"
	"github.com/parrot-sketch/Callsheet-extractor/internal/document"
	"github.com/parrot-sketch/Callsheet-extractor/internal/export"
	"github.com/parrot-sketch/Callsheet-extractor/internal/llm/openai"
	"github.com/parrot-sketch/Callsheet-extractor/internal/normalize"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	xlsxOut := flag.String("xlsx", "", "also write the normalized contacts to an XLSX workbook at this path")
	flag.Parse()
	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "callsheet-extract [-xlsx out.xlsx] <callsheet-file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	content, mimeType, err := readAsContent(path)
	if err != nil {
		logger.Error("read input", "path", path, "error", err)
		os.Exit(1)
	}

	router := document.NewRouter(document.Config{
		Pdftotext: cfg.Document.Pdftotext,
		Pdftoppm:  cfg.Document.Pdftoppm,
		DPI:       cfg.Document.DPI,
		MaxPages:  cfg.Document.MaxPages,
	}, logger)
	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	engine := normalize.NewEngine(normalize.DefaultConfig(), logger)
	processor := core.NewProcessor(logger, router, extractor, engine)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	_, normalized, err := processor.ProcessCallsheet(ctx, content, filepath.Base(path), mimeType)
	if err != nil {
		logger.Error("extraction failed",
			"path", path, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"path", path,
		"contacts", normalized.Stats.TotalContacts,
		"duplicates_removed", normalized.Stats.DuplicatesRemoved,
		"issues", len(normalized.Issues),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if *xlsxOut != "" {
		svc := export.NewService(logger)
		wb, err := svc.ExportContactSheetXLSX(normalized)
		if err != nil {
			logger.Error("xlsx export failed", "path", *xlsxOut, "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxOut, wb, 0o644); err != nil {
			logger.Error("write xlsx", "path", *xlsxOut, "error", err)
			os.Exit(1)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalized); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}

// readAsContent loads a file and wraps binary formats as a self-describing
// data URL; plain text passes through untouched.
func readAsContent(path string) (content, mimeType string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	ext := filepath.Ext(path)
	mimeType = mime.TypeByExtension(ext)
	if mimeType == "" {
		switch ext {
		case ".docx":
			mimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
		case ".xlsx":
			mimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		default:
			mimeType = "text/plain"
		}
	}

	if strings.HasPrefix(mimeType, "text/") {
		return string(b), "text/plain", nil
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(b), mimeType, nil
}
