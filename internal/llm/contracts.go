package llm

import (
	"context"

	"github.com/parrot-sketch/Callsheet-extractor/internal/entity"
)

// ExtractRequest carries whatever the document router produced: extracted
// text for text strategies, or encoded page images for vision strategies.
// Exactly one of Text and Images is set.
type ExtractRequest struct {
	Text         string
	Images       []string
	FilenameHint string
}

// CallsheetExtractor is the interface the pipeline depends on. The model is
// a black box that returns a structured but unreliable ExtractionResult;
// the normalization engine is designed to tolerate whatever comes back.
type CallsheetExtractor interface {
	ExtractContacts(ctx context.Context, req ExtractRequest) (entity.ExtractionResult, []byte /*rawJSON*/, error)
}
