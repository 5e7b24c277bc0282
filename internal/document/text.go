package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/parrot-sketch/Callsheet-extractor/constants"
)

// textAdapter is the catch-all at the end of the chain. It accepts anything
// the specific adapters did not claim, decoding embedded text blobs and
// passing raw text straight through.
type textAdapter struct{}

func (a *textAdapter) Name() string { return "text" }

func (a *textAdapter) CanProcess(string, string) bool { return true }

func (a *textAdapter) Process(_ context.Context, content, filename, mimeHint string) (*ProcessedDocument, error) {
	text := content
	mimeType := constants.MIMEText
	if strings.HasPrefix(content, constants.DataMarker) {
		mt, data, err := decodeDataURL(content)
		if err != nil {
			return nil, err
		}
		text = string(data)
		if mt != "" {
			mimeType = mt
		}
	}

	text = strings.TrimSpace(text)
	if len(text) < constants.TextMinChars {
		return nil, insufficientContentError(
			fmt.Sprintf("text is %d characters; at least %d required", len(text), constants.TextMinChars))
	}

	size := len(text)
	if len(text) > constants.MaxTextChars {
		text = smartTruncate(text, constants.MaxTextChars) + constants.TruncationMarker
	}

	return &ProcessedDocument{
		Type:        TypeText,
		TextContent: text,
		Metadata: Metadata{
			OriginalFilename: filename,
			MIMEType:         mimeType,
			Size:             size,
		},
		Strategy:       StrategyDirectText,
		RequiresVision: false,
	}, nil
}

// smartTruncate cuts text at the latest natural boundary before max: a
// paragraph break, then a line break, then a sentence terminator. A boundary
// only counts when it lands past 70% of the target, otherwise the cut would
// throw away too much; with no acceptable boundary the cut is hard.
func smartTruncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	window := text[:max]
	floor := int(float64(max) * constants.ParagraphBreakFloor)

	cut := strings.LastIndex(window, "\n\n")
	if cut < floor {
		cut = strings.LastIndex(window, "\n")
	}
	if cut < floor {
		cut = strings.LastIndex(window, ". ")
		if cut >= floor {
			cut++ // keep the period
		}
	}
	if cut < floor {
		cut = max
	}
	return strings.TrimRight(window[:cut], " \n")
}
