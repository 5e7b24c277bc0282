package document

import (
	"strings"

	"github.com/parrot-sketch/Callsheet-extractor/constants"
)

// DetectType classifies content into a routing tag. Priority order, first
// match wins: explicit PDF marker or hint, image marker or hint, then text.
// Anything without a binary marker is assumed to be raw text; only an
// unrecognized encoded blob comes back unknown.
func DetectType(content, mimeHint string) DocumentType {
	switch {
	case strings.HasPrefix(content, constants.PDFMarker) || mimeHint == constants.MIMEPDF:
		return TypePDF
	case strings.HasPrefix(content, constants.ImageMarker) || strings.HasPrefix(mimeHint, "image/"):
		return TypeImage
	case strings.HasPrefix(content, constants.TextMarker) || strings.HasPrefix(mimeHint, "text/"):
		return TypeText
	case !strings.HasPrefix(content, constants.DataMarker):
		return TypeText
	default:
		return TypeUnknown
	}
}
