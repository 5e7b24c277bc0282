package constants

import "strings"

// Data-URL markers used to recognize encoded document blobs. Routing trusts
// these over the caller-supplied MIME hint whenever both are present.
const (
	PDFMarker   = "data:application/pdf"
	ImageMarker = "data:image/"
	TextMarker  = "data:text/"
	DataMarker  = "data:"
)

// MIME types the router and adapters care about.
const (
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEDoc  = "application/msword"
	MIMEXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEXls  = "application/vnd.ms-excel"
	MIMEText = "text/plain"
)

// AllowedImageSubtypes is the allow-list for the image adapter.
var AllowedImageSubtypes = map[string]struct{}{
	"png":  {},
	"jpeg": {},
	"jpg":  {},
	"gif":  {},
	"webp": {},
}

// Adapter thresholds.
const (
	PDFTextMinChars  = 100      // below this a PDF is treated as scanned
	PDFMaxPages      = 5        // rasterization page cap for scanned PDFs
	PDFRasterDPI     = 150      // rasterization resolution
	WordMinChars     = 50       // minimum decoded DOCX text length
	TextMinChars     = 10       // minimum plain-text length
	MaxTextChars     = 50_000   // truncation ceiling shared by Word/Excel/Text
	MaxImageBytes    = 20 << 20 // decoded image size cap (20 MB)
	TruncationMarker = "\n\n[Content truncated due to length]"

	// Smart truncation: a paragraph break only counts when it lands past
	// this fraction of the target length.
	ParagraphBreakFloor = 0.7
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
