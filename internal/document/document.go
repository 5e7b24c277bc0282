// Package document routes an incoming call sheet to the right format
// adapter and produces a canonical ProcessedDocument for extraction.
package document

// DocumentType is a routing tag derived from content markers and the
// caller's MIME hint. It is never stored.
type DocumentType string

const (
	TypePDF     DocumentType = "pdf"
	TypeImage   DocumentType = "image"
	TypeText    DocumentType = "text"
	TypeUnknown DocumentType = "unknown"
)

// Strategy is the extraction method selected for a processed document.
type Strategy string

const (
	StrategyTextExtraction Strategy = "text-extraction"
	StrategyVision         Strategy = "vision"
	StrategyDirectText     Strategy = "direct-text"
)

// Metadata describes the original upload.
type Metadata struct {
	OriginalFilename string `json:"originalFilename"`
	MIMEType         string `json:"mimeType"`
	Size             int    `json:"size"`
	PageCount        int    `json:"pageCount,omitempty"`
}

// ProcessedDocument is the router's output contract. Exactly one of
// TextContent and Images is populated on success, and RequiresVision is
// true iff Images is populated.
type ProcessedDocument struct {
	Type           DocumentType `json:"type"`
	TextContent    string       `json:"textContent,omitempty"`
	Images         []string     `json:"images,omitempty"`
	Metadata       Metadata     `json:"metadata"`
	Strategy       Strategy     `json:"strategy"`
	RequiresVision bool         `json:"requiresVision"`
}
