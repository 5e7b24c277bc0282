package document

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/parrot-sketch/Callsheet-extractor/constants"
)

// wordAdapter handles DOCX uploads: open the zip container, pull paragraph
// text out of word/document.xml.
type wordAdapter struct{}

func (a *wordAdapter) Name() string { return "word" }

func (a *wordAdapter) CanProcess(content, mimeHint string) bool {
	if mimeHint == constants.MIMEDocx || mimeHint == constants.MIMEDoc {
		return true
	}
	return strings.HasPrefix(content, constants.DataMarker+constants.MIMEDocx)
}

func (a *wordAdapter) Process(_ context.Context, content, filename, mimeHint string) (*ProcessedDocument, error) {
	_, data, err := decodeDataURL(content)
	if err != nil {
		return nil, err
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, invalidInputError("document is not a valid DOCX container", err)
	}

	text, err := extractDocumentText(reader)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)

	if len(text) < constants.WordMinChars {
		return nil, insufficientContentError(
			fmt.Sprintf("document text is %d characters; at least %d required", len(text), constants.WordMinChars))
	}
	if len(text) > constants.MaxTextChars {
		text = text[:constants.MaxTextChars] + constants.TruncationMarker
	}

	return &ProcessedDocument{
		Type:        TypeText,
		TextContent: text,
		Metadata: Metadata{
			OriginalFilename: filename,
			MIMEType:         constants.MIMEDocx,
			Size:             len(data),
		},
		Strategy:       StrategyTextExtraction,
		RequiresVision: false,
	}, nil
}

// extractDocumentText extracts text from word/document.xml.
func extractDocumentText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", corruptDocumentError("could not open word/document.xml", err)
		}

		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", corruptDocumentError("could not read word/document.xml", err)
		}

		return parseDocumentXML(raw), nil
	}
	return "", corruptDocumentError("DOCX container has no word/document.xml", nil)
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []docParagraph `xml:"p"`
	} `xml:"body"`
}

type docParagraph struct {
	Runs []docRun `xml:"r"`
}

type docRun struct {
	Text []docText `xml:"t"`
}

type docText struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts paragraph text from the document XML.
func parseDocumentXML(raw []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return ""
	}

	var b strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, run := range para.Runs {
			for _, t := range run.Text {
				b.WriteString(t.Content)
			}
		}
	}
	return b.String()
}
