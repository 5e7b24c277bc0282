package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/parrot-sketch/Callsheet-extractor/constants"
)

// excelAdapter flattens spreadsheet call sheets into pipe-delimited text,
// one section per sheet. Crew lists frequently arrive as XLSX exports of a
// production-office template.
type excelAdapter struct{}

func (a *excelAdapter) Name() string { return "excel" }

func (a *excelAdapter) CanProcess(content, mimeHint string) bool {
	if mimeHint == constants.MIMEXlsx || mimeHint == constants.MIMEXls {
		return true
	}
	return strings.HasPrefix(content, constants.DataMarker+constants.MIMEXlsx)
}

func (a *excelAdapter) Process(_ context.Context, content, filename, mimeHint string) (*ProcessedDocument, error) {
	_, data, err := decodeDataURL(content)
	if err != nil {
		return nil, err
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, invalidInputError("document is not a valid workbook", err)
	}
	defer wb.Close()

	var sections []string
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, corruptDocumentError(fmt.Sprintf("could not read sheet %q", sheet), err)
		}
		section := renderSheet(sheet, rows)
		if section != "" {
			sections = append(sections, section)
		}
	}

	text := strings.TrimSpace(strings.Join(sections, "\n\n"))
	if len(text) < constants.WordMinChars {
		return nil, insufficientContentError(
			fmt.Sprintf("workbook text is %d characters; at least %d required", len(text), constants.WordMinChars))
	}
	if len(text) > constants.MaxTextChars {
		text = text[:constants.MaxTextChars] + constants.TruncationMarker
	}

	return &ProcessedDocument{
		Type:        TypeText,
		TextContent: text,
		Metadata: Metadata{
			OriginalFilename: filename,
			MIMEType:         constants.MIMEXlsx,
			Size:             len(data),
		},
		Strategy:       StrategyTextExtraction,
		RequiresVision: false,
	}, nil
}

// renderSheet renders every non-empty row as a pipe-delimited line under a
// sheet header. Empty sheets render to nothing.
func renderSheet(name string, rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		if rowIsEmpty(row) {
			continue
		}
		if b.Len() == 0 {
			b.WriteString("=== Sheet: " + name + " ===\n")
		}
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
