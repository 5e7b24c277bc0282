package document

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parrot-sketch/Callsheet-extractor/constants"
)

func buildDocx(t *testing.T, paragraphs []string) string {
	t.Helper()

	var xmlBody strings.Builder
	xmlBody.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	xmlBody.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		xmlBody.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	xmlBody.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(xmlBody.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return constants.DataMarker + constants.MIMEDocx + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestWordAdapter_ExtractsParagraphs(t *testing.T) {
	a := &wordAdapter{}
	content := buildDocx(t, []string{
		"CALL SHEET - Day 3 of 12",
		"Crew call 7:00 AM at Stage 4",
		"John Smith - Gaffer - 555-123-4567",
	})

	doc, err := a.Process(context.Background(), content, "callsheet.docx", "")
	require.NoError(t, err)

	assert.Equal(t, TypeText, doc.Type)
	assert.Equal(t, StrategyTextExtraction, doc.Strategy)
	assert.False(t, doc.RequiresVision)
	assert.Equal(t,
		"CALL SHEET - Day 3 of 12\nCrew call 7:00 AM at Stage 4\nJohn Smith - Gaffer - 555-123-4567",
		doc.TextContent)
}

func TestWordAdapter_CanProcess(t *testing.T) {
	a := &wordAdapter{}
	assert.True(t, a.CanProcess("", constants.MIMEDocx))
	assert.True(t, a.CanProcess("", constants.MIMEDoc))
	assert.True(t, a.CanProcess(constants.DataMarker+constants.MIMEDocx+";base64,AAAA", ""))
	assert.False(t, a.CanProcess("plain text", ""))
	assert.False(t, a.CanProcess("", constants.MIMEXlsx))
}

func TestWordAdapter_NotAZip(t *testing.T) {
	a := &wordAdapter{}
	content := constants.DataMarker + constants.MIMEDocx + ";base64," +
		base64.StdEncoding.EncodeToString([]byte("this is not a zip archive at all"))

	_, err := a.Process(context.Background(), content, "callsheet.docx", "")
	require.Error(t, err)
	assert.Equal(t, CodeInvalidInputFormat, ErrorCode(err))
}

func TestWordAdapter_MissingDocumentXML(t *testing.T) {
	a := &wordAdapter{}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	content := constants.DataMarker + constants.MIMEDocx + ";base64," +
		base64.StdEncoding.EncodeToString(buf.Bytes())

	_, err = a.Process(context.Background(), content, "callsheet.docx", "")
	require.Error(t, err)
	assert.Equal(t, CodeCorruptDocument, ErrorCode(err))
}

func TestWordAdapter_TooLittleText(t *testing.T) {
	a := &wordAdapter{}
	content := buildDocx(t, []string{"short"})

	_, err := a.Process(context.Background(), content, "callsheet.docx", "")
	require.Error(t, err)
	assert.Equal(t, CodeInsufficientContent, ErrorCode(err))
}
