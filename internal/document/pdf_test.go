package document

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parrot-sketch/Callsheet-extractor/constants"
)

// stubRunner replaces the poppler binaries in tests.
type stubRunner struct {
	run func(name string, args []string) (stdout, stderr []byte, err error)
}

func (s stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	return s.run(name, args)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pdfContent(t *testing.T) string {
	t.Helper()
	return constants.PDFMarker + ";base64," + base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))
}

func TestPDFAdapter_TextLayer(t *testing.T) {
	layer := strings.Repeat("CALL SHEET crew and contacts ", 10) + "\f page two"
	runner := stubRunner{run: func(name string, args []string) ([]byte, []byte, error) {
		require.Equal(t, "pdftotext", name)
		return []byte(layer), nil, nil
	}}
	a := newPDFAdapter(Config{}, runner, testLogger())

	doc, err := a.Process(context.Background(), pdfContent(t), "callsheet.pdf", "")
	require.NoError(t, err)

	assert.Equal(t, TypePDF, doc.Type)
	assert.Equal(t, StrategyTextExtraction, doc.Strategy)
	assert.False(t, doc.RequiresVision)
	assert.Equal(t, layer, doc.TextContent)
	assert.Empty(t, doc.Images)
	assert.Equal(t, 2, doc.Metadata.PageCount, "form feeds separate pages")
}

func TestPDFAdapter_ScannedFallsBackToVision(t *testing.T) {
	runner := stubRunner{run: func(name string, args []string) ([]byte, []byte, error) {
		switch name {
		case "pdftotext":
			return []byte("  \n "), nil, nil // no usable text layer
		case "pdftoppm":
			prefix := args[len(args)-1]
			// the real tool renders one PNG per page up to -l
			for i := 1; i <= 7; i++ {
				require.NoError(t, os.WriteFile(fmt.Sprintf("%s-%02d.png", prefix, i), []byte("png-bytes"), 0o600))
			}
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("unexpected command %s", name)
	}}
	a := newPDFAdapter(Config{}, runner, testLogger())

	doc, err := a.Process(context.Background(), pdfContent(t), "scan.pdf", "")
	require.NoError(t, err)

	assert.Equal(t, StrategyVision, doc.Strategy)
	assert.True(t, doc.RequiresVision)
	assert.Len(t, doc.Images, constants.PDFMaxPages, "page cap applies even when more files exist")
	for _, img := range doc.Images {
		assert.True(t, strings.HasPrefix(img, "data:image/png;base64,"))
	}
	assert.Equal(t, constants.PDFMaxPages, doc.Metadata.PageCount)
}

func TestPDFAdapter_RasterizerArgs(t *testing.T) {
	var gotArgs []string
	runner := stubRunner{run: func(name string, args []string) ([]byte, []byte, error) {
		if name == "pdftotext" {
			return nil, nil, nil
		}
		gotArgs = args
		prefix := args[len(args)-1]
		require.NoError(t, os.WriteFile(prefix+"-1.png", []byte("png"), 0o600))
		return nil, nil, nil
	}}
	a := newPDFAdapter(Config{DPI: 200, MaxPages: 3}, runner, testLogger())

	_, err := a.Process(context.Background(), pdfContent(t), "scan.pdf", "")
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(gotArgs), 6)
	assert.Equal(t, []string{"-r", "200", "-png", "-l", "3"}, gotArgs[:5])
}

func TestPDFAdapter_ToolMissing(t *testing.T) {
	runner := stubRunner{run: func(name string, args []string) ([]byte, []byte, error) {
		return nil, nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}}
	a := newPDFAdapter(Config{}, runner, testLogger())

	_, err := a.Process(context.Background(), pdfContent(t), "callsheet.pdf", "")
	require.Error(t, err)
	assert.Equal(t, CodeToolUnavailable, ErrorCode(err))
	assert.Contains(t, err.Error(), "pdftotext")
}

func TestPDFAdapter_CorruptDocument(t *testing.T) {
	runner := stubRunner{run: func(name string, args []string) ([]byte, []byte, error) {
		return nil, []byte("Syntax Error: document stream is damaged"), errors.New("exit status 1")
	}}
	a := newPDFAdapter(Config{}, runner, testLogger())

	_, err := a.Process(context.Background(), pdfContent(t), "broken.pdf", "")
	require.Error(t, err)
	assert.Equal(t, CodeCorruptDocument, ErrorCode(err))
}

func TestPDFAdapter_RasterizationProducesNoPages(t *testing.T) {
	runner := stubRunner{run: func(name string, args []string) ([]byte, []byte, error) {
		return nil, nil, nil // pdftotext empty, pdftoppm writes nothing
	}}
	a := newPDFAdapter(Config{}, runner, testLogger())

	_, err := a.Process(context.Background(), pdfContent(t), "blank.pdf", "")
	require.Error(t, err)
	assert.Equal(t, CodeCorruptDocument, ErrorCode(err))
}

func TestPDFAdapter_BadBase64(t *testing.T) {
	a := newPDFAdapter(Config{}, stubRunner{}, testLogger())

	_, err := a.Process(context.Background(), constants.PDFMarker+";base64,!!not-base64!!", "x.pdf", "")
	require.Error(t, err)
	assert.Equal(t, CodeInvalidInputFormat, ErrorCode(err))
}
