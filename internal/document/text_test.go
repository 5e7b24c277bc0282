package document

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parrot-sketch/Callsheet-extractor/constants"
)

func TestTextAdapter_RawText(t *testing.T) {
	a := &textAdapter{}
	content := "CALL SHEET\nDay 3 of 12\nCrew call 7:00 AM"

	doc, err := a.Process(context.Background(), content, "callsheet.txt", "text/plain")
	require.NoError(t, err)

	assert.Equal(t, TypeText, doc.Type)
	assert.Equal(t, StrategyDirectText, doc.Strategy)
	assert.False(t, doc.RequiresVision)
	assert.Equal(t, content, doc.TextContent)
	assert.Empty(t, doc.Images)
}

func TestTextAdapter_DecodesEmbeddedBase64(t *testing.T) {
	a := &textAdapter{}
	plain := "CALL SHEET - crew call at 7am sharp"
	content := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte(plain))

	doc, err := a.Process(context.Background(), content, "callsheet.txt", "")
	require.NoError(t, err)
	assert.Equal(t, plain, doc.TextContent)
}

func TestTextAdapter_TooShort(t *testing.T) {
	a := &textAdapter{}

	_, err := a.Process(context.Background(), "hi", "note.txt", "")
	require.Error(t, err)
	assert.Equal(t, CodeInsufficientContent, ErrorCode(err))
}

func TestTextAdapter_CatchAllClaimsEverything(t *testing.T) {
	a := &textAdapter{}
	assert.True(t, a.CanProcess("anything at all", ""))
	assert.True(t, a.CanProcess("data:application/zip;base64,UEsDBA==", ""))
}

func TestSmartTruncate(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		assert.Equal(t, "hello", smartTruncate("hello", 100))
	})

	t.Run("cuts at paragraph break", func(t *testing.T) {
		text := strings.Repeat("a", 80) + "\n\n" + strings.Repeat("b", 40)
		out := smartTruncate(text, 100)
		assert.Equal(t, strings.Repeat("a", 80), out)
	})

	t.Run("falls back to line break", func(t *testing.T) {
		text := strings.Repeat("a", 90) + "\n" + strings.Repeat("b", 40)
		out := smartTruncate(text, 100)
		assert.Equal(t, strings.Repeat("a", 90), out)
	})

	t.Run("falls back to sentence terminator", func(t *testing.T) {
		text := strings.Repeat("a", 89) + ". " + strings.Repeat("b", 40)
		out := smartTruncate(text, 100)
		assert.Equal(t, strings.Repeat("a", 89)+".", out)
	})

	t.Run("hard cut when no boundary", func(t *testing.T) {
		text := strings.Repeat("a", 200)
		out := smartTruncate(text, 100)
		assert.Len(t, out, 100)
	})

	t.Run("early boundary ignored", func(t *testing.T) {
		text := "first.\n\n" + strings.Repeat("a", 200)
		out := smartTruncate(text, 100)
		assert.Len(t, out, 100, "a break inside the first 70% is not a useful cut")
	})
}

func TestTextAdapter_TruncatesLongContent(t *testing.T) {
	a := &textAdapter{}
	content := strings.Repeat("x", constants.MaxTextChars+500)

	doc, err := a.Process(context.Background(), content, "big.txt", "")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(doc.TextContent, constants.TruncationMarker))
	assert.LessOrEqual(t, len(doc.TextContent), constants.MaxTextChars+len(constants.TruncationMarker))
	assert.Equal(t, constants.MaxTextChars+500, doc.Metadata.Size, "metadata keeps the original size")
}
