package document

import (
	"encoding/base64"
	"strings"

	"github.com/parrot-sketch/Callsheet-extractor/constants"
)

// parseDataURL splits a data URL into its MIME type and base64 payload.
// Returns ok=false when content is not a data URL at all.
func parseDataURL(content string) (mimeType, payload string, ok bool) {
	if !strings.HasPrefix(content, constants.DataMarker) {
		return "", "", false
	}
	rest := strings.TrimPrefix(content, constants.DataMarker)
	comma := strings.Index(rest, ",")
	if comma < 0 {
		return "", "", false
	}
	header := rest[:comma]
	payload = rest[comma+1:]
	mimeType = strings.TrimSuffix(header, ";base64")
	return mimeType, payload, true
}

// decodeDataURL decodes the base64 payload of a data URL.
func decodeDataURL(content string) (mimeType string, data []byte, err error) {
	mt, payload, ok := parseDataURL(content)
	if !ok {
		return "", nil, invalidInputError("content is not an encoded data URL", nil)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return mt, nil, invalidInputError("content payload is not valid base64", err)
	}
	return mt, data, nil
}

// encodedPayloadSize estimates the decoded byte count of a base64 payload
// without decoding it: ceil(len(encoded)*3/4).
func encodedPayloadSize(payload string) int {
	return (len(payload)*3 + 3) / 4
}
