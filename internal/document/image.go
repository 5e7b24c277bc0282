package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/parrot-sketch/Callsheet-extractor/constants"
)

// imageAdapter validates photographed call sheets and passes the blob
// through untouched for the vision path. The size gate works off the
// encoded length so oversized uploads are rejected without a full decode.
type imageAdapter struct{}

func (a *imageAdapter) Name() string { return "image" }

func (a *imageAdapter) CanProcess(content, mimeHint string) bool {
	return strings.HasPrefix(content, constants.ImageMarker) || strings.HasPrefix(mimeHint, "image/")
}

func (a *imageAdapter) Process(_ context.Context, content, filename, mimeHint string) (*ProcessedDocument, error) {
	mimeType, payload, ok := parseDataURL(content)
	if !ok {
		return nil, invalidInputError("image content is not an encoded data URL", nil)
	}

	subtype := constants.NormalizeExt(strings.TrimPrefix(mimeType, "image/"))
	if _, allowed := constants.AllowedImageSubtypes[subtype]; !allowed {
		return nil, unsupportedFormatError(
			fmt.Sprintf("image subtype %q is not supported (allowed: png, jpeg, jpg, gif, webp)", subtype))
	}

	size := encodedPayloadSize(payload)
	if size > constants.MaxImageBytes {
		return nil, payloadTooLargeError(
			fmt.Sprintf("image is %d bytes; maximum is %d", size, constants.MaxImageBytes))
	}

	return &ProcessedDocument{
		Type:   TypeImage,
		Images: []string{content},
		Metadata: Metadata{
			OriginalFilename: filename,
			MIMEType:         mimeType,
			Size:             size,
			PageCount:        1,
		},
		Strategy:       StrategyVision,
		RequiresVision: true,
	}, nil
}
