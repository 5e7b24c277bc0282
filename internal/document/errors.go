package document

import (
	"github.com/parrot-sketch/Callsheet-extractor/internal/common"
)

// Error codes for the routing taxonomy. Every router failure is terminal
// for the request: adapters are deterministic given the same bytes, so
// retrying is useless.
const (
	CodeInvalidInputFormat  = "INVALID_INPUT_FORMAT"
	CodeUnsupportedFormat   = "UNSUPPORTED_FORMAT"
	CodeInsufficientContent = "INSUFFICIENT_CONTENT"
	CodeCorruptDocument     = "CORRUPT_DOCUMENT"
	CodeToolUnavailable     = "TOOL_UNAVAILABLE"
	CodePayloadTooLarge     = "PAYLOAD_TOO_LARGE"
	CodeNoProcessorFound    = "NO_PROCESSOR_FOUND"
)

func invalidInputError(message string, cause error) *common.AppError {
	return common.NewAppError(CodeInvalidInputFormat, message, cause)
}

func unsupportedFormatError(message string) *common.AppError {
	return common.NewAppError(CodeUnsupportedFormat, message, nil)
}

func insufficientContentError(message string) *common.AppError {
	return common.NewAppError(CodeInsufficientContent, message, nil)
}

func corruptDocumentError(message string, cause error) *common.AppError {
	return common.NewAppError(CodeCorruptDocument, message, cause)
}

func toolUnavailableError(message string, cause error) *common.AppError {
	return common.NewAppError(CodeToolUnavailable, message, cause)
}

func payloadTooLargeError(message string) *common.AppError {
	return common.NewAppError(CodePayloadTooLarge, message, nil)
}

func noProcessorFoundError(filename string) *common.AppError {
	return common.NewAppError(CodeNoProcessorFound, "no processor accepts "+filename, nil)
}
