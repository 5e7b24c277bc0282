package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parrot-sketch/Callsheet-extractor/internal/entity"
	"github.com/parrot-sketch/Callsheet-extractor/internal/llm"
)

// ExtractContacts implements llm.CallsheetExtractor via chat/completions.
// Text strategies go out as a plain user message; vision strategies attach
// the routed page images as image_url parts.
func (c *Client) ExtractContacts(ctx context.Context, req llm.ExtractRequest) (entity.ExtractionResult, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.Text),
		"images", len(req.Images),
	)

	schema := llm.BuildCallsheetJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildSystemPrompt()},
			{"role": "user", "content": buildUserContent(req)},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, httpErr := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if httpErr != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.ExtractionResult{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.ExtractionResult{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.ExtractionResult{}, raw, fmt.Errorf("no choices in openai response")
	}
	rawContent := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	// Validate strictly first; on failure sanitize and re-validate.
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		cleaned, dropped, sErr := llm.NormalizeAndSanitizeJSON(rawContent, c.logger)
		if sErr != nil {
			c.logger.Error("llm.extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return entity.ExtractionResult{}, rawContent, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.logger.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(cleaned),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return entity.ExtractionResult{}, rawContent, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.logger.Warn("llm.extract.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	var out entity.ExtractionResult
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.logger.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.ExtractionResult{}, rawContent, fmt.Errorf("unmarshal extraction: %w", err)
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"contacts", len(out.Contacts),
		"emergency_contacts", len(out.EmergencyContacts),
		"locations", len(out.Locations),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

// buildUserContent returns either a plain string or multimodal parts,
// depending on the routing strategy.
func buildUserContent(req llm.ExtractRequest) any {
	if len(req.Images) == 0 {
		return llm.BuildUserPrompt(req)
	}
	parts := []map[string]any{
		{"type": "text", "text": llm.BuildUserPrompt(req)},
	}
	for _, img := range req.Images {
		parts = append(parts, map[string]any{
			"type":      "image_url",
			"image_url": map[string]any{"url": img},
		})
	}
	return parts
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
