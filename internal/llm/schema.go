package llm

// BuildCallsheetJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to OpenAI as a structured output constraint and
// also use it locally to validate.
func BuildCallsheetJSONSchema() map[string]any {
	contact := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":       map[string]any{"type": "string", "minLength": 1},
			"role":       map[string]any{"type": "string"},
			"department": map[string]any{"type": "string"},
			"phone":      map[string]any{"type": "string"},
			"email":      map[string]any{"type": "string"},
			"notes":      map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"name"},
	}

	emergencyContact := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"type":  map[string]any{"type": "string", "minLength": 1},
			"name":  map[string]any{"type": "string"},
			"phone": map[string]any{"type": "string"},
		},
		"required": []string{"type"},
	}

	location := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":    map[string]any{"type": "string"},
			"address": map[string]any{"type": "string"},
			"phone":   map[string]any{"type": "string"},
		},
	}

	productionInfo := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title":              map[string]any{"type": []string{"string", "null"}},
			"production_company": map[string]any{"type": []string{"string", "null"}},
			"shoot_date":         map[string]any{"type": []string{"string", "null"}},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"production_info":    productionInfo,
			"contacts":           map[string]any{"type": "array", "items": contact},
			"emergency_contacts": map[string]any{"type": "array", "items": emergencyContact},
			"locations":          map[string]any{"type": "array", "items": location},
		},
		"required": []string{"production_info", "contacts", "emergency_contacts", "locations"},
	}
}
