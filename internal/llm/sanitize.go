package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// NormalizeAndSanitizeJSON repairs the model's raw JSON into something the
// schema will accept without losing usable data:
//   - Guarantees the four top-level members exist (missing arrays -> empty)
//   - Renames known synonyms (crew -> contacts, emergency -> emergency_contacts)
//   - Drops contact entries with no usable name
//   - Drops null/empty optionals and coerces numeric confidence
//   - Removes unknown keys (strict additionalProperties friendliness)
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms models drift into
	renamed("crew", "contacts")
	renamed("crew_contacts", "contacts")
	renamed("emergency", "emergency_contacts")
	renamed("production", "production_info")

	// 2) guarantee the top-level shape
	if _, ok := m["production_info"].(map[string]any); !ok {
		if m["production_info"] != nil {
			dropped = append(dropped, "production_info(type)")
		}
		m["production_info"] = map[string]any{}
	}
	for _, k := range []string{"contacts", "emergency_contacts", "locations"} {
		if _, ok := m[k].([]any); !ok {
			if m[k] != nil {
				dropped = append(dropped, k+"(type)")
			}
			m[k] = []any{}
		}
	}

	// 3) per-contact cleanup
	contactKeys := map[string]struct{}{
		"name": {}, "role": {}, "department": {}, "phone": {},
		"email": {}, "notes": {}, "confidence": {},
	}
	contacts := m["contacts"].([]any)
	kept := make([]any, 0, len(contacts))
	for i, raw := range contacts {
		entry, ok := raw.(map[string]any)
		if !ok {
			dropped = append(dropped, fmt.Sprintf("contacts[%d](type)", i))
			continue
		}
		sanitizeEntry(entry, contactKeys, &dropped)
		name, _ := entry["name"].(string)
		if strings.TrimSpace(name) == "" {
			dropped = append(dropped, fmt.Sprintf("contacts[%d](no name)", i))
			continue
		}
		kept = append(kept, entry)
	}
	m["contacts"] = kept

	emergencyKeys := map[string]struct{}{"type": {}, "name": {}, "phone": {}}
	sanitizeEntries(m, "emergency_contacts", emergencyKeys, &dropped)
	locationKeys := map[string]struct{}{"name": {}, "address": {}, "phone": {}}
	sanitizeEntries(m, "locations", locationKeys, &dropped)

	// 4) remove unknown top-level keys
	allowed := map[string]struct{}{
		"production_info": {}, "contacts": {}, "emergency_contacts": {}, "locations": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

func sanitizeEntries(m map[string]any, key string, allowed map[string]struct{}, dropped *[]string) {
	entries, _ := m[key].([]any)
	kept := make([]any, 0, len(entries))
	for i, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			*dropped = append(*dropped, fmt.Sprintf("%s[%d](type)", key, i))
			continue
		}
		sanitizeEntry(entry, allowed, dropped)
		kept = append(kept, entry)
	}
	m[key] = kept
}

// sanitizeEntry drops nulls, empties, unknown keys, and coerces confidence
// to a number in range.
func sanitizeEntry(entry map[string]any, allowed map[string]struct{}, dropped *[]string) {
	for k, v := range entry {
		if _, ok := allowed[k]; !ok {
			delete(entry, k)
			*dropped = append(*dropped, k+"(unknown)")
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(entry, k)
		case string:
			if strings.TrimSpace(t) == "" {
				delete(entry, k)
			}
		case float64:
			if k == "confidence" {
				if t < 0 {
					entry[k] = 0.0
				} else if t > 1 {
					entry[k] = 1.0
				}
			} else {
				// numeric where a string belongs (phones come back as numbers)
				entry[k] = fmt.Sprintf("%.0f", t)
			}
		}
	}
}
