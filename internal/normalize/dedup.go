package normalize

import (
	"strings"

	"github.com/parrot-sketch/Callsheet-extractor/internal/entity"
)

// Deduplicate merges contacts that resolve to the same person and reports
// how many records were folded away. First-seen order is preserved and the
// first-seen record is authoritative: later duplicates only fill fields the
// earlier record is missing.
func Deduplicate(contacts []entity.Contact) ([]entity.Contact, int) {
	merged := make([]entity.Contact, 0, len(contacts))
	index := make(map[string]int, len(contacts))

	for _, c := range contacts {
		key := dedupKey(c)
		if at, seen := index[key]; seen {
			merged[at] = mergeContact(merged[at], c)
			continue
		}
		index[key] = len(merged)
		merged = append(merged, c)
	}

	return merged, len(contacts) - len(merged)
}

// dedupKey builds the merge key: collapsed lowercase name, qualified by the
// phone's digit form when it is substantial, else by the email, else the
// name alone.
func dedupKey(c entity.Contact) string {
	name := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(c.Name))), " ")

	if c.Phone != nil {
		if digits := phoneDigits(*c.Phone); len(digits) >= 7 {
			return name + "|" + digits
		}
	}
	if c.Email != nil && strings.TrimSpace(*c.Email) != "" {
		return name + "|" + strings.ToLower(strings.TrimSpace(*c.Email))
	}
	return name
}

// mergeContact folds an incoming duplicate into the authoritative record.
// Existing values win field by field; notes concatenate when both sides
// carry something different.
func mergeContact(existing, incoming entity.Contact) entity.Contact {
	if existing.Role == nil {
		existing.Role = incoming.Role
	}
	if existing.Department == nil {
		existing.Department = incoming.Department
	}
	if existing.Phone == nil {
		existing.Phone = incoming.Phone
	}
	if existing.Email == nil {
		existing.Email = incoming.Email
	}
	if existing.Confidence == nil {
		existing.Confidence = incoming.Confidence
	}

	switch {
	case existing.Notes == nil:
		existing.Notes = incoming.Notes
	case incoming.Notes != nil && *incoming.Notes != *existing.Notes:
		combined := *existing.Notes + "; " + *incoming.Notes
		existing.Notes = &combined
	}

	return existing
}
