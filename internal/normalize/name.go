package normalize

import (
	"strings"
	"unicode"
)

// specialPrefixes are surname prefixes that capitalize both the prefix and
// the remainder (McDonald, MacArthur, O'Brien). Checked in order.
var specialPrefixes = []string{"mc", "mac", "o'"}

// nameParticles stay lowercase unless they start the name.
var nameParticles = map[string]struct{}{
	"de": {}, "del": {}, "della": {}, "di": {}, "da": {},
	"van": {}, "von": {}, "der": {}, "den": {},
	"la": {}, "le": {}, "du": {},
}

// NormalizeName Title-Cases a person name while respecting surname
// prefixes, lowercase particles, and hyphenated segments. Idempotent.
func NormalizeName(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	if collapsed == "" {
		return collapsed
	}

	words := strings.Split(collapsed, " ")
	for i, word := range words {
		words[i] = normalizeWord(word, i == 0)
	}
	return strings.Join(words, " ")
}

func normalizeWord(word string, first bool) string {
	lower := strings.ToLower(word)

	for _, prefix := range specialPrefixes {
		if strings.HasPrefix(lower, prefix) && len(lower) > len(prefix) {
			rest := titleCase(lower[len(prefix):])
			if prefix == "o'" {
				// O'Brien: literal apostrophe-capital form
				return "O'" + rest
			}
			return titleCase(prefix) + rest
		}
	}

	if !first {
		if _, ok := nameParticles[lower]; ok {
			return lower
		}
	}

	if strings.Contains(lower, "-") {
		segments := strings.Split(lower, "-")
		for i, seg := range segments {
			segments[i] = titleCase(seg)
		}
		return strings.Join(segments, "-")
	}

	return titleCase(lower)
}

// titleCase uppercases the first rune and lowercases the rest.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// IsValidName reports whether a normalized name still looks like a name:
// at least two characters after trimming and at least one letter.
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
