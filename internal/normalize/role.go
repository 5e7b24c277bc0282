package normalize

import (
	"strings"

	"github.com/parrot-sketch/Callsheet-extractor/constants"
)

// NormalizeRole expands production shorthand ("dp", "1st ad") to canonical
// role titles. Unrecognized roles come back Title-Cased but otherwise
// untouched — the table never invents meaning.
func NormalizeRole(role string) string {
	if canonical, ok := constants.LookupRole(role); ok {
		return canonical
	}
	return titleCaseWords(role)
}

// InferDepartment suggests a department from the role's keywords, or ""
// when nothing matches. Callers must leave the department empty on a miss.
func InferDepartment(role string) string {
	if dept, ok := constants.InferDepartment(role); ok {
		return dept
	}
	return ""
}

// titleCaseWords Title-Cases every whitespace-separated word.
func titleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = titleCase(w)
	}
	return strings.Join(words, " ")
}
