package llm

import "strings"

// BuildSystemPrompt composes the system message with the extraction rules
// the normalization engine relies on downstream.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a production call sheet parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Extract every crew and cast contact you can find, with role, department, phone, and email when visible.",
		"Extract emergency contacts (nearest hospital, set medic, fire/police) with their type.",
		"Extract shoot locations with name, address, and phone when visible.",
		"Copy names, phones, and emails exactly as printed; do not reformat them.",
		"Do not merge people who appear more than once; output each occurrence.",
		"If a field is not present, omit it. Never output empty strings.",
		"Include a 'confidence' between 0 and 1 per contact when you are unsure of a reading.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the document content and the filename hint.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if hint := strings.TrimSpace(req.FilenameHint); hint != "" {
		b.WriteString("Filename: ")
		b.WriteString(hint)
		b.WriteString("\n\n")
	}
	if req.Text != "" {
		b.WriteString("Call sheet text:\n")
		b.WriteString(req.Text)
	} else {
		b.WriteString("The call sheet pages are attached as images.")
	}
	return b.String()
}
