package entity

// IssueSeverity classifies a normalization issue. Issues are advisory and
// never block the result.
type IssueSeverity string

const (
	SeverityWarning IssueSeverity = "warning"
	SeverityError   IssueSeverity = "error"
)

// Issue flags a field that still looks wrong after normalization.
type Issue struct {
	Severity    IssueSeverity `json:"type"`
	Field       string        `json:"field"`
	ContactName string        `json:"contactName,omitempty"`
	Message     string        `json:"message"`
}

// Stats counts what the engine changed in a single pass. Counters only
// increment when a value actually changed, so re-normalizing an already
// clean result yields all zeros except TotalContacts.
type Stats struct {
	PhonesNormalized    int `json:"phonesNormalized"`
	NamesNormalized     int `json:"namesNormalized"`
	RolesNormalized     int `json:"rolesNormalized"`
	DepartmentsInferred int `json:"departmentsInferred"`
	DuplicatesRemoved   int `json:"duplicatesRemoved"`
	TotalContacts       int `json:"totalContacts"`
}

// NormalizationResult wraps the cleaned extraction with a machine-readable
// diff of what changed and what still looks suspect.
type NormalizationResult struct {
	Result ExtractionResult `json:"result"`
	Stats  Stats            `json:"stats"`
	Issues []Issue          `json:"issues"`
}
