package entity

// ProductionInfo is the call sheet header block. All fields are nullable:
// the model omits anything it cannot read.
type ProductionInfo struct {
	Title             *string `json:"title"`
	ProductionCompany *string `json:"production_company"`
	ShootDate         *string `json:"shoot_date"`
}

// Contact is a single crew or cast entry. Name is the only required field;
// everything else is best-effort model output.
type Contact struct {
	Name       string   `json:"name"`
	Role       *string  `json:"role,omitempty"`
	Department *string  `json:"department,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	Confidence *float32 `json:"confidence,omitempty"`
}

// EmergencyContact is a safety entry (nearest hospital, set medic, fire).
type EmergencyContact struct {
	Type  string  `json:"type"`
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Location is a shoot location entry.
type Location struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// ExtractionResult is the shape shared by the model's raw output and the
// engine's normalized output. Order of the slices is meaningful: the
// deduplicator treats earlier entries as authoritative.
type ExtractionResult struct {
	ProductionInfo    ProductionInfo     `json:"production_info"`
	Contacts          []Contact          `json:"contacts"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
	Locations         []Location         `json:"locations"`
}
