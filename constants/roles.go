package constants

import "strings"

// RoleMapping pairs a production shorthand with its canonical role title.
// The slice is ordered: substring fallback matching walks it front to back
// and the first hit wins, so more specific abbreviations come first within
// each group.
type RoleMapping struct {
	Abbreviation string
	Canonical    string
}

// RoleAbbreviations is the canonical role table, grouped by department.
// Loaded once at startup; never mutated.
var RoleAbbreviations = []RoleMapping{
	// Camera
	{"dp", "Director of Photography"},
	{"dop", "Director of Photography"},
	{"1st ac", "1st Assistant Camera"},
	{"2nd ac", "2nd Assistant Camera"},
	{"cam op", "Camera Operator"},
	{"camera op", "Camera Operator"},
	{"steadicam", "Steadicam Operator"},
	{"dit", "Digital Imaging Technician"},
	{"vtr", "VTR Operator"},
	// Grip & Electric
	{"gaffer", "Gaffer"},
	{"bbe", "Best Boy Electric"},
	{"best boy electric", "Best Boy Electric"},
	{"key grip", "Key Grip"},
	{"bbg", "Best Boy Grip"},
	{"best boy grip", "Best Boy Grip"},
	{"dolly grip", "Dolly Grip"},
	{"swing", "Swing"},
	{"electrician", "Electrician"},
	// Production
	{"1st ad", "1st Assistant Director"},
	{"2nd ad", "2nd Assistant Director"},
	{"upm", "Unit Production Manager"},
	{"lp", "Line Producer"},
	{"ep", "Executive Producer"},
	{"pm", "Production Manager"},
	{"pc", "Production Coordinator"},
	{"pa", "Production Assistant"},
	{"prod", "Producer"},
	{"dir", "Director"},
	{"scripty", "Script Supervisor"},
	// Art
	{"prod designer", "Production Designer"},
	{"art dir", "Art Director"},
	{"set dec", "Set Decorator"},
	{"props", "Property Master"},
	{"leadman", "Leadman"},
	// Hair / Makeup / Wardrobe
	{"hmu", "Hair & Makeup"},
	{"mua", "Makeup Artist"},
	{"key makeup", "Key Makeup Artist"},
	{"key hair", "Key Hair Stylist"},
	{"wardrobe", "Wardrobe Stylist"},
	{"costume designer", "Costume Designer"},
	// Sound
	{"sound mixer", "Sound Mixer"},
	{"boom op", "Boom Operator"},
	{"utility sound", "Utility Sound Technician"},
	// Photo
	{"photog", "Photographer"},
	{"photo assist", "Photo Assistant"},
	{"digitech", "Digital Technician"},
	{"retoucher", "Retoucher"},
	// Miscellaneous
	{"loc manager", "Location Manager"},
	{"medic", "Set Medic"},
	{"colorist", "Colorist"},
}

// LookupRole resolves a role shorthand to its canonical title.
// Exact (case-insensitive) matches win — against abbreviations first, then
// against canonical titles so already-normalized roles pass through stable.
// Otherwise the first table entry whose abbreviation appears as a substring
// of the input wins. Returns false when nothing matches.
func LookupRole(input string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}
	for _, m := range RoleAbbreviations {
		if normalized == m.Abbreviation {
			return m.Canonical, true
		}
	}
	for _, m := range RoleAbbreviations {
		if normalized == strings.ToLower(m.Canonical) {
			return m.Canonical, true
		}
	}
	for _, m := range RoleAbbreviations {
		if strings.Contains(normalized, m.Abbreviation) {
			return m.Canonical, true
		}
	}
	return "", false
}
