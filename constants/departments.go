package constants

import "strings"

// DepartmentKeywords maps a department to the role keywords that imply it.
// Ordered: inference walks the slice front to back and the first department
// with a keyword hit wins, so Camera must precede Production ("director of
// photography" contains both "photography" and "director").
type DepartmentKeywords struct {
	Department string
	Keywords   []string
}

var departmentKeywords = []DepartmentKeywords{
	{"Camera", []string{"photography", "camera", "steadicam", "imaging", "vtr", " ac"}},
	{"Grip & Electric", []string{"gaffer", "grip", "electric", "lighting", "swing"}},
	{"Sound", []string{"sound", "audio", "boom", "mixer"}},
	{"Art", []string{"art ", "prop", "set dec", "production designer", "leadman"}},
	{"Hair & Makeup", []string{"hair", "makeup", "hmu", "groom"}},
	{"Wardrobe", []string{"wardrobe", "stylist", "costume"}},
	{"Photo", []string{"photographer", "photo assist", "digital technician", "retoucher"}},
	{"Locations", []string{"location", "scout"}},
	{"Post-Production", []string{"editor", "colorist", "vfx", "post"}},
	{"Production", []string{"producer", "director", "production", "coordinator", "assistant", "medic", "script"}},
}

// InferDepartment returns the first department whose keyword list contains a
// substring match against the lowercased role, or false when nothing matches.
// Callers must not invent a department on a miss.
func InferDepartment(role string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(role))
	if normalized == "" {
		return "", false
	}
	for _, d := range departmentKeywords {
		for _, kw := range d.Keywords {
			if strings.Contains(normalized, kw) {
				return d.Department, true
			}
		}
	}
	return "", false
}
