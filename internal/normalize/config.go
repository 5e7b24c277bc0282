// Package normalize cleans, deduplicates, and structurally repairs the
// contact data returned by the extraction model. It is pure in-memory
// transformation: no I/O, no shared state, and it never fails — noisy or
// partial extraction still produces a usable result.
package normalize

// Config toggles the individual normalization passes. Every pass is
// independently switchable; the zero value disables everything, so use
// DefaultConfig as the starting point.
type Config struct {
	NormalizePhones    bool
	NormalizeNames     bool
	NormalizeRoles     bool
	InferDepartments   bool
	Deduplicate        bool
	DefaultCountryCode string
}

// DefaultConfig enables every pass with a US country code.
func DefaultConfig() Config {
	return Config{
		NormalizePhones:    true,
		NormalizeNames:     true,
		NormalizeRoles:     true,
		InferDepartments:   true,
		Deduplicate:        true,
		DefaultCountryCode: "1",
	}
}
