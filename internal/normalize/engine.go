package normalize

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/tiendc/go-deepcopy"

	"github.com/parrot-sketch/Callsheet-extractor/internal/entity"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Engine runs the configured normalization passes over a raw extraction.
// It owns a fresh copy of the input: the caller's original is never aliased
// or mutated, so raw and normalized results can be diffed afterwards.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Normalize cleans a raw extraction. It never fails: malformed values are
// normalized best-effort and anything still suspect is flagged as an
// advisory issue alongside an always-usable result.
func (e *Engine) Normalize(raw entity.ExtractionResult) entity.NormalizationResult {
	out := entity.NormalizationResult{Issues: []entity.Issue{}}

	if err := deepcopy.Copy(&out.Result, &raw); err != nil {
		// Cannot happen for these plain struct shapes; degrade loudly.
		e.logger.Error("normalize.copy_failed", "error", err)
		out.Result = raw
	}

	if len(out.Result.Contacts) == 0 {
		out.Issues = append(out.Issues, entity.Issue{
			Severity: entity.SeverityWarning,
			Field:    "contacts",
			Message:  "contacts array is empty",
		})
	}

	for i := range out.Result.Contacts {
		e.normalizeContact(&out.Result.Contacts[i], &out)
	}

	if e.cfg.Deduplicate {
		deduped, removed := Deduplicate(out.Result.Contacts)
		out.Result.Contacts = deduped
		out.Stats.DuplicatesRemoved = removed
	}

	for i := range out.Result.EmergencyContacts {
		e.normalizePhoneField(out.Result.EmergencyContacts[i].Phone, &out.Stats)
	}
	for i := range out.Result.Locations {
		e.normalizePhoneField(out.Result.Locations[i].Phone, &out.Stats)
	}

	out.Stats.TotalContacts = len(out.Result.Contacts)

	e.logger.Debug("normalize.done",
		"contacts", out.Stats.TotalContacts,
		"duplicates_removed", out.Stats.DuplicatesRemoved,
		"phones", out.Stats.PhonesNormalized,
		"names", out.Stats.NamesNormalized,
		"roles", out.Stats.RolesNormalized,
		"departments", out.Stats.DepartmentsInferred,
		"issues", len(out.Issues),
	)
	return out
}

func (e *Engine) normalizeContact(c *entity.Contact, out *entity.NormalizationResult) {
	if e.cfg.NormalizeNames {
		normalized := NormalizeName(c.Name)
		if normalized != c.Name {
			c.Name = normalized
			out.Stats.NamesNormalized++
		}
		if !IsValidName(c.Name) {
			out.Issues = append(out.Issues, entity.Issue{
				Severity:    entity.SeverityWarning,
				Field:       "name",
				ContactName: c.Name,
				Message:     "name looks invalid after normalization",
			})
		}
	}

	if e.cfg.NormalizePhones && c.Phone != nil {
		normalized := NormalizePhone(*c.Phone)
		if normalized != *c.Phone {
			c.Phone = &normalized
			out.Stats.PhonesNormalized++
		}
		if !IsValidPhone(*c.Phone) {
			out.Issues = append(out.Issues, entity.Issue{
				Severity:    entity.SeverityWarning,
				Field:       "phone",
				ContactName: c.Name,
				Message:     "phone has an implausible digit count",
			})
		}
	}

	if e.cfg.NormalizeRoles && c.Role != nil {
		normalized := NormalizeRole(*c.Role)
		if normalized != *c.Role {
			c.Role = &normalized
			out.Stats.RolesNormalized++
		}
	}

	if e.cfg.InferDepartments && departmentMissing(c.Department) && c.Role != nil {
		if dept := InferDepartment(*c.Role); dept != "" {
			c.Department = &dept
			out.Stats.DepartmentsInferred++
		}
	}

	if c.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*c.Email))
		if lowered != *c.Email {
			c.Email = &lowered
		}
		if !emailPattern.MatchString(*c.Email) {
			out.Issues = append(out.Issues, entity.Issue{
				Severity:    entity.SeverityWarning,
				Field:       "email",
				ContactName: c.Name,
				Message:     "email does not look like a valid address",
			})
		}
	}
}

// normalizePhoneField applies phone normalization in place for the entries
// that get no other treatment (emergency contacts, locations).
func (e *Engine) normalizePhoneField(phone *string, stats *entity.Stats) {
	if !e.cfg.NormalizePhones || phone == nil {
		return
	}
	normalized := NormalizePhone(*phone)
	if normalized != *phone {
		*phone = normalized
		stats.PhonesNormalized++
	}
}

func departmentMissing(dept *string) bool {
	return dept == nil || strings.TrimSpace(*dept) == ""
}
