package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parrot-sketch/Callsheet-extractor/internal/entity"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig(), nil)
}

func TestNormalize_EmptyExtraction(t *testing.T) {
	engine := newTestEngine()

	out := engine.Normalize(entity.ExtractionResult{Contacts: []entity.Contact{}})

	assert.Zero(t, out.Stats.TotalContacts)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, entity.SeverityWarning, out.Issues[0].Severity)
	assert.Equal(t, "contacts", out.Issues[0].Field)
}

func TestNormalize_EndToEndScenario(t *testing.T) {
	engine := newTestEngine()
	raw := entity.ExtractionResult{
		Contacts: []entity.Contact{
			{Name: "dave o'neil", Phone: strptr("5551234567"), Role: strptr("dp")},
			{Name: "Dave O'Neil", Phone: strptr("555-123-4567")},
		},
	}

	out := engine.Normalize(raw)

	require.Len(t, out.Result.Contacts, 1)
	c := out.Result.Contacts[0]
	assert.Equal(t, "Dave O'Neil", c.Name)
	require.NotNil(t, c.Phone)
	assert.Equal(t, "(555) 123-4567", *c.Phone)
	require.NotNil(t, c.Role)
	assert.Equal(t, "Director of Photography", *c.Role)
	require.NotNil(t, c.Department)
	assert.Equal(t, "Camera", *c.Department)
	assert.Equal(t, 1, out.Stats.DuplicatesRemoved)
	assert.Equal(t, 1, out.Stats.TotalContacts)
}

func TestNormalize_RawInputNeverMutated(t *testing.T) {
	engine := newTestEngine()
	raw := entity.ExtractionResult{
		Contacts: []entity.Contact{
			{Name: "john smith", Phone: strptr("5551234567"), Role: strptr("gaffer")},
		},
	}

	before, err := json.Marshal(raw)
	require.NoError(t, err)

	_ = engine.Normalize(raw)

	after, err := json.Marshal(raw)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after), "engine must work on its own copy")
}

func TestNormalize_RoundTripStable(t *testing.T) {
	engine := newTestEngine()
	raw := entity.ExtractionResult{
		Contacts: []entity.Contact{
			{Name: "mcdonald", Phone: strptr("555-123-4567"), Role: strptr("dp"), Email: strptr("MC@Set.COM")},
			{Name: "jean-claude van damme", Phone: strptr("15551234567"), Role: strptr("1st ad")},
		},
		EmergencyContacts: []entity.EmergencyContact{
			{Type: "hospital", Name: strptr("St. Mary's"), Phone: strptr("555-999-0000")},
		},
		Locations: []entity.Location{
			{Name: strptr("Stage 4"), Phone: strptr("5558881111")},
		},
	}

	first := engine.Normalize(raw)
	second := engine.Normalize(first.Result)

	firstJSON, err := json.Marshal(first.Result)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second.Result)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON), "second pass must not change anything")

	assert.Zero(t, second.Stats.PhonesNormalized)
	assert.Zero(t, second.Stats.NamesNormalized)
	assert.Zero(t, second.Stats.RolesNormalized)
	assert.Zero(t, second.Stats.DepartmentsInferred)
	assert.Zero(t, second.Stats.DuplicatesRemoved)
	assert.Equal(t, first.Stats.TotalContacts, second.Stats.TotalContacts)
}

func TestNormalize_CountsOnlyActualChanges(t *testing.T) {
	engine := newTestEngine()
	raw := entity.ExtractionResult{
		Contacts: []entity.Contact{
			{Name: "jane doe", Phone: strptr("5550001111"), Role: strptr("gaffer")},
			{Name: "Already Clean", Phone: strptr("(555) 123-4567"), Role: strptr("Key Grip"), Department: strptr("Grip & Electric")},
		},
	}

	out := engine.Normalize(raw)

	assert.Equal(t, 1, out.Stats.NamesNormalized)
	assert.Equal(t, 1, out.Stats.PhonesNormalized)
	assert.Equal(t, 1, out.Stats.RolesNormalized)
	// department inferred only for the first contact; second already has one
	assert.Equal(t, 1, out.Stats.DepartmentsInferred)
}

func TestNormalize_InvalidPhoneKeptWithWarning(t *testing.T) {
	engine := newTestEngine()
	raw := entity.ExtractionResult{
		Contacts: []entity.Contact{
			{Name: "Bo Chan", Phone: strptr("123")},
		},
	}

	out := engine.Normalize(raw)

	require.Len(t, out.Result.Contacts, 1)
	require.NotNil(t, out.Result.Contacts[0].Phone)
	assert.Equal(t, "123", *out.Result.Contacts[0].Phone, "invalid values are flagged, not removed")

	require.NotEmpty(t, out.Issues)
	assert.Equal(t, "phone", out.Issues[0].Field)
	assert.Equal(t, entity.SeverityWarning, out.Issues[0].Severity)
	assert.Equal(t, "Bo Chan", out.Issues[0].ContactName)
}

func TestNormalize_EmailLoweredAndChecked(t *testing.T) {
	engine := newTestEngine()
	raw := entity.ExtractionResult{
		Contacts: []entity.Contact{
			{Name: "Ann Field", Email: strptr(" Ann@Studio.COM ")},
			{Name: "Bad Email", Email: strptr("not-an-email")},
		},
	}

	out := engine.Normalize(raw)

	assert.Equal(t, "ann@studio.com", *out.Result.Contacts[0].Email)

	var emailIssues []entity.Issue
	for _, issue := range out.Issues {
		if issue.Field == "email" {
			emailIssues = append(emailIssues, issue)
		}
	}
	require.Len(t, emailIssues, 1)
	assert.Equal(t, "Bad Email", emailIssues[0].ContactName)
}

func TestNormalize_EmergencyAndLocationsPhoneOnly(t *testing.T) {
	engine := newTestEngine()
	raw := entity.ExtractionResult{
		Contacts: []entity.Contact{{Name: "Someone Real"}},
		EmergencyContacts: []entity.EmergencyContact{
			{Type: "hospital", Name: strptr("st. mary's general"), Phone: strptr("555-999-0000")},
			{Type: "hospital", Name: strptr("st. mary's general"), Phone: strptr("555-999-0000")},
		},
		Locations: []entity.Location{
			{Name: strptr("stage 4"), Phone: strptr("5558881111")},
		},
	}

	out := engine.Normalize(raw)

	assert.Equal(t, "(555) 999-0000", *out.Result.EmergencyContacts[0].Phone)
	assert.Equal(t, "(555) 888-1111", *out.Result.Locations[0].Phone)
	// names untouched, entries never deduplicated
	assert.Equal(t, "st. mary's general", *out.Result.EmergencyContacts[0].Name)
	assert.Len(t, out.Result.EmergencyContacts, 2)
	assert.Equal(t, "stage 4", *out.Result.Locations[0].Name)
}

func TestNormalize_TogglesDisableEachPass(t *testing.T) {
	cfg := Config{} // everything off
	engine := NewEngine(cfg, nil)
	raw := entity.ExtractionResult{
		Contacts: []entity.Contact{
			{Name: "john smith", Phone: strptr("5551234567"), Role: strptr("dp")},
			{Name: "John Smith", Phone: strptr("555-123-4567")},
		},
	}

	out := engine.Normalize(raw)

	assert.Len(t, out.Result.Contacts, 2, "dedup disabled")
	assert.Equal(t, "john smith", out.Result.Contacts[0].Name, "name pass disabled")
	assert.Equal(t, "5551234567", *out.Result.Contacts[0].Phone, "phone pass disabled")
	assert.Equal(t, "dp", *out.Result.Contacts[0].Role, "role pass disabled")
	assert.Nil(t, out.Result.Contacts[0].Department, "inference disabled")
	assert.Equal(t, 2, out.Stats.TotalContacts)
}

func TestNormalize_InvalidNameFlagged(t *testing.T) {
	engine := newTestEngine()
	raw := entity.ExtractionResult{
		Contacts: []entity.Contact{{Name: "1"}},
	}

	out := engine.Normalize(raw)

	require.NotEmpty(t, out.Issues)
	assert.Equal(t, "name", out.Issues[0].Field)
}
