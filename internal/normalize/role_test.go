package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"dp abbreviation", "dp", "Director of Photography"},
		{"dp uppercase", "DP", "Director of Photography"},
		{"dop abbreviation", "DoP", "Director of Photography"},
		{"first ad", "1st ad", "1st Assistant Director"},
		{"second ad", "2nd AD", "2nd Assistant Director"},
		{"gaffer", "gaffer", "Gaffer"},
		{"hmu", "HMU", "Hair & Makeup"},
		{"substring fallback", "key grip / rigging", "Key Grip"},
		{"canonical passes through", "Director of Photography", "Director of Photography"},
		{"unknown title-cased", "craft services", "Craft Services"},
		{"unknown preserved in meaning", "drone pilot", "Drone Pilot"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeRole(tc.input))
		})
	}
}

func TestNormalizeRole_Idempotent(t *testing.T) {
	inputs := []string{"dp", "1st ad", "gaffer", "craft services", "Set Medic", "Unit Production Manager"}
	for _, in := range inputs {
		once := NormalizeRole(in)
		assert.Equal(t, once, NormalizeRole(once), "normalize should be idempotent for %q", in)
	}
}

func TestInferDepartment(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		expected string
	}{
		{"photography goes to camera", "Director of Photography", "Camera"},
		{"camera assistant", "1st Assistant Camera", "Camera"},
		{"gaffer", "Gaffer", "Grip & Electric"},
		{"key grip", "Key Grip", "Grip & Electric"},
		{"sound mixer", "Sound Mixer", "Sound"},
		{"makeup", "Makeup Artist", "Hair & Makeup"},
		{"wardrobe", "Wardrobe Stylist", "Wardrobe"},
		{"producer", "Line Producer", "Production"},
		{"assistant director", "1st Assistant Director", "Production"},
		{"location manager", "Location Manager", "Locations"},
		{"colorist", "Colorist", "Post-Production"},
		{"no match", "Caterer", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InferDepartment(tc.role))
		})
	}
}
