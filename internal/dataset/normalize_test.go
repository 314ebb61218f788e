package dataset

import (
	"testing"

	"github.com/board-explorer/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_FieldPriority(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
		want models.Route
	}{
		{
			name: "full raw record",
			raw: map[string]interface{}{
				"uuid":       "abc-123",
				"climb_name": "Jedi Mind Tricks",
				"difficulty": 17,
				"angle":      "40",
			},
			want: models.Route{UUID: "abc-123", Name: "Jedi Mind Tricks", Grade: 17, Angle: "40"},
		},
		{
			name: "lower priority grade column",
			raw: map[string]interface{}{
				"uuid":    "abc",
				"title":   "Some Route",
				"v_grade": "7",
			},
			want: models.Route{UUID: "abc", Name: "Some Route", Grade: 7, Angle: "Unknown"},
		},
		{
			name: "prefixed name column matches by substring",
			raw: map[string]interface{}{
				"uuid":           "abc",
				"the_route_name": "Moonboard Classic",
				"grade":          4.0,
			},
			want: models.Route{UUID: "abc", Name: "Moonboard Classic", Grade: 4, Angle: "Unknown"},
		},
		{
			name: "non-numeric grade coerces to zero",
			raw: map[string]interface{}{
				"uuid":  "abc",
				"name":  "Broken Data",
				"grade": "project",
			},
			want: models.Route{UUID: "abc", Name: "Broken Data", Grade: 0, Angle: "Unknown"},
		},
		{
			name: "negative grade clamps to zero",
			raw: map[string]interface{}{
				"uuid":       "abc",
				"name":       "Odd Export",
				"difficulty": -3,
			},
			want: models.Route{UUID: "abc", Name: "Odd Export", Grade: 0, Angle: "Unknown"},
		},
		{
			name: "missing name synthesizes from uuid",
			raw: map[string]interface{}{
				"uuid": "0123456789abcdef",
			},
			want: models.Route{UUID: "0123456789abcdef", Name: "Route 01234567", Grade: 0, Angle: "Unknown"},
		},
		{
			name: "empty record",
			raw:  map[string]interface{}{},
			want: models.Route{Name: "Unnamed Route", Angle: "Unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_MapCoordinatesAndPopularity(t *testing.T) {
	got := Normalize(map[string]interface{}{
		"uuid":               "abc",
		"name":               "R",
		"x":                  0.25,
		"y":                  0.75,
		"ascensionist_count": 120,
	}, nil)

	assert.Equal(t, 0.25, got.X)
	assert.Equal(t, 0.75, got.Y)
	assert.Equal(t, 120.0, got.Popularity)
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize(map[string]interface{}{
		"uuid":       "abc-123",
		"climb_name": "Jedi Mind Tricks",
		"difficulty": "17.5",
		"angle":      "40",
		"x":          0.5,
		"y":          0.5,
	}, nil)

	again := Normalize(map[string]interface{}{
		"uuid":       once.UUID,
		"name":       once.Name,
		"grade":      once.Grade,
		"angle":      once.Angle,
		"x":          once.X,
		"y":          once.Y,
		"popularity": once.Popularity,
	}, nil)

	assert.Equal(t, once, again)
}

func TestNormalize_CustomFieldMapFallsBackToCanonical(t *testing.T) {
	fm := &FieldMap{
		Name:  []string{"titel"},
		Grade: []string{"schwierigkeit"},
	}

	// A record already in canonical form still normalizes cleanly under a
	// field map that doesn't mention the canonical names.
	got := Normalize(map[string]interface{}{
		"uuid":  "abc",
		"name":  "Canonical",
		"grade": 5,
	}, fm)

	assert.Equal(t, "Canonical", got.Name)
	assert.Equal(t, 5, got.Grade)
}
