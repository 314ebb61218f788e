package board

import (
	"testing"

	"github.com/board-explorer/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func testLayout() *models.LayoutMap {
	layout := models.NewLayoutMap()
	layout.SetInt(101, models.Coordinates{X: 10, Y: 20})
	layout.SetInt(102, models.Coordinates{X: 30, Y: 40})
	return layout
}

func TestRender_EmptyStates(t *testing.T) {
	r := NewRenderer(nil)
	holds := models.HoldsMap{}

	tests := []struct {
		name string
		uuid string
	}{
		{name: "no selection", uuid: ""},
		{name: "unknown route", uuid: "no-such-route"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := r.Render(tt.uuid, holds, testLayout())
			assert.Equal(t, PlaceholderText, d.Placeholder)
			assert.Empty(t, d.Markers)
			assert.Equal(t, float64(models.BoardWidth), d.Width)
			assert.Equal(t, float64(models.BoardHeight), d.Height)
		})
	}
}

func TestRender_MarkersPerHold(t *testing.T) {
	r := NewRenderer(nil)
	holds := models.HoldsMap{
		"r1": {
			{Hold: models.IntRef(101), Role: models.RoleStart},
			{Hold: models.IntRef(102), Role: models.RoleMiddle},
		},
	}

	d := r.Render("r1", holds, testLayout())

	assert.Empty(t, d.Placeholder)
	if assert.Len(t, d.Markers, 2) {
		// Positions carry the fixed viewBox padding offset.
		assert.Equal(t, 10.0+models.MarkerOffsetX, d.Markers[0].X)
		assert.Equal(t, 20.0+models.MarkerOffsetY, d.Markers[0].Y)
		assert.Equal(t, "#00DD00", d.Markers[0].Color)
		assert.Equal(t, 30.0+models.MarkerOffsetX, d.Markers[1].X)
		assert.Equal(t, 40.0+models.MarkerOffsetY, d.Markers[1].Y)
		assert.Equal(t, "#00FFFF", d.Markers[1].Color)
	}

	for _, m := range d.Markers {
		assert.Len(t, m.Primitives(), 3)
	}
}

func TestRender_SkipsUnresolvedHolds(t *testing.T) {
	r := NewRenderer(nil)
	holds := models.HoldsMap{
		"r1": {
			{Hold: models.IntRef(101), Role: models.RoleStart},
			{Hold: models.IntRef(999), Role: models.RoleMiddle},
			{Hold: models.IntRef(102), Role: models.RoleFinish},
		},
	}

	d := r.Render("r1", holds, testLayout())
	assert.Len(t, d.Markers, 2)
	assert.Empty(t, d.Placeholder)
}

// A route whose holds all miss the layout renders a bare panel, not the
// idle-state placeholder: "has holds but none resolve" and "has no holds"
// are different states.
func TestRender_AllUnresolvedIsBarePanel(t *testing.T) {
	r := NewRenderer(nil)
	holds := models.HoldsMap{
		"r2": {{Hold: models.IntRef(999), Role: models.RoleMiddle}},
	}

	d := r.Render("r2", holds, testLayout())
	assert.Empty(t, d.Markers)
	assert.Empty(t, d.Placeholder)
}

func TestRender_UnknownRoleFallsBack(t *testing.T) {
	r := NewRenderer(nil)
	holds := models.HoldsMap{
		"r1": {{Hold: models.IntRef(101), Role: models.Role(42)}},
	}

	d := r.Render("r1", holds, testLayout())
	if assert.Len(t, d.Markers, 1) {
		assert.Equal(t, DefaultStyle().DefaultColor, d.Markers[0].Color)
	}
}

func TestRender_StringKeyedLayout(t *testing.T) {
	layout := models.NewLayoutMap()
	layout.SetKey("101", models.Coordinates{X: 10, Y: 20})

	r := NewRenderer(nil)
	holds := models.HoldsMap{
		"r1": {{Hold: models.IntRef(101), Role: models.RoleMiddle}},
	}

	d := r.Render("r1", holds, layout)
	assert.Len(t, d.Markers, 1)
}

func TestRenderEmpty(t *testing.T) {
	d := NewRenderer(nil).RenderEmpty()
	assert.Equal(t, PlaceholderText, d.Placeholder)
	assert.Empty(t, d.Markers)
}
