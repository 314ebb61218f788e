package board

import "github.com/board-explorer/backend/internal/models"

// PlaceholderText is the idle-state label shown when no route is selected.
const PlaceholderText = "Select a route"

// Renderer composes route holds, the layout table and the style table into
// diagrams. It holds no mutable state; a single renderer is safe for any
// number of concurrent Render calls.
type Renderer struct {
	style *StyleTable
}

// NewRenderer creates a renderer with the given style table, or the default
// table when nil.
func NewRenderer(style *StyleTable) *Renderer {
	if style == nil {
		style = DefaultStyle()
	}
	return &Renderer{style: style}
}

// Render produces the diagram for a route. Pure function of its inputs; it
// never fails:
//
//   - empty uuid or a route with no holds entry renders the idle-state
//     placeholder panel
//   - holds with no layout entry are skipped
//   - roles outside the style table use the default color
//
// Markers layer in hold order, later holds over earlier ones.
func (r *Renderer) Render(uuid string, holds models.HoldsMap, layout *models.LayoutMap) models.Diagram {
	d := models.Diagram{
		Width:  models.BoardWidth,
		Height: models.BoardHeight,
		Background: models.Panel{
			Width:        models.BoardWidth,
			Height:       models.BoardHeight,
			CornerRadius: 6,
			Fill:         r.style.PanelFill,
		},
	}

	routeHolds := HoldsFor(uuid, holds)
	if len(routeHolds) == 0 {
		d.Placeholder = PlaceholderText
		return d
	}

	for _, rh := range routeHolds {
		coords, ok := Resolve(rh.Hold, layout)
		if !ok {
			continue
		}
		d.Markers = append(d.Markers, models.Marker{
			X:     coords.X + models.MarkerOffsetX,
			Y:     coords.Y + models.MarkerOffsetY,
			Color: r.style.ColorFor(rh.Role),
			Role:  rh.Role,
		})
	}

	return d
}

// RenderEmpty returns the idle-state diagram directly.
func (r *Renderer) RenderEmpty() models.Diagram {
	return r.Render("", nil, nil)
}
