package models

// Board viewport constants. The physical panel is roughly 150x160 units;
// the viewBox is padded slightly so edge holds don't clip.
const (
	BoardWidth  = 160
	BoardHeight = 170

	// Markers shift by this offset so the padded viewBox stays centered on
	// the panel.
	MarkerOffsetX = 5
	MarkerOffsetY = 5
)

// Marker cluster geometry. Cosmetic constants, but the three-layer
// glow/core/ring composition is the board's fixed visual language.
const (
	GlowRadius  = 4.0
	GlowOpacity = 0.3
	CoreRadius  = 2.0
	RingRadius  = 3.5
	RingStroke  = 0.7
)

// Panel is the diagram background: a rounded dark rectangle covering the
// full viewport.
type Panel struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	CornerRadius float64 `json:"cornerRadius"`
	Fill         string  `json:"fill"`
}

// Marker is one hold's visual cluster, already positioned in viewport space
// and colored by role.
type Marker struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Role  Role    `json:"role"`
}

// Primitive is a single drawable circle within a marker cluster.
type Primitive struct {
	Cx          float64 `json:"cx"`
	Cy          float64 `json:"cy"`
	R           float64 `json:"r"`
	Fill        string  `json:"fill,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// Primitives expands the marker into its three concentric circles in draw
// order: glow disc, core dot, ring outline.
func (m Marker) Primitives() []Primitive {
	return []Primitive{
		{Cx: m.X, Cy: m.Y, R: GlowRadius, Fill: m.Color, Opacity: GlowOpacity},
		{Cx: m.X, Cy: m.Y, R: CoreRadius, Fill: m.Color},
		{Cx: m.X, Cy: m.Y, R: RingRadius, Stroke: m.Color, StrokeWidth: RingStroke},
	}
}

// Diagram is the rendered output for one route: the background panel plus
// ordered marker clusters. Self-contained; no shared styling state. When
// Placeholder is non-empty the diagram is the idle state and Markers is nil.
type Diagram struct {
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Background  Panel    `json:"background"`
	Markers     []Marker `json:"markers"`
	Placeholder string   `json:"placeholder,omitempty"`
}
