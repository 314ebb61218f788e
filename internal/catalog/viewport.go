package catalog

// Viewport is the scatter map's visible window in normalized map space. The
// UI owns the state and passes it through these pure transitions; nothing
// here is ambient or mutable.
type Viewport struct {
	X [2]float64 `json:"x"`
	Y [2]float64 `json:"y"`
}

const (
	zoomStep = 0.1
	panStep  = 0.2
)

// DefaultViewport shows the full map.
func DefaultViewport() Viewport {
	return Viewport{X: [2]float64{0, 1}, Y: [2]float64{0, 1}}
}

// ZoomIn narrows the window by 10% on each edge.
func (v Viewport) ZoomIn() Viewport {
	xs, ys := v.X[1]-v.X[0], v.Y[1]-v.Y[0]
	return Viewport{
		X: [2]float64{v.X[0] + xs*zoomStep, v.X[1] - xs*zoomStep},
		Y: [2]float64{v.Y[0] + ys*zoomStep, v.Y[1] - ys*zoomStep},
	}
}

// ZoomOut widens the window by 10% on each edge.
func (v Viewport) ZoomOut() Viewport {
	xs, ys := v.X[1]-v.X[0], v.Y[1]-v.Y[0]
	return Viewport{
		X: [2]float64{v.X[0] - xs*zoomStep, v.X[1] + xs*zoomStep},
		Y: [2]float64{v.Y[0] - ys*zoomStep, v.Y[1] + ys*zoomStep},
	}
}

// Pan shifts the window by 20% of its span. dx and dy are -1, 0 or 1.
func (v Viewport) Pan(dx, dy int) Viewport {
	xs, ys := v.X[1]-v.X[0], v.Y[1]-v.Y[0]
	return Viewport{
		X: [2]float64{v.X[0] + xs*panStep*float64(dx), v.X[1] + xs*panStep*float64(dx)},
		Y: [2]float64{v.Y[0] + ys*panStep*float64(dy), v.Y[1] + ys*panStep*float64(dy)},
	}
}

// Apply dispatches a named viewport action. Unknown actions return the
// viewport unchanged.
func (v Viewport) Apply(action string) Viewport {
	switch action {
	case "in":
		return v.ZoomIn()
	case "out":
		return v.ZoomOut()
	case "left":
		return v.Pan(-1, 0)
	case "right":
		return v.Pan(1, 0)
	case "up":
		return v.Pan(0, 1)
	case "down":
		return v.Pan(0, -1)
	case "reset":
		return DefaultViewport()
	default:
		return v
	}
}
