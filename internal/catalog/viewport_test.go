package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportZoom(t *testing.T) {
	v := DefaultViewport()

	in := v.ZoomIn()
	assert.InDelta(t, 0.1, in.X[0], 1e-9)
	assert.InDelta(t, 0.9, in.X[1], 1e-9)
	assert.InDelta(t, 0.1, in.Y[0], 1e-9)
	assert.InDelta(t, 0.9, in.Y[1], 1e-9)

	out := v.ZoomOut()
	assert.InDelta(t, -0.1, out.X[0], 1e-9)
	assert.InDelta(t, 1.1, out.X[1], 1e-9)
}

func TestViewportPan(t *testing.T) {
	v := DefaultViewport()

	right := v.Pan(1, 0)
	assert.InDelta(t, 0.2, right.X[0], 1e-9)
	assert.InDelta(t, 1.2, right.X[1], 1e-9)
	assert.Equal(t, v.Y, right.Y)

	up := v.Pan(0, 1)
	assert.InDelta(t, 0.2, up.Y[0], 1e-9)
	assert.Equal(t, v.X, up.X)
}

func TestViewportApply(t *testing.T) {
	v := DefaultViewport().Apply("in").Apply("right")

	assert.Equal(t, DefaultViewport(), v.Apply("reset"))
	assert.Equal(t, v, v.Apply("wiggle"), "unknown actions are no-ops")
	assert.Equal(t, v.ZoomOut(), v.Apply("out"))
	assert.Equal(t, v.Pan(-1, 0), v.Apply("left"))
	assert.Equal(t, v.Pan(0, -1), v.Apply("down"))
	assert.Equal(t, v.Pan(0, 1), v.Apply("up"))
}
