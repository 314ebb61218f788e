// Package board renders a route's hold set as a schematic panel diagram.
//
// The package is the core of the explorer: given a route uuid, the route's
// hold sequence and the panel layout table, it produces a self-contained
// diagram. Its defining policy is graceful degradation: missing routes,
// missing coordinates and unknown roles all map to a defined fallback
// visual, never to an error. Board datasets are routinely incomplete and a
// partial diagram beats a failure.
package board

import "github.com/board-explorer/backend/internal/models"

// Resolve finds the panel coordinates for a hold reference. Because snapshot
// producers disagree on the layout key type, resolution tries three forms in
// order, first match wins:
//
//  1. the identifier as given
//  2. its string form
//  3. its integer form, when the string form is entirely numeric
//
// A miss on all three means the hold has no known position; callers drop it
// from rendering.
func Resolve(ref models.HoldRef, layout *models.LayoutMap) (models.Coordinates, bool) {
	if layout == nil {
		return models.Coordinates{}, false
	}

	// As given.
	if ref.IsInt {
		if c, ok := layout.ByID(ref.ID); ok {
			return c, true
		}
	} else if ref.Key != "" {
		if c, ok := layout.ByKey(ref.Key); ok {
			return c, true
		}
	}

	// String form.
	if c, ok := layout.ByKey(ref.String()); ok {
		return c, true
	}

	// Integer form.
	if id, ok := ref.Numeric(); ok {
		if c, ok := layout.ByID(id); ok {
			return c, true
		}
	}

	return models.Coordinates{}, false
}
