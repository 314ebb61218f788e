package board

import "github.com/board-explorer/backend/internal/models"

// HoldsFor returns the ordered hold sequence for a route. Absent uuids,
// empty uuids and hold-less routes all yield an empty sequence, never an
// error; the caller distinguishes "no entry" from "entry with unresolvable
// holds" by what renders, not by a failure.
func HoldsFor(uuid string, holds models.HoldsMap) []models.RouteHold {
	if uuid == "" || holds == nil {
		return nil
	}
	return holds[uuid]
}
