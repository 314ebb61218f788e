// Package models contains domain types for the Board Explorer.
package models

// Role is the function a hold plays within a route. The numeric codes come
// from the board product's placement tables; treat the set as configuration,
// not a universal constant.
type Role int

const (
	RoleStart  Role = 12
	RoleMiddle Role = 13
	RoleFinish Role = 14
	RoleFoot   Role = 15
)

// Route is a single climb: a named, graded set of holds on the panel.
// Name, Grade and Angle are canonicalized at load time; X and Y are the
// route's position on the catalog scatter map (projection coordinates,
// roughly 0..1), zero when the snapshot carries none.
type Route struct {
	UUID  string  `json:"uuid"`
	Name  string  `json:"name"`
	Grade int     `json:"grade"`
	Angle string  `json:"angle"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`

	// Popularity is the value of an ascent/star-like source field when one
	// exists, used only to pick which routes survive display sampling.
	Popularity float64 `json:"popularity,omitempty"`
}

// RouteHold pairs a hold reference with its role in the route.
type RouteHold struct {
	Hold HoldRef `json:"hold"`
	Role Role    `json:"role"`
}

// HoldsMap maps a route uuid to its ordered hold sequence. Built once at
// load time and read-only afterwards; order is source order and carries no
// rendering semantics.
type HoldsMap map[string][]RouteHold
