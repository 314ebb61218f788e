// Package catalog holds the loaded route catalog and the query operations
// the UI calls: grade/name filtering, name resolution, display-budget
// sampling. One Catalog is immutable after construction; swapping datasets
// replaces the whole catalog through the Store.
package catalog

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/board-explorer/backend/internal/dataset"
	"github.com/board-explorer/backend/internal/models"
)

// sampleSeed keeps random display sampling stable across requests so the
// scatter view doesn't reshuffle on every refresh.
const sampleSeed = 42

// Catalog is one loaded dataset indexed for lookup.
type Catalog struct {
	Routes   []models.Route
	Holds    models.HoldsMap
	Layout   *models.LayoutMap
	Source   string
	LoadedAt time.Time

	byUUID map[string]int
}

// New indexes a snapshot into a catalog.
func New(snap *dataset.Snapshot) *Catalog {
	c := &Catalog{
		Routes:   snap.Routes,
		Holds:    snap.Holds,
		Layout:   snap.Layout,
		Source:   snap.Source,
		LoadedAt: time.Now(),
		byUUID:   make(map[string]int, len(snap.Routes)),
	}
	for i, r := range snap.Routes {
		c.byUUID[r.UUID] = i
	}
	return c
}

// Route looks up a route by uuid.
func (c *Catalog) Route(uuid string) (models.Route, bool) {
	i, ok := c.byUUID[uuid]
	if !ok {
		return models.Route{}, false
	}
	return c.Routes[i], true
}

// Len returns the number of routes in the catalog.
func (c *Catalog) Len() int {
	return len(c.Routes)
}

// FilterRoutes returns the routes within [gradeMin, gradeMax] whose name
// contains the query substring (case-insensitive). An empty query matches
// everything.
func FilterRoutes(routes []models.Route, gradeMin, gradeMax int, nameSubstring string) []models.Route {
	query := strings.ToLower(strings.TrimSpace(nameSubstring))

	var out []models.Route
	for _, r := range routes {
		if r.Grade < gradeMin || r.Grade > gradeMax {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(r.Name), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ResolveRouteByName finds a route by name: an exact case-insensitive match
// wins, otherwise a substring match that hits exactly one route. Ambiguous
// or empty queries resolve to nothing.
func ResolveRouteByName(query string, routes []models.Route) (models.Route, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models.Route{}, false
	}

	for _, r := range routes {
		if strings.ToLower(r.Name) == q {
			return r, true
		}
	}

	var match models.Route
	hits := 0
	for _, r := range routes {
		if strings.Contains(strings.ToLower(r.Name), q) {
			match = r
			hits++
		}
	}
	if hits == 1 {
		return match, true
	}
	return models.Route{}, false
}

// GradeBounds returns the min and max grade across the routes, (0, 0) for an
// empty slice.
func GradeBounds(routes []models.Route) (int, int) {
	if len(routes) == 0 {
		return 0, 0
	}
	min, max := routes[0].Grade, routes[0].Grade
	for _, r := range routes[1:] {
		if r.Grade < min {
			min = r.Grade
		}
		if r.Grade > max {
			max = r.Grade
		}
	}
	return min, max
}

// Sample truncates routes to the display budget. When the dataset carries a
// popularity signal the most popular routes survive; otherwise a seeded
// pseudo-random sample keeps the view representative and stable.
func Sample(routes []models.Route, max int) []models.Route {
	if max <= 0 || len(routes) <= max {
		return routes
	}

	if hasPopularity(routes) {
		sorted := make([]models.Route, len(routes))
		copy(sorted, routes)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Popularity > sorted[j].Popularity
		})
		return sorted[:max]
	}

	rng := rand.New(rand.NewSource(sampleSeed))
	picked := rng.Perm(len(routes))[:max]
	sort.Ints(picked)

	out := make([]models.Route, 0, max)
	for _, i := range picked {
		out = append(out, routes[i])
	}
	return out
}

func hasPopularity(routes []models.Route) bool {
	for _, r := range routes {
		if r.Popularity > 0 {
			return true
		}
	}
	return false
}

// Point is one route's dot on the catalog scatter map.
type Point struct {
	UUID  string  `json:"uuid"`
	Name  string  `json:"name"`
	Grade int     `json:"grade"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Points projects routes into scatter points.
func Points(routes []models.Route) []Point {
	out := make([]Point, 0, len(routes))
	for _, r := range routes {
		out = append(out, Point{UUID: r.UUID, Name: r.Name, Grade: r.Grade, X: r.X, Y: r.Y})
	}
	return out
}
