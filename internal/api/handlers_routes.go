// handlers_routes.go - Route catalog query handlers
package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/board-explorer/backend/internal/catalog"
	"github.com/board-explorer/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// routeListResponse is the payload for the list endpoints. Total counts the
// filter matches before display sampling; Routes holds what survived it.
type routeListResponse struct {
	Routes []models.Route `json:"routes" msgpack:"routes"`
	Total  int            `json:"total" msgpack:"total"`
	Shown  int            `json:"shown" msgpack:"shown"`
}

// filterFromQuery applies the grade/name/budget query parameters against the
// active catalog.
func (h *Handler) filterFromQuery(c echo.Context, cat *catalog.Catalog) ([]models.Route, int) {
	gradeMin := intQuery(c, "grade_min", 0)
	gradeMax := intQuery(c, "grade_max", math.MaxInt32)
	query := c.QueryParam("q")
	max := intQuery(c, "max", h.maxPoints)

	filtered := catalog.FilterRoutes(cat.Routes, gradeMin, gradeMax, query)
	return catalog.Sample(filtered, max), len(filtered)
}

// HandleListRoutes returns the filtered route list as JSON.
func (h *Handler) HandleListRoutes(c echo.Context) error {
	cat, ok := h.catalog.Current()
	if !ok {
		return NewNoDatasetError()
	}

	shown, total := h.filterFromQuery(c, cat)
	return c.JSON(http.StatusOK, routeListResponse{
		Routes: emptyIfNil(shown),
		Total:  total,
		Shown:  len(shown),
	})
}

// HandleListRoutesMsgpack returns the filtered route list msgpack-encoded
// for bulk transfers.
func (h *Handler) HandleListRoutesMsgpack(c echo.Context) error {
	cat, ok := h.catalog.Current()
	if !ok {
		return NewNoDatasetError()
	}

	shown, total := h.filterFromQuery(c, cat)
	data, err := msgpack.Marshal(routeListResponse{
		Routes: emptyIfNil(shown),
		Total:  total,
		Shown:  len(shown),
	})
	if err != nil {
		return NewInternalError("failed to encode msgpack", err)
	}

	return c.Blob(http.StatusOK, "application/msgpack", data)
}

// HandleRoutePoints returns scatter-map points for the filtered routes.
func (h *Handler) HandleRoutePoints(c echo.Context) error {
	cat, ok := h.catalog.Current()
	if !ok {
		return NewNoDatasetError()
	}

	shown, total := h.filterFromQuery(c, cat)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"points": catalog.Points(shown),
		"total":  total,
	})
}

// HandleGradeBounds returns the min and max grade across the catalog, for
// the UI's grade range slider.
func (h *Handler) HandleGradeBounds(c echo.Context) error {
	cat, ok := h.catalog.Current()
	if !ok {
		return NewNoDatasetError()
	}

	min, max := catalog.GradeBounds(cat.Routes)
	return c.JSON(http.StatusOK, map[string]int{"min": min, "max": max})
}

// HandleResolveRoute resolves a route by name: exact match first, then an
// unambiguous substring match.
func (h *Handler) HandleResolveRoute(c echo.Context) error {
	cat, ok := h.catalog.Current()
	if !ok {
		return NewNoDatasetError()
	}

	query := c.QueryParam("q")
	if query == "" {
		return NewValidationError("q")
	}

	route, ok := catalog.ResolveRouteByName(query, cat.Routes)
	if !ok {
		return NewNotFoundError("route", query)
	}
	return c.JSON(http.StatusOK, route)
}

// HandleGetRoute returns one route's metadata plus its hold count.
func (h *Handler) HandleGetRoute(c echo.Context) error {
	cat, ok := h.catalog.Current()
	if !ok {
		return NewNoDatasetError()
	}

	uuid := c.Param("uuid")
	route, ok := cat.Route(uuid)
	if !ok {
		return NewNotFoundError("route", uuid)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"route": route,
		"holds": len(cat.Holds[uuid]),
	})
}

func intQuery(c echo.Context, name string, fallback int) int {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func emptyIfNil(routes []models.Route) []models.Route {
	if routes == nil {
		return []models.Route{}
	}
	return routes
}
