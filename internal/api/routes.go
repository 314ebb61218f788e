// routes.go - Route registration helpers
package api

import "github.com/labstack/echo/v4"

// Options control which optional routes get registered.
type Options struct {
	AllowSnapshotDeletion bool
}

// RegisterRoutes registers all API routes with the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler, opts Options) {
	apiGroup := e.Group("/api")

	apiGroup.GET("/health", h.HandleHealth)

	// Route catalog
	routeGroup := apiGroup.Group("/routes")
	routeGroup.GET("", h.HandleListRoutes)
	routeGroup.GET("/msgpack", h.HandleListRoutesMsgpack)
	routeGroup.GET("/points", h.HandleRoutePoints)
	routeGroup.GET("/grades", h.HandleGradeBounds)
	routeGroup.GET("/resolve", h.HandleResolveRoute)
	routeGroup.GET("/:uuid", h.HandleGetRoute)

	// Board rendering
	boardGroup := apiGroup.Group("/board")
	boardGroup.GET("/empty.svg", h.HandleEmptyBoardSVG)
	boardGroup.GET("/:uuid/svg", h.HandleRenderBoardSVG)
	boardGroup.GET("/:uuid", h.HandleRenderBoard)

	// Snapshot management
	snapGroup := apiGroup.Group("/snapshot")
	snapGroup.GET("", h.HandleGetSnapshotInfo)
	snapGroup.POST("/upload", h.HandleUploadSnapshot)
	snapGroup.POST("/active", h.HandleActivateSnapshot)
	snapGroup.GET("/files/recent", h.HandleRecentSnapshots)
	if opts.AllowSnapshotDeletion {
		snapGroup.DELETE("/files/:id", h.HandleDeleteSnapshot)
	}
}
