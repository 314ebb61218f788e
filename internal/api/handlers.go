package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/board-explorer/backend/internal/board"
	"github.com/board-explorer/backend/internal/catalog"
	"github.com/board-explorer/backend/internal/dataset"
	"github.com/board-explorer/backend/internal/storage"
	"github.com/labstack/echo/v4"
)

// defaultMaxPoints caps scatter responses when the config doesn't say
// otherwise.
const defaultMaxPoints = 2000

// Handler handles API requests.
type Handler struct {
	store     storage.Store
	catalog   *catalog.Store
	renderer  *board.Renderer
	fieldMap  *dataset.FieldMap
	maxPoints int
}

// NewHandler creates a new API handler.
func NewHandler(store storage.Store, catalogStore *catalog.Store, renderer *board.Renderer) *Handler {
	if renderer == nil {
		renderer = board.NewRenderer(nil)
	}
	return &Handler{
		store:     store,
		catalog:   catalogStore,
		renderer:  renderer,
		fieldMap:  dataset.DefaultFieldMap(),
		maxPoints: defaultMaxPoints,
	}
}

// SetMaxPoints overrides the scatter display budget.
func (h *Handler) SetMaxPoints(n int) {
	if n > 0 {
		h.maxPoints = n
	}
}

// LoadDefaultSnapshot loads the configured snapshot file if it exists.
// Missing files are not an error: the server starts empty and waits for an
// upload.
func (h *Handler) LoadDefaultSnapshot(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	snap, err := dataset.Load(path, h.fieldMap)
	if err != nil {
		return fmt.Errorf("failed to load default snapshot: %w", err)
	}

	h.catalog.Set(catalog.New(snap))
	return nil
}

// HandleHealth returns server health status.
func (h *Handler) HandleHealth(c echo.Context) error {
	status := map[string]interface{}{
		"status": "ok",
	}
	if cat, ok := h.catalog.Current(); ok {
		status["routes"] = cat.Len()
		status["source"] = cat.Source
	}
	return c.JSON(http.StatusOK, status)
}
