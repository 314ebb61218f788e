// handlers_snapshot.go - Snapshot upload and activation handlers
package api

import (
	"encoding/base64"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/board-explorer/backend/internal/catalog"
	"github.com/board-explorer/backend/internal/dataset"
	"github.com/labstack/echo/v4"
)

// allowedSnapshotExts are the formats the loader understands.
var allowedSnapshotExts = map[string]bool{
	".msgpack": true,
	".mpk":     true,
	".duckdb":  true,
	".db":      true,
}

type uploadSnapshotRequest struct {
	Name string `json:"name"`
	Data string `json:"data"` // Base64-encoded file content
}

func (r *uploadSnapshotRequest) validate() error {
	if r.Name == "" {
		return NewValidationError("name")
	}
	if r.Data == "" {
		return NewValidationError("data")
	}
	if !allowedSnapshotExts[strings.ToLower(filepath.Ext(r.Name))] {
		return NewBadRequestError("unsupported snapshot format", nil)
	}
	return nil
}

// HandleUploadSnapshot accepts a snapshot file as base64 JSON, stores it and
// activates it immediately.
func (h *Handler) HandleUploadSnapshot(c echo.Context) error {
	var req uploadSnapshotRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	decoded, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return NewBadRequestError("invalid base64 data", err)
	}

	info, err := h.store.SaveBytes(req.Name, decoded)
	if err != nil {
		return NewInternalError("failed to save snapshot file", err)
	}

	if err := h.activateSnapshot(info.ID); err != nil {
		info.Status = "error"
		return err
	}
	info.Status = "active"

	return c.JSON(http.StatusCreated, info)
}

type activateSnapshotRequest struct {
	ID string `json:"id"`
}

// HandleActivateSnapshot loads a previously uploaded snapshot and swaps it
// in as the active catalog.
func (h *Handler) HandleActivateSnapshot(c echo.Context) error {
	var req activateSnapshotRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	if req.ID == "" {
		return NewValidationError("id")
	}

	if err := h.activateSnapshot(req.ID); err != nil {
		return err
	}

	cat, _ := h.catalog.Current()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":     req.ID,
		"routes": cat.Len(),
	})
}

func (h *Handler) activateSnapshot(id string) error {
	info, err := h.store.Get(id)
	if err != nil {
		return NewNotFoundError("snapshot", id)
	}

	path, err := h.store.GetFilePath(id)
	if err != nil {
		return NewNotFoundError("snapshot", id)
	}

	snap, err := dataset.LoadNamed(path, info.Name, h.fieldMap)
	if err != nil {
		return NewBadRequestError("failed to load snapshot", err)
	}

	h.catalog.Set(catalog.New(snap))
	return nil
}

// HandleGetSnapshotInfo describes the active dataset.
func (h *Handler) HandleGetSnapshotInfo(c echo.Context) error {
	cat, ok := h.catalog.Current()
	if !ok {
		return c.JSON(http.StatusOK, map[string]interface{}{"loaded": false})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"loaded":   true,
		"source":   cat.Source,
		"routes":   cat.Len(),
		"holds":    len(cat.Holds),
		"layout":   cat.Layout.Len(),
		"loadedAt": cat.LoadedAt,
	})
}

// HandleRecentSnapshots lists recently uploaded snapshot files.
func (h *Handler) HandleRecentSnapshots(c echo.Context) error {
	files, err := h.store.List(20)
	if err != nil {
		return NewInternalError("failed to list snapshots", err)
	}
	return c.JSON(http.StatusOK, files)
}

// HandleDeleteSnapshot removes an uploaded snapshot file. The active catalog
// stays loaded even when its backing file goes away.
func (h *Handler) HandleDeleteSnapshot(c echo.Context) error {
	id := c.Param("id")
	if err := h.store.Delete(id); err != nil {
		return NewNotFoundError("snapshot", id)
	}
	return c.NoContent(http.StatusNoContent)
}
