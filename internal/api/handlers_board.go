// handlers_board.go - Board diagram rendering handlers
package api

import (
	"net/http"

	"github.com/board-explorer/backend/internal/board"
	"github.com/board-explorer/backend/internal/models"
	"github.com/labstack/echo/v4"
)

const svgContentType = "image/svg+xml"

// renderDiagram produces the diagram for a uuid against whatever catalog is
// loaded. With no dataset the board still renders its idle state; rendering
// follows the fail-soft contract and never errors.
func (h *Handler) renderDiagram(uuid string) models.Diagram {
	cat, ok := h.catalog.Current()
	if !ok {
		return h.renderer.RenderEmpty()
	}
	return h.renderer.Render(uuid, cat.Holds, cat.Layout)
}

// HandleRenderBoardSVG returns the rendered board as an SVG document.
func (h *Handler) HandleRenderBoardSVG(c echo.Context) error {
	d := h.renderDiagram(c.Param("uuid"))
	return c.Blob(http.StatusOK, svgContentType, []byte(board.EncodeSVG(d)))
}

// HandleRenderBoard returns the diagram as JSON for callers that draw the
// primitives themselves.
func (h *Handler) HandleRenderBoard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.renderDiagram(c.Param("uuid")))
}

// HandleEmptyBoardSVG returns the idle-state board.
func (h *Handler) HandleEmptyBoardSVG(c echo.Context) error {
	d := h.renderer.RenderEmpty()
	return c.Blob(http.StatusOK, svgContentType, []byte(board.EncodeSVG(d)))
}
