package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consoleiam/admin-console/internal/core/guard"
)

// ViewHandler reports which console screens the live session may enter.
type ViewHandler struct {
	gates map[string]*guard.Guard
}

// NewViewHandler takes one guard per screen, keyed by screen name.
func NewViewHandler(gates map[string]*guard.Guard) *ViewHandler {
	return &ViewHandler{gates: gates}
}

// List returns the current verdict of every screen guard.
//
// @Summary      Screen access
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /views [get]
func (h *ViewHandler) List(c echo.Context) error {
	out := make(map[string]bool, len(h.gates))
	for name, g := range h.gates {
		out[name] = guard.Render(g, true)
	}
	return c.JSON(http.StatusOK, out)
}
