package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health reports that the web client is up and whether the backend
// answers.  It returns 200 in both cases; the backend is an external
// collaborator and its outage does not make this process unhealthy.
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	backend := "ok"
	if err := h.API.Ping(ctx); err != nil {
		backend = "unreachable"
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "backend": backend})
}
