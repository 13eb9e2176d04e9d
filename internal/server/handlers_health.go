package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleHealth reports healthy only once the classifier model has finished
// loading; before that the service is reachable but not ready.
func (s *Server) handleHealth(c echo.Context) error {
	if !s.ready.Load() {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
