package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger checks that a backing store is reachable.
type Pinger func() error

type HealthHandler struct {
	database Pinger
}

var healthHandler *HealthHandler

func NewHealthHandler(database Pinger) *HealthHandler {
	return &HealthHandler{
		database: database,
	}
}

func SetupHealthHandler(database Pinger) {
	healthHandler = NewHealthHandler(database)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckDatabaseHealth(c echo.Context) error {
	if h.database == nil {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "Database check not configured",
		})
	}

	if err := h.database(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "Database connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Database connected successfully",
	})
}
