package rest

import (
	"context"
	"mySkinMatch/business/stats"
	"mySkinMatch/pkg/logger"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type StatsService interface {
	GetSystemStats(ctx context.Context) (stats.SystemStats, error)
}

type AdminHandler struct {
	statsService StatsService
	timeout      time.Duration
}

func NewAdminHandler(statsService StatsService) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
		timeout:      10 * time.Second,
	}
}

// GetSystemStats serves the admin dashboard counters.
func (h *AdminHandler) GetSystemStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	systemStats, err := h.statsService.GetSystemStats(ctx)
	if err != nil {
		logger.Error("Failed to get system stats", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(systemStats))
}
