// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// GetEventLogsHandler godoc
// @Summary      Recent message events
// @Description  Lists what happened to messages, newest first. Only available with a database backend.
// @Tags         event-logs
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Maximum number of events"  default(50)
// @Success      200 {object} EventLogsResponse
// @Failure      404 {object} echo.HTTPError     "Event log not enabled"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/event-logs [get]
func (h *Handler) GetEventLogsHandler(c echo.Context) error {
	logger := c.Logger()

	if h.Events == nil {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "Event log is only available with a database store backend",
		}
	}

	limit := defaultEventLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "limit must be a positive integer",
			}
		}
		limit = min(n, maxEventLimit)
	}

	events, err := h.Events.Recent(limit)
	if err != nil {
		logger.Errorf("Failed to list event logs: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, EventLogsResponse{Count: len(events), Data: events})
}
