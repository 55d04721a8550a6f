// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"quickchat/app"
	"quickchat/auth"
	"quickchat/models"
	"quickchat/store"

	"github.com/labstack/echo/v4"
)

type EventLister interface {
	Recent(limit int) ([]models.EventLog, error)
}

// Handler serves one message session over HTTP.
type Handler struct {
	Session *app.Session
	Account *auth.Account
	Secret  []byte
	// Events is nil when no database is configured.
	Events EventLister
}

func collectionParam(c echo.Context) store.Collection {
	return store.Collection(pathParam(c, "collection"))
}

func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// dispatchError maps a session error onto an HTTP error.
func (h *Handler) dispatchError(c echo.Context, req app.Request, err error) *echo.HTTPError {
	logger := c.Logger()
	reason := app.Reason(err, req.Content, h.Session.Factory().Recipients)

	switch {
	case errors.Is(err, models.ErrInvalidID),
		errors.Is(err, models.ErrInvalidRecipient),
		errors.Is(err, models.ErrInvalidContent),
		errors.Is(err, app.ErrMissingInput),
		errors.Is(err, app.ErrUnknownAction):
		logger.Warnf("Rejected %s request: %v", req.Command, err)
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: reason}
	case errors.Is(err, app.ErrUnknownCollection):
		logger.Warnf("Unknown collection %q", req.Collection)
		return &echo.HTTPError{Code: http.StatusNotFound, Message: "Collection not found"}
	case errors.Is(err, app.ErrMessageLimit):
		logger.Warn("Message limit reached.")
		return &echo.HTTPError{Code: http.StatusTooManyRequests, Message: reason}
	case errors.Is(err, app.ErrSnapshotFailed):
		logger.Errorf("Failed to save snapshot: %v", err)
		return &echo.HTTPError{Code: http.StatusInternalServerError, Message: reason}
	}
	logger.Errorf("Failed to run %s: %v", req.Command, err)
	return echo.ErrInternalServerError
}
