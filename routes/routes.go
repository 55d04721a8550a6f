// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"quickchat/commons"
	"quickchat/handlers"
	"quickchat/middlewares"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *handlers.Handler) {
	commons.Logger.Debug("Registering v1 routes")
	requireAuth := middlewares.VerifyAuthMiddleware(h.Secret)

	api_v1 := e.Group("/v1")
	api_v1.POST("/auth/login", h.LoginHandler)
	api_v1.POST("/messages", h.SendMessageHandler, requireAuth)
	api_v1.GET("/messages/:collection", h.GetMessagesHandler, requireAuth)
	api_v1.GET("/messages/:collection/longest", h.GetLongestMessageHandler, requireAuth)
	api_v1.GET("/messages/:collection/report", h.GetReportHandler, requireAuth)
	api_v1.GET("/messages/:collection/id/:id", h.GetMessageByIDHandler, requireAuth)
	api_v1.GET("/messages/:collection/recipient/:recipient", h.GetMessagesByRecipientHandler, requireAuth)
	api_v1.DELETE("/messages/:collection/hash/:hash", h.DeleteMessageByHashHandler, requireAuth)
	api_v1.GET("/event-logs", h.GetEventLogsHandler, requireAuth)
	commons.Logger.Info("v1 routes registered successfully")
}
