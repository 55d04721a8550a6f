// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"quickchat/app"
	"quickchat/middlewares"
	"quickchat/models"

	"github.com/labstack/echo/v4"
)

// SendMessageHandler godoc
// @Summary      Compose a message
// @Description  Builds a message and sends, disregards or stores it. Stored messages are saved immediately.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sendMessageRequest  body  SendMessageRequest  true  "Send message request payload"
// @Success      201 {object} MessageResponse    "Message accepted"
// @Failure      400 {object} echo.HTTPError     "Invalid recipient, content or action"
// @Failure      401 {object} echo.HTTPError     "Unauthorized"
// @Failure      429 {object} echo.HTTPError     "Message limit reached"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/messages [post]
func (h *Handler) SendMessageHandler(c echo.Context) error {
	logger := c.Logger()

	var body SendMessageRequest
	if err := c.Bind(&body); err != nil {
		logger.Error("Invalid send message request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if body.Action == "" {
		body.Action = "send"
	}
	action, err := app.ParseAction(body.Action)
	if err != nil {
		logger.Errorf("Unknown action %q", body.Action)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "action field must be one of send, disregard or store",
		}
	}

	if username, err := middlewares.GetAuthenticatedUsername(c); err == nil {
		logger.Debugf("%s is composing a message to %s", username, body.Recipient)
	}

	req := app.Request{Command: app.Send, Action: action, Recipient: body.Recipient, Content: body.Content}
	res, err := h.Session.Dispatch(c.Request().Context(), req)
	if err != nil {
		return h.dispatchError(c, req, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{
		Collection: res.Collection,
		Data:       res.Message,
		Message:    app.Describe(res),
	})
}

// GetMessagesHandler godoc
// @Summary      List messages
// @Description  Lists every message in a collection, oldest first.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string  true  "sent, disregarded or stored"
// @Success      200 {object} MessagesResponse
// @Failure      404 {object} echo.HTTPError     "Collection not found"
// @Router       /v1/messages/{collection} [get]
func (h *Handler) GetMessagesHandler(c echo.Context) error {
	req := app.Request{Command: app.ShowSenderRecipient, Collection: collectionParam(c)}
	res, err := h.Session.Dispatch(c.Request().Context(), req)
	if err != nil {
		return h.dispatchError(c, req, err)
	}
	return c.JSON(http.StatusOK, messagesResponse(res))
}

// GetLongestMessageHandler godoc
// @Summary      Longest message
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string  true  "sent, disregarded or stored"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} echo.HTTPError     "Collection not found or empty"
// @Router       /v1/messages/{collection}/longest [get]
func (h *Handler) GetLongestMessageHandler(c echo.Context) error {
	return h.single(c, app.Request{Command: app.ShowLongest, Collection: collectionParam(c)})
}

// GetMessageByIDHandler godoc
// @Summary      Find a message by ID
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string  true  "sent, disregarded or stored"
// @Param        id          path  string  true  "Message ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} echo.HTTPError     "Message not found"
// @Router       /v1/messages/{collection}/id/{id} [get]
func (h *Handler) GetMessageByIDHandler(c echo.Context) error {
	return h.single(c, app.Request{Command: app.SearchByID, Collection: collectionParam(c), ID: pathParam(c, "id")})
}

// GetMessagesByRecipientHandler godoc
// @Summary      Find messages by recipient
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string  true  "sent, disregarded or stored"
// @Param        recipient   path  string  true  "Recipient cell number"
// @Success      200 {object} MessagesResponse
// @Router       /v1/messages/{collection}/recipient/{recipient} [get]
func (h *Handler) GetMessagesByRecipientHandler(c echo.Context) error {
	req := app.Request{Command: app.SearchByRecipient, Collection: collectionParam(c), Recipient: pathParam(c, "recipient")}
	res, err := h.Session.Dispatch(c.Request().Context(), req)
	if err != nil {
		return h.dispatchError(c, req, err)
	}
	return c.JSON(http.StatusOK, messagesResponse(res))
}

// DeleteMessageByHashHandler godoc
// @Summary      Delete a message by hash
// @Description  Removes the first message whose hash matches.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string  true  "sent, disregarded or stored"
// @Param        hash        path  string  true  "Message hash"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} echo.HTTPError     "Hash not found"
// @Router       /v1/messages/{collection}/hash/{hash} [delete]
func (h *Handler) DeleteMessageByHashHandler(c echo.Context) error {
	return h.single(c, app.Request{Command: app.DeleteByHash, Collection: collectionParam(c), Hash: pathParam(c, "hash")})
}

// GetReportHandler godoc
// @Summary      Collection report
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string  true  "sent, disregarded or stored"
// @Success      200 {object} store.Report
// @Failure      404 {object} echo.HTTPError     "Collection not found"
// @Router       /v1/messages/{collection}/report [get]
func (h *Handler) GetReportHandler(c echo.Context) error {
	req := app.Request{Command: app.ShowReport, Collection: collectionParam(c)}
	res, err := h.Session.Dispatch(c.Request().Context(), req)
	if err != nil {
		return h.dispatchError(c, req, err)
	}
	return c.JSON(http.StatusOK, res.Report)
}

// single runs a command that yields at most one message.
func (h *Handler) single(c echo.Context, req app.Request) error {
	res, err := h.Session.Dispatch(c.Request().Context(), req)
	if err != nil {
		return h.dispatchError(c, req, err)
	}
	if !res.Found {
		c.Logger().Debugf("%s found nothing in %s", req.Command, res.Collection)
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: app.Describe(res),
		}
	}
	return c.JSON(http.StatusOK, MessageResponse{
		Collection: res.Collection,
		Data:       res.Message,
		Message:    app.Describe(res),
	})
}

func messagesResponse(res app.Result) MessagesResponse {
	data := res.Messages
	if data == nil {
		data = []models.Message{}
	}
	return MessagesResponse{
		Collection: res.Collection,
		Sender:     res.Sender,
		Count:      len(data),
		Data:       data,
	}
}
