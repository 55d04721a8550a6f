// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"quickchat/models"
	"quickchat/store"
)

// swagger:model LoginRequest
type LoginRequest struct {
	// Account username
	Username string `json:"username" example:"nate_"`
	// Account password
	Password string `json:"password" example:"Nathan1!"`
}

// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token for subsequent requests
	SessionToken string `json:"session_token" example:"eyJhbGciOiJIUzI1NiIs..."`
	Message      string `json:"message" example:"Login successful"`
}

// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// One of send, disregard or store. Defaults to send.
	Action    string `json:"action" example:"send"`
	Recipient string `json:"recipient" example:"+27838968976"`
	Content   string `json:"content" example:"Hi Mike, can you join us for dinner tonight"`
}

// swagger:model MessageResponse
type MessageResponse struct {
	Collection store.Collection `json:"collection" example:"sent"`
	Data       models.Message   `json:"data"`
	Message    string           `json:"message" example:"Message sent"`
}

// swagger:model MessagesResponse
type MessagesResponse struct {
	Collection store.Collection `json:"collection" example:"sent"`
	Sender     string           `json:"sender,omitempty" example:"+27718693002"`
	Count      int              `json:"count" example:"1"`
	Data       []models.Message `json:"data"`
}

// swagger:model EventLogsResponse
type EventLogsResponse struct {
	Count int                `json:"count" example:"1"`
	Data  []models.EventLog `json:"data"`
}
