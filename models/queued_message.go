// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
)

// QueuedMessage is the envelope published to the outbound relay.
type QueuedMessage struct {
	// Mid is unique per publish, unlike ID and Hash.
	Mid string `json:"mid"`
	// ID is the message identifier
	ID string `json:"id"`
	// Content is the message text
	Content string `json:"content"`
	// PhoneNumber is the recipient's phone number
	PhoneNumber string `json:"phonenumber"`
	// Hash is the message fingerprint
	Hash string `json:"hash"`
	// Timestamp when the message was queued
	CreatedAt time.Time `json:"created_at"`
}

func NewQueuedMessage(m Message) *QueuedMessage {
	return &QueuedMessage{
		Mid:         uuid.New().String(),
		ID:          m.ID,
		Content:     m.Content,
		PhoneNumber: m.Recipient,
		Hash:        m.Hash,
		CreatedAt:   time.Now(),
	}
}
