// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"
)

var AllModels []any

// StoredMessage is the SQL row for one message of a persisted collection.
// Position keeps the insertion order of the collection.
type StoredMessage struct {
	ID         uint   `gorm:"primaryKey"`
	Collection string `gorm:"size:64;not null;uniqueIndex:idx_collection_position"`
	Position   int    `gorm:"not null;uniqueIndex:idx_collection_position"`
	MessageID  string `gorm:"size:10;not null;index"`
	Recipient  string `gorm:"size:32;not null;index"`
	Content    string `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

func (s StoredMessage) ToMessage() Message {
	return Message{ID: s.MessageID, Recipient: s.Recipient, Content: s.Content}
}

func NewStoredMessage(collection string, position int, m Message) StoredMessage {
	return StoredMessage{
		Collection: collection,
		Position:   position,
		MessageID:  m.ID,
		Recipient:  m.Recipient,
		Content:    m.Content,
	}
}

func init() {
	AllModels = append(AllModels, &StoredMessage{})
}
