// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventAction string
type EventStatus string

const (
	Sent        EventAction = "SENT"
	Disregarded EventAction = "DISREGARDED"
	Stored      EventAction = "STORED"
	Deleted     EventAction = "DELETED"
)

const (
	Succeeded EventStatus = "SUCCEEDED"
	Failed    EventStatus = "FAILED"
)

// EventLog records what happened to a message in a session.
type EventLog struct {
	ID          uint        `gorm:"primaryKey" json:"-"`
	EID         uuid.UUID   `gorm:"type:uuid;not null;" json:"eid"`
	Action      EventAction `gorm:"size:16;not null;index" json:"action"`
	Status      EventStatus `gorm:"size:16;not null" json:"status"`
	Collection  string      `gorm:"size:64;not null" json:"collection"`
	MessageID   *string     `gorm:"size:10;default:null;" json:"message_id"`
	To          *string     `gorm:"size:32;default:null;" json:"to"`
	Hash        *string     `gorm:"size:300;default:null;" json:"hash"`
	Description *string     `gorm:"type:text;default:null;" json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (eventLog *EventLog) BeforeCreate(tx *gorm.DB) (err error) {
	eventLog.EID = uuid.New()
	return
}

func init() {
	AllModels = append(AllModels, &EventLog{})
}
