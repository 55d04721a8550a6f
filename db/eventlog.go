// SPDX-License-Identifier: GPL-3.0-only

package db

import (
	"fmt"
	"quickchat/models"

	"gorm.io/gorm"
)

type EventRepository struct {
	conn *gorm.DB
}

func NewEventRepository(conn *gorm.DB) *EventRepository {
	return &EventRepository{conn: conn}
}

func (r *EventRepository) Record(eventLog models.EventLog) error {
	if err := r.conn.Create(&eventLog).Error; err != nil {
		return fmt.Errorf("failed to create event log: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (r *EventRepository) Recent(limit int) ([]models.EventLog, error) {
	var events []models.EventLog
	if err := r.conn.Order("id desc").Limit(limit).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list event logs: %w", err)
	}
	return events, nil
}
