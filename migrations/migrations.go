// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Table shapes are frozen per migration so later model changes do not
// rewrite history.
func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_create_stored_messages",
			Migrate: func(tx *gorm.DB) error {
				type StoredMessage struct {
					ID         uint   `gorm:"primaryKey"`
					Collection string `gorm:"size:64;not null;uniqueIndex:idx_collection_position"`
					Position   int    `gorm:"not null;uniqueIndex:idx_collection_position"`
					MessageID  string `gorm:"size:10;not null;index"`
					Recipient  string `gorm:"size:32;not null;index"`
					Content    string `gorm:"type:text;not null"`
					CreatedAt  time.Time
				}
				if err := tx.AutoMigrate(&StoredMessage{}); err != nil {
					return fmt.Errorf("failed to create stored_messages: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("stored_messages")
			},
		},
		{
			ID: "002_create_event_logs",
			Migrate: func(tx *gorm.DB) error {
				type EventLog struct {
					ID          uint      `gorm:"primaryKey"`
					EID         uuid.UUID `gorm:"type:uuid;not null;"`
					Action      string    `gorm:"size:16;not null;index"`
					Status      string    `gorm:"size:16;not null"`
					Collection  string    `gorm:"size:64;not null"`
					MessageID   *string   `gorm:"size:10;default:null;"`
					To          *string   `gorm:"size:32;default:null;"`
					Hash        *string   `gorm:"size:300;default:null;"`
					Description *string   `gorm:"type:text;default:null;"`
					CreatedAt   time.Time
				}
				if err := tx.AutoMigrate(&EventLog{}); err != nil {
					return fmt.Errorf("failed to create event_logs: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("event_logs")
			},
		},
	}
}
