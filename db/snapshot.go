// SPDX-License-Identifier: GPL-3.0-only

package db

import (
	"fmt"
	"quickchat/commons"
	"quickchat/models"
	"quickchat/store"

	"gorm.io/gorm"
)

// SnapshotRepository keeps collections as rows of the stored_messages table.
type SnapshotRepository struct {
	conn    *gorm.DB
	factory models.Factory
}

func NewSnapshotRepository(conn *gorm.DB, factory models.Factory) *SnapshotRepository {
	return &SnapshotRepository{conn: conn, factory: factory}
}

// Save replaces every row of the store's collection in one transaction.
func (r *SnapshotRepository) Save(s *store.Store) error {
	collection := string(s.Collection())
	msgs := s.All()

	err := r.conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", collection).Delete(&models.StoredMessage{}).Error; err != nil {
			return fmt.Errorf("failed to clear %s rows: %w", collection, err)
		}
		if len(msgs) == 0 {
			return nil
		}
		rows := make([]models.StoredMessage, 0, len(msgs))
		for i, m := range msgs {
			rows = append(rows, models.NewStoredMessage(collection, i, m))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert %s rows: %w", collection, err)
		}
		return nil
	})
	if err != nil {
		commons.Logger.Errorf("Failed to save %s messages: %v", collection, err)
		return err
	}
	commons.Logger.Debugf("Saved %d %s messages", len(msgs), collection)
	return nil
}

func (r *SnapshotRepository) Load(collection store.Collection) *store.Store {
	var rows []models.StoredMessage
	if err := r.conn.Where("collection = ?", string(collection)).Order("position").Find(&rows).Error; err != nil {
		commons.Logger.Warnf("Failed to load %s messages: %v", collection, err)
		return store.New(collection)
	}

	msgs := make([]models.Message, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, r.factory.Rehash(row.ToMessage()))
	}
	s := store.New(collection)
	s.Replace(msgs)
	commons.Logger.Debugf("Loaded %d %s messages", len(msgs), collection)
	return s
}
