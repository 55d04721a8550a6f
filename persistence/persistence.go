// SPDX-License-Identifier: GPL-3.0-only

// Package persistence writes store snapshots to durable storage and reads
// them back.
package persistence

import (
	"quickchat/models"
	"quickchat/store"
)

// Adapter saves and loads whole-store snapshots. Load never fails: a missing
// or unreadable snapshot yields an empty store.
type Adapter interface {
	Save(s *store.Store) error
	Load(collection store.Collection) *store.Store
}

// restore builds a store from loaded messages, recomputing every hash.
func restore(collection store.Collection, factory models.Factory, msgs []models.Message) *store.Store {
	s := store.New(collection)
	rehashed := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		rehashed = append(rehashed, factory.Rehash(m))
	}
	s.Replace(rehashed)
	return s
}
