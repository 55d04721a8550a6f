// SPDX-License-Identifier: GPL-3.0-only

// Package store keeps an ordered collection of messages and answers lookups
// against it. Lookups scan in insertion order and return the first match;
// nothing about a message is assumed to be unique.
package store

import (
	"sync"
	"unicode/utf8"

	"quickchat/models"
)

// Collection names a store within a session.
type Collection string

const (
	Sent        Collection = "sent"
	Disregarded Collection = "disregarded"
	Stored      Collection = "stored"
)

type Store struct {
	collection Collection

	mu       sync.Mutex
	messages []models.Message
}

func New(collection Collection) *Store {
	return &Store{collection: collection}
}

func (s *Store) Collection() Collection {
	return s.collection
}

func (s *Store) Insert(m models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

func (s *Store) FindByID(id string) (models.Message, bool) {
	if id == "" {
		return models.Message{}, false
	}
	return s.first(func(m models.Message) bool { return m.ID == id })
}

func (s *Store) FindByFingerprint(fp string) (models.Message, bool) {
	if fp == "" {
		return models.Message{}, false
	}
	return s.first(func(m models.Message) bool { return m.Hash == fp })
}

func (s *Store) FindAllByRecipient(addr string) []models.Message {
	if addr == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var found []models.Message
	for _, m := range s.messages {
		if m.Recipient == addr {
			found = append(found, m)
		}
	}
	return found
}

// DeleteByFingerprint removes the first message with the given hash.
func (s *Store) DeleteByFingerprint(fp string) bool {
	_, ok := s.RemoveByFingerprint(fp)
	return ok
}

// RemoveByFingerprint removes the first message with the given hash and
// returns it.
func (s *Store) RemoveByFingerprint(fp string) (models.Message, bool) {
	if fp == "" {
		return models.Message{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.messages {
		if m.Hash == fp {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return m, true
		}
	}
	return models.Message{}, false
}

// Longest returns the message with the most characters of content. The
// earliest message wins a tie.
func (s *Store) Longest() (models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.messages) == 0 {
		return models.Message{}, false
	}
	longest, max := s.messages[0], utf8.RuneCountInString(s.messages[0].Content)
	for _, m := range s.messages[1:] {
		if n := utf8.RuneCountInString(m.Content); n > max {
			longest, max = m, n
		}
	}
	return longest, true
}

func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// All returns a copy of the messages in insertion order.
func (s *Store) All() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Replace swaps the whole contents, keeping the given order.
func (s *Store) Replace(msgs []models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append([]models.Message(nil), msgs...)
}

func (s *Store) first(match func(models.Message) bool) (models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if match(m) {
			return m, true
		}
	}
	return models.Message{}, false
}
