// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"errors"

	"quickchat/crypto"
	"quickchat/fingerprint"
	"quickchat/validation"
)

var (
	ErrInvalidID        = errors.New("message ID must be between 1 and 10 characters")
	ErrInvalidRecipient = errors.New("recipient cell number is incorrectly formatted")
	ErrInvalidContent   = errors.New("message must contain text and be at most 250 characters")
)

// Message is one message record. Hash is derived when the message is built
// and is not meant to be changed afterwards.
type Message struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
	Hash      string `json:"hash"`
}

// Factory builds messages under one recipient rule and fingerprint scheme.
type Factory struct {
	Recipients   validation.RecipientRule
	Fingerprints fingerprint.Generator
}

// DefaultFactory uses the international recipient rule and the word-based
// fingerprint.
var DefaultFactory = Factory{
	Recipients:   validation.E164Rule,
	Fingerprints: fingerprint.Words{},
}

// NewMessage validates the fields and returns the message with its hash set.
func (f Factory) NewMessage(id, recipient, content string) (Message, error) {
	if !validation.ValidIdentifier(id) {
		return Message{}, ErrInvalidID
	}
	if !f.Recipients.Valid(recipient) {
		return Message{}, ErrInvalidRecipient
	}
	if !validation.ValidContent(content) {
		return Message{}, ErrInvalidContent
	}
	return f.Rehash(Message{ID: id, Recipient: recipient, Content: content}), nil
}

// NewOutgoingMessage is NewMessage with a freshly generated message ID.
func (f Factory) NewOutgoingMessage(recipient, content string) (Message, error) {
	id, err := crypto.GenerateMessageID()
	if err != nil {
		return Message{}, err
	}
	return f.NewMessage(id, recipient, content)
}

// Rehash returns m with Hash recomputed from its other fields.
func (f Factory) Rehash(m Message) Message {
	m.Hash = f.Fingerprints.Fingerprint(m.ID, m.Recipient, m.Content)
	return m
}

func NewMessage(id, recipient, content string) (Message, error) {
	return DefaultFactory.NewMessage(id, recipient, content)
}
