// SPDX-License-Identifier: GPL-3.0-only

package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"quickchat/commons"
	"quickchat/models"
	"quickchat/persistence"
	"quickchat/store"
)

var (
	ErrMessageLimit      = errors.New("message limit reached")
	ErrMissingInput      = errors.New("required input is missing")
	ErrSnapshotFailed    = errors.New("message kept in memory but the snapshot could not be saved")
	ErrUnknownCollection = errors.New("unknown message collection")
)

// Relay forwards sent messages somewhere outside the process.
type Relay interface {
	Publish(ctx context.Context, m models.Message) error
}

type EventRecorder interface {
	Record(models.EventLog) error
}

type Options struct {
	// Sender is the user's own number, shown next to each recipient.
	Sender      string
	Factory     models.Factory
	MaxMessages int
	Persistence persistence.Adapter
	Relay       Relay
	Events      EventRecorder
}

// Session owns the sent, disregarded and stored collections of one user.
// Only the stored collection is persisted. Commands run one at a time.
type Session struct {
	mu          sync.Mutex
	opts        Options
	sent        *store.Store
	disregarded *store.Store
	stored      *store.Store
}

func NewSession(opts Options) *Session {
	if opts.Factory.Recipients == nil || opts.Factory.Fingerprints == nil {
		opts.Factory = models.DefaultFactory
	}
	stored := store.New(store.Stored)
	if opts.Persistence != nil {
		stored = opts.Persistence.Load(store.Stored)
	}
	return &Session{
		opts:        opts,
		sent:        store.New(store.Sent),
		disregarded: store.New(store.Disregarded),
		stored:      stored,
	}
}

func (s *Session) Factory() models.Factory {
	return s.opts.Factory
}

func (s *Session) Sender() string {
	return s.opts.Sender
}

// Store returns the named collection, or nil for an unknown name.
func (s *Session) Store(c store.Collection) *store.Store {
	switch c {
	case store.Sent:
		return s.sent
	case store.Disregarded:
		return s.disregarded
	case store.Stored:
		return s.stored
	default:
		return nil
	}
}

// Request carries the inputs of one command. Fields a command does not use
// are ignored. Collection defaults to the sent messages.
type Request struct {
	Command    Command
	Action     Action
	Recipient  string
	Content    string
	ID         string
	Hash       string
	Collection store.Collection
}

type Result struct {
	Command    Command
	Action     Action
	Collection store.Collection
	Sender     string
	// Found is false when a lookup or delete matched nothing.
	Found    bool
	Message  models.Message
	Messages []models.Message
	Report   store.Report
	Quit     bool
}

// Dispatch runs one command against the session.
func (s *Session) Dispatch(ctx context.Context, req Request) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := req.Collection
	if collection == "" {
		collection = store.Sent
	}
	target := s.Store(collection)
	if target == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	res := Result{Command: req.Command, Collection: collection, Sender: s.opts.Sender}

	switch req.Command {
	case Send:
		return s.compose(ctx, req)
	case ShowSent:
		res.Collection = store.Sent
		res.Messages = s.sent.All()
		res.Found = len(res.Messages) > 0
	case ShowStored:
		res.Collection = store.Stored
		res.Messages = s.stored.All()
		res.Found = len(res.Messages) > 0
	case ShowSenderRecipient:
		res.Messages = target.All()
		res.Found = len(res.Messages) > 0
	case ShowLongest:
		res.Message, res.Found = target.Longest()
	case SearchByID:
		if req.ID == "" {
			return res, fmt.Errorf("%w: message ID", ErrMissingInput)
		}
		res.Message, res.Found = target.FindByID(req.ID)
	case SearchByRecipient:
		if req.Recipient == "" {
			return res, fmt.Errorf("%w: recipient", ErrMissingInput)
		}
		res.Messages = target.FindAllByRecipient(req.Recipient)
		res.Found = len(res.Messages) > 0
	case DeleteByHash:
		if req.Hash == "" {
			return res, fmt.Errorf("%w: message hash", ErrMissingInput)
		}
		res.Message, res.Found = target.RemoveByFingerprint(req.Hash)
		if res.Found {
			s.record(models.Deleted, collection, res.Message, nil)
			if collection == store.Stored {
				if err := s.save(); err != nil {
					return res, err
				}
			}
		}
	case ShowReport:
		res.Report = target.Report()
		res.Found = res.Report.Total > 0
	case Quit:
		res.Quit = true
	default:
		return res, fmt.Errorf("%w: %d", ErrUnknownCommand, int(req.Command))
	}
	return res, nil
}

func (s *Session) compose(ctx context.Context, req Request) (Result, error) {
	res := Result{Command: Send, Action: req.Action, Sender: s.opts.Sender}

	var target *store.Store
	var event models.EventAction
	switch req.Action {
	case ActionSend:
		target, event = s.sent, models.Sent
		if s.opts.MaxMessages > 0 && s.sent.Len() >= s.opts.MaxMessages {
			return res, fmt.Errorf("%w: %d of %d sent", ErrMessageLimit, s.sent.Len(), s.opts.MaxMessages)
		}
	case ActionDisregard:
		target, event = s.disregarded, models.Disregarded
	case ActionStore:
		target, event = s.stored, models.Stored
	default:
		return res, fmt.Errorf("%w: %d", ErrUnknownAction, int(req.Action))
	}
	res.Collection = target.Collection()

	msg, err := s.opts.Factory.NewOutgoingMessage(req.Recipient, req.Content)
	if err != nil {
		return res, err
	}
	target.Insert(msg)
	res.Message, res.Found = msg, true
	s.record(event, target.Collection(), msg, nil)

	switch req.Action {
	case ActionSend:
		if s.opts.Relay != nil {
			if err := s.opts.Relay.Publish(ctx, msg); err != nil {
				commons.Logger.Errorf("Failed to relay message %s: %v", msg.ID, err)
				s.record(models.Sent, target.Collection(), msg, err)
			}
		}
	case ActionStore:
		if err := s.save(); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (s *Session) save() error {
	if s.opts.Persistence == nil {
		return nil
	}
	if err := s.opts.Persistence.Save(s.stored); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	return nil
}

func (s *Session) record(action models.EventAction, collection store.Collection, m models.Message, failure error) {
	if s.opts.Events == nil {
		return
	}
	event := models.EventLog{
		Action:     action,
		Status:     models.Succeeded,
		Collection: string(collection),
		MessageID:  &m.ID,
		To:         &m.Recipient,
		Hash:       &m.Hash,
	}
	if failure != nil {
		desc := failure.Error()
		event.Status = models.Failed
		event.Description = &desc
	}
	if err := s.opts.Events.Record(event); err != nil {
		commons.Logger.Warnf("Failed to record %s event: %v", action, err)
	}
}
