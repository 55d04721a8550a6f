// SPDX-License-Identifier: GPL-3.0-only

package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"quickchat/commons"
	"quickchat/models"
	"quickchat/store"
)

type snapshot struct {
	Collection store.Collection `json:"collection"`
	SavedAt    time.Time        `json:"saved_at"`
	Messages   []models.Message `json:"messages"`
}

// JSONFile keeps one collection in one JSON document on disk.
type JSONFile struct {
	Path    string
	Factory models.Factory
}

func NewJSONFile(path string, factory models.Factory) *JSONFile {
	return &JSONFile{Path: path, Factory: factory}
}

// Save writes the snapshot next to Path and renames it into place, so a
// failed write leaves the previous snapshot intact.
func (j *JSONFile) Save(s *store.Store) error {
	data, err := json.MarshalIndent(snapshot{
		Collection: s.Collection(),
		SavedAt:    time.Now().UTC(),
		Messages:   s.All(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", s.Collection(), err)
	}

	if err := writeFileAtomic(j.Path, data); err != nil {
		commons.Logger.Errorf("Failed to save %s messages to %s: %v", s.Collection(), j.Path, err)
		return fmt.Errorf("failed to save %s snapshot: %w", s.Collection(), err)
	}
	commons.Logger.Debugf("Saved %d %s messages to %s", s.Len(), s.Collection(), j.Path)
	return nil
}

func (j *JSONFile) Load(collection store.Collection) *store.Store {
	data, err := os.ReadFile(j.Path)
	if errors.Is(err, fs.ErrNotExist) {
		commons.Logger.Debugf("No snapshot at %s, starting with empty %s messages", j.Path, collection)
		return store.New(collection)
	}
	if err != nil {
		commons.Logger.Warnf("Failed to read %s: %v", j.Path, err)
		return store.New(collection)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		commons.Logger.Warnf("Ignoring unparsable snapshot %s: %v", j.Path, err)
		return store.New(collection)
	}

	if snap.Collection != "" && snap.Collection != collection {
		commons.Logger.Warnf("Snapshot %s holds %s messages, loading them as %s", j.Path, snap.Collection, collection)
	}
	commons.Logger.Debugf("Loaded %d %s messages from %s", len(snap.Messages), collection, j.Path)
	return restore(collection, j.Factory, snap.Messages)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
