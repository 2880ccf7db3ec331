// Package store owns the flat-file JSON document that holds all application
// state. Every handler goes through Load for reads and Update for writes;
// nothing else touches the file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tokoku/go-storefront-api/internal/model"
)

type Store struct {
	path string
	mu   sync.RWMutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted document. Any read or parse failure yields the
// empty document, so a corrupted store is indistinguishable from an empty
// one. That fallback is inherited from the original system and kept as-is.
func (s *Store) Load() *model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

// Save overwrites the whole document unconditionally. There are no partial
// writes: the caller hands over the complete state every time.
func (s *Store) Save(doc *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Update runs fn against the freshly loaded document and persists the result.
// The store lock serializes the whole load-mutate-save cycle, so two
// concurrent writers cannot drop each other's changes. If fn returns an
// error nothing is persisted.
func (s *Store) Update(fn func(*model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.read()
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

// Ping verifies the store's directory is writable.
func (s *Store) Ping() error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ping-*")
	if err != nil {
		return fmt.Errorf("store not writable: %w", err)
	}
	tmp.Close()
	return os.Remove(tmp.Name())
}

func (s *Store) read() *model.Document {
	doc := model.NewDocument()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return doc
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return model.NewDocument()
	}
	// Missing top-level keys come back nil; keep the collections non-nil so
	// they always serialize as arrays.
	if doc.Users == nil {
		doc.Users = []model.User{}
	}
	if doc.Products == nil {
		doc.Products = []model.Product{}
	}
	if doc.Orders == nil {
		doc.Orders = []model.Order{}
	}
	return doc
}

// write replaces the file atomically: marshal, write to a temp file in the
// same directory, fsync, rename. A crash mid-write leaves the previous
// document intact.
func (s *Store) write(doc *model.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".database-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
