// Package store persists user-created countdown events. The whole
// collection lives under one key and every mutation rewrites it as a single
// blob, so a failed write always leaves the previous snapshot intact.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soonur/soonur-desktop/pkg/models"
)

// StorageKey is the fixed key the serialized collection is kept under.
const StorageKey = "soonur_custom_countdowns"

// Store is the CRUD layer over custom countdown events: a synchronous
// in-memory collection mirrored to a Backend on every mutation.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	events  []models.CustomEvent
	loaded  bool
}

// New creates a Store over the given backend. Call Load before reading.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load reads the persisted collection. An absent, unreadable or unparseable
// payload degrades to an empty collection; the error is logged and never
// surfaced as fatal. After Load returns, Loaded reports true either way so
// consumers can tell "not yet loaded" from "loaded and empty".
func (s *Store) Load() []models.CustomEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() { s.loaded = true }()

	data, ok, err := s.backend.Read(StorageKey)
	if err != nil {
		log.Printf("Failed to load custom countdowns: %v", err)
		s.events = nil
		return nil
	}
	if !ok {
		s.events = nil
		return nil
	}

	var events []models.CustomEvent
	if err := json.Unmarshal(data, &events); err != nil {
		log.Printf("Failed to parse custom countdowns, starting empty: %v", err)
		s.events = nil
		return nil
	}

	s.events = events
	return s.snapshotLocked()
}

// Loaded reports whether Load has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Add creates a new custom event from the given fields, assigns a fresh id
// and creation timestamp, and persists the updated collection. Validating
// the fields (non-empty title, target date set) is the caller's job.
func (s *Store) Add(fields models.NewEventFields) models.CustomEvent {
	event := models.CustomEvent{
		ID:         newEventID(),
		Title:      fields.Title,
		TargetDate: fields.TargetDate,
		Color:      fields.Color,
		Priority:   fields.Priority,
		Type:       fields.Type,
		Notes:      fields.Notes,
		IsCustom:   true,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	s.persistLocked()
	return event
}

// Update merges the non-nil fields of the payload over the event with the
// given id and persists the collection. Unknown ids are a no-op. ID,
// IsCustom and CreatedAt can never change.
func (s *Store) Update(id string, updates models.EventUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		e := &s.events[i]
		if updates.Title != nil {
			e.Title = *updates.Title
		}
		if updates.TargetDate != nil {
			e.TargetDate = *updates.TargetDate
		}
		if updates.Color != nil {
			e.Color = *updates.Color
		}
		if updates.Priority != nil {
			e.Priority = *updates.Priority
		}
		if updates.Type != nil {
			e.Type = *updates.Type
		}
		if updates.Notes != nil {
			e.Notes = *updates.Notes
		}
		s.persistLocked()
		return
	}
}

// Remove deletes the event with the given id and persists the collection.
// Unknown ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// Get returns the event with the given id from memory, without touching the
// backend.
func (s *Store) Get(id string) (models.CustomEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.CustomEvent{}, false
}

// Events returns a snapshot of the current collection.
func (s *Store) Events() []models.CustomEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() []models.CustomEvent {
	return append([]models.CustomEvent(nil), s.events...)
}

// persistLocked serializes the whole collection and hands it to the
// backend. The blob is only committed after serialization succeeds. A
// write failure is logged; the in-memory state stays authoritative for the
// session and the next mutation retries naturally.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.events)
	if err != nil {
		log.Printf("Failed to serialize custom countdowns: %v", err)
		return
	}
	if err := s.backend.Write(StorageKey, data); err != nil {
		log.Printf("Failed to save custom countdowns: %v", err)
	}
}

// newEventID builds a unique id from a millisecond timestamp plus a random
// suffix. Ids are unique across the lifetime of the store and keep the
// "custom-" namespace separate from catalog ids.
func newEventID() string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("custom-%d-%s", time.Now().UnixMilli(), suffix)
}
