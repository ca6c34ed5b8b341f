package store

import (
	"fmt"
	"sync"

	"github.com/pdfplace/pdfplace/models"
)

// RecordStore is the live in-memory catalog: an ordered collection of
// records, newest first, keyed by id.
//
// It is the single owner of Record values; callers receive copies. Reads
// and writes are guarded by an RWMutex: UI commands mutate the catalog
// from their own goroutines while the usage monitor reads it concurrently.
type RecordStore struct {
	mu      sync.RWMutex
	records []models.Record
}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Insert prepends the record so iteration stays newest-first. Returns
// ErrDuplicateID if the id is already present; ids are generated
// monotonically, so a duplicate means a broken invariant, not user error.
func (s *RecordStore) Insert(record models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(record.ID) != -1 {
		return fmt.Errorf("%w: id=%s", ErrDuplicateID, record.ID)
	}

	s.records = append([]models.Record{record}, s.records...)
	return nil
}

// Remove deletes the record with the given id and returns it so the caller
// can dispose of its payload. Returns ErrRecordNotFound if absent.
func (s *RecordStore) Remove(id string) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return models.Record{}, fmt.Errorf("%w: id=%s", ErrRecordNotFound, id)
	}

	removed := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	return removed, nil
}

// Update applies mutate to the stored record in place. Returns
// ErrRecordNotFound if the id is absent. The store lock is held while
// mutate runs; mutate must not call back into the store.
func (s *RecordStore) Update(id string, mutate func(*models.Record)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return fmt.Errorf("%w: id=%s", ErrRecordNotFound, id)
	}

	mutate(&s.records[i])
	return nil
}

// FindByID returns a copy of the record with the given id.
func (s *RecordStore) FindByID(id string) (models.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return models.Record{}, false
	}
	return s.records[i], true
}

// All returns a copy of the catalog in iteration order (newest first).
func (s *RecordStore) All() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of live records.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// Clear empties the store and returns the removed records so the caller can
// dispose of their payloads.
func (s *RecordStore) Clear() []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.records
	s.records = nil
	return removed
}

// Replace swaps the whole catalog content, preserving the order given.
// Used when rehydrating the store from the persisted encoding at startup.
func (s *RecordStore) Replace(records []models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]models.Record, len(records))
	copy(s.records, records)
}

// indexOf must be called with the lock held.
func (s *RecordStore) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
