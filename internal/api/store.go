package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samcharles93/docuar/pkg/docu"
)

type archiveRecord struct {
	ID      string
	Created time.Time
	Records []docu.Record
}

// ArchiveStore holds scanned archives in memory, keyed by id.
type ArchiveStore struct {
	mu       sync.Mutex
	archives map[string]*archiveRecord
}

func NewArchiveStore() *ArchiveStore {
	return &ArchiveStore{
		archives: make(map[string]*archiveRecord),
	}
}

func (s *ArchiveStore) Create(records []docu.Record, now time.Time) *archiveRecord {
	rec := &archiveRecord{
		ID:      "arc_" + uuid.NewString(),
		Created: now,
		Records: records,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archives[rec.ID] = rec
	return rec
}

func (s *ArchiveStore) Get(id string) (*archiveRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.archives[id]
	return rec, ok
}

func (s *ArchiveStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.archives[id]; !ok {
		return false
	}
	delete(s.archives, id)
	return true
}
