package memory

import (
	"context"
	"sync"

	"quiz-cli/internal/domain"
)

// RecordStore keeps quizzes in process memory. Nothing survives a restart.
type RecordStore struct {
	mu      sync.RWMutex
	records []domain.Record
	saves   int
	failErr error
}

func NewRecordStore(seed []domain.Record) *RecordStore {
	return &RecordStore{records: cloneRecords(seed)}
}

func (s *RecordStore) Load(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.records), nil
}

func (s *RecordStore) Save(_ context.Context, records []domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	s.records = cloneRecords(records)
	s.saves++
	return nil
}

// Saves reports how many successful saves happened.
func (s *RecordStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// FailSaves makes every following Save return err; nil restores normal saves.
func (s *RecordStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

func cloneRecords(records []domain.Record) []domain.Record {
	out := make([]domain.Record, len(records))
	copy(out, records)
	return out
}
