package app

import (
	"context"
	"fmt"
	"log/slog"

	"quiz-cli/internal/domain"
)

// RecordStore abstracts where quizzes are persisted (memory, file, Redis, etc).
// Save always receives the full ordered list; positions are the indices.
type RecordStore interface {
	Load(ctx context.Context) ([]domain.Record, error)
	Save(ctx context.Context, records []domain.Record) error
}

// QuizStore is the ordered, index-addressed collection of quizzes. Indices are
// always the contiguous range [0, Count()).
type QuizStore struct {
	backend RecordStore
	records []domain.Record
	log     *slog.Logger
}

// OpenQuizStore loads the current records from backend.
func OpenQuizStore(ctx context.Context, backend RecordStore, log *slog.Logger) (*QuizStore, error) {
	if log == nil {
		log = slog.Default()
	}
	records, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load: %w", domain.ErrPersist, err)
	}
	log.Debug("quizzes loaded", "count", len(records))
	return &QuizStore{backend: backend, records: records, log: log}, nil
}

// Count returns the number of records.
func (s *QuizStore) Count() int {
	return len(s.records)
}

// Get returns the record at index i.
func (s *QuizStore) Get(i int) (domain.Record, error) {
	if i < 0 || i >= len(s.records) {
		return domain.Record{}, domain.InvalidIndex(i)
	}
	return s.records[i], nil
}

// Resolve parses a raw id argument and returns the index with its record.
func (s *QuizStore) Resolve(raw string) (int, domain.Record, error) {
	i, err := domain.ParseIndex(raw)
	if err != nil {
		return 0, domain.Record{}, err
	}
	record, err := s.Get(i)
	if err != nil {
		return 0, domain.Record{}, domain.InvalidID(raw)
	}
	return i, record, nil
}

// All returns every record paired with its current index.
func (s *QuizStore) All() []domain.IndexedRecord {
	out := make([]domain.IndexedRecord, len(s.records))
	for i, r := range s.records {
		out[i] = domain.IndexedRecord{Index: i, Record: r}
	}
	return out
}

// Add appends a record at index Count(). No validation is applied.
func (s *QuizStore) Add(ctx context.Context, question, answer string) (int, error) {
	next := append(s.cloneRecords(), domain.Record{Question: question, Answer: answer})
	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	s.log.Debug("quiz added", "index", len(next)-1)
	return len(next) - 1, nil
}

// Update replaces the record at i, keeping its index.
func (s *QuizStore) Update(ctx context.Context, i int, question, answer string) error {
	if _, err := s.Get(i); err != nil {
		return err
	}
	next := s.cloneRecords()
	next[i] = domain.Record{Question: question, Answer: answer}
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Debug("quiz updated", "index", i)
	return nil
}

// Delete removes the record at i. Every later record moves down one index.
func (s *QuizStore) Delete(ctx context.Context, i int) (domain.Record, error) {
	removed, err := s.Get(i)
	if err != nil {
		return domain.Record{}, err
	}
	next := make([]domain.Record, 0, len(s.records)-1)
	next = append(next, s.records[:i]...)
	next = append(next, s.records[i+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return domain.Record{}, err
	}
	s.log.Debug("quiz deleted", "index", i, "remaining", len(next))
	return removed, nil
}

// commit persists next and only then makes it the current state, so a failed
// save leaves the store untouched.
func (s *QuizStore) commit(ctx context.Context, next []domain.Record) error {
	if err := s.backend.Save(ctx, next); err != nil {
		s.log.Error("save quizzes failed", "err", err)
		return fmt.Errorf("%w: %w", domain.ErrPersist, err)
	}
	s.records = next
	return nil
}

func (s *QuizStore) cloneRecords() []domain.Record {
	out := make([]domain.Record, len(s.records), len(s.records)+1)
	copy(out, s.records)
	return out
}
