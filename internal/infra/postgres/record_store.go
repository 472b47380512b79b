package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-cli/internal/domain"
)

// RecordStore keeps quizzes in the quizzes table, keyed by position.
type RecordStore struct {
	pool *pgxpool.Pool
}

func NewRecordStore(pool *pgxpool.Pool) *RecordStore {
	return &RecordStore{pool: pool}
}

func (s *RecordStore) Load(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.pool.Query(ctx, `SELECT question, answer FROM quizzes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load quizzes: %w", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var record domain.Record
		if err := rows.Scan(&record.Question, &record.Answer); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load quizzes: %w", err)
	}
	return records, nil
}

// Save rewrites the table in one transaction.
func (s *RecordStore) Save(ctx context.Context, records []domain.Record) error {
	return s.pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM quizzes`); err != nil {
			return fmt.Errorf("clear quizzes: %w", err)
		}
		if len(records) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for i, record := range records {
			batch.Queue(`INSERT INTO quizzes (position, question, answer) VALUES ($1, $2, $3)`, i, record.Question, record.Answer)
		}
		results := tx.SendBatch(ctx, batch)
		for i := range records {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("insert quiz %d: %w", i, err)
			}
		}
		return results.Close()
	})
}
