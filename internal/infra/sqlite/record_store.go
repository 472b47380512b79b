package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"quiz-cli/internal/domain"
)

// RecordStore keeps quizzes in a local SQLite database.
type RecordStore struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and makes sure the table exists.
func Open(path string) (*RecordStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return &RecordStore{db: db}, nil
}

func (s *RecordStore) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS quizzes (
			position INTEGER PRIMARY KEY,
			question TEXT NOT NULL,
			answer TEXT NOT NULL
		)
	`)
	return err
}

func (s *RecordStore) Load(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT question, answer FROM quizzes ORDER BY position")
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
	return records, rows.Err()
}

// Save rewrites the table in one transaction.
func (s *RecordStore) Save(ctx context.Context, records []domain.Record) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM quizzes"); err != nil {
		return fmt.Errorf("clear quizzes: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO quizzes (position, question, answer) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, record := range records {
		if _, err = stmt.ExecContext(ctx, i, record.Question, record.Answer); err != nil {
			return fmt.Errorf("insert quiz %d: %w", i, err)
		}
	}
	return tx.Commit()
}
