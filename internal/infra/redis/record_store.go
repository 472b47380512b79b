package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"quiz-cli/internal/domain"
)

// DefaultKey is the list that holds the quizzes when no key is configured.
const DefaultKey = "quiz:records"

// RecordStore keeps quizzes in one Redis list, one JSON-encoded record per
// element, in index order:
//
//	RPUSH quiz:records {"question":"...","answer":"..."}
type RecordStore struct {
	client *redis.Client
	key    string
}

func NewRecordStore(client *redis.Client, key string) *RecordStore {
	if key == "" {
		key = DefaultKey
	}
	return &RecordStore{client: client, key: key}
}

func (s *RecordStore) Load(ctx context.Context) ([]domain.Record, error) {
	raw, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", s.key, err)
	}
	records := make([]domain.Record, 0, len(raw))
	for i, item := range raw {
		var record domain.Record
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("decode %s[%d]: %w", s.key, i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Save swaps the whole list inside MULTI/EXEC so readers never see a partial list.
func (s *RecordStore) Save(ctx context.Context, records []domain.Record) error {
	values := make([]interface{}, 0, len(records))
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encode quiz: %w", err)
		}
		values = append(values, string(data))
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(values) > 0 {
			pipe.RPush(ctx, s.key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}
