package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"quiz-cli/internal/domain"
)

func TestRecordStoreKeepsOrderInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewRecordStore(newClient(mr), "")
	ctx := context.Background()

	if err := store.Save(ctx, domain.SeedRecords()); err != nil {
		t.Fatalf("save: %v", err)
	}
	items, err := mr.List(DefaultKey)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 list items, got %d", len(items))
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got[2].Question != "Capital de España" || got[2].Answer != "Madrid" {
		t.Fatalf("unexpected record at 2: %+v", got[2])
	}
}

func TestRecordStoreSaveReplacesList(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewRecordStore(newClient(mr), "test:quizzes")
	ctx := context.Background()

	if err := store.Save(ctx, domain.SeedRecords()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, []domain.Record{{Question: "2+2?", Answer: "4"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Answer != "4" {
		t.Fatalf("expected list to be replaced, got %+v", got)
	}

	if err := store.Save(ctx, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	if mr.Exists("test:quizzes") {
		t.Fatalf("expected key removed for empty store")
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %+v", got)
	}
}

func TestRecordStoreRejectsCorruptItem(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	if _, err := mr.Push(DefaultKey, "not-json"); err != nil {
		t.Fatalf("push: %v", err)
	}
	if _, err := NewRecordStore(newClient(mr), "").Load(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
