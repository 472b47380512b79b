package memory

import (
	"context"
	"errors"
	"testing"

	"quiz-cli/internal/domain"
)

func TestRecordStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(domain.SeedRecords())

	records, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 seed records, got %d", len(records))
	}

	records[0].Answer = "mutated"
	again, _ := store.Load(ctx)
	if again[0].Answer != "Roma" {
		t.Fatalf("expected loaded slice to be a copy, got %q", again[0].Answer)
	}

	if err := store.Save(ctx, records[:1]); err != nil {
		t.Fatalf("save: %v", err)
	}
	if store.Saves() != 1 {
		t.Fatalf("expected 1 save, got %d", store.Saves())
	}
	after, _ := store.Load(ctx)
	if len(after) != 1 || after[0].Answer != "mutated" {
		t.Fatalf("unexpected records after save: %+v", after)
	}
}

func TestRecordStoreFailSaves(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(nil)
	boom := errors.New("disk full")

	store.FailSaves(boom)
	if err := store.Save(ctx, domain.SeedRecords()); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	records, _ := store.Load(ctx)
	if len(records) != 0 {
		t.Fatalf("expected failed save to keep store empty, got %d", len(records))
	}

	store.FailSaves(nil)
	if err := store.Save(ctx, domain.SeedRecords()); err != nil {
		t.Fatalf("save: %v", err)
	}
}
