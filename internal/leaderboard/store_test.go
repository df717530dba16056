package leaderboard

import (
	"context"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStoreWithClock(NewMemoryKV(), fixedClock)

	store.Save(ctx, "Ayşe", 120)

	records := store.Load(ctx)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Name != "Ayşe" || records[0].Score != 120 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
	if records[0].Date != "30.08.2026" {
		t.Fatalf("unexpected date: %q", records[0].Date)
	}
}

func TestSaveKeepsDescendingTopFive(t *testing.T) {
	ctx := context.Background()
	store := NewStoreWithClock(NewMemoryKV(), fixedClock)

	for _, score := range []int{40, 90, 10, 70, 50, 60} {
		store.Save(ctx, "Oyuncu", score)
	}

	records := store.Load(ctx)
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	want := []int{90, 70, 60, 50, 40}
	for i, score := range want {
		if records[i].Score != score {
			t.Fatalf("expected scores %v, got %+v", want, records)
		}
	}
}

func TestLowScorePushedOut(t *testing.T) {
	ctx := context.Background()
	store := NewStoreWithClock(NewMemoryKV(), fixedClock)

	for i := 0; i < 5; i++ {
		store.Save(ctx, "Usta", 100+i)
	}
	store.Save(ctx, "Çaylak", 3)

	for _, r := range store.Load(ctx) {
		if r.Name == "Çaylak" {
			t.Fatalf("expected low score evicted, got %+v", r)
		}
	}
}

func TestLoadToleratesMalformedValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	if err := kv.Set(ctx, DefaultKey, "{not json"); err != nil {
		t.Fatalf("seed kv: %v", err)
	}
	store := NewStore(kv)

	if records := store.Load(ctx); len(records) != 0 {
		t.Fatalf("expected empty leaderboard, got %+v", records)
	}

	// A save over the malformed value starts fresh instead of failing.
	store.Save(ctx, "Ayşe", 10)
	if records := store.Load(ctx); len(records) != 1 {
		t.Fatalf("expected recovery after save, got %+v", records)
	}
}

func TestQualifies(t *testing.T) {
	ctx := context.Background()
	store := NewStoreWithClock(NewMemoryKV(), fixedClock)

	if store.Qualifies(nil, 0) {
		t.Fatalf("zero score must never be a high score")
	}
	if !store.Qualifies(nil, 1) {
		t.Fatalf("any positive score qualifies on an empty board")
	}

	for i := 0; i < 5; i++ {
		store.Save(ctx, "Usta", 50+10*i)
	}
	records := store.Load(ctx)
	if store.Qualifies(records, 50) {
		t.Fatalf("matching the fifth place is not a high score")
	}
	if !store.Qualifies(records, 51) {
		t.Fatalf("beating the fifth place is a high score")
	}
}
