package redis

import (
	"context"
	"testing"

	"dictionduel/internal/leaderboard"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestLeaderboardKVRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	kv := NewLeaderboardKV(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	if _, ok, err := kv.Get(ctx, "highScores"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "highScores", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("dictionduel:highScores") {
		t.Fatalf("expected prefixed redis key to be set")
	}

	value, ok, err := kv.Get(ctx, "highScores")
	if err != nil || !ok || value != "[]" {
		t.Fatalf("expected stored value, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestStoreOverRedisKV(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := leaderboard.NewStore(NewLeaderboardKV(redis.NewClient(&redis.Options{Addr: mr.Addr()})))

	store.Save(ctx, "Ayşe", 42)

	records := store.Load(ctx)
	if len(records) != 1 || records[0].Name != "Ayşe" || records[0].Score != 42 {
		t.Fatalf("unexpected leaderboard: %+v", records)
	}
}
