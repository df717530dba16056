package leaderboard

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store", "leaderboard.json")
	kv := NewFileKV(path)

	if _, ok, err := kv.Get(ctx, "highScores"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "highScores", `[{"name":"Ayşe"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := kv.Get(ctx, "highScores")
	if err != nil || !ok {
		t.Fatalf("expected value, got ok=%v err=%v", ok, err)
	}
	if value != `[{"name":"Ayşe"}]` {
		t.Fatalf("unexpected value %q", value)
	}
}

func TestFileKVSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "leaderboard.json")

	if err := NewFileKV(path).Set(ctx, "highScores", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := NewFileKV(path).Get(ctx, "highScores")
	if err != nil || !ok || value != "[]" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestFileKVRecoversFromCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "leaderboard.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	kv := NewFileKV(path)

	if _, _, err := kv.Get(ctx, "highScores"); err == nil {
		t.Fatalf("expected read error for corrupt file")
	}

	if err := kv.Set(ctx, "highScores", "[]"); err != nil {
		t.Fatalf("expected set to recover, got %v", err)
	}
	value, ok, err := kv.Get(ctx, "highScores")
	if err != nil || !ok || value != "[]" {
		t.Fatalf("expected recovered value, got %q ok=%v err=%v", value, ok, err)
	}
}
