// Package leaderboard reads and writes the small ranked list of past scores.
// The feature is best-effort: any storage fault is treated as "no leaderboard
// data" and never propagated to the game.
package leaderboard

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"dictionduel/internal/domain"
)

const (
	// DefaultKey is the storage key the score list lives under.
	DefaultKey = "highScores"
	// DefaultLimit caps the leaderboard at the top five scores.
	DefaultLimit = 5

	dateLayout = "02.01.2006"
)

// Store keeps the top scores sorted descending and truncated to a fixed size.
type Store struct {
	kv    KV
	key   string
	limit int
	clock func() time.Time
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv, key: DefaultKey, limit: DefaultLimit, clock: time.Now}
}

// NewStoreWithClock is test-only for deterministic dates.
func NewStoreWithClock(kv KV, clock func() time.Time) *Store {
	s := NewStore(kv)
	s.clock = clock
	return s
}

// Load returns the stored scores, descending by score. Absent, unreadable or
// malformed storage yields an empty list.
func (s *Store) Load(ctx context.Context) []domain.ScoreRecord {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil || !ok {
		return nil
	}
	var records []domain.ScoreRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil
	}
	return records
}

// Save appends a record dated today, re-sorts descending by score, truncates
// to the top entries and writes the list back. Write faults are logged and
// swallowed.
func (s *Store) Save(ctx context.Context, name string, score int) {
	records := s.Load(ctx)
	records = append(records, domain.ScoreRecord{
		Name:  name,
		Score: score,
		Date:  s.clock().Format(dateLayout),
	})
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	if len(records) > s.limit {
		records = records[:s.limit]
	}

	data, err := json.Marshal(records)
	if err != nil {
		log.Printf("leaderboard: encode scores: %v", err)
		return
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		log.Printf("leaderboard: persist scores: %v", err)
	}
}

// Qualifies reports whether score would be a new high score against records:
// a positive score that either fits an unfilled board or beats the last entry.
func (s *Store) Qualifies(records []domain.ScoreRecord, score int) bool {
	if score <= 0 {
		return false
	}
	if len(records) < s.limit {
		return true
	}
	return score > records[len(records)-1].Score
}
