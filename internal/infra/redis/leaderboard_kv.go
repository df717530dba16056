// Package redis adapts Redis to the leaderboard's key-value port, for
// deployments where scores should survive the host rather than live in a file.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// LeaderboardKV implements leaderboard.KV on a Redis client. Scores are kept
// without expiry; the leaderboard itself caps the payload at five entries.
type LeaderboardKV struct {
	client *redis.Client
	prefix string
}

func NewLeaderboardKV(client *redis.Client) *LeaderboardKV {
	return &LeaderboardKV{client: client, prefix: "dictionduel:"}
}

func (s *LeaderboardKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *LeaderboardKV) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
