// Package postgres loads word pairs from a Postgres table, for deployments
// where the word list is curated in a database instead of a bundled file.
package postgres

import (
	"context"
	"fmt"

	"dictionduel/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// WordSource reads word pairs from the word_pairs table.
type WordSource struct {
	pool *pgxpool.Pool
}

func NewWordSource(pool *pgxpool.Pool) *WordSource {
	return &WordSource{pool: pool}
}

func (s *WordSource) LoadWordPairs(ctx context.Context) ([]domain.WordPair, error) {
	rows, err := s.pool.Query(ctx, `SELECT correct, wrong, explanation FROM word_pairs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load word pairs: %w", err)
	}
	defer rows.Close()

	var pairs []domain.WordPair
	for rows.Next() {
		var pair domain.WordPair
		if err := rows.Scan(&pair.Correct, &pair.Wrong, &pair.Explanation); err != nil {
			return nil, fmt.Errorf("scan word pair: %w", err)
		}
		if pair.Valid() {
			pairs = append(pairs, pair)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read word pairs: %w", err)
	}
	return pairs, nil
}
