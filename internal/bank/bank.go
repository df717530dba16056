// Package bank builds and caches the question pool: word pairs become
// two-option questions with the correct spelling in a coin-flipped position.
package bank

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"dictionduel/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Bank owns the question pool. The pool is built lazily on first use, cached
// for the life of the Bank, and shared by every session. Reset drops the cache
// so tests (or a reload) can force a rebuild.
type Bank struct {
	source WordSource
	sf     singleflight.Group
	rnd    *rand.Rand

	mu     sync.RWMutex
	pool   []domain.Question
	loaded bool
}

func New(source WordSource) *Bank {
	return &Bank{
		source: source,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Questions returns the cached pool, building it on first call. A source
// failure surfaces to the caller alongside an empty pool; the caller decides
// how to present "no questions available".
func (b *Bank) Questions(ctx context.Context) ([]domain.Question, error) {
	b.mu.RLock()
	if b.loaded {
		pool := b.pool
		b.mu.RUnlock()
		return pool, nil
	}
	b.mu.RUnlock()

	result, err, _ := b.sf.Do("pool", func() (interface{}, error) {
		b.mu.RLock()
		if b.loaded {
			pool := b.pool
			b.mu.RUnlock()
			return pool, nil
		}
		b.mu.RUnlock()

		pairs, err := b.source.LoadWordPairs(ctx)
		if err != nil {
			return nil, fmt.Errorf("build question pool: %w", err)
		}

		b.mu.Lock()
		b.pool = BuildQuestions(b.rnd, pairs)
		b.loaded = true
		pool := b.pool
		b.mu.Unlock()
		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

// Reset drops the cached pool so the next Questions call rebuilds it.
func (b *Bank) Reset() {
	b.mu.Lock()
	b.pool = nil
	b.loaded = false
	b.mu.Unlock()
}

// BuildQuestions converts word pairs into questions. A fair coin flip decides
// whether the correct spelling occupies position 0 or 1.
func BuildQuestions(rnd *rand.Rand, pairs []domain.WordPair) []domain.Question {
	questions := make([]domain.Question, 0, len(pairs))
	for _, pair := range pairs {
		if !pair.Valid() || pair.Correct == pair.Wrong {
			continue
		}
		q := domain.Question{Explanation: pair.Explanation}
		if rnd.Intn(2) == 0 {
			q.Options = [2]string{pair.Correct, pair.Wrong}
			q.CorrectAnswer = 0
		} else {
			q.Options = [2]string{pair.Wrong, pair.Correct}
			q.CorrectAnswer = 1
		}
		questions = append(questions, q)
	}
	return questions
}
