package bank

import (
	"context"
	"fmt"
	"os"

	"dictionduel/internal/domain"
)

// WordSource fetches raw word pairs from a backing store (file, database, etc).
type WordSource interface {
	LoadWordPairs(ctx context.Context) ([]domain.WordPair, error)
}

// FileSource loads word pairs from a delimited text file on disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) LoadWordPairs(_ context.Context) ([]domain.WordPair, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return ParseWordList(string(data))
}

// StaticSource is a source backed by an in-memory slice (useful for tests/demos).
type StaticSource struct {
	pairs []domain.WordPair
}

func NewStaticSource(pairs []domain.WordPair) *StaticSource {
	return &StaticSource{pairs: pairs}
}

func (s *StaticSource) LoadWordPairs(_ context.Context) ([]domain.WordPair, error) {
	return s.pairs, nil
}
