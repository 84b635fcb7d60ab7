package cache

import (
	"errors"
	"fmt"
	"sync"

	"cvalchemist/resume-analyzer/internal/models"
)

// ErrNotFound is returned by Get for an id that was never stored.
var ErrNotFound = errors.New("result not found")

// ResultStore holds analysis results keyed by their generated id. Entries
// are written exactly once and never updated or evicted.
type ResultStore interface {
	Put(id string, result models.AnalysisResult) error
	Get(id string) (models.AnalysisResult, error)
}

// MemoryStore is the default in-process store. It grows without bound for
// the lifetime of the process and is invisible to other instances.
type MemoryStore struct {
	mu      sync.RWMutex
	results map[string]models.AnalysisResult
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		results: make(map[string]models.AnalysisResult),
	}
}

func (s *MemoryStore) Put(id string, result models.AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.results[id]; exists {
		return fmt.Errorf("result %s already stored", id)
	}
	s.results[id] = result
	return nil
}

func (s *MemoryStore) Get(id string) (models.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[id]
	if !ok {
		return nil, ErrNotFound
	}
	return result, nil
}
