package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvalchemist/resume-analyzer/internal/models"
)

func TestMemoryStore_PutGet(t *testing.T) {
	store := NewMemoryStore()
	result := models.AnalysisResult{"score": float64(85), "feedback": []any{"x"}}

	require.NoError(t, store.Put("id-1", result))

	got, err := store.Get("id-1")
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestMemoryStore_UnknownID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("never-stored")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_InsertOnly(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Put("id-1", models.AnalysisResult{"score": float64(1)}))
	err := store.Put("id-1", models.AnalysisResult{"score": float64(2)})
	require.Error(t, err)

	got, err := store.Get("id-1")
	require.NoError(t, err)
	assert.Equal(t, float64(1), got["score"])
}

func TestMemoryStore_ConcurrentDistinctKeys(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("id-%d", n)
			assert.NoError(t, store.Put(id, models.AnalysisResult{"n": float64(n)}))
		}(i)
	}
	wg.Wait()

	got, err := store.Get("id-25")
	require.NoError(t, err)
	assert.Equal(t, float64(25), got["n"])
}
