package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/blevesearch/bleve/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestIndexingService(t *testing.T) *IndexingService {
	t.Helper()
	service := NewIndexingService(zap.NewNop(), t.TempDir())
	t.Cleanup(func() {
		require.NoError(t, service.DeleteAllIndices())
	})
	return service
}

func TestIndexAndSearchDocument(t *testing.T) {
	service := newTestIndexingService(t)

	err := service.IndexDocument("people", "1", map[string]interface{}{"name": "wang"})
	require.NoError(t, err)

	result, err := service.SearchIndex("people", bleve.NewMatchAllQuery(), 10)
	require.NoError(t, err)
	require.Equal(t, uint64(1), result.Total)
}

// Index creation is lazy, so the very first documents for an index can
// arrive on concurrent requests. All writers must end up on one shared
// index instance instead of racing to create it.
func TestConcurrentFirstWriters(t *testing.T) {
	service := newTestIndexingService(t)

	const writers = 8
	const docsPerWriter = 5

	var wg sync.WaitGroup
	errs := make(chan error, writers*docsPerWriter)

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			indexName := "people"
			if w%2 == 1 {
				indexName = "cases"
			}
			for d := 0; d < docsPerWriter; d++ {
				id := fmt.Sprintf("%d-%d", w, d)
				errs <- service.IndexDocument(indexName, id, map[string]interface{}{"id": id})
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	for _, indexName := range []string{"people", "cases"} {
		result, err := service.SearchIndex(indexName, bleve.NewMatchAllQuery(), 100)
		require.NoError(t, err)
		require.Equal(t, uint64(writers/2*docsPerWriter), result.Total, indexName)
	}
}

func TestBulkIndexAndDelete(t *testing.T) {
	service := newTestIndexingService(t)

	docs := map[string]interface{}{
		"a": map[string]interface{}{"name": "chen"},
		"b": map[string]interface{}{"name": "lin"},
	}
	require.NoError(t, service.BulkIndexDocuments("people", docs))

	require.NoError(t, service.DeleteDocument("people", "a"))

	result, err := service.SearchIndex("people", bleve.NewMatchAllQuery(), 10)
	require.NoError(t, err)
	require.Equal(t, uint64(1), result.Total)
}
