package badger

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/strand/core"
	"github.com/poiesic/strand/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, value string) *core.StringRecord {
	t.Helper()
	record, err := core.NewStringRecord(value)
	require.NoError(t, err)
	return record
}

func TestInsertAndGet(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	inserted, err := repo.Insert(ctx, mustRecord(t, "racecar"))
	require.NoError(t, err)
	assert.False(t, inserted.CreatedAt.IsZero())
	assert.NotZero(t, inserted.Seq)

	got, err := repo.Get(ctx, core.IDFromContent("racecar"))
	require.NoError(t, err)
	assert.Equal(t, inserted.Id, got.Id)
	assert.Equal(t, "racecar", got.Value)
	assert.Equal(t, inserted.Properties, got.Properties)
	assert.True(t, inserted.CreatedAt.Equal(got.CreatedAt))
}

func TestInsert_CreatedAtSurvivesStorage(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	inserted, err := repo.Insert(ctx, mustRecord(t, "timestamped"))
	require.NoError(t, err)

	// The stamp must be exactly representable by the stored encoding.
	assert.True(t, inserted.CreatedAt.Equal(inserted.CreatedAt.Truncate(time.Microsecond)))

	got, err := repo.Get(ctx, core.IDFromContent("timestamped"))
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(inserted.CreatedAt),
		"stored created_at %v differs from returned %v", got.CreatedAt, inserted.CreatedAt)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].CreatedAt.Equal(inserted.CreatedAt))
}

func TestInsert_Duplicate(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	_, err = repo.Insert(ctx, mustRecord(t, "hello"))
	require.NoError(t, err)

	_, err = repo.Insert(ctx, mustRecord(t, "hello"))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	// The store still contains exactly one record.
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGet_NotFound(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	_, err = repo.Get(context.Background(), core.IDFromContent("missing"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	id := core.IDFromContent("ephemeral")

	_, err = repo.Insert(ctx, mustRecord(t, "ephemeral"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Deleting again reports not found.
	assert.ErrorIs(t, repo.Delete(ctx, id), storage.ErrNotFound)

	// The order index entry is gone too.
	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestList_InsertionOrder(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	values := []string{"first", "second", "third", "fourth"}
	for _, value := range values {
		_, err := repo.Insert(ctx, mustRecord(t, value))
		require.NoError(t, err)
	}

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(values))
	for i, record := range records {
		assert.Equal(t, values[i], record.Value)
	}
}

func TestList_OrderSurvivesDeletion(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	for _, value := range []string{"a", "b", "c"} {
		_, err := repo.Insert(ctx, mustRecord(t, value))
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, core.IDFromContent("b")))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Value)
	assert.Equal(t, "c", records[1].Value)
}

func TestReinsertAfterDelete(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	id := core.IDFromContent("phoenix")

	first, err := repo.Insert(ctx, mustRecord(t, "phoenix"))
	require.NoError(t, err)
	firstCreatedAt := first.CreatedAt
	firstSeq := first.Seq

	require.NoError(t, repo.Delete(ctx, id))

	second, err := repo.Insert(ctx, mustRecord(t, "phoenix"))
	require.NoError(t, err)

	// Same identity and properties, fresh insertion metadata.
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, first.Properties, second.Properties)
	assert.NotEqual(t, firstSeq, second.Seq)
	assert.False(t, second.CreatedAt.Before(firstCreatedAt))
}

func TestInsert_Concurrent(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Insert(ctx, mustRecord(t, fmt.Sprintf("value-%d", i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, count)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, n)
}
