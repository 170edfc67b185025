package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-crud/internal/model"
	"notes-crud/internal/repository"
)

func TestRepository_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	first, err := repo.Create(ctx, model.Note{Title: "A", Content: "B"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, model.Note{Title: "C", Content: "D"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestRepository_IDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	created, err := repo.Create(ctx, model.Note{Title: "A"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, created.ID))

	next, err := repo.Create(ctx, model.Note{Title: "B"})
	require.NoError(t, err)
	assert.Greater(t, next.ID, created.ID)
}

func TestRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	for _, title := range []string{"one", "two", "three"} {
		_, err := repo.Create(ctx, model.Note{Title: title})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Delete(ctx, 2))

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "one", notes[0].Title)
	assert.Equal(t, "three", notes[1].Title)
}

func TestRepository_ListEmptyIsNotNil(t *testing.T) {
	notes, err := NewRepository().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	_, err := repo.Create(ctx, model.Note{Title: "A"})
	require.NoError(t, err)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	notes[0].Title = "mutated"

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", stored.Title)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	_, err := NewRepository().GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	created, err := repo.Create(ctx, model.Note{Title: "A", Content: "B"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, model.Note{ID: created.ID, Title: "X", Content: ""})
	require.NoError(t, err)
	assert.Equal(t, model.Note{ID: created.ID, Title: "X", Content: ""}, updated)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestRepository_Update_NotFoundHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	_, err := repo.Create(ctx, model.Note{Title: "A", Content: "B"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, model.Note{ID: 99, Title: "X", Content: "Y"})
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Note{{ID: 1, Title: "A", Content: "B"}}, notes)
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	created, err := repo.Create(ctx, model.Note{Title: "A"})
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, created.ID))
	assert.NoError(t, repo.Delete(ctx, created.ID))
	assert.NoError(t, repo.Delete(ctx, 12345))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)
}

func TestRepository_ConcurrentCreateProducesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	const workers = 50
	ids := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			note, err := repo.Create(ctx, model.Note{Title: "t"})
			if err == nil {
				ids <- note.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}
