package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardshelf/src/core/domain"
	"boardshelf/src/infra/repo/memory"
)

func newCategoryService(t *testing.T) (*CategoryService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewCategoryService(store.Categories(), slog.Default()), store
}

func TestCategoryCreateTrimsName(t *testing.T) {
	svc, _ := newCategoryService(t)

	created, err := svc.Create(context.Background(), "  Strategy  ")
	require.NoError(t, err)

	assert.Equal(t, "Strategy", created.Name)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCategoryCreateRejectsEmptyName(t *testing.T) {
	svc, store := newCategoryService(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(context.Background(), name)
		assert.True(t, domain.IsValidationError(err), "name %q", name)
	}

	// Nothing reached storage.
	categories, err := store.Categories().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Strategy")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Strategy")
	assert.True(t, domain.IsConstraint(err))
}

func TestCategoryUpdate(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Stratgy")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, " Strategy ")
	require.NoError(t, err)
	assert.Equal(t, "Strategy", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	_, err = svc.Update(ctx, created.ID+99, "Party")
	assert.True(t, domain.IsNotFound(err))

	_, err = svc.Update(ctx, created.ID, "  ")
	assert.True(t, domain.IsValidationError(err))
}

func TestCategoryDestroyIsIdempotent(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Strategy")
	require.NoError(t, err)

	removed, err := svc.Destroy(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Destroy(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCategoryListWithCountsIncludesEmptyCategories(t *testing.T) {
	svc, store := newCategoryService(t)
	ctx := context.Background()

	strategy, err := svc.Create(ctx, "Strategy")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Co-op")
	require.NoError(t, err)

	_, err = store.Games().Create(ctx, domain.GameFields{
		Name: "Azul", MinPlayers: 2, MaxPlayers: 4, PlayTimeMin: 45,
	}, []int64{strategy.ID})
	require.NoError(t, err)

	categories, err := svc.ListWithCounts(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	// Ordered by name; zero-association categories still appear.
	assert.Equal(t, "Co-op", categories[0].Name)
	assert.Equal(t, 0, categories[0].GameCount)
	assert.Equal(t, "Strategy", categories[1].Name)
	assert.Equal(t, 1, categories[1].GameCount)
}

func TestCategoryGamesRequiresExistingCategory(t *testing.T) {
	svc, _ := newCategoryService(t)

	_, err := svc.Games(context.Background(), 42)
	assert.True(t, domain.IsNotFound(err))
}
