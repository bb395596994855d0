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

func newGameService(t *testing.T) (*GameService, *CategoryService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	log := slog.Default()
	return NewGameService(store.Games(), log), NewCategoryService(store.Categories(), log), store
}

func validFields() domain.GameFields {
	return domain.GameFields{Name: "Azul", MinPlayers: 2, MaxPlayers: 4, PlayTimeMin: 45}
}

func TestGameFieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.GameFields)
		field  string
	}{
		{
			name:   "empty name",
			mutate: func(f *domain.GameFields) { f.Name = "   " },
			field:  "name",
		},
		{
			name:   "min players below one",
			mutate: func(f *domain.GameFields) { f.MinPlayers = 0 },
			field:  "min_players",
		},
		{
			name:   "max players below min",
			mutate: func(f *domain.GameFields) { f.MinPlayers = 4; f.MaxPlayers = 2 },
			field:  "max_players",
		},
		{
			name:   "negative play time",
			mutate: func(f *domain.GameFields) { f.PlayTimeMin = -1 },
			field:  "play_time_min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, store := newGameService(t)

			fields := validFields()
			tt.mutate(&fields)

			_, err := svc.Create(context.Background(), fields, nil)
			require.True(t, domain.IsValidationError(err))

			var de *domain.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.field, de.Field)

			// The invalid create never reached storage.
			games, err := store.Games().ListAll(context.Background(), nil)
			require.NoError(t, err)
			assert.Empty(t, games)
		})
	}
}

func TestGameCreateTrimsNameAndLinksCategories(t *testing.T) {
	svc, categories, _ := newGameService(t)
	ctx := context.Background()

	strategy, err := categories.Create(ctx, "Strategy")
	require.NoError(t, err)

	fields := validFields()
	fields.Name = "  Azul  "
	created, err := svc.Create(ctx, fields, []int64{strategy.ID})
	require.NoError(t, err)
	assert.Equal(t, "Azul", created.Name)

	found, err := svc.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Strategy"}, found.Categories)
}

func TestGameCreateUnknownCategoryRollsBack(t *testing.T) {
	svc, _, store := newGameService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validFields(), []int64{99})
	require.True(t, domain.IsConstraint(err))

	// No partial game row survives the failed association insert.
	games, err := store.Games().ListAll(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGameUpdateReplacesAssociationSet(t *testing.T) {
	svc, categories, _ := newGameService(t)
	ctx := context.Background()

	strategy, err := categories.Create(ctx, "Strategy")
	require.NoError(t, err)
	coop, err := categories.Create(ctx, "Co-op")
	require.NoError(t, err)

	created, err := svc.Create(ctx, validFields(), []int64{strategy.ID, coop.ID})
	require.NoError(t, err)

	// Replace-all: omitting strategy unassociates it, not a merge.
	fields := validFields()
	_, err = svc.Update(ctx, created.ID, fields, []int64{coop.ID})
	require.NoError(t, err)

	found, err := svc.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Co-op"}, found.Categories)

	// Empty set clears every association.
	_, err = svc.Update(ctx, created.ID, fields, nil)
	require.NoError(t, err)

	found, err = svc.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Categories)
	assert.NotNil(t, found.Categories)
}

func TestGameUpdateNotFound(t *testing.T) {
	svc, _, _ := newGameService(t)

	_, err := svc.Update(context.Background(), 42, validFields(), nil)
	assert.True(t, domain.IsNotFound(err))
}

func TestGameListAllFilterExcludesUnassociatedGames(t *testing.T) {
	svc, categories, _ := newGameService(t)
	ctx := context.Background()

	strategy, err := categories.Create(ctx, "Strategy")
	require.NoError(t, err)

	created, err := svc.Create(ctx, validFields(), []int64{strategy.ID})
	require.NoError(t, err)

	filtered, err := svc.ListAll(ctx, &strategy.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Azul", filtered[0].Name)

	// Removing the association removes the game from the filtered view
	// even though the game itself still exists.
	_, err = svc.Update(ctx, created.ID, validFields(), nil)
	require.NoError(t, err)

	filtered, err = svc.ListAll(ctx, &strategy.ID)
	require.NoError(t, err)
	assert.Empty(t, filtered)

	all, err := svc.ListAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGameSelectedCategoryIDsSorted(t *testing.T) {
	svc, categories, _ := newGameService(t)
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"Strategy", "Co-op", "Card Game"} {
		c, err := categories.Create(ctx, name)
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	created, err := svc.Create(ctx, validFields(), []int64{ids[2], ids[0], ids[1]})
	require.NoError(t, err)

	selected, err := svc.SelectedCategoryIDs(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[0], ids[1], ids[2]}, selected)

	_, err = svc.SelectedCategoryIDs(ctx, created.ID+99)
	assert.True(t, domain.IsNotFound(err))
}

func TestGameDestroyIsIdempotent(t *testing.T) {
	svc, _, _ := newGameService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validFields(), nil)
	require.NoError(t, err)

	removed, err := svc.Destroy(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Destroy(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCategoryDestroyCascadesToGames(t *testing.T) {
	svc, categories, _ := newGameService(t)
	ctx := context.Background()

	strategy, err := categories.Create(ctx, "Strategy")
	require.NoError(t, err)

	created, err := svc.Create(ctx, validFields(), []int64{strategy.ID})
	require.NoError(t, err)

	removed, err := categories.Destroy(ctx, strategy.ID)
	require.NoError(t, err)
	require.True(t, removed)

	found, err := svc.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Categories)

	selected, err := svc.SelectedCategoryIDs(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, selected)
}
