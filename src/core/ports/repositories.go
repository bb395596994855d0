// Package ports defines interfaces (ports) that connect the core domain to
// infrastructure, following the ports and adapters pattern.
//
// Ports live in the core layer; the Postgres implementations (adapters) live
// in src/infra/repo. The core therefore never depends on the driver.
package ports

import (
	"context"

	"boardshelf/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// CategoryRepository covers CRUD and aggregation queries over categories.
//
// Find and Update report a missing id via domain.ErrNotFound; callers are
// expected to branch on domain.IsNotFound rather than treat it as a failure.
type CategoryRepository interface {
	Repository

	// ListWithCounts returns all categories ordered by name, each with the
	// number of games currently associated. Categories with no games still
	// appear, with a count of zero.
	ListWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error)

	// List returns all categories ordered by name, without counts.
	List(ctx context.Context) ([]domain.Category, error)

	// Find returns the category or domain.ErrNotFound.
	Find(ctx context.Context, id int64) (*domain.Category, error)

	// Create inserts a category and returns the persisted row including
	// the generated id and timestamp. A duplicate name is a constraint
	// violation.
	Create(ctx context.Context, name string) (*domain.Category, error)

	// Update renames the category, returning the updated row or
	// domain.ErrNotFound.
	Update(ctx context.Context, id int64, name string) (*domain.Category, error)

	// Destroy deletes the category, cascading to its associations. It
	// reports whether a row was actually removed; deleting a missing id is
	// not an error.
	Destroy(ctx context.Context, id int64) (bool, error)

	// Games returns all games associated with the category, ordered by name.
	Games(ctx context.Context, categoryID int64) ([]domain.Game, error)
}

// GameRepository covers CRUD over games plus transactional management of the
// game-category association set.
type GameRepository interface {
	Repository

	// ListAll returns all games ordered by name, each with its category
	// names ordered by name. With a non-nil categoryID the result is
	// restricted to games associated with that category; a game with no
	// matching category is excluded entirely.
	ListAll(ctx context.Context, categoryID *int64) ([]domain.GameWithCategories, error)

	// Find returns one game with its category names, or domain.ErrNotFound.
	Find(ctx context.Context, id int64) (*domain.GameWithCategories, error)

	// Create inserts the game row and one association row per category id,
	// atomically. Duplicate ids in categoryIDs are tolerated as no-ops; a
	// reference to a nonexistent category rolls the whole operation back.
	// The returned game carries no category names; use Find to re-fetch.
	Create(ctx context.Context, fields domain.GameFields, categoryIDs []int64) (*domain.Game, error)

	// Update replaces the game's scalar fields and its entire association
	// set, atomically. An id omitted from categoryIDs is unassociated even
	// if it was present before the call. Returns domain.ErrNotFound, with
	// nothing applied, when the game does not exist.
	Update(ctx context.Context, id int64, fields domain.GameFields, categoryIDs []int64) (*domain.Game, error)

	// Destroy deletes the game, cascading to its associations, and reports
	// whether a row was removed.
	Destroy(ctx context.Context, id int64) (bool, error)

	// SelectedCategoryIDs returns the current association set for a game.
	SelectedCategoryIDs(ctx context.Context, gameID int64) (map[int64]struct{}, error)
}
