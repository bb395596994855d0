package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"boardshelf/src/core/domain"
	"boardshelf/src/infra/db"
)

// GameRepository implements ports.GameRepository using pgx. Create and Update
// own the transactional association logic: the game row and its category
// links always change together or not at all.
type GameRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewGameRepository constructs a game repository backed by Postgres.
func NewGameRepository(pg *db.Postgres, log *slog.Logger) *GameRepository {
	return &GameRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *GameRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *GameRepository) ListAll(ctx context.Context, categoryID *int64) ([]domain.GameWithCategories, error) {
	// The unfiltered query outer-joins so games without categories appear
	// with an empty name list. The filtered query inner-joins: a game not
	// associated with the category is excluded entirely.
	const allQ = `
		SELECT g.id, g.name, g.min_players, g.max_players, g.play_time_min, g.created_at,
		       COALESCE(ARRAY_AGG(c.name ORDER BY c.name) FILTER (WHERE c.id IS NOT NULL), '{}') AS categories
		FROM games g
		LEFT JOIN game_categories gc ON gc.game_id = g.id
		LEFT JOIN categories c ON c.id = gc.category_id
		GROUP BY g.id
		ORDER BY g.name
	`
	const filteredQ = `
		SELECT g.id, g.name, g.min_players, g.max_players, g.play_time_min, g.created_at,
		       COALESCE(ARRAY_AGG(c.name ORDER BY c.name) FILTER (WHERE c.id IS NOT NULL), '{}') AS categories
		FROM games g
		JOIN game_categories gc ON gc.game_id = g.id
		JOIN categories c ON c.id = gc.category_id
		WHERE c.id = $1
		GROUP BY g.id
		ORDER BY g.name
	`
	var (
		rows pgx.Rows
		err  error
	)
	if categoryID != nil {
		rows, err = r.pool.Query(ctx, filteredQ, *categoryID)
	} else {
		rows, err = r.pool.Query(ctx, allQ)
	}
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var games []domain.GameWithCategories
	for rows.Next() {
		g, err := scanGameWithCategories(rows)
		if err != nil {
			return nil, translateErr(err)
		}
		games = append(games, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return games, nil
}

func (r *GameRepository) Find(ctx context.Context, id int64) (*domain.GameWithCategories, error) {
	const q = `
		SELECT g.id, g.name, g.min_players, g.max_players, g.play_time_min, g.created_at,
		       COALESCE(ARRAY_AGG(c.name ORDER BY c.name) FILTER (WHERE c.id IS NOT NULL), '{}') AS categories
		FROM games g
		LEFT JOIN game_categories gc ON gc.game_id = g.id
		LEFT JOIN categories c ON c.id = gc.category_id
		WHERE g.id = $1
		GROUP BY g.id
	`
	g, err := scanGameWithCategories(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("game")
		}
		return nil, translateErr(err)
	}
	return g, nil
}

func (r *GameRepository) Create(ctx context.Context, fields domain.GameFields, categoryIDs []int64) (*domain.Game, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, translateErr(err)
	}
	defer tx.Rollback(ctx)

	const insertGame = `
		INSERT INTO games (name, min_players, max_players, play_time_min)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, min_players, max_players, play_time_min, created_at
	`
	var g domain.Game
	if err := tx.QueryRow(ctx, insertGame, fields.Name, fields.MinPlayers, fields.MaxPlayers, fields.PlayTimeMin).Scan(
		&g.ID, &g.Name, &g.MinPlayers, &g.MaxPlayers, &g.PlayTimeMin, &g.CreatedAt,
	); err != nil {
		return nil, translateErr(err)
	}

	if err := insertLinks(ctx, tx, g.ID, categoryIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, translateErr(err)
	}
	return &g, nil
}

func (r *GameRepository) Update(ctx context.Context, id int64, fields domain.GameFields, categoryIDs []int64) (*domain.Game, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, translateErr(err)
	}
	defer tx.Rollback(ctx)

	const updateGame = `
		UPDATE games
		SET name = $2,
		    min_players = $3,
		    max_players = $4,
		    play_time_min = $5
		WHERE id = $1
		RETURNING id, name, min_players, max_players, play_time_min, created_at
	`
	var g domain.Game
	if err := tx.QueryRow(ctx, updateGame, id, fields.Name, fields.MinPlayers, fields.MaxPlayers, fields.PlayTimeMin).Scan(
		&g.ID, &g.Name, &g.MinPlayers, &g.MaxPlayers, &g.PlayTimeMin, &g.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("game")
		}
		return nil, translateErr(err)
	}

	// Replace-all: discard the prior association set and substitute the
	// supplied one. An id omitted from categoryIDs is unassociated even if
	// it was present before the call.
	if _, err := tx.Exec(ctx, `DELETE FROM game_categories WHERE game_id = $1`, id); err != nil {
		return nil, translateErr(err)
	}
	if err := insertLinks(ctx, tx, id, categoryIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, translateErr(err)
	}
	return &g, nil
}

func (r *GameRepository) Destroy(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM games WHERE id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, translateErr(err)
	}
	return res.RowsAffected() > 0, nil
}

func (r *GameRepository) SelectedCategoryIDs(ctx context.Context, gameID int64) (map[int64]struct{}, error) {
	const q = `SELECT category_id FROM game_categories WHERE game_id = $1`
	rows, err := r.pool.Query(ctx, q, gameID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, translateErr(err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return ids, nil
}

// insertLinks inserts one association row per category id. Duplicates in the
// list are no-ops; a nonexistent category id fails the enclosing transaction
// with a constraint violation.
func insertLinks(ctx context.Context, tx pgx.Tx, gameID int64, categoryIDs []int64) error {
	const q = `
		INSERT INTO game_categories (game_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	for _, categoryID := range categoryIDs {
		if _, err := tx.Exec(ctx, q, gameID, categoryID); err != nil {
			return translateErr(err)
		}
	}
	return nil
}

// scanGameWithCategories scans a decorated game row, normalizing a missing
// category aggregate to an empty slice.
func scanGameWithCategories(row pgx.Row) (*domain.GameWithCategories, error) {
	var g domain.GameWithCategories
	if err := row.Scan(&g.ID, &g.Name, &g.MinPlayers, &g.MaxPlayers, &g.PlayTimeMin, &g.CreatedAt, &g.Categories); err != nil {
		return nil, err
	}
	if g.Categories == nil {
		g.Categories = []string{}
	}
	return &g, nil
}
