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

// CategoryRepository implements ports.CategoryRepository using pgx.
type CategoryRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewCategoryRepository constructs a category repository backed by Postgres.
func NewCategoryRepository(pg *db.Postgres, log *slog.Logger) *CategoryRepository {
	return &CategoryRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *CategoryRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *CategoryRepository) ListWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error) {
	// LEFT JOIN keeps categories with zero games in the result.
	const q = `
		SELECT c.id, c.name, c.created_at, COUNT(gc.game_id)::int AS game_count
		FROM categories c
		LEFT JOIN game_categories gc ON gc.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var categories []domain.CategoryWithCount
	for rows.Next() {
		var c domain.CategoryWithCount
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.GameCount); err != nil {
			return nil, translateErr(err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return categories, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, translateErr(err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return categories, nil
}

func (r *CategoryRepository) Find(ctx context.Context, id int64) (*domain.Category, error) {
	const q = `
		SELECT id, name, created_at
		FROM categories
		WHERE id = $1
	`
	var c domain.Category
	if err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("category")
		}
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (*domain.Category, error) {
	const q = `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`
	var c domain.Category
	if err := r.pool.QueryRow(ctx, q, name).Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	const q = `
		UPDATE categories
		SET name = $2
		WHERE id = $1
		RETURNING id, name, created_at
	`
	var c domain.Category
	if err := r.pool.QueryRow(ctx, q, id, name).Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("category")
		}
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *CategoryRepository) Destroy(ctx context.Context, id int64) (bool, error) {
	// Association rows go with it via ON DELETE CASCADE.
	const q = `DELETE FROM categories WHERE id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, translateErr(err)
	}
	return res.RowsAffected() > 0, nil
}

func (r *CategoryRepository) Games(ctx context.Context, categoryID int64) ([]domain.Game, error) {
	const q = `
		SELECT g.id, g.name, g.min_players, g.max_players, g.play_time_min, g.created_at
		FROM games g
		JOIN game_categories gc ON gc.game_id = g.id
		WHERE gc.category_id = $1
		ORDER BY g.name
	`
	rows, err := r.pool.Query(ctx, q, categoryID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.MinPlayers, &g.MaxPlayers, &g.PlayTimeMin, &g.CreatedAt); err != nil {
			return nil, translateErr(err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return games, nil
}
