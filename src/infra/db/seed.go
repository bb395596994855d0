package db

import (
	"context"
	"fmt"

	"boardshelf/src/core/domain"
)

// Seed installs the reference categories and sample games from
// domain.SeedCategories and domain.SeedGames. Rows are upserted by unique
// name and each seeded game's association set is rebuilt by deleting and
// re-inserting, so running Seed repeatedly converges to the same state.
//
// The whole batch runs in one transaction: any failure rolls back every
// statement, leaving prior state untouched.
func (p *Postgres) Seed(ctx context.Context) error {
	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	const upsertCategory = `
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	categoryIDs := make(map[string]int64, len(domain.SeedCategories))
	for _, name := range domain.SeedCategories {
		var id int64
		if err := tx.QueryRow(ctx, upsertCategory, name).Scan(&id); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
		categoryIDs[name] = id
	}

	const upsertGame = `
		INSERT INTO games (name, min_players, max_players, play_time_min)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
			SET min_players = EXCLUDED.min_players,
			    max_players = EXCLUDED.max_players,
			    play_time_min = EXCLUDED.play_time_min
		RETURNING id
	`
	const clearLinks = `DELETE FROM game_categories WHERE game_id = $1`
	const insertLink = `
		INSERT INTO game_categories (game_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	for _, g := range domain.SeedGames {
		var gameID int64
		if err := tx.QueryRow(ctx, upsertGame, g.Name, g.MinPlayers, g.MaxPlayers, g.PlayTimeMin).Scan(&gameID); err != nil {
			return fmt.Errorf("seed game %q: %w", g.Name, err)
		}

		// Rebuild the association set from the seed definition.
		if _, err := tx.Exec(ctx, clearLinks, gameID); err != nil {
			return fmt.Errorf("clear links for %q: %w", g.Name, err)
		}
		for _, categoryName := range g.Categories {
			categoryID, ok := categoryIDs[categoryName]
			if !ok {
				return fmt.Errorf("seed game %q references unknown category %q", g.Name, categoryName)
			}
			if _, err := tx.Exec(ctx, insertLink, gameID, categoryID); err != nil {
				return fmt.Errorf("link %q to %q: %w", g.Name, categoryName, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	p.log.Info("seed complete",
		"categories", len(domain.SeedCategories),
		"games", len(domain.SeedGames),
	)
	return nil
}
