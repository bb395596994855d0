package db

import (
	"context"
	"fmt"
)

// schemaStatements declares the three tables and their constraints. Every
// statement is guarded by IF NOT EXISTS, so EnsureSchema can run on every
// startup without touching an already-initialized database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id          SERIAL PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		created_at  TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS games (
		id             SERIAL PRIMARY KEY,
		name           TEXT NOT NULL UNIQUE,
		min_players    INTEGER NOT NULL CHECK (min_players >= 1),
		max_players    INTEGER NOT NULL CHECK (max_players >= min_players),
		play_time_min  INTEGER NOT NULL CHECK (play_time_min >= 0),
		created_at     TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS game_categories (
		game_id     INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
		category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		PRIMARY KEY (game_id, category_id)
	)`,
}

// EnsureSchema creates the catalog tables if they are absent. The statements
// run inside one transaction so a partially created schema never persists.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}

	p.log.Info("database schema ready")
	return nil
}
