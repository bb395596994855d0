// Package dto contains Data Transfer Objects for HTTP requests.
//
// DTOs stay separate from domain entities so the API can control what it
// accepts and add binding tags without leaking HTTP concerns into the core.
package dto

import "boardshelf/src/core/domain"

// CategoryRequest is the payload for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// GameRequest is the payload for creating or updating a game. CategoryIDs is
// the full replacement association set; omitting it clears all associations
// on update.
type GameRequest struct {
	Name        string  `json:"name" binding:"required"`
	MinPlayers  int     `json:"min_players"`
	MaxPlayers  int     `json:"max_players"`
	PlayTimeMin int     `json:"play_time_min"`
	CategoryIDs []int64 `json:"category_ids"`
}

// Fields converts the request's scalar attributes to domain form.
func (r *GameRequest) Fields() domain.GameFields {
	return domain.GameFields{
		Name:        r.Name,
		MinPlayers:  r.MinPlayers,
		MaxPlayers:  r.MaxPlayers,
		PlayTimeMin: r.PlayTimeMin,
	}
}
