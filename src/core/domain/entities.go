package domain

import "time"

// Category classifies games. Names are unique and stored case-sensitively.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryWithCount is a category annotated with how many games reference it.
type CategoryWithCount struct {
	Category
	GameCount int `json:"game_count"`
}

// Game is a catalogued board game. Names are unique.
type Game struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	MinPlayers  int       `json:"min_players"`
	MaxPlayers  int       `json:"max_players"`
	PlayTimeMin int       `json:"play_time_min"`
	CreatedAt   time.Time `json:"created_at"`
}

// GameWithCategories is a game decorated with the names of its categories,
// ordered by name. Categories is never nil: a game with no associations
// carries an empty slice.
type GameWithCategories struct {
	Game
	Categories []string `json:"categories"`
}

// GameFields holds the scalar attributes of a game for create/update calls.
// Name must arrive trimmed and the player/time invariants validated before
// the fields reach storage; the schema re-enforces them as a backstop.
type GameFields struct {
	Name        string
	MinPlayers  int
	MaxPlayers  int
	PlayTimeMin int
}
