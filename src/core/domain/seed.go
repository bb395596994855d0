package domain

// Reference data installed by the seeder at startup. Categories and games are
// upserted by unique name, so editing this set and restarting converges the
// database to it without duplicating rows.

// SeedGame describes one seeded game and the category names it is tagged with.
type SeedGame struct {
	Name        string
	MinPlayers  int
	MaxPlayers  int
	PlayTimeMin int
	Categories  []string
}

// SeedCategories is the fixed category reference set.
var SeedCategories = []string{
	"TCG",
	"Co-op",
	"Strategy",
	"Card Game",
	"2 Players",
	"RPG",
}

// SeedGames is the sample game set. Every referenced category name must
// appear in SeedCategories.
var SeedGames = []SeedGame{
	{Name: "Gloomhaven", MinPlayers: 1, MaxPlayers: 4, PlayTimeMin: 120, Categories: []string{"RPG", "Strategy", "Co-op"}},
	{Name: "Azul", MinPlayers: 2, MaxPlayers: 4, PlayTimeMin: 45, Categories: []string{"Strategy"}},
	{Name: "Exploding Kittens", MinPlayers: 2, MaxPlayers: 5, PlayTimeMin: 20, Categories: []string{"Card Game"}},
	{Name: "Pandemic", MinPlayers: 2, MaxPlayers: 4, PlayTimeMin: 60, Categories: []string{"Co-op", "Strategy"}},
	{Name: "Jaipur", MinPlayers: 2, MaxPlayers: 2, PlayTimeMin: 30, Categories: []string{"2 Players", "Card Game"}},
}
