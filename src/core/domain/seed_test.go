package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedGamesReferenceKnownCategories(t *testing.T) {
	known := make(map[string]bool, len(SeedCategories))
	for _, name := range SeedCategories {
		assert.NotEmpty(t, name)
		assert.False(t, known[name], "duplicate seed category %q", name)
		known[name] = true
	}

	for _, g := range SeedGames {
		for _, categoryName := range g.Categories {
			assert.True(t, known[categoryName],
				"game %q references unknown category %q", g.Name, categoryName)
		}
	}
}

func TestSeedGamesSatisfyInvariants(t *testing.T) {
	seen := make(map[string]bool, len(SeedGames))
	for _, g := range SeedGames {
		assert.NotEmpty(t, g.Name)
		assert.False(t, seen[g.Name], "duplicate seed game %q", g.Name)
		seen[g.Name] = true

		assert.GreaterOrEqual(t, g.MinPlayers, 1, "%s min players", g.Name)
		assert.GreaterOrEqual(t, g.MaxPlayers, g.MinPlayers, "%s max players", g.Name)
		assert.GreaterOrEqual(t, g.PlayTimeMin, 0, "%s play time", g.Name)
	}
}
