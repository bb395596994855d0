// Package memory provides in-memory implementations of the repository ports.
// They mirror the storage semantics of the Postgres adapters (unique names,
// check constraints, cascading deletes, replace-all association updates) so
// that usecase and handler tests can run without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"boardshelf/src/core/domain"
	"boardshelf/src/core/ports"
)

var (
	_ ports.CategoryRepository = (*CategoryRepository)(nil)
	_ ports.GameRepository     = (*GameRepository)(nil)
)

// Store holds the shared catalog state behind the two repositories.
type Store struct {
	mu         sync.Mutex
	categories map[int64]domain.Category
	games      map[int64]domain.Game
	links      map[int64]map[int64]struct{} // game id -> category id set
	nextCatID  int64
	nextGameID int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		categories: make(map[int64]domain.Category),
		games:      make(map[int64]domain.Game),
		links:      make(map[int64]map[int64]struct{}),
		nextCatID:  1,
		nextGameID: 1,
	}
}

// Categories returns the category repository view of the store.
func (s *Store) Categories() *CategoryRepository {
	return &CategoryRepository{store: s}
}

// Games returns the game repository view of the store.
func (s *Store) Games() *GameRepository {
	return &GameRepository{store: s}
}

// CategoryRepository implements ports.CategoryRepository in memory.
type CategoryRepository struct {
	store *Store
}

func (r *CategoryRepository) Health(ctx context.Context) error { return nil }

func (r *CategoryRepository) ListWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CategoryWithCount, 0, len(s.categories))
	for id, c := range s.categories {
		count := 0
		for _, set := range s.links {
			if _, ok := set[id]; ok {
				count++
			}
		}
		out = append(out, domain.CategoryWithCount{Category: c, GameCount: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepository) Find(ctx context.Context, id int64) (*domain.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, domain.NewNotFoundError("category")
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (*domain.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return nil, domain.NewConstraintError("name must not be empty")
	}
	for _, c := range s.categories {
		if c.Name == name {
			return nil, domain.NewConstraintError("name already exists")
		}
	}
	c := domain.Category{ID: s.nextCatID, Name: name, CreatedAt: time.Now()}
	s.nextCatID++
	s.categories[c.ID] = c
	return &c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, domain.NewNotFoundError("category")
	}
	for otherID, other := range s.categories {
		if otherID != id && other.Name == name {
			return nil, domain.NewConstraintError("name already exists")
		}
	}
	c.Name = name
	s.categories[id] = c
	return &c, nil
}

func (r *CategoryRepository) Destroy(ctx context.Context, id int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	// Cascade: drop the category from every game's association set.
	for _, set := range s.links {
		delete(set, id)
	}
	return true, nil
}

func (r *CategoryRepository) Games(ctx context.Context, categoryID int64) ([]domain.Game, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Game{}
	for gameID, set := range s.links {
		if _, ok := set[categoryID]; ok {
			out = append(out, s.games[gameID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GameRepository implements ports.GameRepository in memory.
type GameRepository struct {
	store *Store
}

func (r *GameRepository) Health(ctx context.Context) error { return nil }

func (r *GameRepository) ListAll(ctx context.Context, categoryID *int64) ([]domain.GameWithCategories, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.GameWithCategories{}
	for gameID, g := range s.games {
		if categoryID != nil {
			// Inner-join semantics: skip games not tagged with the
			// filter category; the decorated list then carries only
			// the matching name.
			if _, ok := s.links[gameID][*categoryID]; !ok {
				continue
			}
			out = append(out, domain.GameWithCategories{
				Game:       g,
				Categories: []string{s.categories[*categoryID].Name},
			})
			continue
		}
		out = append(out, domain.GameWithCategories{
			Game:       g,
			Categories: s.categoryNamesLocked(gameID),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *GameRepository) Find(ctx context.Context, id int64) (*domain.GameWithCategories, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return nil, domain.NewNotFoundError("game")
	}
	return &domain.GameWithCategories{Game: g, Categories: s.categoryNamesLocked(id)}, nil
}

func (r *GameRepository) Create(ctx context.Context, fields domain.GameFields, categoryIDs []int64) (*domain.Game, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkGameFieldsLocked(fields, 0); err != nil {
		return nil, err
	}
	// Validate the whole association set before mutating anything, so a
	// bad category id leaves no partial game behind.
	for _, categoryID := range categoryIDs {
		if _, ok := s.categories[categoryID]; !ok {
			return nil, domain.NewConstraintError("referenced row does not exist")
		}
	}

	g := domain.Game{
		ID:          s.nextGameID,
		Name:        fields.Name,
		MinPlayers:  fields.MinPlayers,
		MaxPlayers:  fields.MaxPlayers,
		PlayTimeMin: fields.PlayTimeMin,
		CreatedAt:   time.Now(),
	}
	s.nextGameID++
	s.games[g.ID] = g
	s.links[g.ID] = idSet(categoryIDs)
	return &g, nil
}

func (r *GameRepository) Update(ctx context.Context, id int64, fields domain.GameFields, categoryIDs []int64) (*domain.Game, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return nil, domain.NewNotFoundError("game")
	}
	if err := s.checkGameFieldsLocked(fields, id); err != nil {
		return nil, err
	}
	for _, categoryID := range categoryIDs {
		if _, ok := s.categories[categoryID]; !ok {
			return nil, domain.NewConstraintError("referenced row does not exist")
		}
	}

	g.Name = fields.Name
	g.MinPlayers = fields.MinPlayers
	g.MaxPlayers = fields.MaxPlayers
	g.PlayTimeMin = fields.PlayTimeMin
	s.games[id] = g
	// Replace-all: the supplied set substitutes the prior one entirely.
	s.links[id] = idSet(categoryIDs)
	return &g, nil
}

func (r *GameRepository) Destroy(ctx context.Context, id int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return false, nil
	}
	delete(s.games, id)
	delete(s.links, id)
	return true, nil
}

func (r *GameRepository) SelectedCategoryIDs(ctx context.Context, gameID int64) (map[int64]struct{}, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int64]struct{}, len(s.links[gameID]))
	for id := range s.links[gameID] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (s *Store) categoryNamesLocked(gameID int64) []string {
	names := []string{}
	for categoryID := range s.links[gameID] {
		names = append(names, s.categories[categoryID].Name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) checkGameFieldsLocked(fields domain.GameFields, selfID int64) error {
	if fields.Name == "" {
		return domain.NewConstraintError("name must not be empty")
	}
	if fields.MinPlayers < 1 {
		return domain.NewConstraintError("min_players check failed")
	}
	if fields.MaxPlayers < fields.MinPlayers {
		return domain.NewConstraintError("max_players check failed")
	}
	if fields.PlayTimeMin < 0 {
		return domain.NewConstraintError("play_time_min check failed")
	}
	for id, g := range s.games {
		if id != selfID && g.Name == fields.Name {
			return domain.NewConstraintError("name already exists")
		}
	}
	return nil
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
