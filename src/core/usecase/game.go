package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"boardshelf/src/core/domain"
	"boardshelf/src/core/ports"
)

// GameService handles game catalog flows, including the category association
// set managed transactionally by the repository.
type GameService struct {
	repo ports.GameRepository
	log  *slog.Logger
}

func NewGameService(repo ports.GameRepository, log *slog.Logger) *GameService {
	return &GameService{repo: repo, log: log}
}

func (s *GameService) ListAll(ctx context.Context, categoryID *int64) ([]domain.GameWithCategories, error) {
	return s.repo.ListAll(ctx, categoryID)
}

func (s *GameService) Find(ctx context.Context, id int64) (*domain.GameWithCategories, error) {
	return s.repo.Find(ctx, id)
}

func (s *GameService) Create(ctx context.Context, fields domain.GameFields, categoryIDs []int64) (*domain.Game, error) {
	fields, err := validateGameFields(fields)
	if err != nil {
		return nil, err
	}
	game, err := s.repo.Create(ctx, fields, categoryIDs)
	if err != nil {
		return nil, err
	}
	s.log.Info("game created", "game_id", game.ID, "name", game.Name, "categories", len(categoryIDs))
	return game, nil
}

func (s *GameService) Update(ctx context.Context, id int64, fields domain.GameFields, categoryIDs []int64) (*domain.Game, error) {
	fields, err := validateGameFields(fields)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, fields, categoryIDs)
}

func (s *GameService) Destroy(ctx context.Context, id int64) (bool, error) {
	removed, err := s.repo.Destroy(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.log.Info("game deleted", "game_id", id)
	}
	return removed, nil
}

// SelectedCategoryIDs returns the association set of a game as a sorted
// slice, suitable for pre-populating an edit form.
func (s *GameService) SelectedCategoryIDs(ctx context.Context, gameID int64) ([]int64, error) {
	if _, err := s.repo.Find(ctx, gameID); err != nil {
		return nil, err
	}
	set, err := s.repo.SelectedCategoryIDs(ctx, gameID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// validateGameFields trims the name and checks the player and play-time
// invariants the schema also enforces.
func validateGameFields(fields domain.GameFields) (domain.GameFields, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	if fields.Name == "" {
		return fields, domain.NewValidationError("name", "name is required")
	}
	if fields.MinPlayers < 1 {
		return fields, domain.NewValidationError("min_players", "min players must be at least 1")
	}
	if fields.MaxPlayers < fields.MinPlayers {
		return fields, domain.NewValidationError("max_players", "max players must be >= min players")
	}
	if fields.PlayTimeMin < 0 {
		return fields, domain.NewValidationError("play_time_min", "play time must be >= 0")
	}
	return fields, nil
}
