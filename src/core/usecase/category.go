package usecase

import (
	"context"
	"log/slog"
	"strings"

	"boardshelf/src/core/domain"
	"boardshelf/src/core/ports"
)

// CategoryService handles category catalog flows. It trims and validates
// input before it reaches storage; the schema enforces the same rules as a
// backstop, so the two layers never disagree on what is valid.
type CategoryService struct {
	repo ports.CategoryRepository
	log  *slog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log *slog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) ListWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error) {
	return s.repo.ListWithCounts(ctx)
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Find(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.Find(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	return s.repo.Create(ctx, name)
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	return s.repo.Update(ctx, id, name)
}

func (s *CategoryService) Destroy(ctx context.Context, id int64) (bool, error) {
	removed, err := s.repo.Destroy(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.log.Info("category deleted", "category_id", id)
	}
	return removed, nil
}

func (s *CategoryService) Games(ctx context.Context, categoryID int64) ([]domain.Game, error) {
	if _, err := s.repo.Find(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.repo.Games(ctx, categoryID)
}
