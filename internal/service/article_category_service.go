package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"remedial/internal/cache"
	"remedial/internal/errors"
	"remedial/internal/model"
	"remedial/internal/repository"
)

// ArticleCategoryService handles category CRUD. Category names are unique
// under a case-sensitive exact match; deleting a category does not touch
// articles that still reference it.
type ArticleCategoryService interface {
	ListCategories(ctx context.Context) ([]model.ArticleCategory, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*model.ArticleCategory, error)
	CreateCategory(ctx context.Context, name string, actorID uuid.UUID) (*model.ArticleCategory, error)
	UpdateCategoryByID(ctx context.Context, id uuid.UUID, name string) (*model.ArticleCategory, error)
	DeleteCategoryByID(ctx context.Context, id uuid.UUID) error
}

type articleCategoryService struct {
	repo  repository.ArticleCategoryRepository
	cache *cache.Client
}

// NewArticleCategoryService creates a new article category service.
func NewArticleCategoryService(repo repository.ArticleCategoryRepository, cache *cache.Client) ArticleCategoryService {
	return &articleCategoryService{
		repo:  repo,
		cache: cache,
	}
}

// ListCategories returns all categories.
func (s *articleCategoryService) ListCategories(ctx context.Context) ([]model.ArticleCategory, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByID returns a category by ID.
func (s *articleCategoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*model.ArticleCategory, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// CreateCategory creates a category after checking name uniqueness.
func (s *articleCategoryService) CreateCategory(ctx context.Context, name string, actorID uuid.UUID) (*model.ArticleCategory, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, errors.ErrCategoryExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check category name: %w", err)
	}

	category := &model.ArticleCategory{
		CategoryName: name,
		CreatedBy:    actorID,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// UpdateCategoryByID renames a category. Cached article views embed the
// category name, so they are dropped.
func (s *articleCategoryService) UpdateCategoryByID(ctx context.Context, id uuid.UUID, name string) (*model.ArticleCategory, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	category.CategoryName = name
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	_ = s.cache.DeleteByPrefix(ctx, articleCachePrefix)
	return category, nil
}

// DeleteCategoryByID deletes a category. References from existing articles
// are left dangling; the article join tolerates them.
func (s *articleCategoryService) DeleteCategoryByID(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCategoryNotFound
		}
		return fmt.Errorf("find category: %w", err)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	_ = s.cache.DeleteByPrefix(ctx, articleCachePrefix)
	return nil
}
