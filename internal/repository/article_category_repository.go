package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"remedial/internal/model"
)

// ArticleCategoryRepository defines category persistence operations.
type ArticleCategoryRepository interface {
	Create(ctx context.Context, category *model.ArticleCategory) error
	Update(ctx context.Context, category *model.ArticleCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ArticleCategory, error)
	FindByName(ctx context.Context, name string) (*model.ArticleCategory, error)
	List(ctx context.Context) ([]model.ArticleCategory, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type articleCategoryRepository struct {
	db *gorm.DB
}

// NewArticleCategoryRepository creates a new article category repository.
func NewArticleCategoryRepository(db *gorm.DB) ArticleCategoryRepository {
	return &articleCategoryRepository{db: db}
}

// Create creates a new category.
func (r *articleCategoryRepository) Create(ctx context.Context, category *model.ArticleCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update updates an existing category.
func (r *articleCategoryRepository) Update(ctx context.Context, category *model.ArticleCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// FindByID finds a category by ID.
func (r *articleCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ArticleCategory, error) {
	var category model.ArticleCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByName finds a category by its exact name (case-sensitive).
func (r *articleCategoryRepository) FindByName(ctx context.Context, name string) (*model.ArticleCategory, error) {
	var category model.ArticleCategory
	err := r.db.WithContext(ctx).
		Where("BINARY category_name = ?", name).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns all categories.
func (r *articleCategoryRepository) List(ctx context.Context) ([]model.ArticleCategory, error) {
	var categories []model.ArticleCategory
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// DeleteByID deletes a category by ID. Articles referencing it are left
// untouched; the reference is not constrained.
func (r *articleCategoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ArticleCategory{}).Error
}
