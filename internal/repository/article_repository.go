package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"remedial/internal/model"
)

// articleViewSelect projects the joined article/category rows into
// model.ArticleView columns.
const articleViewSelect = "articles.id AS id, articles.title AS title, " +
	"articles.content AS content, articles.author AS author, " +
	"articles.release_date AS release_date, articles.times_read AS times_read, " +
	"articles.image_url AS image_url, " +
	"article_categories.category_name AS category_name"

// ArticleRepository defines article persistence operations, including the
// denormalized read projections joined with the category name.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ListViews(ctx context.Context, categoryName string) ([]model.ArticleView, error)
	LatestViews(ctx context.Context, limit int) ([]model.ArticleView, error)
	ViewByID(ctx context.Context, id uuid.UUID) (*model.ArticleView, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create creates a new article.
func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// Update updates an existing article.
func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// FindByID finds an article by ID.
func (r *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// DeleteByID deletes an article by ID.
func (r *articleRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Article{}).Error
}

// viewQuery builds the base joined projection. The join is a left join so an
// article survives a missing category; filtering on the joined name turns it
// into an inner join in effect.
func (r *articleRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Article{}).
		Select(articleViewSelect).
		Joins("LEFT JOIN article_categories ON article_categories.id = articles.category_id AND article_categories.deleted_at IS NULL")
}

// ListViews returns all article views, optionally restricted to articles whose
// joined category name equals categoryName exactly (case-sensitive).
func (r *articleRepository) ListViews(ctx context.Context, categoryName string) ([]model.ArticleView, error) {
	q := r.viewQuery(ctx)
	if categoryName != "" {
		q = q.Where("BINARY article_categories.category_name = ?", categoryName)
	}

	var views []model.ArticleView
	if err := q.Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// LatestViews returns up to limit article views ordered by release date
// descending. Ties keep the store's default ordering.
func (r *articleRepository) LatestViews(ctx context.Context, limit int) ([]model.ArticleView, error) {
	var views []model.ArticleView
	err := r.viewQuery(ctx).
		Order("articles.release_date DESC").
		Limit(limit).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// ViewByID returns the joined projection of a single article.
func (r *articleRepository) ViewByID(ctx context.Context, id uuid.UUID) (*model.ArticleView, error) {
	var view model.ArticleView
	err := r.viewQuery(ctx).
		Where("articles.id = ?", id).
		Limit(1).
		Scan(&view).Error
	if err != nil {
		return nil, err
	}
	if view.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &view, nil
}
