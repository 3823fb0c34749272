package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"remedial/internal/cache"
	"remedial/internal/errors"
	"remedial/internal/imagehost"
	"remedial/internal/model"
	"remedial/internal/repository"
)

const (
	// DefaultLatestLimit is used when no explicit limit is given.
	DefaultLatestLimit = 3

	articleCacheTTL    = 2 * time.Minute
	articleCachePrefix = "articles:"
)

// ArticleInput carries the writable article fields.
type ArticleInput struct {
	Title       string
	Content     string
	Author      string
	CategoryID  uuid.UUID
	ReleaseDate time.Time
	TimesRead   int
}

// ImageUpload carries an uploaded cover image.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// ArticleService composes article reads joined with category data and
// orchestrates the multi-step article writes against the image host.
type ArticleService interface {
	ListArticles(ctx context.Context, categoryName string) ([]model.ArticleView, error)
	LatestArticles(ctx context.Context, limit int) ([]model.ArticleView, error)
	GetArticleByID(ctx context.Context, id uuid.UUID) (*model.ArticleView, error)
	CreateArticle(ctx context.Context, input ArticleInput, image ImageUpload, actorID uuid.UUID) (*model.Article, error)
	UpdateArticleByID(ctx context.Context, id uuid.UUID, input ArticleInput, image ImageUpload, actorID uuid.UUID) (*model.Article, error)
	DeleteArticleByID(ctx context.Context, id uuid.UUID) error
}

type articleService struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.ArticleCategoryRepository
	images       imagehost.Host
	cache        *cache.Client
}

// NewArticleService creates a new article service.
func NewArticleService(
	articleRepo repository.ArticleRepository,
	categoryRepo repository.ArticleCategoryRepository,
	images imagehost.Host,
	cache *cache.Client,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		images:       images,
		cache:        cache,
	}
}

// ListArticles returns article views, filtered by exact category name when one
// is given. An empty result set is reported as ErrNoArticles, even when
// unfiltered articles exist.
func (s *articleService) ListArticles(ctx context.Context, categoryName string) ([]model.ArticleView, error) {
	views, err := s.articleRepo.ListViews(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if len(views) == 0 {
		return nil, errors.ErrNoArticles
	}
	return views, nil
}

// LatestArticles returns up to limit views ordered by release date descending,
// cached briefly. A limit of zero or less falls back to the default.
func (s *articleService) LatestArticles(ctx context.Context, limit int) ([]model.ArticleView, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}

	key := fmt.Sprintf("%slatest:%d", articleCachePrefix, limit)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.ArticleView
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	views, err := s.articleRepo.LatestViews(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("latest articles: %w", err)
	}
	if len(views) == 0 {
		return nil, errors.ErrNoArticles
	}

	if payload, err := json.Marshal(views); err == nil {
		_ = s.cache.Set(ctx, key, payload, articleCacheTTL)
	}

	return views, nil
}

// GetArticleByID returns the joined view of a single article.
func (s *articleService) GetArticleByID(ctx context.Context, id uuid.UUID) (*model.ArticleView, error) {
	key := fmt.Sprintf("%sview:%s", articleCachePrefix, id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.ArticleView
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	view, err := s.articleRepo.ViewByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}

	if payload, err := json.Marshal(view); err == nil {
		_ = s.cache.Set(ctx, key, payload, articleCacheTTL)
	}

	return view, nil
}

// CreateArticle uploads the cover image, validates the category reference and
// persists the article. The image is uploaded before the category check; a
// failed check persists nothing but leaves the uploaded image behind.
func (s *articleService) CreateArticle(ctx context.Context, input ArticleInput, image ImageUpload, actorID uuid.UUID) (*model.Article, error) {
	img, err := s.images.Upload(ctx, image.Filename, image.Data)
	if err != nil {
		return nil, fmt.Errorf("upload article image: %w", err)
	}

	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("check article category: %w", err)
	}

	article := &model.Article{
		Title:       input.Title,
		Content:     input.Content,
		Author:      input.Author,
		CategoryID:  input.CategoryID,
		ReleaseDate: input.ReleaseDate,
		TimesRead:   input.TimesRead,
		ImageID:     img.ID,
		ImageURL:    img.URL,
		CreatedBy:   actorID,
		UpdatedBy:   actorID,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.invalidateViews(ctx)
	return article, nil
}

// UpdateArticleByID replaces the article's fields and rotates its image. The
// old image is deleted best-effort before the new upload and before category
// validation; a failure after that point leaves the article pointing at a
// deleted image.
func (s *articleService) UpdateArticleByID(ctx context.Context, id uuid.UUID, input ArticleInput, image ImageUpload, actorID uuid.UUID) (*model.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}

	// The previous image goes away before the replacement exists.
	_ = s.images.Destroy(ctx, article.ImageID)

	img, err := s.images.Upload(ctx, image.Filename, image.Data)
	if err != nil {
		return nil, fmt.Errorf("upload article image: %w", err)
	}

	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("check article category: %w", err)
	}

	article.Title = input.Title
	article.Content = input.Content
	article.Author = input.Author
	article.CategoryID = input.CategoryID
	article.ReleaseDate = input.ReleaseDate
	article.TimesRead = input.TimesRead
	article.ImageID = img.ID
	article.ImageURL = img.URL
	article.UpdatedBy = actorID

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	s.invalidateViews(ctx)
	return article, nil
}

// DeleteArticleByID deletes the article record, then its hosted image.
func (s *articleService) DeleteArticleByID(ctx context.Context, id uuid.UUID) error {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrArticleNotFound
		}
		return fmt.Errorf("find article: %w", err)
	}

	if err := s.articleRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	if err := s.images.Destroy(ctx, article.ImageID); err != nil {
		return fmt.Errorf("delete article image: %w", err)
	}

	s.invalidateViews(ctx)
	return nil
}

func (s *articleService) invalidateViews(ctx context.Context) {
	_ = s.cache.DeleteByPrefix(ctx, articleCachePrefix)
}
