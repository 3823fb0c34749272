package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"remedial/internal/cache"
	apperrors "remedial/internal/errors"
	"remedial/internal/imagehost"
	"remedial/internal/model"
)

var nilCache *cache.Client

func newArticleFixtures() (*MockArticleRepository, *MockCategoryRepository, *MockImageHost, ArticleService) {
	articleRepo := new(MockArticleRepository)
	categoryRepo := new(MockCategoryRepository)
	images := new(MockImageHost)
	svc := NewArticleService(articleRepo, categoryRepo, images, nilCache)
	return articleRepo, categoryRepo, images, svc
}

func sampleInput(categoryID uuid.UUID) ArticleInput {
	return ArticleInput{
		Title:       "Intro to Go",
		Content:     "Some content",
		Author:      "Jane",
		CategoryID:  categoryID,
		ReleaseDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		TimesRead:   0,
	}
}

func TestArticleService_ListArticles(t *testing.T) {
	tests := []struct {
		name         string
		categoryName string
		repoViews    []model.ArticleView
		expectedErr  error
		expectedLen  int
	}{
		{
			name:      "unfiltered list",
			repoViews: []model.ArticleView{{Title: "a"}, {Title: "b"}},

			expectedLen: 2,
		},
		{
			name:         "filtered subset",
			categoryName: "Programming",
			repoViews:    []model.ArticleView{{Title: "a", CategoryName: "Programming"}},
			expectedLen:  1,
		},
		{
			name:         "empty filtered result is not found even when other articles exist",
			categoryName: "Nonexistent",
			repoViews:    []model.ArticleView{},
			expectedErr:  apperrors.ErrNoArticles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articleRepo, _, _, svc := newArticleFixtures()
			articleRepo.On("ListViews", mock.Anything, tt.categoryName).Return(tt.repoViews, nil)

			views, err := svc.ListArticles(context.Background(), tt.categoryName)

			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, views)
			} else {
				assert.NoError(t, err)
				assert.Len(t, views, tt.expectedLen)
			}
			articleRepo.AssertExpectations(t)
		})
	}
}

func TestArticleService_LatestArticles(t *testing.T) {
	t.Run("returns most recent first", func(t *testing.T) {
		articleRepo, _, _, svc := newArticleFixtures()
		newest := model.ArticleView{Title: "new", ReleaseDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
		older := model.ArticleView{Title: "old", ReleaseDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
		articleRepo.On("LatestViews", mock.Anything, 2).Return([]model.ArticleView{newest, older}, nil)

		views, err := svc.LatestArticles(context.Background(), 2)

		assert.NoError(t, err)
		assert.Equal(t, []model.ArticleView{newest, older}, views)
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		articleRepo, _, _, svc := newArticleFixtures()
		articleRepo.On("LatestViews", mock.Anything, DefaultLatestLimit).
			Return([]model.ArticleView{{Title: "a"}}, nil)

		_, err := svc.LatestArticles(context.Background(), 0)

		assert.NoError(t, err)
		articleRepo.AssertExpectations(t)
	})

	t.Run("empty store is not found", func(t *testing.T) {
		articleRepo, _, _, svc := newArticleFixtures()
		articleRepo.On("LatestViews", mock.Anything, 3).Return([]model.ArticleView{}, nil)

		_, err := svc.LatestArticles(context.Background(), 3)

		assert.Equal(t, apperrors.ErrNoArticles, err)
	})
}

func TestArticleService_GetArticleByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		articleRepo, _, _, svc := newArticleFixtures()
		id := uuid.New()
		view := &model.ArticleView{ID: id, Title: "a", CategoryName: "Programming"}
		articleRepo.On("ViewByID", mock.Anything, id).Return(view, nil)

		got, err := svc.GetArticleByID(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing id", func(t *testing.T) {
		articleRepo, _, _, svc := newArticleFixtures()
		id := uuid.New()
		articleRepo.On("ViewByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetArticleByID(context.Background(), id)

		assert.Equal(t, apperrors.ErrArticleNotFound, err)
	})
}

func TestArticleService_CreateArticle(t *testing.T) {
	actor := uuid.New()
	categoryID := uuid.New()
	image := ImageUpload{Filename: "cover.png", Data: []byte("png-bytes")}

	t.Run("uploads, validates category, persists", func(t *testing.T) {
		articleRepo, categoryRepo, images, svc := newArticleFixtures()
		images.On("Upload", mock.Anything, "cover.png", image.Data).
			Return(imagehost.Image{ID: "img-key", URL: "https://cdn/img-key"}, nil)
		categoryRepo.On("FindByID", mock.Anything, categoryID).
			Return(&model.ArticleCategory{ID: categoryID, CategoryName: "Programming"}, nil)
		articleRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)

		article, err := svc.CreateArticle(context.Background(), sampleInput(categoryID), image, actor)

		assert.NoError(t, err)
		assert.Equal(t, "Intro to Go", article.Title)
		assert.Equal(t, "img-key", article.ImageID)
		assert.Equal(t, "https://cdn/img-key", article.ImageURL)
		assert.Equal(t, actor, article.CreatedBy)
		assert.Equal(t, actor, article.UpdatedBy)
		articleRepo.AssertExpectations(t)
	})

	t.Run("missing category persists nothing but leaves the uploaded image", func(t *testing.T) {
		articleRepo, categoryRepo, images, svc := newArticleFixtures()
		images.On("Upload", mock.Anything, "cover.png", image.Data).
			Return(imagehost.Image{ID: "orphan-key", URL: "https://cdn/orphan-key"}, nil)
		categoryRepo.On("FindByID", mock.Anything, categoryID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CreateArticle(context.Background(), sampleInput(categoryID), image, actor)

		assert.Equal(t, apperrors.ErrCategoryNotFound, err)
		images.AssertCalled(t, "Upload", mock.Anything, "cover.png", image.Data)
		articleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("upload failure persists nothing", func(t *testing.T) {
		articleRepo, categoryRepo, images, svc := newArticleFixtures()
		images.On("Upload", mock.Anything, "cover.png", image.Data).
			Return(imagehost.Image{}, assert.AnError)

		_, err := svc.CreateArticle(context.Background(), sampleInput(categoryID), image, actor)

		assert.Error(t, err)
		categoryRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		articleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestArticleService_UpdateArticleByID(t *testing.T) {
	actor := uuid.New()
	categoryID := uuid.New()
	image := ImageUpload{Filename: "new.png", Data: []byte("new-bytes")}

	t.Run("missing article performs no image operations", func(t *testing.T) {
		articleRepo, _, images, svc := newArticleFixtures()
		id := uuid.New()
		articleRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.UpdateArticleByID(context.Background(), id, sampleInput(categoryID), image, actor)

		assert.Equal(t, apperrors.ErrArticleNotFound, err)
		images.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
		images.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rotates the image and overwrites fields", func(t *testing.T) {
		articleRepo, categoryRepo, images, svc := newArticleFixtures()
		id := uuid.New()
		existing := &model.Article{ID: id, Title: "old", ImageID: "old-key", ImageURL: "https://cdn/old-key"}
		articleRepo.On("FindByID", mock.Anything, id).Return(existing, nil)
		images.On("Destroy", mock.Anything, "old-key").Return(nil)
		images.On("Upload", mock.Anything, "new.png", image.Data).
			Return(imagehost.Image{ID: "new-key", URL: "https://cdn/new-key"}, nil)
		categoryRepo.On("FindByID", mock.Anything, categoryID).
			Return(&model.ArticleCategory{ID: categoryID}, nil)
		articleRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)

		article, err := svc.UpdateArticleByID(context.Background(), id, sampleInput(categoryID), image, actor)

		assert.NoError(t, err)
		assert.Equal(t, "Intro to Go", article.Title)
		assert.Equal(t, "new-key", article.ImageID)
		assert.Equal(t, actor, article.UpdatedBy)
		images.AssertCalled(t, "Destroy", mock.Anything, "old-key")
	})

	t.Run("category failure after the old image is gone", func(t *testing.T) {
		articleRepo, categoryRepo, images, svc := newArticleFixtures()
		id := uuid.New()
		existing := &model.Article{ID: id, ImageID: "old-key"}
		articleRepo.On("FindByID", mock.Anything, id).Return(existing, nil)
		images.On("Destroy", mock.Anything, "old-key").Return(nil)
		images.On("Upload", mock.Anything, "new.png", image.Data).
			Return(imagehost.Image{ID: "new-key", URL: "https://cdn/new-key"}, nil)
		categoryRepo.On("FindByID", mock.Anything, categoryID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.UpdateArticleByID(context.Background(), id, sampleInput(categoryID), image, actor)

		assert.Equal(t, apperrors.ErrCategoryNotFound, err)
		images.AssertCalled(t, "Destroy", mock.Anything, "old-key")
		articleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestArticleService_DeleteArticleByID(t *testing.T) {
	t.Run("deletes record then image", func(t *testing.T) {
		articleRepo, _, images, svc := newArticleFixtures()
		id := uuid.New()
		articleRepo.On("FindByID", mock.Anything, id).Return(&model.Article{ID: id, ImageID: "key"}, nil)
		articleRepo.On("DeleteByID", mock.Anything, id).Return(nil)
		images.On("Destroy", mock.Anything, "key").Return(nil)

		err := svc.DeleteArticleByID(context.Background(), id)

		assert.NoError(t, err)
		articleRepo.AssertExpectations(t)
		images.AssertExpectations(t)
	})

	t.Run("missing article", func(t *testing.T) {
		articleRepo, _, images, svc := newArticleFixtures()
		id := uuid.New()
		articleRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		err := svc.DeleteArticleByID(context.Background(), id)

		assert.Equal(t, apperrors.ErrArticleNotFound, err)
		articleRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
		images.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
	})
}
