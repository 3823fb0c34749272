package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "remedial/internal/errors"
	"remedial/internal/model"
)

func TestArticleCategoryService_CreateCategory(t *testing.T) {
	actor := uuid.New()

	tests := []struct {
		name          string
		categoryName  string
		setupMock     func(*MockCategoryRepository)
		expectedError error
	}{
		{
			name:         "new name succeeds",
			categoryName: "Programming",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Programming").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.ArticleCategory")).Return(nil)
			},
		},
		{
			name:         "duplicate name conflicts",
			categoryName: "Programming",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByName", mock.Anything, "Programming").
					Return(&model.ArticleCategory{CategoryName: "Programming"}, nil)
			},
			expectedError: apperrors.ErrCategoryExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCategoryRepository)
			tt.setupMock(repo)

			svc := NewArticleCategoryService(repo, nilCache)
			category, err := svc.CreateCategory(context.Background(), tt.categoryName, actor)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, category)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.categoryName, category.CategoryName)
				assert.Equal(t, actor, category.CreatedBy)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestArticleCategoryService_UpdateCategoryByID(t *testing.T) {
	t.Run("renames existing category", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).
			Return(&model.ArticleCategory{ID: id, CategoryName: "Old"}, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.ArticleCategory")).Return(nil)

		svc := NewArticleCategoryService(repo, nilCache)
		category, err := svc.UpdateCategoryByID(context.Background(), id, "New")

		assert.NoError(t, err)
		assert.Equal(t, "New", category.CategoryName)
	})

	t.Run("missing id", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewArticleCategoryService(repo, nilCache)
		_, err := svc.UpdateCategoryByID(context.Background(), id, "New")

		assert.Equal(t, apperrors.ErrCategoryNotFound, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestArticleCategoryService_DeleteCategoryByID(t *testing.T) {
	t.Run("deletes existing category", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(&model.ArticleCategory{ID: id}, nil)
		repo.On("DeleteByID", mock.Anything, id).Return(nil)

		svc := NewArticleCategoryService(repo, nilCache)
		assert.NoError(t, svc.DeleteCategoryByID(context.Background(), id))
	})

	t.Run("missing id", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewArticleCategoryService(repo, nilCache)
		err := svc.DeleteCategoryByID(context.Background(), id)

		assert.Equal(t, apperrors.ErrCategoryNotFound, err)
		repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}
