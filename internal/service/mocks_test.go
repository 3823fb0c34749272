package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"remedial/internal/gateway"
	"remedial/internal/imagehost"
	"remedial/internal/model"
)

// MockArticleRepository is a mock implementation of repository.ArticleRepository.
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) ListViews(ctx context.Context, categoryName string) ([]model.ArticleView, error) {
	args := m.Called(ctx, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArticleView), args.Error(1)
}

func (m *MockArticleRepository) LatestViews(ctx context.Context, limit int) ([]model.ArticleView, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArticleView), args.Error(1)
}

func (m *MockArticleRepository) ViewByID(ctx context.Context, id uuid.UUID) (*model.ArticleView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArticleView), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repository.ArticleCategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.ArticleCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *model.ArticleCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ArticleCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArticleCategory), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*model.ArticleCategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArticleCategory), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.ArticleCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArticleCategory), args.Error(1)
}

func (m *MockCategoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockClassOrderRepository is a mock implementation of repository.ClassOrderRepository.
type MockClassOrderRepository struct {
	mock.Mock
}

func (m *MockClassOrderRepository) Create(ctx context.Context, order *model.ClassOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockClassOrderRepository) List(ctx context.Context) ([]model.ClassOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClassOrder), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockImageHost is a mock implementation of imagehost.Host.
type MockImageHost struct {
	mock.Mock
}

func (m *MockImageHost) Upload(ctx context.Context, filename string, data []byte) (imagehost.Image, error) {
	args := m.Called(ctx, filename, data)
	return args.Get(0).(imagehost.Image), args.Error(1)
}

func (m *MockImageHost) Destroy(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of gateway.TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) CreateTransactionToken(ctx context.Context, req gateway.TokenRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
