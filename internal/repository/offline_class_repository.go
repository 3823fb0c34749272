package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"remedial/internal/model"
)

// OfflineClassRepository defines offline class persistence operations.
type OfflineClassRepository interface {
	Create(ctx context.Context, class *model.OfflineClass) error
	Update(ctx context.Context, class *model.OfflineClass) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OfflineClass, error)
	List(ctx context.Context) ([]model.OfflineClass, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type offlineClassRepository struct {
	db *gorm.DB
}

// NewOfflineClassRepository creates a new offline class repository.
func NewOfflineClassRepository(db *gorm.DB) OfflineClassRepository {
	return &offlineClassRepository{db: db}
}

// Create creates a new offline class.
func (r *offlineClassRepository) Create(ctx context.Context, class *model.OfflineClass) error {
	return r.db.WithContext(ctx).Create(class).Error
}

// Update updates an existing offline class.
func (r *offlineClassRepository) Update(ctx context.Context, class *model.OfflineClass) error {
	return r.db.WithContext(ctx).Save(class).Error
}

// FindByID finds an offline class by ID.
func (r *offlineClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OfflineClass, error) {
	var class model.OfflineClass
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

// List returns all offline classes.
func (r *offlineClassRepository) List(ctx context.Context) ([]model.OfflineClass, error) {
	var classes []model.OfflineClass
	if err := r.db.WithContext(ctx).Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

// DeleteByID deletes an offline class by ID.
func (r *offlineClassRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OfflineClass{}).Error
}
