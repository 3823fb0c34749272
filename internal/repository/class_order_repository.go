package repository

import (
	"context"

	"gorm.io/gorm"

	"remedial/internal/model"
)

// ClassOrderRepository defines class order persistence operations. Orders are
// append-only; there is no update or delete.
type ClassOrderRepository interface {
	Create(ctx context.Context, order *model.ClassOrder) error
	List(ctx context.Context) ([]model.ClassOrder, error)
}

type classOrderRepository struct {
	db *gorm.DB
}

// NewClassOrderRepository creates a new class order repository.
func NewClassOrderRepository(db *gorm.DB) ClassOrderRepository {
	return &classOrderRepository{db: db}
}

// Create creates a new class order.
func (r *classOrderRepository) Create(ctx context.Context, order *model.ClassOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// List returns all class orders.
func (r *classOrderRepository) List(ctx context.Context) ([]model.ClassOrder, error) {
	var orders []model.ClassOrder
	if err := r.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
