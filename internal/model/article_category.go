package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleCategory represents a named grouping of articles.
type ArticleCategory struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	CategoryName string         `json:"category_name" gorm:"uniqueIndex;size:255;not null"`
	CreatedBy    uuid.UUID      `json:"created_by" gorm:"type:char(36)"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (c *ArticleCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
