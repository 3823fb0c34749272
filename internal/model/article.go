package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article represents a published article with a hosted cover image.
// CategoryID is a plain reference validated at write time; there is no
// foreign-key constraint and no cascade from category deletion.
type Article struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Content     string         `json:"content" gorm:"type:text;not null"`
	Author      string         `json:"author" gorm:"size:255;not null"`
	CategoryID  uuid.UUID      `json:"category_id" gorm:"type:char(36);not null;index"`
	ReleaseDate time.Time      `json:"release_date" gorm:"not null;index"`
	TimesRead   int            `json:"times_read" gorm:"not null;default:0"`
	ImageID     string         `json:"image_id" gorm:"size:512;not null"`
	ImageURL    string         `json:"image_url" gorm:"size:1024;not null"`
	CreatedBy   uuid.UUID      `json:"created_by" gorm:"type:char(36)"`
	UpdatedBy   uuid.UUID      `json:"updated_by" gorm:"type:char(36)"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ArticleView is the denormalized read projection of an article joined with
// its category name. CategoryName is empty when the referenced category no
// longer exists (left join).
type ArticleView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	ReleaseDate  time.Time `json:"release_date"`
	TimesRead    int       `json:"times_read"`
	ImageURL     string    `json:"image_url"`
	CategoryName string    `json:"category_name"`
}
