package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfflineClass represents a scheduled in-person class session.
type OfflineClass struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Subject   string         `json:"subject" gorm:"size:255;not null"`
	Location  string         `json:"location" gorm:"size:255;not null"`
	StartDate time.Time      `json:"start_date" gorm:"not null"`
	Time      string         `json:"time" gorm:"size:64;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (c *OfflineClass) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
