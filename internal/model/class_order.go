package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClassOrder represents an offline class enrollment order. The transaction
// token is issued by the payment gateway before the record is persisted; a
// row exists only if token issuance succeeded.
type ClassOrder struct {
	ID               uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	FullName         string          `json:"full_name" gorm:"size:255;not null"`
	Email            string          `json:"email" gorm:"size:255;not null"`
	Phone            string          `json:"phone" gorm:"size:32"`
	BirthPlace       string          `json:"birth_place" gorm:"size:255"`
	BirthDate        string          `json:"birth_date" gorm:"size:32"`
	Gender           string          `json:"gender" gorm:"size:16"`
	School           string          `json:"school" gorm:"size:255"`
	Instagram        string          `json:"instagram" gorm:"size:255"`
	Address          string          `json:"address" gorm:"size:512"`
	UserID           string          `json:"user_id" gorm:"size:64;index"`
	Motivation       string          `json:"motivation" gorm:"type:text"`
	PortfolioFile    string          `json:"portfolio_file" gorm:"size:512"`
	PortfolioURL     string          `json:"portfolio_url" gorm:"size:1024"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	TransactionToken string          `json:"transaction_token" gorm:"size:255;not null"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (o *ClassOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
