package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string          `gorm:"type:varchar(255);index;not null"`
	Description string          `gorm:"type:varchar(1024);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Category    *CategoryModel  `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Active      bool            `gorm:"not null;index"`
	ImageURL    string          `gorm:"type:varchar(2048)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
