package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryModel mirrors the 'inventories' table, one row per product.
type InventoryModel struct {
	ID                uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID         uuid.UUID     `gorm:"type:uuid;uniqueIndex;not null"`
	Product           *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CurrentQuantity   int           `gorm:"not null;check:current_quantity >= 0"`
	MinimumStockLevel int           `gorm:"not null"`
	MaximumStockLevel int           `gorm:"not null"`
	ReorderPoint      int           `gorm:"not null"`
	ReorderQuantity   int           `gorm:"not null"`
	Active            bool          `gorm:"not null;index"`
	CreatedAt         time.Time
	LastUpdated       time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventories"
}
