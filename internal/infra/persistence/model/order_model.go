package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Items are owned and deleted with the order.
type OrderModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID         `gorm:"type:uuid;index;not null"`
	Customer        *UserModel        `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Status          string            `gorm:"type:varchar(20);index;not null"`
	TotalAmount     decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	OrderDate       time.Time         `gorm:"index;not null"`
	LastUpdatedDate time.Time         `gorm:"not null"`
	Notes           string            `gorm:"type:varchar(1000)"`
	Items           []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Product          *ProductModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	ProductName      string          `gorm:"type:varchar(255);not null"`
	Quantity         int             `gorm:"not null;check:quantity > 0"`
	UnitPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ReservedQuantity int             `gorm:"not null;default:0;check:reserved_quantity >= 0"`
	Position         int             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
