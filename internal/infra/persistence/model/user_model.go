package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Version    int64     `gorm:"not null;default:0"`
	Username   string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password   string    `gorm:"type:varchar(255);not null"`
	FullName   string    `gorm:"type:varchar(255)"`
	Enabled    bool      `gorm:"not null;index"`
	Roles      []string  `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt  time.Time
	ModifiedAt time.Time `gorm:"autoUpdateTime"`
	CreatedBy  string    `gorm:"type:varchar(255)"`
	ModifiedBy string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
