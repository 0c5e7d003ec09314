package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. ParentID is a nullable self reference.
type CategoryModel struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                   string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description            string         `gorm:"type:varchar(1024);not null"`
	ParentID               *uuid.UUID     `gorm:"type:uuid;index"`
	Parent                 *CategoryModel `gorm:"foreignKey:ParentID;constraint:OnDelete:RESTRICT"`
	Active                 bool           `gorm:"not null;index"`
	RegistrationDate       time.Time      `gorm:"not null"`
	LastActivityChangeDate time.Time      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
