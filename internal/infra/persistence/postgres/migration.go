package postgres

import (
	"context"

	"cafeteria/internal/errors"
	"cafeteria/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every persistence model. The
// uuid_generate_v7() column default requires the pg_uuidv7 extension.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS pg_uuidv7").Error; err != nil {
		return errors.Wrap(err, "failed to enable pg_uuidv7")
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.InventoryModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
