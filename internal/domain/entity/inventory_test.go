package entity

import (
	"testing"

	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInventory(t *testing.T, quantity int) *Inventory {
	t.Helper()

	inv, err := NewInventory(uuid.New(), quantity, StockLevels{
		MinimumStockLevel: 5,
		MaximumStockLevel: 50,
		ReorderPoint:      10,
		ReorderQuantity:   20,
	})
	require.NoError(t, err)

	return inv
}

func TestNewInventory_Validation(t *testing.T) {
	tests := []struct {
		name     string
		product  uuid.UUID
		quantity int
		levels   StockLevels
	}{
		{name: "missing product", product: uuid.Nil, quantity: 1},
		{name: "negative quantity", product: uuid.New(), quantity: -1},
		{name: "negative minimum", product: uuid.New(), levels: StockLevels{MinimumStockLevel: -1}},
		{name: "negative reorder point", product: uuid.New(), levels: StockLevels{ReorderPoint: -1}},
		{name: "max below min", product: uuid.New(), levels: StockLevels{MinimumStockLevel: 10, MaximumStockLevel: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInventory(tt.product, tt.quantity, tt.levels)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
		})
	}
}

func TestInventory_RemoveQuantity(t *testing.T) {
	inv := newTestInventory(t, 8)

	err := inv.RemoveQuantity(9)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	assert.Equal(t, 8, inv.CurrentQuantity)

	require.NoError(t, inv.RemoveQuantity(8))
	assert.Equal(t, 0, inv.CurrentQuantity)
	assert.True(t, inv.IsOutOfStock())

	assert.True(t, errors.Is(inv.RemoveQuantity(-1), domainerrors.ErrInvalidArgument))
}

func TestInventory_AddAndUpdateQuantity(t *testing.T) {
	inv := newTestInventory(t, 8)

	require.NoError(t, inv.AddQuantity(4))
	assert.Equal(t, 12, inv.CurrentQuantity)
	assert.True(t, errors.Is(inv.AddQuantity(-4), domainerrors.ErrInvalidArgument))

	require.NoError(t, inv.UpdateQuantity(60))
	assert.True(t, inv.IsAboveMaximumStock())
	assert.True(t, errors.Is(inv.UpdateQuantity(-1), domainerrors.ErrInvalidArgument))
}

func TestInventory_Predicates(t *testing.T) {
	tests := []struct {
		quantity    int
		below       bool
		atReorder   bool
		outOfStock  bool
		aboveMaximum bool
	}{
		{quantity: 0, below: true, atReorder: true, outOfStock: true},
		{quantity: 4, below: true, atReorder: true},
		{quantity: 5, atReorder: true},
		{quantity: 10, atReorder: true},
		{quantity: 11},
		{quantity: 50},
		{quantity: 51, aboveMaximum: true},
	}

	for _, tt := range tests {
		inv := newTestInventory(t, tt.quantity)
		assert.Equal(t, tt.below, inv.IsBelowMinimumStock(), "below minimum at %d", tt.quantity)
		assert.Equal(t, tt.atReorder, inv.IsAtReorderPoint(), "reorder point at %d", tt.quantity)
		assert.Equal(t, tt.outOfStock, inv.IsOutOfStock(), "out of stock at %d", tt.quantity)
		assert.Equal(t, tt.aboveMaximum, inv.IsAboveMaximumStock(), "above maximum at %d", tt.quantity)
	}
}

func TestInventory_LevelUpdates(t *testing.T) {
	inv := newTestInventory(t, 8)

	assert.True(t, errors.Is(inv.UpdateMinimumStockLevel(51), domainerrors.ErrInvalidArgument))
	assert.True(t, errors.Is(inv.UpdateMaximumStockLevel(4), domainerrors.ErrInvalidArgument))
	assert.True(t, errors.Is(inv.UpdateReorderQuantity(-1), domainerrors.ErrInvalidArgument))

	require.NoError(t, inv.UpdateLevels(StockLevels{MinimumStockLevel: 1, MaximumStockLevel: 2}))
	assert.Equal(t, StockLevels{MinimumStockLevel: 1, MaximumStockLevel: 2}, inv.Levels())

	err := inv.UpdateLevels(StockLevels{MinimumStockLevel: 3, MaximumStockLevel: 2})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	assert.Equal(t, 1, inv.MinimumStockLevel, "failed update must not change levels")
}

func TestDefaultStockLevels(t *testing.T) {
	assert.Equal(t, DefaultMaximumStockLevel, DefaultStockLevels(10).MaximumStockLevel)
	assert.Equal(t, 2500, DefaultStockLevels(2500).MaximumStockLevel)
}
