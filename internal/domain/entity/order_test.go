package entity

import (
	"testing"

	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, name, price string) *Product {
	t.Helper()

	p, err := NewProduct(MustWord(name), MustWord("Test product"), decimal.RequireFromString(price), uuid.New(), "")
	require.NoError(t, err)

	return p
}

func newTestOrder(t *testing.T) *Order {
	t.Helper()

	o, err := NewOrder(uuid.New(), "")
	require.NoError(t, err)

	return o
}

func assertTotalMatchesItems(t *testing.T, o *Order) {
	t.Helper()

	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.TotalPrice)
	}
	assert.True(t, sum.Equal(o.TotalAmount), "total %s != sum of items %s", o.TotalAmount, sum)
}

func TestNewOrder_RequiresCustomer(t *testing.T) {
	_, err := NewOrder(uuid.Nil, "")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestOrder_AddItemMergesSameProduct(t *testing.T) {
	o := newTestOrder(t)
	p := newTestProduct(t, "Cappuccino", "2.50")

	require.NoError(t, o.AddItem(p, 2))
	assert.True(t, decimal.RequireFromString("5.00").Equal(o.TotalAmount))

	require.NoError(t, o.AddItem(p, 1))
	require.Len(t, o.Items, 1)
	assert.Equal(t, 3, o.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("7.50").Equal(o.TotalAmount))
	assertTotalMatchesItems(t, o)
}

func TestOrder_AddItemKeepsOriginalUnitPrice(t *testing.T) {
	o := newTestOrder(t)
	p := newTestProduct(t, "Espresso", "1.50")

	require.NoError(t, o.AddItem(p, 1))
	require.NoError(t, p.ChangePrice(decimal.RequireFromString("9.99")))
	require.NoError(t, o.AddItem(p, 1))

	assert.True(t, decimal.RequireFromString("1.50").Equal(o.Items[0].UnitPrice))
	assert.True(t, decimal.RequireFromString("3.00").Equal(o.TotalAmount))
}

func TestOrder_AddItemValidation(t *testing.T) {
	o := newTestOrder(t)
	p := newTestProduct(t, "Espresso", "1.50")

	tests := []struct {
		name     string
		product  *Product
		quantity int
	}{
		{name: "nil product", product: nil, quantity: 1},
		{name: "zero quantity", product: p, quantity: 0},
		{name: "negative quantity", product: p, quantity: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := o.AddItem(tt.product, tt.quantity)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
			assert.Empty(t, o.Items)
		})
	}
}

func TestOrder_ItemMutationsRecomputeTotal(t *testing.T) {
	o := newTestOrder(t)
	espresso := newTestProduct(t, "Espresso", "1.50")
	lemonade := newTestProduct(t, "Lemonade", "2.00")

	require.NoError(t, o.AddItem(espresso, 2))
	require.NoError(t, o.AddItem(lemonade, 3))
	assertTotalMatchesItems(t, o)
	assert.True(t, decimal.RequireFromString("9.00").Equal(o.TotalAmount))
	assert.Equal(t, 2, o.ItemCount())
	assert.Equal(t, 5, o.TotalProductCount())

	require.NoError(t, o.UpdateItemQuantity(o.Items[1].ID, 1))
	assertTotalMatchesItems(t, o)
	assert.True(t, decimal.RequireFromString("5.00").Equal(o.TotalAmount))

	require.NoError(t, o.RemoveItem(o.Items[0].ID))
	assertTotalMatchesItems(t, o)
	assert.True(t, decimal.RequireFromString("2.00").Equal(o.TotalAmount))
}

func TestOrder_RemoveUnknownItemIsNoop(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.AddItem(newTestProduct(t, "Espresso", "1.50"), 1))

	require.NoError(t, o.RemoveItem(uuid.New()))
	assert.Len(t, o.Items, 1)
}

func TestOrder_UpdateUnknownItemFails(t *testing.T) {
	o := newTestOrder(t)

	err := o.UpdateItemQuantity(uuid.New(), 2)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestOrder_ConfirmRequiresItems(t *testing.T) {
	o := newTestOrder(t)

	err := o.Confirm()
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidState))
	assert.Equal(t, OrderStatusPending, o.Status)
}

func TestOrder_HappyPathLifecycle(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.AddItem(newTestProduct(t, "Espresso", "1.50"), 1))

	require.NoError(t, o.Confirm())
	assert.Equal(t, OrderStatusConfirmed, o.Status)
	require.NoError(t, o.StartPreparing())
	assert.Equal(t, OrderStatusPreparing, o.Status)
	require.NoError(t, o.MarkAsReady())
	assert.Equal(t, OrderStatusReady, o.Status)
	require.NoError(t, o.Deliver())
	assert.Equal(t, OrderStatusDelivered, o.Status)
	assert.False(t, o.IsActive())
}

func TestOrder_OutOfSequenceTransitionsFail(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.AddItem(newTestProduct(t, "Espresso", "1.50"), 1))

	assert.True(t, errors.Is(o.StartPreparing(), domainerrors.ErrInvalidState))
	assert.True(t, errors.Is(o.MarkAsReady(), domainerrors.ErrInvalidState))
	assert.True(t, errors.Is(o.Deliver(), domainerrors.ErrInvalidState))

	require.NoError(t, o.Confirm())
	assert.True(t, errors.Is(o.Deliver(), domainerrors.ErrInvalidState))
	assert.True(t, errors.Is(o.Confirm(), domainerrors.ErrInvalidState))
	assert.Equal(t, OrderStatusConfirmed, o.Status)
}

func TestOrder_ItemsFrozenAfterConfirm(t *testing.T) {
	o := newTestOrder(t)
	p := newTestProduct(t, "Espresso", "1.50")
	require.NoError(t, o.AddItem(p, 1))
	require.NoError(t, o.Confirm())

	assert.True(t, errors.Is(o.AddItem(p, 1), domainerrors.ErrInvalidState))
	assert.True(t, errors.Is(o.RemoveItem(o.Items[0].ID), domainerrors.ErrInvalidState))
	assert.True(t, errors.Is(o.UpdateItemQuantity(o.Items[0].ID, 4), domainerrors.ErrInvalidState))
	assert.Equal(t, 1, o.Items[0].Quantity)
}

func TestOrder_Cancel(t *testing.T) {
	advance := func(t *testing.T, o *Order, to OrderStatus) {
		t.Helper()
		steps := []func() error{o.Confirm, o.StartPreparing, o.MarkAsReady, o.Deliver}
		order := []OrderStatus{OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered}
		for i, step := range steps {
			if o.Status == to {
				return
			}
			require.NoError(t, step())
			require.Equal(t, order[i], o.Status)
		}
	}

	tests := []struct {
		from    OrderStatus
		allowed bool
	}{
		{from: OrderStatusPending, allowed: true},
		{from: OrderStatusConfirmed, allowed: true},
		{from: OrderStatusPreparing, allowed: false},
		{from: OrderStatusReady, allowed: false},
		{from: OrderStatusDelivered, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			o := newTestOrder(t)
			require.NoError(t, o.AddItem(newTestProduct(t, "Espresso", "1.50"), 1))
			advance(t, o, tt.from)

			err := o.Cancel()
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, OrderStatusCancelled, o.Status)
			} else {
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidState))
				assert.Equal(t, tt.from, o.Status)
			}
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
		OrderStatusPreparing: {OrderStatusReady},
		OrderStatusReady:     {OrderStatusDelivered},
	}
	all := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range allowed[from] {
				want = want || next == to
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrder_TransitionRejectsSkippedSteps(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.AddItem(newTestProduct(t, "Espresso", "1.50"), 1))
	modified := o.LastUpdatedDate

	for _, step := range []func() error{o.StartPreparing, o.MarkAsReady, o.Deliver} {
		assert.True(t, errors.Is(step(), domainerrors.ErrInvalidState))
	}
	assert.Equal(t, OrderStatusPending, o.Status)
	assert.Equal(t, modified, o.LastUpdatedDate)
}

func TestOrder_CancelTwiceFails(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.Cancel())

	assert.True(t, errors.Is(o.Cancel(), domainerrors.ErrInvalidState))
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("preparing")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPreparing, status)
	assert.Equal(t, "Order is being prepared", status.Description())

	_, err = ParseOrderStatus("shipped")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}
