package entity

import (
	"testing"

	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategory(t *testing.T, name string, parent *Category) *Category {
	t.Helper()

	c, err := NewCategory(MustWord(name), MustWord("Some description"))
	require.NoError(t, err)
	if parent != nil {
		id := parent.ID
		c.ParentID = &id
	}

	return c
}

func TestCategoryTree_PathAndDepth(t *testing.T) {
	beverages := newTestCategory(t, "Beverages", nil)
	hot := newTestCategory(t, "HotBeverages", beverages)
	tea := newTestCategory(t, "Tea", hot)

	tree, err := NewCategoryTree([]*Category{tea, hot, beverages})
	require.NoError(t, err)

	assert.Equal(t, "Beverages > HotBeverages > Tea", tree.Path(tea.ID))
	assert.Equal(t, 0, tree.Depth(beverages.ID))
	assert.Equal(t, 2, tree.Depth(tea.ID))
	assert.True(t, tree.IsDescendantOf(tea.ID, beverages.ID))
	assert.False(t, tree.IsDescendantOf(beverages.ID, tea.ID))
	assert.ElementsMatch(t, []*Category{hot, tea}, tree.Descendants(beverages.ID))
	assert.Equal(t, []*Category{hot}, tree.Children(beverages.ID))
}

func TestCategoryTree_InsertRequiresKnownParent(t *testing.T) {
	tree, err := NewCategoryTree(nil)
	require.NoError(t, err)

	orphan := newTestCategory(t, "Orphan", nil)
	missing := uuid.New()
	orphan.ParentID = &missing

	assert.True(t, errors.Is(tree.Insert(orphan), domainerrors.ErrInvalidArgument))
	assert.Equal(t, 0, tree.Len())
}

func TestCategoryTree_SetParentRejectsCycles(t *testing.T) {
	a := newTestCategory(t, "Alpha", nil)
	b := newTestCategory(t, "Beta", a)
	c := newTestCategory(t, "Gamma", b)

	tree, err := NewCategoryTree([]*Category{a, b, c})
	require.NoError(t, err)

	t.Run("self", func(t *testing.T) {
		err := tree.SetParent(a.ID, &a.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	})

	t.Run("direct cycle", func(t *testing.T) {
		err := tree.SetParent(a.ID, &b.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
		assert.Nil(t, a.ParentID)
	})

	t.Run("indirect cycle", func(t *testing.T) {
		err := tree.SetParent(a.ID, &c.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	})

	t.Run("unknown parent", func(t *testing.T) {
		missing := uuid.New()
		err := tree.SetParent(c.ID, &missing)
		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	})

	t.Run("valid move and detach", func(t *testing.T) {
		require.NoError(t, tree.SetParent(c.ID, &a.ID))
		assert.Equal(t, 1, tree.Depth(c.ID))

		require.NoError(t, tree.SetParent(c.ID, nil))
		assert.True(t, c.IsRoot())
	})
}

func TestNewCategoryTree_RejectsStoredCycle(t *testing.T) {
	a := newTestCategory(t, "Alpha", nil)
	b := newTestCategory(t, "Beta", a)
	a.ParentID = &b.ID

	_, err := NewCategoryTree([]*Category{a, b})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestCategoryTree_DeactivateCascades(t *testing.T) {
	food := newTestCategory(t, "FoodItems", nil)
	sandwiches := newTestCategory(t, "Sandwiches", food)
	salads := newTestCategory(t, "Salads", food)
	other := newTestCategory(t, "Beverages", nil)

	tree, err := NewCategoryTree([]*Category{food, sandwiches, salads, other})
	require.NoError(t, err)

	changed, err := tree.Deactivate(food.ID)
	require.NoError(t, err)

	assert.Len(t, changed, 3)
	assert.False(t, food.Active)
	assert.False(t, sandwiches.Active)
	assert.False(t, salads.Active)
	assert.True(t, other.Active)

	food.Activate()
	assert.True(t, food.Active)
	assert.False(t, sandwiches.Active, "activation is not recursive")
}
