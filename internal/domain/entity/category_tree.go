package entity

import (
	"strings"

	domainerrors "cafeteria/internal/domain/errors"

	"github.com/google/uuid"
)

const categoryPathSeparator = " > "

// CategoryTree is an arena of categories addressed by id. Parent links are
// validated on every insert and move, so the tree never contains a cycle.
type CategoryTree struct {
	nodes map[uuid.UUID]*Category
	order []uuid.UUID
}

// NewCategoryTree builds a tree from categories in any order.
func NewCategoryTree(categories []*Category) (*CategoryTree, error) {
	t := &CategoryTree{nodes: make(map[uuid.UUID]*Category, len(categories))}

	for _, c := range categories {
		if _, exists := t.nodes[c.ID]; exists {
			return nil, domainerrors.InvalidArgument("duplicate category id " + c.ID.String())
		}
		t.nodes[c.ID] = c
		t.order = append(t.order, c.ID)
	}

	for _, c := range categories {
		if c.ParentID == nil {
			continue
		}
		if _, ok := t.nodes[*c.ParentID]; !ok {
			return nil, domainerrors.InvalidArgument("parent category not found: " + c.ParentID.String())
		}
		if t.isAncestor(c.ID, *c.ParentID) {
			return nil, domainerrors.InvalidArgument("cannot create circular category hierarchy")
		}
	}

	return t, nil
}

// Insert adds a category whose parent, if any, must already be in the tree.
func (t *CategoryTree) Insert(c *Category) error {
	if c == nil {
		return domainerrors.InvalidArgument("category cannot be null")
	}
	if _, exists := t.nodes[c.ID]; exists {
		return domainerrors.InvalidArgument("category already present: " + c.ID.String())
	}
	if c.ParentID != nil {
		if *c.ParentID == c.ID {
			return domainerrors.InvalidArgument("category cannot be its own subcategory")
		}
		if _, ok := t.nodes[*c.ParentID]; !ok {
			return domainerrors.InvalidArgument("parent category not found: " + c.ParentID.String())
		}
	}

	t.nodes[c.ID] = c
	t.order = append(t.order, c.ID)

	return nil
}

// Get returns the category with the given id.
func (t *CategoryTree) Get(id uuid.UUID) (*Category, bool) {
	c, ok := t.nodes[id]

	return c, ok
}

// Len returns the number of categories in the tree.
func (t *CategoryTree) Len() int {
	return len(t.nodes)
}

// SetParent moves child under parent. A nil parent makes child a root.
func (t *CategoryTree) SetParent(childID uuid.UUID, parentID *uuid.UUID) error {
	child, ok := t.nodes[childID]
	if !ok {
		return domainerrors.ErrCategoryNotFound.WithDetails(childID.String())
	}

	if parentID == nil {
		child.ParentID = nil

		return nil
	}

	if *parentID == childID {
		return domainerrors.InvalidArgument("category cannot be its own subcategory")
	}
	if _, ok := t.nodes[*parentID]; !ok {
		return domainerrors.ErrCategoryNotFound.WithDetails(parentID.String())
	}
	if t.isAncestor(childID, *parentID) {
		return domainerrors.InvalidArgument("cannot create circular category hierarchy")
	}

	p := *parentID
	child.ParentID = &p

	return nil
}

// Children returns the direct subcategories of id in insertion order.
func (t *CategoryTree) Children(id uuid.UUID) []*Category {
	var children []*Category
	for _, cid := range t.order {
		c := t.nodes[cid]
		if c.ParentID != nil && *c.ParentID == id {
			children = append(children, c)
		}
	}

	return children
}

// HasSubcategories reports whether id has at least one child.
func (t *CategoryTree) HasSubcategories(id uuid.UUID) bool {
	return len(t.Children(id)) > 0
}

// Descendants returns every category below id, parents before children.
func (t *CategoryTree) Descendants(id uuid.UUID) []*Category {
	var result []*Category
	queue := []uuid.UUID{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range t.Children(current) {
			result = append(result, child)
			queue = append(queue, child.ID)
		}
	}

	return result
}

// Ancestors returns the chain from the direct parent up to the root.
func (t *CategoryTree) Ancestors(id uuid.UUID) []*Category {
	var result []*Category
	c, ok := t.nodes[id]
	for ok && c.ParentID != nil {
		c, ok = t.nodes[*c.ParentID]
		if ok {
			result = append(result, c)
		}
	}

	return result
}

// IsDescendantOf reports whether ancestorID is above id.
func (t *CategoryTree) IsDescendantOf(id, ancestorID uuid.UUID) bool {
	if id == ancestorID {
		return false
	}

	return t.isAncestor(ancestorID, id)
}

// Depth returns the number of ancestors of id; roots are at depth 0.
func (t *CategoryTree) Depth(id uuid.UUID) int {
	return len(t.Ancestors(id))
}

// Path renders the names from the root down to id, e.g. "Beverages > HotBeverages".
func (t *CategoryTree) Path(id uuid.UUID) string {
	c, ok := t.nodes[id]
	if !ok {
		return ""
	}

	ancestors := t.Ancestors(id)
	names := make([]string, 0, len(ancestors)+1)
	for i := len(ancestors) - 1; i >= 0; i-- {
		names = append(names, ancestors[i].Name.String())
	}
	names = append(names, c.Name.String())

	return strings.Join(names, categoryPathSeparator)
}

// Deactivate disables id and all of its descendants and returns every category
// it changed, id first.
func (t *CategoryTree) Deactivate(id uuid.UUID) ([]*Category, error) {
	c, ok := t.nodes[id]
	if !ok {
		return nil, domainerrors.ErrCategoryNotFound.WithDetails(id.String())
	}

	changed := []*Category{c}
	c.Deactivate()
	for _, d := range t.Descendants(id) {
		if d.Active {
			d.Deactivate()
			changed = append(changed, d)
		}
	}

	return changed, nil
}

// isAncestor walks up from start and reports whether candidate appears on the way,
// start included.
func (t *CategoryTree) isAncestor(candidate, start uuid.UUID) bool {
	visited := make(map[uuid.UUID]struct{})
	current := start
	for {
		if current == candidate {
			return true
		}
		if _, seen := visited[current]; seen {
			return true
		}
		visited[current] = struct{}{}

		c, ok := t.nodes[current]
		if !ok || c.ParentID == nil {
			return false
		}
		current = *c.ParentID
	}
}
