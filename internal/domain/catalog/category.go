package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
)

// Attribute is a named value attached to a category or sub-product
type Attribute struct {
	ID            string `json:"id"`
	AttributeName string `json:"attributeName"`
	Value         string `json:"value"`
}

// Category groups master products and defines their attribute set
type Category struct {
	shared.BaseAggregateRoot
	Name       string
	Attributes []Attribute
}

// CategorySnapshot is the copy of a category embedded in a master product.
// It is taken at creation time and is not refreshed when the category changes.
type CategorySnapshot struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Attributes []Attribute `json:"attributes"`
}

// NewCategory creates a new category
func NewCategory(name string, attributes []Attribute) (*Category, error) {
	name = strings.TrimSpace(name)
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	attrs, err := normalizeAttributes(attributes)
	if err != nil {
		return nil, err
	}

	c := &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Attributes:        attrs,
	}
	return c, nil
}

// Update replaces the name and, when non-nil, the attribute list
func (c *Category) Update(name *string, attributes []Attribute) error {
	if name != nil {
		n := strings.TrimSpace(*name)
		if err := validateCategoryName(n); err != nil {
			return err
		}
		c.Name = n
	}
	if attributes != nil {
		attrs, err := normalizeAttributes(attributes)
		if err != nil {
			return err
		}
		c.Attributes = attrs
	}
	c.Touch()
	return nil
}

// MarkDeleted records the deletion event
func (c *Category) MarkDeleted(archivedMasters int) {
	c.AddDomainEvent(NewCategoryDeletedEvent(c, archivedMasters))
}

// Snapshot copies the category for embedding
func (c *Category) Snapshot() CategorySnapshot {
	attrs := make([]Attribute, len(c.Attributes))
	copy(attrs, c.Attributes)
	return CategorySnapshot{
		ID:         c.ID,
		Name:       c.Name,
		Attributes: attrs,
	}
}

func validateCategoryName(name string) error {
	if name == "" {
		return shared.NewFieldError("name", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewFieldError("name", "Category name cannot exceed 100 characters")
	}
	return nil
}

// normalizeAttributes trims names, assigns missing IDs and rejects duplicates, keeping order
func normalizeAttributes(attributes []Attribute) ([]Attribute, error) {
	out := make([]Attribute, 0, len(attributes))
	seen := make(map[string]struct{}, len(attributes))
	for _, a := range attributes {
		a.AttributeName = strings.TrimSpace(a.AttributeName)
		if a.AttributeName == "" {
			return nil, shared.NewFieldError("attributes", "Attribute name cannot be empty")
		}
		key := strings.ToLower(a.AttributeName)
		if _, dup := seen[key]; dup {
			return nil, shared.NewFieldError("attributes", "Duplicate attribute: "+a.AttributeName)
		}
		seen[key] = struct{}{}
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		out = append(out, a)
	}
	return out, nil
}
