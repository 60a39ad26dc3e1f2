package catalog

import (
	"strings"

	"github.com/shopcore/backend/internal/domain/shared"
)

// MasterProduct is the product header that sub-products vary.
// Status only moves from PUBLISHED to ARCHIVED.
type MasterProduct struct {
	shared.BaseAggregateRoot
	Name        string
	SKU         string
	Description string
	Category    CategorySnapshot
	Status      Status
}

// NewMasterProduct creates a published master product under category
func NewMasterProduct(name, sku, description string, category *Category) (*MasterProduct, error) {
	if category == nil {
		return nil, shared.NewFieldError("categoryId", "Category is required")
	}
	name = strings.TrimSpace(name)
	sku = NormalizeSKU(sku)
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}

	p := &MasterProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		SKU:               sku,
		Description:       strings.TrimSpace(description),
		Category:          category.Snapshot(),
		Status:            StatusPublished,
	}
	p.AddDomainEvent(NewMasterProductCreatedEvent(p))
	return p, nil
}

// IsPublished reports whether the product is visible to default reads
func (p *MasterProduct) IsPublished() bool {
	return p.Status == StatusPublished
}

// Update applies the non-nil fields; archived products cannot change
func (p *MasterProduct) Update(name, sku, description *string, category *Category) error {
	if !p.IsPublished() {
		return shared.NewDomainError(shared.CodeNotFound, "Master product not found")
	}
	newName, newSKU := p.Name, p.SKU
	if name != nil {
		newName = strings.TrimSpace(*name)
		if err := validateProductName(newName); err != nil {
			return err
		}
	}
	if sku != nil {
		newSKU = NormalizeSKU(*sku)
		if err := validateSKU(newSKU); err != nil {
			return err
		}
	}

	p.Name, p.SKU = newName, newSKU
	if description != nil {
		p.Description = strings.TrimSpace(*description)
	}
	if category != nil {
		p.Category = category.Snapshot()
	}
	p.Touch()
	return nil
}

// Archive soft-deletes the product
func (p *MasterProduct) Archive() error {
	if !p.IsPublished() {
		return shared.NewDomainError(shared.CodeNotFound, "Master product not found")
	}
	p.Status = StatusArchived
	p.Touch()
	p.AddDomainEvent(NewMasterProductArchivedEvent(p))
	return nil
}

// NormalizeSKU trims and upper-cases a SKU
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewFieldError("masterProductName", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewFieldError("masterProductName", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewFieldError("sku", "SKU cannot be empty")
	}
	if len(sku) > 64 {
		return shared.NewFieldError("sku", "SKU cannot exceed 64 characters")
	}
	return nil
}
