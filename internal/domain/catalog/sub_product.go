package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SubProduct is a purchasable variant of a master product
type SubProduct struct {
	shared.BaseAggregateRoot
	MasterProductID uuid.UUID
	Name            string
	Attributes      []Attribute
	Price           decimal.Decimal
	Status          Status
}

// NewSubProduct creates a sub-product for master. Status defaults to PUBLISHED.
func NewSubProduct(master *MasterProduct, name string, attributes []Attribute, price decimal.Decimal, status Status) (*SubProduct, error) {
	if master == nil || !master.IsPublished() {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Master product not found")
	}
	if status == "" {
		status = StatusPublished
	}
	if err := validateSubProductStatus(status); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	attrs, err := normalizeAttributes(attributes)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = master.Name
	}

	sp := &SubProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		MasterProductID:   master.ID,
		Name:              name,
		Attributes:        attrs,
		Price:             price,
		Status:            status,
	}
	return sp, nil
}

// Update applies the non-nil fields; nothing changes if any field is invalid
func (s *SubProduct) Update(name *string, attributes []Attribute, price *decimal.Decimal, status *Status) error {
	if price != nil {
		if err := validatePrice(*price); err != nil {
			return err
		}
	}
	if status != nil {
		if err := validateSubProductStatus(*status); err != nil {
			return err
		}
	}
	var attrs []Attribute
	if attributes != nil {
		var err error
		if attrs, err = normalizeAttributes(attributes); err != nil {
			return err
		}
	}

	if price != nil {
		s.Price = *price
	}
	if status != nil {
		s.Status = *status
	}
	if attrs != nil {
		s.Attributes = attrs
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		s.Name = strings.TrimSpace(*name)
	}
	s.Touch()
	return nil
}

// MarkDeleted records the deletion event
func (s *SubProduct) MarkDeleted() {
	s.AddDomainEvent(NewSubProductDeletedEvent(s.ID, s.MasterProductID))
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewFieldError("price", "Price cannot be negative")
	}
	return nil
}

func validateSubProductStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewFieldError("status", "Unknown status: "+string(status))
	}
	return nil
}
