package catalog

import (
	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
)

// Aggregate type names
const (
	AggregateTypeCategory      = "Category"
	AggregateTypeMasterProduct = "MasterProduct"
	AggregateTypeSubProduct    = "SubProduct"
)

// Catalog event types
const (
	EventTypeMasterProductCreated  = "catalog.master_product.created"
	EventTypeMasterProductArchived = "catalog.master_product.archived"
	EventTypeSubProductDeleted     = "catalog.sub_product.deleted"
	EventTypeCategoryDeleted       = "catalog.category.deleted"
)

// MasterProductCreatedEvent is published when a master product is created
type MasterProductCreatedEvent struct {
	shared.BaseDomainEvent
	Name       string    `json:"master_product_name"`
	SKU        string    `json:"sku"`
	CategoryID uuid.UUID `json:"category_id"`
}

// NewMasterProductCreatedEvent creates a new MasterProductCreatedEvent
func NewMasterProductCreatedEvent(p *MasterProduct) *MasterProductCreatedEvent {
	return &MasterProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMasterProductCreated, AggregateTypeMasterProduct, p.ID),
		Name:            p.Name,
		SKU:             p.SKU,
		CategoryID:      p.Category.ID,
	}
}

// MasterProductArchivedEvent is published when a master product is soft-deleted
type MasterProductArchivedEvent struct {
	shared.BaseDomainEvent
	SKU        string    `json:"sku"`
	CategoryID uuid.UUID `json:"category_id"`
}

// NewMasterProductArchivedEvent creates a new MasterProductArchivedEvent
func NewMasterProductArchivedEvent(p *MasterProduct) *MasterProductArchivedEvent {
	return &MasterProductArchivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMasterProductArchived, AggregateTypeMasterProduct, p.ID),
		SKU:             p.SKU,
		CategoryID:      p.Category.ID,
	}
}

// SubProductDeletedEvent is published when sub-products are removed.
// A cascade publishes one event per master product with the removed count.
type SubProductDeletedEvent struct {
	shared.BaseDomainEvent
	MasterProductID uuid.UUID `json:"master_product_id"`
	Count           int64     `json:"count"`
}

// NewSubProductDeletedEvent creates a SubProductDeletedEvent for a single sub-product
func NewSubProductDeletedEvent(id, masterProductID uuid.UUID) *SubProductDeletedEvent {
	return &SubProductDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSubProductDeleted, AggregateTypeSubProduct, id),
		MasterProductID: masterProductID,
		Count:           1,
	}
}

// NewSubProductsPurgedEvent creates a SubProductDeletedEvent for a cascade purge
func NewSubProductsPurgedEvent(masterProductID uuid.UUID, count int64) *SubProductDeletedEvent {
	return &SubProductDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSubProductDeleted, AggregateTypeMasterProduct, masterProductID),
		MasterProductID: masterProductID,
		Count:           count,
	}
}

// CategoryDeletedEvent is published after a category cascade completes
type CategoryDeletedEvent struct {
	shared.BaseDomainEvent
	Name                   string `json:"name"`
	ArchivedMasterProducts int    `json:"archived_master_products"`
}

// NewCategoryDeletedEvent creates a new CategoryDeletedEvent
func NewCategoryDeletedEvent(c *Category, archived int) *CategoryDeletedEvent {
	return &CategoryDeletedEvent{
		BaseDomainEvent:        shared.NewBaseDomainEvent(EventTypeCategoryDeleted, AggregateTypeCategory, c.ID),
		Name:                   c.Name,
		ArchivedMasterProducts: archived,
	}
}
