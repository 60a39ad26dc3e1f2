package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AttributeInput is an attribute as supplied by a caller
type AttributeInput struct {
	ID            string `json:"id,omitempty"`
	AttributeName string `json:"attributeName" binding:"required,max=100"`
	Value         string `json:"value" binding:"max=500"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name       string           `json:"name" binding:"required,min=1,max=100"`
	Attributes []AttributeInput `json:"attributes" binding:"omitempty,dive"`
}

// UpdateCategoryRequest represents a request to update a category.
// A nil Attributes keeps the current list; an empty one clears it.
type UpdateCategoryRequest struct {
	Name       *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Attributes []AttributeInput `json:"attributes" binding:"omitempty,dive"`
}

// CreateMasterProductRequest represents a request to create a master product
type CreateMasterProductRequest struct {
	MasterProductName string    `json:"masterProductName" binding:"required,min=1,max=200"`
	SKU               string    `json:"sku" binding:"required,min=1,max=64"`
	Description       string    `json:"description" binding:"max=2000"`
	CategoryID        uuid.UUID `json:"categoryId" binding:"required"`
}

// UpdateMasterProductRequest represents a request to update a master product
type UpdateMasterProductRequest struct {
	MasterProductName *string    `json:"masterProductName" binding:"omitempty,min=1,max=200"`
	SKU               *string    `json:"sku" binding:"omitempty,min=1,max=64"`
	Description       *string    `json:"description" binding:"omitempty,max=2000"`
	CategoryID        *uuid.UUID `json:"categoryId"`
}

// CreateSubProductRequest represents a request to create a sub-product
type CreateSubProductRequest struct {
	MasterProductID uuid.UUID        `json:"masterProductId" binding:"required"`
	SubProductName  string           `json:"subProductName" binding:"max=200"`
	Attributes      []AttributeInput `json:"attributes" binding:"omitempty,dive"`
	Price           decimal.Decimal  `json:"price"`
	Status          string           `json:"status" binding:"omitempty,oneof=PUBLISHED DRAFT ARCHIVED"`
}

// UpdateSubProductRequest represents a request to update a sub-product
type UpdateSubProductRequest struct {
	SubProductName *string          `json:"subProductName" binding:"omitempty,max=200"`
	Attributes     []AttributeInput `json:"attributes" binding:"omitempty,dive"`
	Price          *decimal.Decimal `json:"price"`
	Status         *string          `json:"status" binding:"omitempty,oneof=PUBLISHED DRAFT ARCHIVED"`
}

// ListQuery is the listing input shared by catalog reads
type ListQuery struct {
	Listing          shared.ListingInput
	SearchFields     []string
	CategoryIDs      []uuid.UUID
	MasterProductIDs []uuid.UUID
}

// AttributeResponse is an attribute in API responses
type AttributeResponse struct {
	ID            string `json:"id"`
	AttributeName string `json:"attributeName"`
	Value         string `json:"value"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID         uuid.UUID           `json:"id"`
	Name       string              `json:"name"`
	Attributes []AttributeResponse `json:"attributes"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// CategorySnapshotResponse is the category copy embedded in a master product
type CategorySnapshotResponse struct {
	ID         uuid.UUID           `json:"id"`
	Name       string              `json:"name"`
	Attributes []AttributeResponse `json:"attributes"`
}

// MasterProductResponse represents a master product in API responses
type MasterProductResponse struct {
	ID                uuid.UUID                `json:"id"`
	MasterProductName string                   `json:"masterProductName"`
	SKU               string                   `json:"sku"`
	Description       string                   `json:"description"`
	Category          CategorySnapshotResponse `json:"category"`
	Status            string                   `json:"status"`
	CreatedAt         time.Time                `json:"createdAt"`
	UpdatedAt         time.Time                `json:"updatedAt"`
}

// SubProductResponse represents a sub-product in API responses
type SubProductResponse struct {
	ID              uuid.UUID           `json:"id"`
	MasterProductID uuid.UUID           `json:"masterProductId"`
	SubProductName  string              `json:"subProductName"`
	Attributes      []AttributeResponse `json:"attributes"`
	Price           decimal.Decimal     `json:"price"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// CategoryList is a page of categories
type CategoryList struct {
	Items      []CategoryResponse `json:"items"`
	TotalCount int64              `json:"totalCount"`
}

// MasterProductList is a page of master products with the catalog-wide price range
type MasterProductList struct {
	Items      []MasterProductResponse `json:"items"`
	TotalCount int64                   `json:"totalCount"`
	MinPrice   decimal.Decimal         `json:"minPrice"`
	MaxPrice   decimal.Decimal         `json:"maxPrice"`
}

// SubProductList is a page of sub-products
type SubProductList struct {
	Items      []SubProductResponse `json:"items"`
	TotalCount int64                `json:"totalCount"`
}

// CascadeResult summarizes a cascade deletion
type CascadeResult struct {
	ArchivedMasterProducts int    `json:"archivedMasterProducts"`
	DeletedSubProducts     int64  `json:"deletedSubProducts"`
	Message                string `json:"message"`
}

func toAttributes(in []AttributeInput) []catalog.Attribute {
	if in == nil {
		return nil
	}
	out := make([]catalog.Attribute, len(in))
	for i, a := range in {
		out[i] = catalog.Attribute{ID: a.ID, AttributeName: a.AttributeName, Value: a.Value}
	}
	return out
}

func toAttributeResponses(in []catalog.Attribute) []AttributeResponse {
	out := make([]AttributeResponse, len(in))
	for i, a := range in {
		out[i] = AttributeResponse{ID: a.ID, AttributeName: a.AttributeName, Value: a.Value}
	}
	return out
}

// ToCategoryResponse converts a domain category
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		Attributes: toAttributeResponses(c.Attributes),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToMasterProductResponse converts a domain master product
func ToMasterProductResponse(p *catalog.MasterProduct) MasterProductResponse {
	return MasterProductResponse{
		ID:                p.ID,
		MasterProductName: p.Name,
		SKU:               p.SKU,
		Description:       p.Description,
		Category: CategorySnapshotResponse{
			ID:         p.Category.ID,
			Name:       p.Category.Name,
			Attributes: toAttributeResponses(p.Category.Attributes),
		},
		Status:    p.Status.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToSubProductResponse converts a domain sub-product
func ToSubProductResponse(s *catalog.SubProduct) SubProductResponse {
	return SubProductResponse{
		ID:              s.ID,
		MasterProductID: s.MasterProductID,
		SubProductName:  s.Name,
		Attributes:      toAttributeResponses(s.Attributes),
		Price:           s.Price,
		Status:          s.Status.String(),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
