package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindAll returns the categories selected by the plan; status constraints are ignored
	FindAll(ctx context.Context, plan shared.ListingPlan) ([]Category, error)

	// Count returns the number of categories matching the plan predicate
	Count(ctx context.Context, plan shared.ListingPlan) (int64, error)

	// ExistsByName checks if a category name is taken, optionally excluding one ID
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)

	// Create inserts a category; a duplicate name returns shared.ErrAlreadyExists
	Create(ctx context.Context, category *Category) error

	// Save updates a category
	Save(ctx context.Context, category *Category) error

	// Delete physically removes a category
	Delete(ctx context.Context, id uuid.UUID) error
}

// MasterProductRepository defines the interface for master product persistence
type MasterProductRepository interface {
	// FindByID finds a master product by ID regardless of status
	FindByID(ctx context.Context, id uuid.UUID) (*MasterProduct, error)

	// FindAll returns the master products selected by the plan
	FindAll(ctx context.Context, plan shared.ListingPlan) ([]MasterProduct, error)

	// Count returns the number of master products matching the plan predicate
	Count(ctx context.Context, plan shared.ListingPlan) (int64, error)

	// FindPublishedByCategory returns every published master product embedding the category
	FindPublishedByCategory(ctx context.Context, categoryID uuid.UUID) ([]MasterProduct, error)

	// ExistsByName checks name uniqueness across all statuses
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)

	// ExistsBySKU checks SKU uniqueness across all statuses
	ExistsBySKU(ctx context.Context, sku string, excludeID *uuid.UUID) (bool, error)

	// Create inserts a master product; a duplicate name or SKU returns shared.ErrAlreadyExists
	Create(ctx context.Context, product *MasterProduct) error

	// Save updates a published master product; shared.ErrNotFound if it is no longer published
	Save(ctx context.Context, product *MasterProduct) error

	// Archive moves a published master product to ARCHIVED with a status-guarded update.
	// Returns shared.ErrNotFound when no published row matched.
	Archive(ctx context.Context, id uuid.UUID) error
}

// SubProductRepository defines the interface for sub-product persistence
type SubProductRepository interface {
	// FindByID finds a sub-product by ID regardless of status
	FindByID(ctx context.Context, id uuid.UUID) (*SubProduct, error)

	// FindAll returns the sub-products selected by the plan
	FindAll(ctx context.Context, plan shared.ListingPlan) ([]SubProduct, error)

	// Count returns the number of sub-products matching the plan predicate
	Count(ctx context.Context, plan shared.ListingPlan) (int64, error)

	// Create inserts a sub-product
	Create(ctx context.Context, product *SubProduct) error

	// Save updates a sub-product
	Save(ctx context.Context, product *SubProduct) error

	// Delete physically removes a sub-product
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByMasterProduct removes every sub-product of a master product and returns the count
	DeleteByMasterProduct(ctx context.Context, masterProductID uuid.UUID) (int64, error)

	// PriceRange returns min and max price over published sub-products
	PriceRange(ctx context.Context) (PriceRange, error)
}
