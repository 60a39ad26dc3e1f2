package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/access"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MasterProductService handles master product operations
type MasterProductService struct {
	masters    catalog.MasterProductRepository
	categories catalog.CategoryRepository
	prices     *PriceRangeProvider
	cascade    *CascadeCoordinator
	policy     *access.Policy
	events     shared.EventPublisher
	logger     *zap.Logger
}

// NewMasterProductService creates a new MasterProductService
func NewMasterProductService(
	masters catalog.MasterProductRepository,
	categories catalog.CategoryRepository,
	prices *PriceRangeProvider,
	cascade *CascadeCoordinator,
	policy *access.Policy,
	events shared.EventPublisher,
	logger *zap.Logger,
) *MasterProductService {
	return &MasterProductService{
		masters:    masters,
		categories: categories,
		prices:     prices,
		cascade:    cascade,
		policy:     policy,
		events:     events,
		logger:     logger,
	}
}

// Create creates a published master product under a live category
func (s *MasterProductService) Create(ctx context.Context, role identity.Role, req CreateMasterProductRequest) (*MasterProductResponse, error) {
	if err := s.policy.Authorize(role, access.OpMasterProductCreate); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Category not found")
		}
		return nil, err
	}

	product, err := catalog.NewMasterProduct(req.MasterProductName, req.SKU, req.Description, category)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, product, nil, true, true); err != nil {
		return nil, err
	}

	if err := s.masters.Create(ctx, product); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Master product already exists with this name or sku")
		}
		return nil, err
	}
	publishAndClear(ctx, s.events, s.logger, product)

	s.logger.Info("Master product created",
		zap.String("master_product_id", product.ID.String()),
		zap.String("sku", product.SKU))
	resp := ToMasterProductResponse(product)
	return &resp, nil
}

// GetAll returns a page of published master products with the catalog price range
func (s *MasterProductService) GetAll(ctx context.Context, query ListQuery) (*MasterProductList, error) {
	var filters []shared.InConstraint
	if len(query.CategoryIDs) > 0 {
		filters = append(filters, catalog.IDFilter(catalog.FilterCategoryID, query.CategoryIDs))
	}
	plan, err := catalog.BuildListingPlan(query.Listing, query.SearchFields, catalog.MasterProductSearchFields, filters, catalog.PublishedOnly)
	if err != nil {
		return nil, err
	}

	products, err := s.masters.FindAll(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("list master products: %w", err)
	}
	total, err := s.masters.Count(ctx, plan.CountPlan())
	if err != nil {
		return nil, fmt.Errorf("count master products: %w", err)
	}
	prices, err := s.prices.Get(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]MasterProductResponse, len(products))
	for i := range products {
		items[i] = ToMasterProductResponse(&products[i])
	}
	return &MasterProductList{
		Items:      items,
		TotalCount: total,
		MinPrice:   prices.Min,
		MaxPrice:   prices.Max,
	}, nil
}

// GetByID returns a published master product
func (s *MasterProductService) GetByID(ctx context.Context, id uuid.UUID) (*MasterProductResponse, error) {
	product, err := s.loadPublished(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToMasterProductResponse(product)
	return &resp, nil
}

// Update changes a published master product; name and sku changes are re-checked for uniqueness
func (s *MasterProductService) Update(ctx context.Context, role identity.Role, id uuid.UUID, req UpdateMasterProductRequest) (*MasterProductResponse, error) {
	if err := s.policy.Authorize(role, access.OpMasterProductUpdate); err != nil {
		return nil, err
	}

	product, err := s.loadPublished(ctx, id)
	if err != nil {
		return nil, err
	}
	oldName, oldSKU := product.Name, product.SKU

	var category *catalog.Category
	if req.CategoryID != nil && *req.CategoryID != product.Category.ID {
		if category, err = s.categories.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError(shared.CodeNotFound, "Category not found")
			}
			return nil, err
		}
	}

	if err := product.Update(req.MasterProductName, req.SKU, req.Description, category); err != nil {
		return nil, err
	}
	nameChanged := product.Name != oldName
	skuChanged := product.SKU != oldSKU
	if err := s.checkUnique(ctx, product, &product.ID, nameChanged, skuChanged); err != nil {
		return nil, err
	}

	if err := s.masters.Save(ctx, product); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Master product already exists with this name or sku")
		}
		return nil, err
	}

	resp := ToMasterProductResponse(product)
	return &resp, nil
}

// Delete archives a published master product. Its sub-products are left in
// place but drop out of default listings and the price range with it.
func (s *MasterProductService) Delete(ctx context.Context, role identity.Role, id uuid.UUID) (*MasterProductResponse, error) {
	if err := s.policy.Authorize(role, access.OpMasterProductDelete); err != nil {
		return nil, err
	}

	product, err := s.loadPublished(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.masters.Archive(ctx, id); err != nil {
		return nil, err
	}
	s.prices.Invalidate(ctx)
	if err := product.Archive(); err != nil {
		return nil, err
	}
	publishAndClear(ctx, s.events, s.logger, product)

	resp := ToMasterProductResponse(product)
	return &resp, nil
}

// DeleteWithSubProducts removes every sub-product and then archives the master product
func (s *MasterProductService) DeleteWithSubProducts(ctx context.Context, role identity.Role, id uuid.UUID) (*CascadeResult, error) {
	if err := s.policy.Authorize(role, access.OpMasterProductDelete); err != nil {
		return nil, err
	}
	return s.cascade.DeleteMasterProductAndDependents(ctx, id)
}

func (s *MasterProductService) loadPublished(ctx context.Context, id uuid.UUID) (*catalog.MasterProduct, error) {
	product, err := s.masters.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, masterProductNotFound(id)
		}
		return nil, err
	}
	if !product.IsPublished() {
		return nil, masterProductNotFound(id)
	}
	return product, nil
}

// checkUnique runs the name check before the sku check, across all statuses
func (s *MasterProductService) checkUnique(ctx context.Context, p *catalog.MasterProduct, excludeID *uuid.UUID, name, sku bool) error {
	if name {
		exists, err := s.masters.ExistsByName(ctx, p.Name, excludeID)
		if err != nil {
			return fmt.Errorf("check master product name: %w", err)
		}
		if exists {
			return &shared.DomainError{Code: shared.CodeAlreadyExists, Message: "Master product already exists with this name", Field: "masterProductName"}
		}
	}
	if sku {
		exists, err := s.masters.ExistsBySKU(ctx, p.SKU, excludeID)
		if err != nil {
			return fmt.Errorf("check master product sku: %w", err)
		}
		if exists {
			return &shared.DomainError{Code: shared.CodeAlreadyExists, Message: "Master product already exists with this sku", Field: "sku"}
		}
	}
	return nil
}

func masterProductNotFound(id uuid.UUID) error {
	return shared.NewDomainError(shared.CodeNotFound, "Master product not available with id "+id.String()+", or it is not published")
}
