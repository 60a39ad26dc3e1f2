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

// SubProductService handles sub-product operations. Reads are filtered by the
// caller's visible statuses; writes are authorized before any store access.
type SubProductService struct {
	subs    catalog.SubProductRepository
	masters catalog.MasterProductRepository
	prices  *PriceRangeProvider
	policy  *access.Policy
	events  shared.EventPublisher
	logger  *zap.Logger
}

// NewSubProductService creates a new SubProductService
func NewSubProductService(
	subs catalog.SubProductRepository,
	masters catalog.MasterProductRepository,
	prices *PriceRangeProvider,
	policy *access.Policy,
	events shared.EventPublisher,
	logger *zap.Logger,
) *SubProductService {
	return &SubProductService{
		subs:    subs,
		masters: masters,
		prices:  prices,
		policy:  policy,
		events:  events,
		logger:  logger,
	}
}

// GetAll returns the sub-products visible to role.
// CategoryIDs select sub-products whose master product embeds one of the categories.
func (s *SubProductService) GetAll(ctx context.Context, role identity.Role, query ListQuery) (*SubProductList, error) {
	var filters []shared.InConstraint
	if len(query.MasterProductIDs) > 0 {
		filters = append(filters, catalog.IDFilter(catalog.FilterMasterProductID, query.MasterProductIDs))
	}
	if len(query.CategoryIDs) > 0 {
		filters = append(filters, catalog.IDFilter(catalog.FilterCategoryID, query.CategoryIDs))
	}

	plan, err := catalog.BuildListingPlan(query.Listing, query.SearchFields, catalog.SubProductSearchFields, filters, s.policy.VisibleStatuses(role))
	if err != nil {
		return nil, err
	}

	products, err := s.subs.FindAll(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("list sub-products: %w", err)
	}
	total, err := s.subs.Count(ctx, plan.CountPlan())
	if err != nil {
		return nil, fmt.Errorf("count sub-products: %w", err)
	}

	items := make([]SubProductResponse, len(products))
	for i := range products {
		items[i] = ToSubProductResponse(&products[i])
	}
	return &SubProductList{Items: items, TotalCount: total}, nil
}

// GetByID returns a sub-product if both its status and its master's status are visible to role
func (s *SubProductService) GetByID(ctx context.Context, role identity.Role, id uuid.UUID) (*SubProductResponse, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanSee(role, product.Status) {
		return nil, subProductNotFound(id)
	}
	master, err := s.masters.FindByID(ctx, product.MasterProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, subProductNotFound(id)
		}
		return nil, err
	}
	// a variant is only as visible as its master
	if !s.policy.CanSee(role, master.Status) {
		return nil, subProductNotFound(id)
	}
	resp := ToSubProductResponse(product)
	return &resp, nil
}

// Create adds a sub-product to a published master product
func (s *SubProductService) Create(ctx context.Context, role identity.Role, req CreateSubProductRequest) (*SubProductResponse, error) {
	if err := s.policy.Authorize(role, access.OpSubProductCreate); err != nil {
		return nil, err
	}

	master, err := s.masters.FindByID(ctx, req.MasterProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, masterProductNotFound(req.MasterProductID)
		}
		return nil, err
	}
	if !master.IsPublished() {
		return nil, masterProductNotFound(req.MasterProductID)
	}

	product, err := catalog.NewSubProduct(master, req.SubProductName, toAttributes(req.Attributes), req.Price, catalog.Status(req.Status))
	if err != nil {
		return nil, err
	}
	if err := s.subs.Create(ctx, product); err != nil {
		return nil, err
	}
	s.prices.Invalidate(ctx)

	s.logger.Info("Sub-product created",
		zap.String("sub_product_id", product.ID.String()),
		zap.String("master_product_id", master.ID.String()))
	resp := ToSubProductResponse(product)
	return &resp, nil
}

// Update changes a sub-product
func (s *SubProductService) Update(ctx context.Context, role identity.Role, id uuid.UUID, req UpdateSubProductRequest) (*SubProductResponse, error) {
	if err := s.policy.Authorize(role, access.OpSubProductUpdate); err != nil {
		return nil, err
	}

	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var status *catalog.Status
	if req.Status != nil {
		st := catalog.Status(*req.Status)
		status = &st
	}
	if err := product.Update(req.SubProductName, toAttributes(req.Attributes), req.Price, status); err != nil {
		return nil, err
	}
	if err := s.subs.Save(ctx, product); err != nil {
		return nil, err
	}
	s.prices.Invalidate(ctx)

	resp := ToSubProductResponse(product)
	return &resp, nil
}

// Delete physically removes a sub-product
func (s *SubProductService) Delete(ctx context.Context, role identity.Role, id uuid.UUID) (*SubProductResponse, error) {
	if err := s.policy.Authorize(role, access.OpSubProductDelete); err != nil {
		return nil, err
	}

	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.subs.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.prices.Invalidate(ctx)

	product.MarkDeleted()
	publishAndClear(ctx, s.events, s.logger, product)

	resp := ToSubProductResponse(product)
	return &resp, nil
}

func (s *SubProductService) load(ctx context.Context, id uuid.UUID) (*catalog.SubProduct, error) {
	product, err := s.subs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, subProductNotFound(id)
		}
		return nil, err
	}
	return product, nil
}

func subProductNotFound(id uuid.UUID) error {
	return shared.NewDomainError(shared.CodeNotFound, "Sub-product not found with id "+id.String())
}
