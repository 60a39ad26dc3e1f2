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

// CategoryService handles category-related business operations
type CategoryService struct {
	categories catalog.CategoryRepository
	cascade    *CascadeCoordinator
	policy     *access.Policy
	logger     *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categories catalog.CategoryRepository,
	cascade *CascadeCoordinator,
	policy *access.Policy,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categories: categories,
		cascade:    cascade,
		policy:     policy,
		logger:     logger,
	}
}

// Create creates a new category with a unique name
func (s *CategoryService) Create(ctx context.Context, role identity.Role, req CreateCategoryRequest) (*CategoryResponse, error) {
	if err := s.policy.Authorize(role, access.OpCategoryCreate); err != nil {
		return nil, err
	}

	category, err := catalog.NewCategory(req.Name, toAttributes(req.Attributes))
	if err != nil {
		return nil, err
	}

	exists, err := s.categories.ExistsByName(ctx, category.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return nil, categoryNameTaken()
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, categoryNameTaken()
		}
		return nil, err
	}

	s.logger.Info("Category created", zap.String("category_id", category.ID.String()))
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// List returns a page of categories searchable by name
func (s *CategoryService) List(ctx context.Context, query ListQuery) (*CategoryList, error) {
	plan, err := shared.BuildListingPlan(query.Listing, shared.ListingSpec{
		SearchFields:        query.SearchFields,
		AllowedSearchFields: catalog.CategorySearchFields,
	})
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.FindAll(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	total, err := s.categories.Count(ctx, plan.CountPlan())
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	items := make([]CategoryResponse, len(categories))
	for i := range categories {
		items[i] = ToCategoryResponse(&categories[i])
	}
	return &CategoryList{Items: items, TotalCount: total}, nil
}

// Update renames a category or replaces its attributes.
// Master products keep the snapshot taken when they were created.
func (s *CategoryService) Update(ctx context.Context, role identity.Role, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	if err := s.policy.Authorize(role, access.OpCategoryUpdate); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.Update(req.Name, toAttributes(req.Attributes)); err != nil {
		return nil, err
	}

	if req.Name != nil {
		exists, err := s.categories.ExistsByName(ctx, category.Name, &category.ID)
		if err != nil {
			return nil, fmt.Errorf("check category name: %w", err)
		}
		if exists {
			return nil, categoryNameTaken()
		}
	}

	if err := s.categories.Save(ctx, category); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, categoryNameTaken()
		}
		return nil, err
	}

	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Delete removes a category after archiving its published master products
func (s *CategoryService) Delete(ctx context.Context, role identity.Role, id uuid.UUID) (*CascadeResult, error) {
	if err := s.policy.Authorize(role, access.OpCategoryDelete); err != nil {
		return nil, err
	}
	return s.cascade.DeleteCategoryAndDependents(ctx, id)
}

func categoryNameTaken() error {
	return shared.NewDomainError(shared.CodeAlreadyExists, "Category already exists with this name")
}
