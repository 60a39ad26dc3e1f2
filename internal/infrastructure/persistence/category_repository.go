package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// categories have no lifecycle status, so Status is left empty
var categoryColumns = listingColumns{
	Search: map[string]string{"name": "name"},
	Sort:   createdAtSort,
}

const duplicateCategoryMsg = "Category name already exists"

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var m models.CategoryModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "failed to find category", "")
	}
	return m.ToDomain(), nil
}

func (r *GormCategoryRepository) FindAll(ctx context.Context, plan shared.ListingPlan) ([]catalog.Category, error) {
	var rows []models.CategoryModel
	err := r.db.WithContext(ctx).Model(&models.CategoryModel{}).
		Scopes(listingPredicate(plan, categoryColumns), listingWindow(plan, categoryColumns)).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, "failed to list categories", "")
	}

	categories := make([]catalog.Category, len(rows))
	for i := range rows {
		categories[i] = *rows[i].ToDomain()
	}
	return categories, nil
}

func (r *GormCategoryRepository) Count(ctx context.Context, plan shared.ListingPlan) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CategoryModel{}).
		Scopes(listingPredicate(plan, categoryColumns)).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err, "failed to count categories", "")
	}
	return count, nil
}

func (r *GormCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.CategoryModel{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, translateError(err, "failed to check category name", "")
	}
	return count > 0, nil
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	err := r.db.WithContext(ctx).Create(models.CategoryModelFromDomain(category)).Error
	return translateError(err, "failed to create category", duplicateCategoryMsg)
}

func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	m := models.CategoryModelFromDomain(category)
	result := r.db.WithContext(ctx).Model(m).Select("name", "attributes", "updated_at").Updates(m)
	if result.Error != nil {
		return translateError(result.Error, "failed to update category", duplicateCategoryMsg)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, "failed to delete category", "")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
