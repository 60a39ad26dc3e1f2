package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var masterProductColumns = listingColumns{
	Status: "status",
	Search: map[string]string{
		"masterProductName": "name",
		"sku":               "sku",
		"description":       "description",
		"categoryName":      "category_name",
	},
	Filters: map[string]string{
		catalog.FilterCategoryID: "category_id IN ?",
	},
	Sort: createdAtSort,
}

const duplicateMasterProductMsg = "Master product name or sku already exists"

// GormMasterProductRepository implements catalog.MasterProductRepository using GORM
type GormMasterProductRepository struct {
	db *gorm.DB
}

// NewGormMasterProductRepository creates a new GormMasterProductRepository
func NewGormMasterProductRepository(db *gorm.DB) *GormMasterProductRepository {
	return &GormMasterProductRepository{db: db}
}

func (r *GormMasterProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.MasterProduct, error) {
	var m models.MasterProductModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "failed to find master product", "")
	}
	return m.ToDomain(), nil
}

func (r *GormMasterProductRepository) FindAll(ctx context.Context, plan shared.ListingPlan) ([]catalog.MasterProduct, error) {
	var rows []models.MasterProductModel
	err := r.db.WithContext(ctx).Model(&models.MasterProductModel{}).
		Scopes(listingPredicate(plan, masterProductColumns), listingWindow(plan, masterProductColumns)).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, "failed to list master products", "")
	}
	return masterProductsToDomain(rows), nil
}

func (r *GormMasterProductRepository) Count(ctx context.Context, plan shared.ListingPlan) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MasterProductModel{}).
		Scopes(listingPredicate(plan, masterProductColumns)).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err, "failed to count master products", "")
	}
	return count, nil
}

func (r *GormMasterProductRepository) FindPublishedByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.MasterProduct, error) {
	var rows []models.MasterProductModel
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND status = ?", categoryID, catalog.StatusPublished).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, "failed to list master products by category", "")
	}
	return masterProductsToDomain(rows), nil
}

func (r *GormMasterProductRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "name = ?", strings.TrimSpace(name), excludeID)
}

func (r *GormMasterProductRepository) ExistsBySKU(ctx context.Context, sku string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "sku = ?", catalog.NormalizeSKU(sku), excludeID)
}

// exists checks across every status, archived rows included
func (r *GormMasterProductRepository) exists(ctx context.Context, cond string, value string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.MasterProductModel{}).Where(cond, value)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, translateError(err, "failed to check master product uniqueness", "")
	}
	return count > 0, nil
}

func (r *GormMasterProductRepository) Create(ctx context.Context, product *catalog.MasterProduct) error {
	err := r.db.WithContext(ctx).Create(models.MasterProductModelFromDomain(product)).Error
	return translateError(err, "failed to create master product", duplicateMasterProductMsg)
}

func (r *GormMasterProductRepository) Save(ctx context.Context, product *catalog.MasterProduct) error {
	m := models.MasterProductModelFromDomain(product)
	result := r.db.WithContext(ctx).Model(m).
		Where("status = ?", catalog.StatusPublished).
		Select("name", "sku", "description", "category_id", "category_name", "category_attributes", "updated_at").
		Updates(m)
	if result.Error != nil {
		return translateError(result.Error, "failed to update master product", duplicateMasterProductMsg)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormMasterProductRepository) Archive(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.MasterProductModel{}).
		Where("id = ? AND status = ?", id, catalog.StatusPublished).
		Updates(map[string]any{
			"status":     catalog.StatusArchived,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error, "failed to archive master product", "")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func masterProductsToDomain(rows []models.MasterProductModel) []catalog.MasterProduct {
	products := make([]catalog.MasterProduct, len(rows))
	for i := range rows {
		products[i] = *rows[i].ToDomain()
	}
	return products
}

var _ catalog.MasterProductRepository = (*GormMasterProductRepository)(nil)
