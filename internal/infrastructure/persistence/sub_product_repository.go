package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var subProductColumns = listingColumns{
	Status: "status",
	Search: map[string]string{"subProductName": "name"},
	Filters: map[string]string{
		catalog.FilterMasterProductID: "master_product_id IN ?",
		catalog.FilterCategoryID:      "master_product_id IN (SELECT id FROM master_products WHERE category_id IN ?)",
	},
	Sort: createdAtSort,
}

// visibleMasters keeps sub-products whose master product has one of the
// plan's statuses, so archiving a master hides its variants from the same callers
func visibleMasters(plan shared.ListingPlan) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(plan.Statuses) == 0 {
			return db
		}
		return db.Where("master_product_id IN (SELECT id FROM master_products WHERE status IN ?)", plan.Statuses)
	}
}

// GormSubProductRepository implements catalog.SubProductRepository using GORM
type GormSubProductRepository struct {
	db *gorm.DB
}

// NewGormSubProductRepository creates a new GormSubProductRepository
func NewGormSubProductRepository(db *gorm.DB) *GormSubProductRepository {
	return &GormSubProductRepository{db: db}
}

func (r *GormSubProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.SubProduct, error) {
	var m models.SubProductModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "failed to find sub-product", "")
	}
	return m.ToDomain(), nil
}

func (r *GormSubProductRepository) FindAll(ctx context.Context, plan shared.ListingPlan) ([]catalog.SubProduct, error) {
	var rows []models.SubProductModel
	err := r.db.WithContext(ctx).Model(&models.SubProductModel{}).
		Scopes(listingPredicate(plan, subProductColumns), visibleMasters(plan), listingWindow(plan, subProductColumns)).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, "failed to list sub-products", "")
	}

	products := make([]catalog.SubProduct, len(rows))
	for i := range rows {
		products[i] = *rows[i].ToDomain()
	}
	return products, nil
}

func (r *GormSubProductRepository) Count(ctx context.Context, plan shared.ListingPlan) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SubProductModel{}).
		Scopes(listingPredicate(plan, subProductColumns), visibleMasters(plan)).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err, "failed to count sub-products", "")
	}
	return count, nil
}

func (r *GormSubProductRepository) Create(ctx context.Context, product *catalog.SubProduct) error {
	err := r.db.WithContext(ctx).Create(models.SubProductModelFromDomain(product)).Error
	return translateError(err, "failed to create sub-product", "Sub-product already exists")
}

func (r *GormSubProductRepository) Save(ctx context.Context, product *catalog.SubProduct) error {
	m := models.SubProductModelFromDomain(product)
	result := r.db.WithContext(ctx).Model(m).
		Select("name", "attributes", "price", "status", "updated_at").
		Updates(m)
	if result.Error != nil {
		return translateError(result.Error, "failed to update sub-product", "")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormSubProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SubProductModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, "failed to delete sub-product", "")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormSubProductRepository) DeleteByMasterProduct(ctx context.Context, masterProductID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.SubProductModel{}, "master_product_id = ?", masterProductID)
	if result.Error != nil {
		return 0, translateError(result.Error, "failed to delete sub-products", "")
	}
	return result.RowsAffected, nil
}

// PriceRange aggregates over published sub-products of published master products;
// no rows yields the empty sentinel
func (r *GormSubProductRepository) PriceRange(ctx context.Context) (catalog.PriceRange, error) {
	var row struct {
		MinPrice decimal.NullDecimal
		MaxPrice decimal.NullDecimal
		Total    int64
	}
	err := r.db.WithContext(ctx).Model(&models.SubProductModel{}).
		Select("MIN(price) AS min_price, MAX(price) AS max_price, COUNT(*) AS total").
		Where("status = ?", catalog.StatusPublished).
		Where("master_product_id IN (SELECT id FROM master_products WHERE status = ?)", catalog.StatusPublished).
		Scan(&row).Error
	if err != nil {
		return catalog.PriceRange{}, translateError(err, "failed to compute price range", "")
	}
	if row.Total == 0 || !row.MinPrice.Valid || !row.MaxPrice.Valid {
		return catalog.EmptyPriceRange(), nil
	}
	return catalog.NewPriceRange(row.MinPrice.Decimal, row.MaxPrice.Decimal), nil
}

var _ catalog.SubProductRepository = (*GormSubProductRepository)(nil)
