package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var userColumns = listingColumns{
	Search: map[string]string{
		"email":     "email",
		"firstName": "first_name",
		"lastName":  "last_name",
	},
	Sort: createdAtSort,
}

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	err := r.db.WithContext(ctx).Create(models.UserModelFromDomain(user)).Error
	return translateError(err, "failed to create user", "Email already exists")
}

func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	m := models.UserModelFromDomain(user)
	result := r.db.WithContext(ctx).Model(m).
		Select("first_name", "last_name", "role", "session_version", "last_logout_at", "updated_at").
		Updates(m)
	if result.Error != nil {
		return translateError(result.Error, "failed to update user", "Email already exists")
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var m models.UserModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "failed to find user", "")
	}
	return m.ToDomain(), nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var m models.UserModel
	if err := r.db.WithContext(ctx).First(&m, "email = ?", identity.NormalizeEmail(email)).Error; err != nil {
		return nil, translateError(err, "failed to find user by email", "")
	}
	return m.ToDomain(), nil
}

func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("email = ?", identity.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, translateError(err, "failed to check email", "")
	}
	return count > 0, nil
}

func (r *GormUserRepository) FindAll(ctx context.Context, plan shared.ListingPlan) ([]identity.User, error) {
	var rows []models.UserModel
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Scopes(listingPredicate(plan, userColumns), listingWindow(plan, userColumns)).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, "failed to list users", "")
	}

	users := make([]identity.User, len(rows))
	for i := range rows {
		users[i] = *rows[i].ToDomain()
	}
	return users, nil
}

func (r *GormUserRepository) Count(ctx context.Context, plan shared.ListingPlan) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Scopes(listingPredicate(plan, userColumns)).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err, "failed to count users", "")
	}
	return count, nil
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
