//go:build integration

package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	mpg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newPostgresDB starts a disposable Postgres container and applies the repository migrations
func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("shopcore_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	driver, err := mpg.WithInstance(sqlDB, &mpg.Config{})
	require.NoError(t, err)
	migrationsPath, err := filepath.Abs(filepath.Join("..", "..", "..", "migrations"))
	require.NoError(t, err)
	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	require.NoError(t, err)
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err)
	}
	return db
}

func TestPostgres_CatalogRepositories(t *testing.T) {
	db := newPostgresDB(t)
	ctx := context.Background()
	categories := NewGormCategoryRepository(db)
	masters := NewGormMasterProductRepository(db)
	subs := NewGormSubProductRepository(db)

	cat, err := catalog.NewCategory("Phones", []catalog.Attribute{{AttributeName: "color", Value: "black"}})
	require.NoError(t, err)
	require.NoError(t, categories.Create(ctx, cat))

	master, err := catalog.NewMasterProduct("Pixel", "px-1", "Android phone", cat)
	require.NoError(t, err)
	require.NoError(t, masters.Create(ctx, master))

	dup, err := catalog.NewMasterProduct("Other", "PX-1", "", cat)
	require.NoError(t, err)
	assert.ErrorIs(t, masters.Create(ctx, dup), shared.ErrAlreadyExists, "unique sku index is authoritative")

	for _, price := range []string{"499.00", "699.50"} {
		s, err := catalog.NewSubProduct(master, "Pixel "+price, nil, decimal.RequireFromString(price), catalog.StatusPublished)
		require.NoError(t, err)
		require.NoError(t, subs.Create(ctx, s))
	}

	pr, err := subs.PriceRange(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("499").Equal(pr.Min))
	assert.True(t, decimal.RequireFromString("699.5").Equal(pr.Max))

	p, err := catalog.BuildListingPlan(shared.ListingInput{Page: 1, Limit: 10, Search: "PIX"},
		[]string{"masterProductName", "categoryName"}, catalog.MasterProductSearchFields,
		[]shared.InConstraint{catalog.IDFilter(catalog.FilterCategoryID, []uuid.UUID{cat.ID})}, nil)
	require.NoError(t, err)
	items, err := masters.FindAll(ctx, p)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].Category.Attributes, 1)

	n, err := subs.DeleteByMasterProduct(ctx, master.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	require.NoError(t, masters.Archive(ctx, master.ID))
	assert.ErrorIs(t, masters.Archive(ctx, master.ID), shared.ErrNotFound)

	pr, err = subs.PriceRange(ctx)
	require.NoError(t, err)
	assert.True(t, pr.Empty)
}
