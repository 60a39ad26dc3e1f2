package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, email, first string) *identity.User {
	u, err := identity.NewUser(email, "$2a$10$hash", first, "Doe", identity.RoleCustomer)
	require.NoError(t, err)
	return u
}

func TestGormUserRepository_CreateAndFind(t *testing.T) {
	repo := NewGormUserRepository(setupTestDB(t))
	ctx := context.Background()

	u := newTestUser(t, "Jane@Example.com", "Jane")
	require.NoError(t, repo.Create(ctx, u))

	found, err := repo.FindByEmail(ctx, "JANE@example.COM")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "jane@example.com", found.Email)
	assert.Equal(t, identity.RoleCustomer, found.Role)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", byID.FirstName)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)

	exists, err := repo.ExistsByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	err = repo.Create(ctx, newTestUser(t, "jane@example.com", "Other"))
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestGormUserRepository_Update(t *testing.T) {
	repo := NewGormUserRepository(setupTestDB(t))
	ctx := context.Background()

	u := newTestUser(t, "sam@example.com", "Sam")
	require.NoError(t, repo.Create(ctx, u))

	role := identity.RoleManager
	first := "Samuel"
	require.NoError(t, u.UpdateProfile(&first, nil, &role))
	u.MarkLoggedOut(time.Now())
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Samuel", found.FirstName)
	assert.Equal(t, identity.RoleManager, found.Role)
	assert.Equal(t, 1, found.SessionVersion)
	assert.NotNil(t, found.LastLogoutAt)

	ghost := newTestUser(t, "ghost@example.com", "Ghost")
	assert.ErrorIs(t, repo.Update(ctx, ghost), shared.ErrNotFound)
}

func TestGormUserRepository_Listing(t *testing.T) {
	repo := NewGormUserRepository(setupTestDB(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"Alice", "Bob", "Alina"} {
		u := newTestUser(t, name+"@example.com", name)
		u.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, u))
	}

	p, err := shared.BuildListingPlan(shared.ListingInput{Page: 1, Limit: 10, Search: "ALI"}, shared.ListingSpec{
		SearchFields:        []string{"firstName"},
		AllowedSearchFields: identity.UserSearchFields,
	})
	require.NoError(t, err)

	users, err := repo.FindAll(ctx, p)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alina", users[0].FirstName)
	assert.Equal(t, "Alice", users[1].FirstName)

	total, err := repo.Count(ctx, p.CountPlan())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
