// Package apptest wires the real services over an in-memory SQLite database for interface tests.
package apptest

import (
	"context"
	"testing"
	"time"

	"github.com/shopcore/backend/internal/application/catalog"
	"github.com/shopcore/backend/internal/application/identity"
	"github.com/shopcore/backend/internal/domain/access"
	domainIdentity "github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/infrastructure/auth"
	"github.com/shopcore/backend/internal/infrastructure/cache"
	"github.com/shopcore/backend/internal/infrastructure/config"
	"github.com/shopcore/backend/internal/infrastructure/metrics"
	"github.com/shopcore/backend/internal/infrastructure/persistence"
	"github.com/shopcore/backend/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Password is the password of every user created by App.SignIn
const Password = "correct-horse-battery"

// App holds a fully wired service graph
type App struct {
	DB        *gorm.DB
	Users     domainIdentity.UserRepository
	Events    *testutil.RecordingPublisher
	Metrics   *metrics.Metrics
	Tokens    *auth.JWTService
	Blacklist *auth.InMemoryTokenBlacklist

	Auth       *identity.AuthService
	UserSvc    *identity.UserService
	Resolver   *identity.ContextResolver
	Categories *catalog.CategoryService
	Masters    *catalog.MasterProductService
	Subs       *catalog.SubProductService
	Cascade    *catalog.CascadeCoordinator
}

// New builds an App on a fresh database
func New(t *testing.T) *App {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	log := zap.NewNop()

	users := persistence.NewGormUserRepository(db)
	categories := persistence.NewGormCategoryRepository(db)
	masters := persistence.NewGormMasterProductRepository(db)
	subs := persistence.NewGormSubProductRepository(db)

	events := testutil.NewRecordingPublisher()
	m := metrics.New(false)
	tokens := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough-123",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "shopcore-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	policy := access.DefaultPolicy()

	authService := identity.NewAuthService(users, auth.NewBcryptHasher(bcrypt.MinCost), tokens, blacklist, events, log)
	prices := catalog.NewPriceRangeProvider(subs, cache.NewInMemoryPriceRangeCache(time.Minute), m, log)
	cascade := catalog.NewCascadeCoordinator(categories, masters, subs, prices, events, m, 2, log)

	return &App{
		DB:         db,
		Users:      users,
		Events:     events,
		Metrics:    m,
		Tokens:     tokens,
		Blacklist:  blacklist,
		Auth:       authService,
		UserSvc:    identity.NewUserService(users, policy, events, log),
		Resolver:   identity.NewContextResolver(authService, log),
		Categories: catalog.NewCategoryService(categories, cascade, policy, log),
		Masters:    catalog.NewMasterProductService(masters, categories, prices, cascade, policy, events, log),
		Subs:       catalog.NewSubProductService(subs, masters, prices, policy, events, log),
		Cascade:    cascade,
	}
}

// SignIn creates a user with role and returns a fresh access token for it
func (a *App) SignIn(t *testing.T, email string, role domainIdentity.Role) string {
	t.Helper()
	ctx := context.Background()

	if _, err := a.Users.FindByEmail(ctx, email); err != nil {
		digest, err := auth.NewBcryptHasher(bcrypt.MinCost).Hash(Password)
		require.NoError(t, err)
		user, err := domainIdentity.NewUser(email, digest, "Test", "User", role)
		require.NoError(t, err)
		require.NoError(t, a.Users.Create(ctx, user))
	}

	tokens, err := a.Auth.Login(ctx, identity.LoginInput{Email: email, Password: Password})
	require.NoError(t, err)
	return tokens.AccessToken
}

// Caller resolves token the way the transport layer does
func (a *App) Caller(t *testing.T, token string) identity.ContextInfo {
	t.Helper()
	info, err := a.Resolver.GetContextInfo(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	return *info
}
