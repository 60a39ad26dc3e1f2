package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/infrastructure/auth"
	"github.com/shopcore/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, plan shared.ListingPlan) ([]identity.User, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, plan shared.ListingPlan) (int64, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

const testPassword = "correct-horse-battery"

type authFixture struct {
	users     *MockUserRepository
	events    *MockEventPublisher
	hasher    *auth.BcryptHasher
	tokens    *auth.JWTService
	blacklist *auth.InMemoryTokenBlacklist
	service   *AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:     new(MockUserRepository),
		events:    new(MockEventPublisher),
		hasher:    auth.NewBcryptHasher(bcrypt.MinCost),
		blacklist: auth.NewInMemoryTokenBlacklist(),
		tokens: auth.NewJWTService(config.JWTConfig{
			Secret:                 "test-secret-key-that-is-long-enough-123",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: time.Hour,
			Issuer:                 "shopcore-test",
		}),
	}
	f.service = NewAuthService(f.users, f.hasher, f.tokens, f.blacklist, f.events, zap.NewNop())
	return f
}

func (f *authFixture) newUser(email string, role identity.Role) *identity.User {
	digest, err := f.hasher.Hash(testPassword)
	if err != nil {
		panic(err)
	}
	user, err := identity.NewUser(email, digest, "Ada", "Lovelace", role)
	if err != nil {
		panic(err)
	}
	user.ClearDomainEvents()
	return user
}
