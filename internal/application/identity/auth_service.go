package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

var errInvalidCredentials = shared.NewDomainError(shared.CodeUnauthenticated, "Invalid email or password")

// unknownUserPassword is hashed once at startup; logins for unknown emails are compared against it
// so they cost the same as a wrong password.
const unknownUserPassword = "shopcore-unknown-user"

// AuthService handles login, signup and token verification
type AuthService struct {
	users     identity.UserRepository
	hasher    identity.PasswordHasher
	tokens    *auth.JWTService
	blacklist auth.TokenBlacklist
	events    shared.EventPublisher
	logger    *zap.Logger

	dummyDigest string
}

// NewAuthService creates a new authentication service
func NewAuthService(
	users identity.UserRepository,
	hasher identity.PasswordHasher,
	tokens *auth.JWTService,
	blacklist auth.TokenBlacklist,
	events shared.EventPublisher,
	logger *zap.Logger,
) *AuthService {
	s := &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		blacklist: blacklist,
		events:    events,
		logger:    logger,
	}
	digest, err := hasher.Hash(unknownUserPassword)
	if err != nil {
		logger.Error("Failed to prepare unknown-user digest", zap.Error(err))
	}
	s.dummyDigest = digest
	return s
}

// Login checks the credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*TokenResult, error) {
	email := identity.NormalizeEmail(input.Email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.compareUnknown(input.Password)
			s.logger.Warn("Login for unknown email")
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		s.logger.Warn("Login with wrong password", userIDField(user.ID))
		return nil, errInvalidCredentials
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("User logged in", userIDField(user.ID))
	return result, nil
}

// Signup creates a CUSTOMER account
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*UserResponse, error) {
	if err := identity.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	email := identity.NormalizeEmail(input.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "User already exists")
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := identity.NewUser(email, digest, input.FirstName, input.LastName, identity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "User already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	publish(ctx, s.events, s.logger, user.GetDomainEvents()...)
	user.ClearDomainEvents()

	s.logger.Info("User signed up", userIDField(user.ID))
	resp := ToUserResponse(user)
	return &resp, nil
}

// Verify resolves an access token to its user. Any failure is Unauthenticated.
func (s *AuthService) Verify(ctx context.Context, token string) (*identity.User, error) {
	user, _, err := s.authenticate(ctx, token)
	return user, err
}

// Refresh rotates a refresh token into a new pair; the old refresh token is revoked
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenResult, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.logger.Debug("Refresh token rejected", zap.Error(err))
		return nil, shared.ErrUnauthenticated
	}
	if err := s.checkNotRevoked(ctx, claims); err != nil {
		return nil, err
	}

	userID, err := claims.UserUUID()
	if err != nil {
		return nil, shared.ErrUnauthenticated
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthenticated
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user.SessionRevoked(claims.SessionVersion) {
		return nil, shared.ErrUnauthenticated
	}

	if err := s.blacklist.Revoke(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		return nil, fmt.Errorf("revoke refresh token: %w", err)
	}
	return s.issue(user)
}

// Revoke blacklists a single access token until it expires
func (s *AuthService) Revoke(ctx context.Context, token string) error {
	claims, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return shared.ErrUnauthenticated
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// compareUnknown runs a comparison whose result is discarded
func (s *AuthService) compareUnknown(password string) {
	if s.dummyDigest == "" {
		return
	}
	_, _ = s.hasher.Compare(s.dummyDigest, password)
}

func (s *AuthService) authenticate(ctx context.Context, token string) (*identity.User, *auth.Claims, error) {
	claims, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		s.logger.Debug("Access token rejected", zap.Error(err))
		return nil, nil, shared.ErrUnauthenticated
	}
	if err := s.checkNotRevoked(ctx, claims); err != nil {
		return nil, nil, err
	}

	user, err := s.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, shared.ErrUnauthenticated
		}
		return nil, nil, fmt.Errorf("load user: %w", err)
	}
	if claims.UserID != user.ID.String() || user.SessionRevoked(claims.SessionVersion) {
		return nil, nil, shared.ErrUnauthenticated
	}
	return user, claims, nil
}

func (s *AuthService) checkNotRevoked(ctx context.Context, claims *auth.Claims) error {
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return fmt.Errorf("check token blacklist: %w", err)
	}
	if revoked {
		return shared.ErrUnauthenticated
	}
	return nil
}

func (s *AuthService) issue(user *identity.User) (*TokenResult, error) {
	pair, err := s.tokens.GenerateTokenPair(auth.Subject{
		UserID:         user.ID,
		Email:          user.Email,
		Role:           user.Role.String(),
		SessionVersion: user.SessionVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("generate tokens: %w", err)
	}
	return toTokenResult(pair), nil
}

// publish forwards events; a publisher failure never fails the committed operation
func publish(ctx context.Context, publisher shared.EventPublisher, logger *zap.Logger, events ...shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.Error("Failed to publish domain events", zap.Error(err))
	}
}

// userIDField is shared by the services' log lines
func userIDField(id uuid.UUID) zap.Field {
	return zap.String("user_id", id.String())
}
