package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/access"
	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserService handles user administration
type UserService struct {
	users  identity.UserRepository
	policy *access.Policy
	events shared.EventPublisher
	logger *zap.Logger
	now    func() time.Time
}

// NewUserService creates a new UserService
func NewUserService(users identity.UserRepository, policy *access.Policy, events shared.EventPublisher, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		policy: policy,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// List returns a page of users, searchable over email, firstName and lastName
func (s *UserService) List(ctx context.Context, caller ContextInfo, input ListUsersInput) (*shared.Paginated[UserResponse], error) {
	if err := s.policy.Authorize(caller.Role, access.OpUserList); err != nil {
		return nil, err
	}

	plan, err := shared.BuildListingPlan(input.Listing, shared.ListingSpec{
		SearchFields:        input.SearchFields,
		AllowedSearchFields: identity.UserSearchFields,
	})
	if err != nil {
		return nil, err
	}

	users, err := s.users.FindAll(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	total, err := s.users.Count(ctx, plan.CountPlan())
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	page := shared.NewPaginated(ToUserResponses(users), total, input.Listing.Page, input.Listing.Limit)
	return &page, nil
}

// Update changes a user's profile or role
func (s *UserService) Update(ctx context.Context, caller ContextInfo, id uuid.UUID, input UpdateUserInput) (*UserResponse, error) {
	if err := s.policy.Authorize(caller.Role, access.OpUserUpdate); err != nil {
		return nil, err
	}

	var role *identity.Role
	if input.Role != nil {
		r, err := identity.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		role = &r
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(input.FirstName, input.LastName, role); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User updated", userIDField(user.ID), zap.String("by", caller.UserID.String()))
	resp := ToUserResponse(user)
	return &resp, nil
}

// GetByEmail loads a user; callers may always read themselves
func (s *UserService) GetByEmail(ctx context.Context, caller ContextInfo, email string) (*UserResponse, error) {
	email = identity.NormalizeEmail(email)
	if email != caller.Email {
		if err := s.policy.Authorize(caller.Role, access.OpUserRead); err != nil {
			return nil, err
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Logout ends every session of the user with email. Callers may always log themselves out.
func (s *UserService) Logout(ctx context.Context, caller ContextInfo, email string) error {
	email = identity.NormalizeEmail(email)
	if email != caller.Email {
		if err := s.policy.Authorize(caller.Role, access.OpUserLogout); err != nil {
			return err
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError(shared.CodeNotFound, "User not found")
		}
		return err
	}

	user.MarkLoggedOut(s.now())
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	publish(ctx, s.events, s.logger, user.GetDomainEvents()...)
	user.ClearDomainEvents()

	s.logger.Info("User logged out", userIDField(user.ID), zap.Int("session_version", user.SessionVersion))
	return nil
}
